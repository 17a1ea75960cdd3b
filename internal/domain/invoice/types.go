package invoice

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid invoice status")
	ErrNonPositiveAmount = errors.New("amount must be greater than 0")
	ErrAmountTooLarge    = errors.New("amount exceeds the maximum")
	ErrMissingCustomer   = errors.New("customer is required")
)

// DateLayout is the calendar date format invoices are stored and exchanged in.
const DateLayout = "2006-01-02"
