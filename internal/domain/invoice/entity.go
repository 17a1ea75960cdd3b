package invoice

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Details are the user-editable fields of an invoice.
type Details struct {
	customerID CustomerID
	amount     Amount
	status     Status
}

func NewDetails(customerID string, amount decimal.Decimal, status Status) (Details, error) {
	cid, err := NewCustomerID(customerID)
	if err != nil {
		return Details{}, err
	}

	amt, err := NewAmount(amount)
	if err != nil {
		return Details{}, err
	}

	if !status.IsValid() {
		return Details{}, ErrInvalidStatus
	}

	return Details{
		customerID: cid,
		amount:     amt,
		status:     status,
	}, nil
}

func (d Details) CustomerID() CustomerID { return d.customerID }
func (d Details) Amount() Amount         { return d.amount }
func (d Details) Status() Status         { return d.status }

// Invoice is a new invoice about to be inserted. The id is assigned by the store.
type Invoice struct {
	id      uuid.UUID
	details Details
	date    time.Time
}

// NewInvoice dates the invoice on the UTC calendar day of issuedAt.
func NewInvoice(details Details, issuedAt time.Time) *Invoice {
	utc := issuedAt.UTC()
	return &Invoice{
		details: details,
		date:    time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC),
	}
}

func (i *Invoice) ID() uuid.UUID      { return i.id }
func (i *Invoice) Details() Details   { return i.details }
func (i *Invoice) Date() time.Time    { return i.date }
func (i *Invoice) DateString() string { return i.date.Format(DateLayout) }

// AssignID records the identifier generated by the store on insert.
func (i *Invoice) AssignID(id uuid.UUID) {
	i.id = id
}

// Draft is a parsed invoice form. ID and Date are only set when the full form is parsed.
type Draft struct {
	ID         string
	CustomerID string
	Amount     decimal.Decimal
	Status     Status
	Date       string
}

func (d Draft) Details() (Details, error) {
	return NewDetails(d.CustomerID, d.Amount, d.Status)
}
