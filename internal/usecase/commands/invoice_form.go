package commands

import (
	"github.com/Technologic101/nextjs-dashboard/internal/domain/invoice"
	"github.com/Technologic101/nextjs-dashboard/internal/validation"

	"github.com/shopspring/decimal"
)

const (
	MsgSelectCustomer = "Please select a customer."
	MsgAmountPositive = "Amount must be greater than 0."
	MsgAmountTooLarge = "Amount is too large."
	MsgSelectStatus   = "Please select a status."
	MsgInvalidID      = "Invalid invoice id."
	MsgInvalidDate    = "Invalid date."
)

// InvoiceForm is the full invoice schema. Create and update omit the
// store-owned id and date.
var InvoiceForm = validation.NewSchema(
	func(v validation.Values) invoice.Draft {
		return invoice.Draft{
			ID:         v.String("id"),
			CustomerID: v.String("customerId"),
			Amount:     v.Decimal("amount"),
			Status:     invoice.Status(v.String("status")),
			Date:       v.String("date"),
		}
	},
	validation.String("id", MsgInvalidID),
	validation.String("customerId", MsgSelectCustomer),
	validation.Decimal("amount", MsgAmountPositive,
		validation.GreaterThan(decimal.Zero, MsgAmountPositive),
		validation.AtMost(invoice.MaxAmount, MsgAmountTooLarge),
	),
	validation.Enum("status", MsgSelectStatus, invoice.StatusPending.String(), invoice.StatusPaid.String()),
	validation.String("date", MsgInvalidDate, validation.TimeLayout(invoice.DateLayout, MsgInvalidDate)),
)

var (
	CreateInvoiceForm = InvoiceForm.Omit("id", "date")
	UpdateInvoiceForm = InvoiceForm.Omit("id", "date")
)
