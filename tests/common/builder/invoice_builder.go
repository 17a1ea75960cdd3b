//go:build unit || e2e

package builder

import (
	"net/url"

	"github.com/Technologic101/nextjs-dashboard/internal/domain/invoice"
	"github.com/Technologic101/nextjs-dashboard/internal/validation"

	"github.com/shopspring/decimal"
)

const DefaultCustomerID = "3958dc9e-712f-4377-85e9-fec4b6a6442a"

type InvoiceBuilder struct {
	CustomerID string
	Amount     string
	Status     string
}

func NewInvoiceBuilder() *InvoiceBuilder {
	return &InvoiceBuilder{
		CustomerID: DefaultCustomerID,
		Amount:     "15.30",
		Status:     "pending",
	}
}

func (b *InvoiceBuilder) With(mutate func(*InvoiceBuilder)) *InvoiceBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *InvoiceBuilder) BuildDetails() (invoice.Details, error) {
	amount, err := decimal.NewFromString(b.Amount)
	if err != nil {
		return invoice.Details{}, err
	}
	return invoice.NewDetails(b.CustomerID, amount, invoice.Status(b.Status))
}

func (b *InvoiceBuilder) BuildForm() validation.Form {
	return validation.Form{
		"customerId": b.CustomerID,
		"amount":     b.Amount,
		"status":     b.Status,
	}
}

func (b *InvoiceBuilder) BuildFormWithout(fields ...string) validation.Form {
	form := b.BuildForm()
	for _, f := range fields {
		delete(form, f)
	}
	return form
}

// BuildValues is the url-encoded body a browser would post.
func (b *InvoiceBuilder) BuildValues() url.Values {
	return url.Values{
		"customerId": {b.CustomerID},
		"amount":     {b.Amount},
		"status":     {b.Status},
	}
}

// Fluent builder methods
func (b *InvoiceBuilder) WithCustomerID(id string) *InvoiceBuilder {
	b.CustomerID = id
	return b
}

func (b *InvoiceBuilder) WithAmount(amount string) *InvoiceBuilder {
	b.Amount = amount
	return b
}

func (b *InvoiceBuilder) WithStatus(status string) *InvoiceBuilder {
	b.Status = status
	return b
}
