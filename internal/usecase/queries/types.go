package queries

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserView is what sign-in needs to know about a user, minus the password hash.
type UserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// InvoiceView is an invoice row joined with its customer. Amount is in the major unit.
type InvoiceView struct {
	ID           uuid.UUID       `json:"id"`
	CustomerID   uuid.UUID       `json:"customer_id"`
	CustomerName string          `json:"name"`
	Email        string          `json:"email"`
	ImageURL     string          `json:"image_url"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	Date         string          `json:"date"`
}
