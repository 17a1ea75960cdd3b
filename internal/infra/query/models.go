package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type Users struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Password string
}

type CreateUserParams struct {
	Name     string
	Email    string
	Password string
}

type CreateInvoiceParams struct {
	CustomerID uuid.UUID
	Amount     int32
	Status     string
	Date       pgtype.Date
}

type UpdateInvoiceParams struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Amount     int32
	Status     string
}

type ListInvoicesRow struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	Amount       decimal.Decimal
	Status       string
	Date         pgtype.Date
	CustomerName string
	Email        string
	ImageURL     string
}
