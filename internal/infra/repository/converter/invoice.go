package converter

import (
	"github.com/Technologic101/nextjs-dashboard/internal/domain/invoice"
	"github.com/Technologic101/nextjs-dashboard/internal/infra/query"
	"github.com/Technologic101/nextjs-dashboard/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func InvoiceToCreateParams(inv *invoice.Invoice) (query.CreateInvoiceParams, error) {
	customerID, amount, err := detailsColumns(inv.Details())
	if err != nil {
		return query.CreateInvoiceParams{}, err
	}
	return query.CreateInvoiceParams{
		CustomerID: customerID,
		Amount:     amount,
		Status:     inv.Details().Status().String(),
		Date:       pgconv.DateToPgtype(inv.Date()),
	}, nil
}

func DetailsToUpdateParams(id uuid.UUID, d invoice.Details) (query.UpdateInvoiceParams, error) {
	customerID, amount, err := detailsColumns(d)
	if err != nil {
		return query.UpdateInvoiceParams{}, err
	}
	return query.UpdateInvoiceParams{
		ID:         id,
		CustomerID: customerID,
		Amount:     amount,
		Status:     d.Status().String(),
	}, nil
}

func detailsColumns(d invoice.Details) (uuid.UUID, int32, error) {
	customerID, err := uuid.Parse(d.CustomerID().String())
	if err != nil {
		return uuid.Nil, 0, err
	}
	amount, err := pgconv.Int64ToInt32(d.Amount().Cents())
	if err != nil {
		return uuid.Nil, 0, err
	}
	return customerID, amount, nil
}
