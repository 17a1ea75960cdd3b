package repository

import (
	"context"

	"github.com/Technologic101/nextjs-dashboard/internal/domain/invoice"
	"github.com/Technologic101/nextjs-dashboard/internal/infra"
	"github.com/Technologic101/nextjs-dashboard/internal/infra/query"
	"github.com/Technologic101/nextjs-dashboard/internal/infra/repository/converter"

	"github.com/google/uuid"
)

//go:generate mockgen -source=invoice.go -destination=../../../tests/mock/repository/invoice.go -package=repositorymock

type InvoiceWriteQueries interface {
	CreateInvoice(ctx context.Context, db query.DBTX, arg query.CreateInvoiceParams) (uuid.UUID, error)
	UpdateInvoice(ctx context.Context, db query.DBTX, arg query.UpdateInvoiceParams) (int64, error)
}

type InvoiceRepository struct {
	queries InvoiceWriteQueries
	db      query.DBTX
}

func NewInvoiceRepository(queries InvoiceWriteQueries, db query.DBTX) *InvoiceRepository {
	return &InvoiceRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts the invoice and records the store generated id on it.
func (r *InvoiceRepository) Create(ctx context.Context, tx query.DBTX, inv *invoice.Invoice) (uuid.UUID, error) {
	params, err := converter.InvoiceToCreateParams(inv)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("invalid invoice columns", err, infra.KindInvalidInput)
	}

	id, err := r.queries.CreateInvoice(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create invoice", err)
	}
	inv.AssignID(id)
	return id, nil
}

// Update rewrites customer, amount and status. The invoice date is never touched.
func (r *InvoiceRepository) Update(ctx context.Context, tx query.DBTX, id uuid.UUID, d invoice.Details) (int64, error) {
	params, err := converter.DetailsToUpdateParams(id, d)
	if err != nil {
		return 0, infra.WrapRepoErr("invalid invoice columns", err, infra.KindInvalidInput)
	}

	affected, err := r.queries.UpdateInvoice(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update invoice", err)
	}
	return affected, nil
}
