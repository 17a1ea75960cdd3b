package repository

import (
	"context"

	"github.com/Technologic101/nextjs-dashboard/internal/infra"
	"github.com/Technologic101/nextjs-dashboard/internal/infra/query"

	"github.com/google/uuid"
)

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/repository/payment.go -package=repositorymock

type PaymentWriteQueries interface {
	DeletePaymentsByInvoiceID(ctx context.Context, db query.DBTX, invoiceID uuid.UUID) (int64, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      query.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db query.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) DeleteByInvoiceID(ctx context.Context, tx query.DBTX, invoiceID uuid.UUID) (int64, error) {
	affected, err := r.queries.DeletePaymentsByInvoiceID(ctx, tx, invoiceID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete payments", err)
	}
	return affected, nil
}
