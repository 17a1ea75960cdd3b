package shared

import (
	"context"

	"github.com/Technologic101/nextjs-dashboard/internal/domain/invoice"
	"github.com/Technologic101/nextjs-dashboard/internal/domain/user"
	"github.com/Technologic101/nextjs-dashboard/internal/infra/query"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Invoices() InvoiceRepository
	Payments() PaymentRepository
	Users() UserRepository
	DB() query.DBTX
}

type InvoiceRepository interface {
	Create(ctx context.Context, tx query.DBTX, inv *invoice.Invoice) (uuid.UUID, error)
	Update(ctx context.Context, tx query.DBTX, id uuid.UUID, d invoice.Details) (int64, error)
}

type PaymentRepository interface {
	DeleteByInvoiceID(ctx context.Context, tx query.DBTX, invoiceID uuid.UUID) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx query.DBTX, u *user.User) (uuid.UUID, error)
}
