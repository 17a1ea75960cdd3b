package queries

import (
	"context"
	"log/slog"

	"github.com/Technologic101/nextjs-dashboard/internal/usecase/shared"
)

//go:generate mockgen -source=invoice.go -destination=../../../tests/mock/queries/invoice.go -package=queriesmock

type InvoiceQueries interface {
	ListInvoices(ctx context.Context) ([]*InvoiceView, error)
}

type InvoiceReadStore interface {
	List(ctx context.Context) ([]*InvoiceView, error)
}

// ViewStore is the read side of the view cache.
type ViewStore interface {
	Lookup(path string) (any, uint64, bool)
	Store(path string, gen uint64, v any) bool
}

type invoiceQueriesImpl struct {
	readStore InvoiceReadStore
	views     ViewStore
}

func NewInvoiceQueries(readStore InvoiceReadStore, views ViewStore) InvoiceQueries {
	return &invoiceQueriesImpl{
		readStore: readStore,
		views:     views,
	}
}

func (q *invoiceQueriesImpl) ListInvoices(ctx context.Context) ([]*InvoiceView, error) {
	cached, gen, ok := q.views.Lookup(shared.InvoicesPath)
	if ok {
		if items, ok := cached.([]*InvoiceView); ok {
			return items, nil
		}
	}

	items, err := q.readStore.List(ctx)
	if err != nil {
		return nil, err
	}

	if !q.views.Store(shared.InvoicesPath, gen, items) {
		slog.Debug("invoice list revalidated while loading, not cached")
	}
	return items, nil
}
