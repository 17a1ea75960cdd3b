package readstore

import (
	"context"

	"github.com/Technologic101/nextjs-dashboard/internal/domain/invoice"
	"github.com/Technologic101/nextjs-dashboard/internal/infra"
	"github.com/Technologic101/nextjs-dashboard/internal/infra/query"
	"github.com/Technologic101/nextjs-dashboard/internal/pkg/pgconv"
	"github.com/Technologic101/nextjs-dashboard/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jinzhu/copier"
)

type InvoiceViewQueries interface {
	ListInvoices(ctx context.Context, db query.DBTX) ([]query.ListInvoicesRow, error)
}

type InvoiceReadStore struct {
	queries InvoiceViewQueries
	db      query.DBTX
}

func NewInvoiceReadStore(queries InvoiceViewQueries, db query.DBTX) *InvoiceReadStore {
	return &InvoiceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *InvoiceReadStore) List(ctx context.Context) ([]*queries.InvoiceView, error) {
	rows, err := r.queries.ListInvoices(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoices", err)
	}

	views := make([]*queries.InvoiceView, 0, len(rows))
	for i := range rows {
		v := &queries.InvoiceView{}
		if err := copier.CopyWithOption(v, &rows[i], copyOptions); err != nil {
			return nil, infra.WrapRepoErr("failed to map invoice row", err, infra.KindDBFailure)
		}
		views = append(views, v)
	}
	return views, nil
}

var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: pgtype.Date{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				d, _ := src.(pgtype.Date)
				if !d.Valid {
					return "", nil
				}
				return pgconv.DateFromPgtype(d).Format(invoice.DateLayout), nil
			},
		},
	},
}
