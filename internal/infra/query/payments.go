package query

import (
	"context"

	"github.com/google/uuid"
)

const deletePaymentsByInvoiceID = `DELETE FROM payments WHERE invoice_id = $1`

func (q *Queries) DeletePaymentsByInvoiceID(ctx context.Context, db DBTX, invoiceID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deletePaymentsByInvoiceID, invoiceID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
