package query

import (
	"context"

	"github.com/google/uuid"
)

const createInvoice = `
INSERT INTO invoices (customer_id, amount, status, date)
VALUES ($1, $2, $3, $4)
RETURNING id`

func (q *Queries) CreateInvoice(ctx context.Context, db DBTX, arg CreateInvoiceParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createInvoice, arg.CustomerID, arg.Amount, arg.Status, arg.Date)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const updateInvoice = `
UPDATE invoices
SET customer_id = $2, amount = $3, status = $4
WHERE id = $1`

func (q *Queries) UpdateInvoice(ctx context.Context, db DBTX, arg UpdateInvoiceParams) (int64, error) {
	tag, err := db.Exec(ctx, updateInvoice, arg.ID, arg.CustomerID, arg.Amount, arg.Status)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// amount is stored in cents; the list converts it back to the major unit as NUMERIC.
const listInvoices = `
SELECT
  i.id,
  i.customer_id,
  (i.amount::numeric / 100)::numeric(12, 2) AS amount,
  i.status,
  i.date,
  c.name,
  c.email,
  c.image_url
FROM invoices i
JOIN customers c ON c.id = i.customer_id
ORDER BY i.date DESC, i.id`

func (q *Queries) ListInvoices(ctx context.Context, db DBTX) ([]ListInvoicesRow, error) {
	rows, err := db.Query(ctx, listInvoices)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListInvoicesRow
	for rows.Next() {
		var i ListInvoicesRow
		if err := rows.Scan(
			&i.ID,
			&i.CustomerID,
			&i.Amount,
			&i.Status,
			&i.Date,
			&i.CustomerName,
			&i.Email,
			&i.ImageURL,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
