//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"github.com/Technologic101/nextjs-dashboard/internal/infra"
	"github.com/Technologic101/nextjs-dashboard/internal/infra/query"
	"github.com/Technologic101/nextjs-dashboard/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInvoiceViewQueries struct {
	mock.Mock
}

func (m *MockInvoiceViewQueries) ListInvoices(ctx context.Context, db query.DBTX) ([]query.ListInvoicesRow, error) {
	args := m.Called(ctx, db)
	rows, _ := args.Get(0).([]query.ListInvoicesRow)
	return rows, args.Error(1)
}

func TestInvoiceReadStore_List(t *testing.T) {
	ctx := context.Background()

	t.Run("maps rows to views", func(t *testing.T) {
		row := query.ListInvoicesRow{
			ID:           uuid.New(),
			CustomerID:   uuid.New(),
			Amount:       decimal.RequireFromString("15.30"),
			Status:       "pending",
			Date:         pgtype.Date{Time: time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), Valid: true},
			CustomerName: "Delba de Oliveira",
			Email:        "delba@oliveira.com",
			ImageURL:     "/customers/delba-de-oliveira.png",
		}

		mockQueries := new(MockInvoiceViewQueries)
		mockQueries.On("ListInvoices", ctx, mock.Anything).Return([]query.ListInvoicesRow{row}, nil)

		views, err := NewInvoiceReadStore(mockQueries, nil).List(ctx)
		require.NoError(t, err)

		want := []*queries.InvoiceView{{
			ID:           row.ID,
			CustomerID:   row.CustomerID,
			CustomerName: row.CustomerName,
			Email:        row.Email,
			ImageURL:     row.ImageURL,
			Amount:       row.Amount,
			Status:       "pending",
			Date:         "2026-10-17",
		}}
		if diff := cmp.Diff(want, views); diff != "" {
			t.Errorf("views mismatch (-want +got):\n%s", diff)
		}
		mockQueries.AssertExpectations(t)
	})

	t.Run("empty list", func(t *testing.T) {
		mockQueries := new(MockInvoiceViewQueries)
		mockQueries.On("ListInvoices", ctx, mock.Anything).Return(nil, nil)

		views, err := NewInvoiceReadStore(mockQueries, nil).List(ctx)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockInvoiceViewQueries)
		mockQueries.On("ListInvoices", ctx, mock.Anything).Return(nil, assert.AnError)

		views, err := NewInvoiceReadStore(mockQueries, nil).List(ctx)
		assert.Nil(t, views)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
