//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Technologic101/nextjs-dashboard/internal/infra"
	"github.com/Technologic101/nextjs-dashboard/internal/infra/repository"
	repositorymock "github.com/Technologic101/nextjs-dashboard/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPaymentRepository_DeleteByInvoiceID(t *testing.T) {
	ctx := context.Background()
	invoiceID := uuid.New()

	testCases := []struct {
		name         string
		rows         int64
		queryErr     error
		wantAffected int64
		expectKind   infra.RepositoryErrorKind
	}{
		{name: "success: payments removed", rows: 2, wantAffected: 2},
		{name: "success: nothing to delete", rows: 0, wantAffected: 0},
		{name: "error: database failure", queryErr: errors.New("connection refused"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
			tx := &mockDBTX{}
			mockQueries.EXPECT().DeletePaymentsByInvoiceID(ctx, tx, invoiceID).Return(tc.rows, tc.queryErr)

			affected, err := repository.NewPaymentRepository(mockQueries, tx).DeleteByInvoiceID(ctx, tx, invoiceID)
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantAffected, affected)
		})
	}
}
