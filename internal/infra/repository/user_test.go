//go:build unit

package repository_test

import (
	"context"
	"testing"

	"github.com/Technologic101/nextjs-dashboard/internal/infra"
	"github.com/Technologic101/nextjs-dashboard/internal/infra/query"
	"github.com/Technologic101/nextjs-dashboard/internal/infra/repository"
	"github.com/Technologic101/nextjs-dashboard/tests/common/builder"
	repositorymock "github.com/Technologic101/nextjs-dashboard/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("success: stores the hash, never the plain password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		tx := &mockDBTX{}
		id := uuid.New()

		mockQueries.EXPECT().CreateUser(ctx, tx, query.CreateUserParams{
			Name:     u.Name(),
			Email:    u.Email().Value(),
			Password: builder.DefaultPasswordHash,
		}).Return(id, nil)

		got, err := repository.NewUserRepository(mockQueries).Create(ctx, tx, u)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("error: duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		tx := &mockDBTX{}

		dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint \"users_email_key\""}
		mockQueries.EXPECT().CreateUser(ctx, tx, gomock.Any()).Return(uuid.Nil, dup)

		_, err := repository.NewUserRepository(mockQueries).Create(ctx, tx, u)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}
