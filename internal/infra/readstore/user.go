package readstore

import (
	"context"

	"github.com/Technologic101/nextjs-dashboard/internal/infra"
	"github.com/Technologic101/nextjs-dashboard/internal/infra/query"
	"github.com/Technologic101/nextjs-dashboard/internal/pkg/pgconv"
	"github.com/Technologic101/nextjs-dashboard/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByEmail(ctx context.Context, db query.DBTX, email string) (query.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      query.DBTX
}

func NewUserReadStore(queries UserReadQueries, db query.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err, infra.KindDBFailure)
	}

	return &queries.UserView{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
	}, row.Password, nil
}
