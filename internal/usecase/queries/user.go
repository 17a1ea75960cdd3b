package queries

import (
	"context"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock

type UserReadStore interface {
	// FindByEmail returns the user and its password hash.
	FindByEmail(ctx context.Context, email string) (*UserView, string, error)
}
