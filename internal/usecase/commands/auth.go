package commands

import (
	"context"
	"errors"

	"github.com/Technologic101/nextjs-dashboard/internal/domain/user"
	"github.com/Technologic101/nextjs-dashboard/internal/infra"
	"github.com/Technologic101/nextjs-dashboard/internal/pkg/errs"
	"github.com/Technologic101/nextjs-dashboard/internal/pkg/password"
	"github.com/Technologic101/nextjs-dashboard/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserLookupFailed   = errs.New("user lookup failed")
)

type AuthenticatedUser struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type AuthCommands interface {
	// Authenticate returns ErrInvalidCredentials for malformed input, unknown
	// users and wrong passwords. Any other error is a system failure.
	Authenticate(ctx context.Context, email, password string) (*AuthenticatedUser, error)
}

type authCommandsImpl struct {
	readStore queries.UserReadStore
}

func NewAuthCommands(readStore queries.UserReadStore) AuthCommands {
	return &authCommandsImpl{
		readStore: readStore,
	}
}

func (a *authCommandsImpl) Authenticate(ctx context.Context, email, pw string) (*AuthenticatedUser, error) {
	credentials, err := user.NewCredentials(email, pw)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// TODO: compare against a dummy hash here to equalize timing with known users.
			return nil, ErrInvalidCredentials
		}
		return nil, errs.WrapMark(err, ErrUserLookupFailed, "failed to fetch user")
	}

	err = password.ComparePassword(hashedPassword, credentials.Password().Value())
	if err != nil {
		if errors.Is(err, password.ErrComparisonFailed) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Wrap(err, "failed to compare password")
	}

	return &AuthenticatedUser{
		ID:    view.ID,
		Name:  view.Name,
		Email: view.Email,
	}, nil
}
