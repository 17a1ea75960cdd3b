// Command seed creates a dashboard user so the sign-in form has someone to accept.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/Technologic101/nextjs-dashboard/internal/domain/user"
	"github.com/Technologic101/nextjs-dashboard/internal/infra"
	"github.com/Technologic101/nextjs-dashboard/internal/infra/db"
	"github.com/Technologic101/nextjs-dashboard/internal/infra/query"
	"github.com/Technologic101/nextjs-dashboard/internal/infra/uow"
	"github.com/Technologic101/nextjs-dashboard/internal/pkg/config"
	"github.com/Technologic101/nextjs-dashboard/internal/pkg/errs"
	"github.com/Technologic101/nextjs-dashboard/internal/pkg/password"
	"github.com/Technologic101/nextjs-dashboard/internal/usecase/shared"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type seedConfig struct {
	DB   config.DBConfig
	Auth config.AuthConfig

	Name     string `envconfig:"SEED_NAME" default:"User"`
	Email    string `envconfig:"SEED_EMAIL" required:"true"`
	Password string `envconfig:"SEED_PASSWORD" required:"true"`
}

func main() {
	if err := run(); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func loadSeedConfig() (seedConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return seedConfig{}, errs.Wrap(err, "failed to load .env")
	}

	var cfg seedConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return seedConfig{}, errs.Wrap(err, "failed to process env config")
	}
	return cfg, nil
}

func run() error {
	cfg, err := loadSeedConfig()
	if err != nil {
		return err
	}

	email, err := user.NewEmail(cfg.Email)
	if err != nil {
		return err
	}
	hasher, err := password.NewHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}
	hash, err := hasher.Hash(cfg.Password)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	u := user.NewUser(cfg.Name, email, hash)
	err = uow.NewPostgresUoW(pool, query.New()).Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Users().Create(ctx, tx.DB(), u)
		return err
	})
	if infra.IsKind(err, infra.KindDuplicateKey) {
		slog.Info("user already exists", "email", email.Value())
		return nil
	}
	if err != nil {
		return err
	}

	slog.Info("user created", "email", email.Value(), "bcrypt_cost", hasher.Cost())
	return nil
}
