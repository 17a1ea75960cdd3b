package components

import (
	"github.com/Technologic101/nextjs-dashboard/internal/infra/query"
	"github.com/Technologic101/nextjs-dashboard/internal/infra/readstore"
	"github.com/Technologic101/nextjs-dashboard/internal/infra/uow"
	"github.com/Technologic101/nextjs-dashboard/internal/infra/viewcache"
	"github.com/Technologic101/nextjs-dashboard/internal/usecase/queries"
	"github.com/Technologic101/nextjs-dashboard/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	cacheModule,
)

var baseOption = fx.Provide(
	NewQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Invoice
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.InvoiceViewQueries)),
		),
		fx.Annotate(
			readstore.NewInvoiceReadStore,
			fx.As(new(queries.InvoiceReadStore)),
		),
	),
)

// Write repositories are built per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

var cacheModule = fx.Module("persistence/viewcache",
	fx.Provide(
		fx.Annotate(
			viewcache.NewMemory,
			fx.As(new(shared.ViewCache)),
			fx.As(new(queries.ViewStore)),
		),
	),
)

func NewQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}
