package components

import (
	"github.com/Technologic101/nextjs-dashboard/internal/pkg/clock"
	"github.com/Technologic101/nextjs-dashboard/internal/usecase/commands"
	"github.com/Technologic101/nextjs-dashboard/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewInvoiceCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewInvoiceQueries,
	),
)
