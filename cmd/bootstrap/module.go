package bootstrap

import (
	"github.com/Technologic101/nextjs-dashboard/cmd/bootstrap/components"
	"github.com/Technologic101/nextjs-dashboard/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	LoggerModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
