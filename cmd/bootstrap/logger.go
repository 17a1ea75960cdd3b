package bootstrap

import (
	"log/slog"

	"github.com/Technologic101/nextjs-dashboard/internal/handler/middleware"
	"github.com/Technologic101/nextjs-dashboard/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *middleware.Logger) *slog.Logger { return l.Slog() },
	),
)

// NewLogger also installs the logger as the slog default.
func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}
