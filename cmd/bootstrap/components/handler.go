package components

import (
	"github.com/Technologic101/nextjs-dashboard/internal/handler"
	"github.com/Technologic101/nextjs-dashboard/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewInvoiceHandler,
	),
	fx.Invoke(handler.NewRouter),
)
