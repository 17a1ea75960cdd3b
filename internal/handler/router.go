package handler

import (
	"net/http"

	"github.com/Technologic101/nextjs-dashboard/internal/handler/api"
	"github.com/Technologic101/nextjs-dashboard/internal/handler/middleware"
	"github.com/Technologic101/nextjs-dashboard/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, authHandler *api.AuthHandler, invoiceHandler *api.InvoiceHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, authHandler, invoiceHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, authHandler *api.AuthHandler, invoiceHandler *api.InvoiceHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
	})

	invoices := engine.Group("/dashboard/invoices")
	{
		addRoutes(invoices, []route{
			{Method: http.MethodGet, Path: "", Handler: invoiceHandler.List},
			{Method: http.MethodPost, Path: "", Handler: invoiceHandler.Create},
			{Method: http.MethodPost, Path: "/:id/edit", Handler: invoiceHandler.Update},
			{Method: http.MethodPost, Path: "/:id/delete", Handler: invoiceHandler.Delete},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
