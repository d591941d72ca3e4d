package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"washbook/internal/handler/api"
	"washbook/internal/handler/middleware"
	"washbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	recordHandler *api.RecordHandler,
	washerHandler *api.WasherHandler,
	serviceHandler *api.ServiceHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, recordHandler, washerHandler, serviceHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	recordHandler *api.RecordHandler,
	washerHandler *api.WasherHandler,
	serviceHandler *api.ServiceHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/verify", Handler: authHandler.Verify},
			})
		}

		records := apiGroup.Group("/records")
		records.Use(authMiddleware.RequireAuth())
		{
			addRoutes(records, []route{
				{Method: http.MethodPost, Path: "", Handler: recordHandler.CreateRecord},
				{Method: http.MethodGet, Path: "", Handler: recordHandler.ListRecords},
				{Method: http.MethodGet, Path: "/cierre-caja", Handler: recordHandler.CashClosing},
				{Method: http.MethodPut, Path: "/:id", Handler: recordHandler.UpdateRecord},
				{Method: http.MethodDelete, Path: "/:id", Handler: recordHandler.DeleteRecord},
			})
		}

		washers := apiGroup.Group("/washers")
		washers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(washers, []route{
				{Method: http.MethodGet, Path: "", Handler: washerHandler.ListWashers},
				{Method: http.MethodGet, Path: "/comisiones", Handler: washerHandler.Commissions},
			})
		}

		services := apiGroup.Group("/services")
		services.Use(authMiddleware.RequireAuth())
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "", Handler: serviceHandler.ListServices},
				{Method: http.MethodGet, Path: "/vehiculo/:tipo", Handler: serviceHandler.ListServicesByVehicleType},
			})
		}
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
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
