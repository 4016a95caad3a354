package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stamppass/internal/handler/api"
	"stamppass/internal/handler/middleware"
	"stamppass/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth       *api.AuthHandler
	Issuance   *api.IssuanceHandler
	Redemption *api.RedemptionHandler
	Wallet     *api.WalletHandler
	Migration  *api.MigrationHandler
	Terminal   *api.TerminalHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	storeAccess *middleware.StoreAccessMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware, storeAccess)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	storeAccess *middleware.StoreAccessMiddleware,
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
				{Method: http.MethodPost, Path: "/login", Handler: handlers.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: handlers.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: handlers.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: handlers.Auth.Me},
			})
		}

		customer := apiGroup.Group("")
		customer.Use(authMiddleware.RequireAuth())
		{
			addRoutes(customer, []route{
				{Method: http.MethodPost, Path: "/issuance-requests", Handler: handlers.Issuance.Create},
				{Method: http.MethodGet, Path: "/issuance-requests/:id", Handler: handlers.Issuance.GetByID},
				{Method: http.MethodPost, Path: "/redeem-sessions", Handler: handlers.Redemption.Start},
				{Method: http.MethodPost, Path: "/redeem-sessions/:sessionId/complete", Handler: handlers.Redemption.Complete},
				{Method: http.MethodGet, Path: "/wallet/stamp-cards", Handler: handlers.Wallet.ListStampCards},
				{Method: http.MethodGet, Path: "/wallet/rewards", Handler: handlers.Wallet.ListRewards},
				{Method: http.MethodPost, Path: "/migrations", Handler: handlers.Migration.Submit},
				{Method: http.MethodGet, Path: "/migrations", Handler: handlers.Migration.List},
			})
		}

		terminal := apiGroup.Group("/terminal/:storeId")
		terminal.Use(
			authMiddleware.RequireAuth(),
			authMiddleware.RequireTerminalRole(),
			storeAccess.RequireOwnStore(),
		)
		{
			addRoutes(terminal, []route{
				{Method: http.MethodGet, Path: "/issuance-requests", Handler: handlers.Terminal.ListIssuanceRequests},
				{Method: http.MethodPost, Path: "/issuance-requests/:id/approve", Handler: handlers.Terminal.ApproveIssuance},
				{Method: http.MethodPost, Path: "/issuance-requests/:id/reject", Handler: handlers.Terminal.RejectIssuance},
				{Method: http.MethodGet, Path: "/migrations", Handler: handlers.Terminal.ListMigrations},
				{Method: http.MethodPost, Path: "/migrations/:id/approve", Handler: handlers.Terminal.ApproveMigration},
				{Method: http.MethodPost, Path: "/migrations/:id/reject", Handler: handlers.Terminal.RejectMigration},
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
