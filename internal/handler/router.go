package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"discount-hub/internal/domain/user"
	"discount-hub/internal/handler/api"
	"discount-hub/internal/infra/dynconfig"
	"discount-hub/internal/handler/middleware"
	"discount-hub/internal/pkg/config"
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
	discountHandler *api.DiscountHandler,
	brandHandler *api.BrandHandler,
	userHandler *api.UserHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	configProvider *dynconfig.Provider,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, discountHandler, brandHandler, userHandler, adminHandler, authMiddleware, configProvider)
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
	discountHandler *api.DiscountHandler,
	brandHandler *api.BrandHandler,
	userHandler *api.UserHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	configProvider *dynconfig.Provider,
) {
	engine.GET("/health", healthCheck(configProvider))

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
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodPost, Path: "", Handler: userHandler.Register},
			})

			usersAuth := users.Group("")
			usersAuth.Use(authMiddleware.RequireAuth())
			addRoutes(usersAuth, []route{
				{Method: http.MethodGet, Path: "/me/claims", Handler: userHandler.MyClaims},
			})
		}

		brands := apiGroup.Group("/brands")
		{
			addRoutes(brands, []route{
				{Method: http.MethodPost, Path: "", Handler: brandHandler.Register},
			})

			brandsAuth := brands.Group("")
			brandsAuth.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleBrand))
			addRoutes(brandsAuth, []route{
				{Method: http.MethodPatch, Path: "/me", Handler: brandHandler.UpdateProfile},
				{Method: http.MethodGet, Path: "/me/discounts", Handler: brandHandler.MyDiscounts},
				{Method: http.MethodPost, Path: "/me/discounts", Handler: brandHandler.CreateDiscount},
			})
		}

		discounts := apiGroup.Group("/discounts")
		{
			// Listing is visible to every authenticated account.
			listRoutes := discounts.Group("")
			listRoutes.Use(authMiddleware.RequireAuth())
			addRoutes(listRoutes, []route{
				{Method: http.MethodGet, Path: "", Handler: discountHandler.ListPublic},
			})

			// Claiming is for consumer accounts; brands manage, users claim.
			claimRoutes := discounts.Group("")
			claimRoutes.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleUser))
			addRoutes(claimRoutes, []route{
				{Method: http.MethodPost, Path: "/:id/fetch", Handler: discountHandler.Claim},
			})

			manageRoutes := discounts.Group("")
			manageRoutes.Use(authMiddleware.RequireAuth(), authMiddleware.RequirePermission(user.ResourceDiscount, user.ActionChange))
			addRoutes(manageRoutes, []route{
				{Method: http.MethodPatch, Path: "/:id", Handler: discountHandler.Update},
			})

			viewRoutes := discounts.Group("")
			viewRoutes.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleBrand, user.RoleStaff))
			addRoutes(viewRoutes, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: discountHandler.Get},
				{Method: http.MethodGet, Path: "/:id/claims", Handler: discountHandler.ClaimHistory},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			userAdmin := admin.Group("/users")
			userAdmin.Use(authMiddleware.RequirePermission(user.ResourceUsers, user.ActionBlock))
			addRoutes(userAdmin, []route{
				{Method: http.MethodPost, Path: "/:id/block", Handler: adminHandler.BlockUser},
				{Method: http.MethodPost, Path: "/:id/unblock", Handler: adminHandler.UnblockUser},
			})

			promote := admin.Group("/users")
			promote.Use(authMiddleware.RequirePermission(user.ResourceUsers, user.ActionPromote))
			addRoutes(promote, []route{
				{Method: http.MethodPost, Path: "/:id/promote", Handler: adminHandler.PromoteUser},
			})

			// Kill switch: staff and admin only, never brand accounts.
			discountAdmin := admin.Group("/discounts")
			discountAdmin.Use(authMiddleware.RequireRole(user.RoleStaff))
			addRoutes(discountAdmin, []route{
				{Method: http.MethodPost, Path: "/:id/disable", Handler: adminHandler.DisableDiscount},
				{Method: http.MethodPost, Path: "/:id/enable", Handler: adminHandler.EnableDiscount},
			})

			cfgView := admin.Group("/config")
			cfgView.Use(authMiddleware.RequirePermission(user.ResourceConfig, user.ActionView))
			addRoutes(cfgView, []route{
				{Method: http.MethodGet, Path: "", Handler: adminHandler.ListConfig},
			})

			cfgChange := admin.Group("/config")
			cfgChange.Use(authMiddleware.RequirePermission(user.ResourceConfig, user.ActionChange))
			addRoutes(cfgChange, []route{
				{Method: http.MethodPut, Path: "/:key", Handler: adminHandler.SetConfig},
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
func healthCheck(configProvider *dynconfig.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{
			"status":  "ok",
			"message": "Service is healthy",
		}
		// Operators announce planned downtime through runtime config; an
		// unreachable config store never fails the health probe.
		if banner, err := configProvider.Get(c.Request.Context(), dynconfig.KeyMaintenanceBanner); err == nil && banner != "" {
			body["maintenance"] = banner
		}
		c.JSON(http.StatusOK, body)
	}
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
