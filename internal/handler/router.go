package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cuponera/internal/domain/user"
	"cuponera/internal/handler/api"
	"cuponera/internal/handler/middleware"
	"cuponera/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth            *api.AuthHandler
	Offer           *api.OfferHandler
	Coupon          *api.CouponHandler
	BusinessRequest *api.BusinessRequestHandler
	Admin           *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	requireBusiness := authMiddleware.RequireRoleAtLeast(user.RoleBusiness)
	requireAdmin := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/auth/refresh", Handler: h.Auth.Refresh},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
		})

		offers := apiGroup.Group("/offers")
		{
			addRoutes(offers, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Offer.List},
				{Method: http.MethodGet, Path: "/mine", Handler: h.Offer.ListMine, Mw: []gin.HandlerFunc{requireAuth, requireBusiness}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Offer.Get, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
				{Method: http.MethodPost, Path: "", Handler: h.Offer.Create, Mw: []gin.HandlerFunc{requireAuth, requireBusiness}},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Offer.Update, Mw: []gin.HandlerFunc{requireAuth, requireBusiness}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Offer.Update, Mw: []gin.HandlerFunc{requireAuth, requireBusiness}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Offer.Delete, Mw: []gin.HandlerFunc{requireAuth, requireBusiness}},
				{Method: http.MethodPost, Path: "/:id/buy", Handler: h.Offer.Buy, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		my := apiGroup.Group("/my")
		my.Use(requireAuth)
		{
			addRoutes(my, []route{
				{Method: http.MethodGet, Path: "/coupons", Handler: h.Coupon.ListMine},
				{Method: http.MethodGet, Path: "/coupons/:id", Handler: h.Coupon.GetMine},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/request-business", Handler: h.BusinessRequest.Submit, Mw: []gin.HandlerFunc{requireAuth}},
		})

		businessRequests := apiGroup.Group("/business-requests")
		businessRequests.Use(requireAuth, requireAdmin)
		{
			addRoutes(businessRequests, []route{
				{Method: http.MethodGet, Path: "", Handler: h.BusinessRequest.List},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: h.BusinessRequest.Approve},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.BusinessRequest.Reject},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/users", Handler: h.Admin.ListUsers, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(requireAuth, requireAdmin)
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/users/:id/role", Handler: h.Admin.ChangeRole},
				{Method: http.MethodGet, Path: "/reports/companies", Handler: h.Admin.CompanyReport},
				{Method: http.MethodGet, Path: "/reports/companies/:id", Handler: h.Admin.CompanyDetail},
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
