package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"gin-order-admin/internal/domain/user"
	"gin-order-admin/internal/handler/api"
	"gin-order-admin/internal/handler/middleware"
	"gin-order-admin/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Registry       *prometheus.Registry
	Logger         *middleware.Logger
	HTTPMetrics    *middleware.HTTPMetrics
	AuthMiddleware *middleware.AuthMiddleware

	AuthHandler       *api.AuthHandler
	OrderHandler      *api.OrderHandler
	AdminOrderHandler *api.AdminOrderHandler
	CouponHandler     *api.CouponHandler
	GiftCardHandler   *api.GiftCardHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p)
	setupRoutes(p)
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	p.Engine.Use(p.Logger.LoggingMiddleware())
	if p.Config.Metrics.Enabled {
		p.Engine.Use(p.HTTPMetrics.Middleware())
	}
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)

	if p.Config.Metrics.Enabled {
		engine.GET(p.Config.Metrics.Path, gin.WrapH(promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{Registry: p.Registry})))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authMw := p.AuthMiddleware
	operator := []gin.HandlerFunc{authMw.RequireRoleAtLeast(user.RoleOperator)}
	admin := []gin.HandlerFunc{authMw.RequireRoleAtLeast(user.RoleAdmin)}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/orders", Handler: p.OrderHandler.PlaceOrder},
			{Method: http.MethodGet, Path: "/orders/:orderNumber", Handler: p.OrderHandler.GetOrder},
			{Method: http.MethodPost, Path: "/coupons/preview", Handler: p.CouponHandler.Preview},
			{Method: http.MethodGet, Path: "/gift-cards/:number/balance", Handler: p.GiftCardHandler.Balance},
		})

		adminGroup := apiGroup.Group("/admin")

		auth := adminGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: p.AuthHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: p.AuthHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: p.AuthHandler.Me},
			})
		}

		backOffice := adminGroup.Group("")
		backOffice.Use(authMw.RequireAuth(), authMw.RequireRoleAtLeast(user.RoleViewer))
		{
			addRoutes(backOffice.Group("/orders"), []route{
				{Method: http.MethodGet, Path: "", Handler: p.AdminOrderHandler.List},
				{Method: http.MethodGet, Path: "/export", Handler: p.AdminOrderHandler.Export},
				{Method: http.MethodGet, Path: "/:orderNumber", Handler: p.AdminOrderHandler.Get},
				{Method: http.MethodPatch, Path: "/:orderNumber/status", Handler: p.AdminOrderHandler.UpdateStatus, Mw: operator},
			})

			addRoutes(backOffice.Group("/coupons"), []route{
				{Method: http.MethodGet, Path: "", Handler: p.CouponHandler.List},
				{Method: http.MethodGet, Path: "/:code", Handler: p.CouponHandler.Get},
				{Method: http.MethodPost, Path: "", Handler: p.CouponHandler.Create, Mw: admin},
				{Method: http.MethodPatch, Path: "/:code", Handler: p.CouponHandler.Update, Mw: admin},
				{Method: http.MethodPut, Path: "/:code/active", Handler: p.CouponHandler.SetActive, Mw: admin},
				{Method: http.MethodDelete, Path: "/:code", Handler: p.CouponHandler.Delete, Mw: admin},
			})

			addRoutes(backOffice.Group("/gift-cards"), []route{
				{Method: http.MethodGet, Path: "", Handler: p.GiftCardHandler.List},
				{Method: http.MethodGet, Path: "/:number", Handler: p.GiftCardHandler.Get},
				{Method: http.MethodPost, Path: "", Handler: p.GiftCardHandler.Issue, Mw: admin},
				{Method: http.MethodPut, Path: "/:number/status", Handler: p.GiftCardHandler.SetStatus, Mw: admin},
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
