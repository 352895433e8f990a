package components

import (
	"gin-order-admin/internal/handler"
	"gin-order-admin/internal/handler/api"
	"gin-order-admin/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewOrderHandler,
		api.NewAdminOrderHandler,
		api.NewCouponHandler,
		api.NewGiftCardHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
