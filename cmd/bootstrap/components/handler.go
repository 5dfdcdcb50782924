package components

import (
	"discount-hub/internal/handler"
	"discount-hub/internal/handler/api"
	"discount-hub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewDiscountHandler,
		api.NewBrandHandler,
		api.NewUserHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
