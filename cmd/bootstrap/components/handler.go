package components

import (
	"cuponera/internal/handler"
	"cuponera/internal/handler/api"
	"cuponera/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewOfferHandler,
		api.NewCouponHandler,
		api.NewBusinessRequestHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		func(
			auth *api.AuthHandler,
			offer *api.OfferHandler,
			coupon *api.CouponHandler,
			businessRequest *api.BusinessRequestHandler,
			admin *api.AdminHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:            auth,
				Offer:           offer,
				Coupon:          coupon,
				BusinessRequest: businessRequest,
				Admin:           admin,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
