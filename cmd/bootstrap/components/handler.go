package components

import (
	"pharmashift/internal/handler"
	"pharmashift/internal/handler/api"
	"pharmashift/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewInvitationHandler,
		api.NewShiftHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
