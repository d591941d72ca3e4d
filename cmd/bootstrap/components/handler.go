package components

import (
	"washbook/internal/handler"
	"washbook/internal/handler/api"
	"washbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRecordHandler,
		api.NewWasherHandler,
		api.NewServiceHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
