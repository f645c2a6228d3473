package components

import (
	"hotel-backoffice/internal/handler"
	"hotel-backoffice/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewVenueHandler,
		api.NewRoomReservationHandler,
		api.NewVenueReservationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
