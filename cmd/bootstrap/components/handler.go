package components

import (
	"barista-cafe-api/internal/handler"
	"barista-cafe-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewMenuHandler,
		api.NewAvailabilityHandler,
		func(b *api.BookingHandler, m *api.MenuHandler, a *api.AvailabilityHandler) handler.Handlers {
			return handler.Handlers{Booking: b, Menu: m, Availability: a}
		},
	),
	fx.Invoke(handler.NewRouter),
)
