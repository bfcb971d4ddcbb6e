package bootstrap

import (
	"time"

	"pharmashift/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies an already loaded config. The store driver must be
// known before the graph is built, so loading happens in main.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
		fx.Provide(NewBookingLocation),
	)
}

func NewBookingLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Booking.Location()
}
