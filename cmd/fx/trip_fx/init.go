package trip_fx

import (
	"go.uber.org/fx"

	"wanderlog/internal/services"
)

var Module = fx.Provide(services.NewTripService)
