package controllers_fx

import (
	"go.uber.org/fx"

	"wanderlog/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewExpenseController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewInvitationController))
