package controllers_fx

import (
	"github.com/bxttttt/AI-TravelPlanner/internal/api/controllers"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlanController))
