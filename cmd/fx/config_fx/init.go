package config_fx

import (
	"github.com/bxttttt/AI-TravelPlanner/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Provide(config.Load)
