package logger_fx

import (
	"github.com/bxttttt/AI-TravelPlanner/internal/config"
	"github.com/bxttttt/AI-TravelPlanner/pkg/logger"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

var Module = fx.Provide(ProvideLogger)

func ProvideLogger(cfg *config.Config) zerolog.Logger {
	return logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})
}
