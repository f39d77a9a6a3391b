package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/bxttttt/AI-TravelPlanner/cmd/fx/config_fx"
	"github.com/bxttttt/AI-TravelPlanner/cmd/fx/controllers_fx"
	"github.com/bxttttt/AI-TravelPlanner/cmd/fx/generation_fx"
	"github.com/bxttttt/AI-TravelPlanner/cmd/fx/knowledge_fx"
	"github.com/bxttttt/AI-TravelPlanner/cmd/fx/logger_fx"
	"github.com/bxttttt/AI-TravelPlanner/cmd/fx/planner_fx"
	"github.com/bxttttt/AI-TravelPlanner/internal/api/controllers"
	"github.com/bxttttt/AI-TravelPlanner/internal/config"
	"github.com/bxttttt/AI-TravelPlanner/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		knowledge_fx.Module,
		generation_fx.Module,
		planner_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, log zerolog.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Info().Str("addr", srv.Addr).Str("mode", cfg.PlannerMode).Msg("Starting HTTP server")
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error().Err(err).Msg("HTTP server stopped unexpectedly")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(planController *controllers.PlanController, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(log))

	RegisterRoutes(r, planController)

	return r
}

func RegisterRoutes(r *gin.Engine, planController *controllers.PlanController) {
	r.GET("/healthz", planController.HealthHandler)

	api := r.Group("/api")
	api.POST("/trips/plan", planController.GeneratePlanHandler)
	api.GET("/destinations/:name", planController.GetDestinationHandler)
}
