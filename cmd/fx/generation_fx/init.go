package generation_fx

import (
	"context"

	"github.com/bxttttt/AI-TravelPlanner/internal/config"
	"github.com/bxttttt/AI-TravelPlanner/internal/services"
	"github.com/bxttttt/AI-TravelPlanner/pkg/utils"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	ProvideTextGenerator,
	ProvideGenerationService)

// ProvideTextGenerator creates the LLM client for live mode. It returns nil when the planner
// runs in template mode or no provider is configured.
func ProvideTextGenerator(lc fx.Lifecycle, cfg *config.Config, log zerolog.Logger) (utils.TextGenerator, error) {
	if cfg.PlannerMode != config.ModeLive {
		return nil, nil
	}
	if !cfg.LLM.Enabled() {
		log.Warn().Msg("PLANNER_MODE=live but LLM_API_KEY is empty, falling back to template mode")
		return nil, nil
	}

	log.Info().
		Str("provider", cfg.LLM.Provider).
		Str("model", cfg.LLM.Model).
		Msg("Initializing text generator")

	gen, err := utils.NewTextGenerator(context.Background(), cfg.LLM.Provider, cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.BaseURL, cfg.LLM.Timeout)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return gen.Close()
		},
	})
	return gen, nil
}

func ProvideGenerationService(gen utils.TextGenerator, cfg *config.Config, log zerolog.Logger) services.GenerationServiceInterface {
	return services.NewGenerationService(gen, cfg.LLM, log)
}
