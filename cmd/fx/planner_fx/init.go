package planner_fx

import (
	"github.com/bxttttt/AI-TravelPlanner/internal/config"
	"github.com/bxttttt/AI-TravelPlanner/internal/services"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	services.NewBudgetService,
	services.NewItineraryService,
	ProvidePlanner)

func ProvidePlanner(
	knowledge services.KnowledgeServiceInterface,
	budget services.BudgetServiceInterface,
	itinerary services.ItineraryServiceInterface,
	generation services.GenerationServiceInterface,
	cfg *config.Config,
	log zerolog.Logger,
) services.PlannerServiceInterface {
	return services.NewOrchestratorService(knowledge, budget, itinerary, generation, cfg.PlannerMode, log)
}
