package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/bxttttt/AI-TravelPlanner/internal/config"
	"github.com/bxttttt/AI-TravelPlanner/internal/models/request_models"
	"github.com/bxttttt/AI-TravelPlanner/internal/models/response_models"
	"github.com/bxttttt/AI-TravelPlanner/pkg/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const MaxTripDays = 30

type PlannerServiceInterface interface {
	Run(ctx context.Context, req request_models.TripRequest) (response_models.PlanResponse, error)
	DestinationProfile(name string) (response_models.DestinationProfileResponse, error)
	Mode() string
}

type OrchestratorService struct {
	knowledge  KnowledgeServiceInterface
	budget     BudgetServiceInterface
	itinerary  ItineraryServiceInterface
	generation GenerationServiceInterface
	mode       string
	log        zerolog.Logger
}

// NewOrchestratorService wires the planning stages. Live mode needs an enabled generation
// service; otherwise the template pipeline is used.
func NewOrchestratorService(
	knowledge KnowledgeServiceInterface,
	budget BudgetServiceInterface,
	itinerary ItineraryServiceInterface,
	generation GenerationServiceInterface,
	mode string,
	log zerolog.Logger,
) PlannerServiceInterface {
	if mode != config.ModeLive || generation == nil || !generation.Enabled() {
		mode = config.ModeTemplate
	}
	return &OrchestratorService{
		knowledge:  knowledge,
		budget:     budget,
		itinerary:  itinerary,
		generation: generation,
		mode:       mode,
		log:        log.With().Str("component", "orchestrator").Logger(),
	}
}

func (o *OrchestratorService) Mode() string { return o.mode }

func (o *OrchestratorService) pipeline(log zerolog.Logger) *Pipeline {
	if o.mode == config.ModeLive {
		return NewPipeline(log,
			&retrieveStage{knowledge: o.knowledge},
			&budgetStage{budget: o.budget},
			&generateStage{generation: o.generation, itinerary: o.itinerary},
			&verifyStage{itinerary: o.itinerary},
			&recommendStage{},
			&integrateStage{},
		)
	}
	return NewPipeline(log,
		&retrieveStage{knowledge: o.knowledge},
		&budgetStage{budget: o.budget},
		&synthesizeStage{itinerary: o.itinerary},
		&recommendStage{},
		&integrateStage{},
	)
}

// Run plans a trip. The only errors are input validation errors; every valid request gets a
// structurally complete plan.
func (o *OrchestratorService) Run(ctx context.Context, req request_models.TripRequest) (response_models.PlanResponse, error) {
	pc, err := NewPlanContext(req)
	if err != nil {
		return response_models.PlanResponse{}, err
	}

	runID := uuid.New().String()
	log := o.log.With().Str("run_id", runID).Str("destination", pc.Destination).Int("days", pc.Days).Logger()
	log.Info().Str("mode", o.mode).Msg("Planning trip")

	if err := o.pipeline(log).Execute(ctx, pc); err != nil {
		log.Error().Err(err).Msg("Pipeline failed, returning minimal plan")
		return MinimalPlan(pc, err), nil
	}

	log.Info().Str("status", pc.Response.Status).Int("notes", len(pc.Notes)).Msg("Trip planned")
	return pc.Response, nil
}

// NewPlanContext validates the request and derives the trip span.
func NewPlanContext(req request_models.TripRequest) (*PlanContext, error) {
	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		return nil, fmt.Errorf("%w: destination is required", utils.ErrInvalidInput)
	}

	start, err := utils.ParseDate(strings.TrimSpace(req.StartDate))
	if err != nil {
		return nil, err
	}
	end, err := utils.ParseDate(strings.TrimSpace(req.EndDate))
	if err != nil {
		return nil, err
	}
	days := utils.InclusiveDays(start, end)
	if days < 1 {
		return nil, utils.ErrInvalidDateRange
	}
	if days > MaxTripDays {
		return nil, fmt.Errorf("%w: %d days, maximum is %d", utils.ErrTripTooLong, days, MaxTripDays)
	}

	travelers := req.Travelers
	if travelers == 0 {
		travelers = 1
	}
	if travelers < 1 {
		return nil, utils.ErrInvalidTravelers
	}

	if req.Budget != nil && *req.Budget < 0 {
		return nil, fmt.Errorf("%w: budget must not be negative", utils.ErrInvalidInput)
	}

	return &PlanContext{
		Request:     req,
		Destination: destination,
		Start:       start,
		End:         end,
		Days:        days,
		Travelers:   travelers,
		Interests:   []string(req.Preferences),
		Status:      response_models.StatusGenerated,
		Notes:       []string{},
	}, nil
}

// MinimalPlan covers every trip date with a zero-cost free-time block.
func MinimalPlan(pc *PlanContext, cause error) response_models.PlanResponse {
	itinerary := make([]response_models.DayPlan, 0, pc.Days)
	for i := 0; i < pc.Days; i++ {
		itinerary = append(itinerary, response_models.DayPlan{
			Date:     utils.FormatDate(utils.AddDays(pc.Start, i)),
			DayTitle: fmt.Sprintf("Day %d", i+1),
			Activities: []response_models.Activity{{
				Time:        "09:00-17:00",
				Title:       "Free time",
				Description: "Explore at your own pace",
				Location:    pc.Destination,
				Cost:        0,
				Category:    CategoryFreeTime,
				Priority:    response_models.PriorityMedium,
			}},
			Tips:  []string{},
			Focus: DayFocus(i, pc.Days),
		})
	}

	budget := response_models.BudgetSummary{Currency: genericCostFactor.currency}
	if pc.Budget.Days > 0 {
		budget = pc.Budget.ToSummary()
	}
	notes := append([]string{}, pc.Notes...)
	if cause != nil {
		notes = append(notes, "Planning failed, a minimal plan was returned")
	}

	return response_models.PlanResponse{
		Summary:   fmt.Sprintf("A %d-day trip to %s", pc.Days, pc.Destination),
		Itinerary: itinerary,
		Recommendations: response_models.Recommendations{
			Restaurants: []string{},
			Attractions: []string{},
			Tips:        []string{},
		},
		BudgetSummary: budget,
		Status:        response_models.StatusFallback,
		Notes:         notes,
	}
}

func (o *OrchestratorService) DestinationProfile(name string) (response_models.DestinationProfileResponse, error) {
	if _, ok := o.knowledge.Resolve(name); !ok {
		return response_models.DestinationProfileResponse{}, fmt.Errorf("%w: %s", utils.ErrDestinationNotFound, name)
	}

	profile := o.knowledge.Profile(name)
	venues := o.knowledge.Lookup(name, nil)
	return response_models.DestinationProfileResponse{
		Name:        profile.Name,
		Country:     profile.Country,
		Currency:    profile.Currency,
		Language:    profile.Language,
		Timezone:    profile.Timezone,
		BestTime:    profile.BestTime,
		Restaurants: topNames(venues.Restaurants, len(venues.Restaurants)),
		Attractions: topNames(venues.Attractions, len(venues.Attractions)),
		Shopping:    topNames(venues.Shopping, len(venues.Shopping)),
	}, nil
}
