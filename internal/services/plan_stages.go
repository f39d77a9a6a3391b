package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/bxttttt/AI-TravelPlanner/internal/models/response_models"
	"github.com/bxttttt/AI-TravelPlanner/pkg/utils"
)

type retrieveStage struct {
	knowledge KnowledgeServiceInterface
}

func (s *retrieveStage) Name() string { return "retrieve" }

func (s *retrieveStage) Run(ctx context.Context, pc *PlanContext) StageResult {
	pc.Tags = s.knowledge.ExtractTags(pc.Interests)
	pc.Knowledge = s.knowledge.Retrieve(pc.Destination, pc.Tags, pc.Interests)

	if len(pc.Knowledge.PreferenceFilterSkipped) > 0 {
		pc.AddNote(fmt.Sprintf("No %s matched the stated interests, showing all tag matches",
			strings.Join(pc.Knowledge.PreferenceFilterSkipped, "/")))
	}

	if !pc.Knowledge.Known {
		pc.Knowledge = PlaceholderKnowledge(pc.Destination)
		pc.Degrade(response_models.StatusFallback, "")
		return StageDegraded(fmt.Sprintf("%s is not in the catalog, generic venues were used", pc.Destination))
	}
	return StageOK()
}

type budgetStage struct {
	budget BudgetServiceInterface
}

func (s *budgetStage) Name() string { return "budget" }

func (s *budgetStage) Run(ctx context.Context, pc *PlanContext) StageResult {
	pc.Style = s.budget.DetermineStyle(pc.Request.Budget, pc.Request.Style)
	pc.Budget = s.budget.Estimate(EstimateParams{
		Days:        pc.Days,
		Style:       pc.Style,
		Travelers:   pc.Travelers,
		Destination: pc.Knowledge.Destination,
		TotalBudget: pc.Request.Budget,
	})
	pc.Validation = s.budget.Validate(pc.Budget, pc.Days, pc.Travelers)
	if pc.Validation.IsValid {
		return StageOK()
	}

	for _, issue := range pc.Validation.Issues {
		pc.AddNote(issue)
	}
	pc.Budget = s.budget.Optimize(pc.Budget, BudgetPreferences{
		Shopping: containsString(pc.Tags, "shopping"),
		Food:     containsString(pc.Tags, "food"),
	})
	return StageDegraded("Budget was rebalanced toward the stated interests")
}

type synthesizeStage struct {
	itinerary ItineraryServiceInterface
}

func (s *synthesizeStage) Name() string { return "synthesize" }

func (s *synthesizeStage) Run(ctx context.Context, pc *PlanContext) StageResult {
	pc.Synthesis = s.itinerary.Synthesize(synthesisParams(pc))
	return StageOK()
}

func synthesisParams(pc *PlanContext) SynthesisParams {
	return SynthesisParams{
		Knowledge:   pc.Knowledge,
		Budget:      pc.Budget,
		Interests:   pc.Interests,
		Days:        pc.Days,
		Destination: pc.Destination,
		StartDate:   pc.Start,
	}
}

type generateStage struct {
	generation GenerationServiceInterface
	itinerary  ItineraryServiceInterface
}

func (s *generateStage) Name() string { return "generate" }

func (s *generateStage) Run(ctx context.Context, pc *PlanContext) StageResult {
	prompt := BuildPlanPrompt(PromptParams{
		Destination: pc.Knowledge.Profile.Name,
		StartDate:   utils.FormatDate(pc.Start),
		EndDate:     utils.FormatDate(pc.End),
		Days:        pc.Days,
		Travelers:   pc.Travelers,
		Interests:   pc.Interests,
		Budget:      pc.Budget,
		Knowledge:   pc.Knowledge,
	})

	result := s.generation.Generate(ctx, prompt)
	if !result.Success {
		return StageFailed(fmt.Errorf("%w: %v", utils.ErrUnexpectedBehaviorOfAI, result.Err))
	}
	if result.Status == response_models.StatusFallback {
		return StageFailed(fmt.Errorf("%w: output could not be recovered", utils.ErrUnexpectedBehaviorOfAI))
	}

	pc.Generated = result.Data
	pc.LLMSummary = result.Data.Summary
	if result.Status == response_models.StatusRepaired {
		pc.Degrade(response_models.StatusRepaired, "")
		return StageDegraded(fmt.Sprintf("Model output was repaired after %d attempts", result.Attempts))
	}
	return StageOK()
}

// Fallback switches to template synthesis when the model cannot be used.
func (s *generateStage) Fallback(ctx context.Context, pc *PlanContext) StageResult {
	pc.Generated = nil
	pc.LLMSummary = ""
	pc.Synthesis = s.itinerary.Synthesize(synthesisParams(pc))
	pc.Degrade(response_models.StatusFallback, "")
	return StageDegraded("Model generation was unavailable, a template itinerary was used")
}

type verifyStage struct {
	itinerary ItineraryServiceInterface
}

func (s *verifyStage) Name() string { return "verify" }

func (s *verifyStage) Run(ctx context.Context, pc *PlanContext) StageResult {
	if pc.Generated == nil {
		return StageOK()
	}

	if problem := planViolation(pc.Generated.Itinerary, pc.Days); problem != "" {
		pc.Synthesis = s.itinerary.Synthesize(synthesisParams(pc))
		if pc.LLMSummary != "" {
			pc.Synthesis.Summary = pc.LLMSummary
		}
		pc.Degrade(response_models.StatusRepaired, "")
		return StageDegraded("Model itinerary was replaced by a template itinerary: " + problem)
	}

	itinerary := make([]response_models.DayPlan, len(pc.Generated.Itinerary))
	for i, day := range pc.Generated.Itinerary {
		day.Date = utils.FormatDate(utils.AddDays(pc.Start, i))
		if day.DayTitle == "" {
			day.DayTitle = dayTitle(i, pc.Days, pc.Knowledge.Profile.Name)
		}
		if day.DailyBudget == 0 {
			day.DailyBudget = pc.Budget.DayBudget(i)
		}
		if day.Focus == "" {
			day.Focus = DayFocus(i, pc.Days)
		}
		itinerary[i] = day
	}

	summary := pc.LLMSummary
	if summary == "" {
		summary = ItinerarySummary(itinerary, pc.Knowledge.Profile.Name, pc.Budget.Currency)
	}
	pc.Synthesis = SynthesisResult{
		Itinerary:       itinerary,
		Summary:         summary,
		Recommendations: pc.Generated.Recommendations,
	}
	return StageOK()
}

// planViolation describes the first structural problem of a model itinerary.
func planViolation(itinerary []response_models.DayPlan, days int) string {
	if len(itinerary) != days {
		return fmt.Sprintf("expected %d days, got %d", days, len(itinerary))
	}
	for i, day := range itinerary {
		if n := len(day.Activities); n < 1 || n > 5 {
			return fmt.Sprintf("day %d has %d activities", i+1, n)
		}
	}
	return ""
}

type recommendStage struct{}

func (s *recommendStage) Name() string { return "recommend" }

func (s *recommendStage) Run(ctx context.Context, pc *PlanContext) StageResult {
	restaurantNames := venueNameSet(pc.Knowledge.Restaurants)
	attractionNames := venueNameSet(pc.Knowledge.Attractions)

	var diningVisited, attractionsVisited []string
	for _, day := range pc.Synthesis.Itinerary {
		for _, a := range day.Activities {
			switch {
			case restaurantNames[a.Title]:
				diningVisited = append(diningVisited, a.Title)
			case restaurantNames[a.Location]:
				diningVisited = append(diningVisited, a.Location)
			case attractionNames[a.Title]:
				attractionsVisited = append(attractionsVisited, a.Title)
			}
		}
	}

	recs := pc.Synthesis.Recommendations
	pc.Synthesis.Recommendations = response_models.Recommendations{
		Restaurants: mergeUnique(maxRecommendations, diningVisited, recs.Restaurants, topNames(pc.Knowledge.Restaurants, maxRecommendations)),
		Attractions: mergeUnique(maxRecommendations, attractionsVisited, recs.Attractions, topNames(pc.Knowledge.Attractions, maxRecommendations)),
		Tips:        mergeUnique(maxRecommendations, personalizedTips(pc), recs.Tips, TravelTips(pc.Knowledge.Profile.Name, pc.Knowledge.Profile.Language)),
	}
	return StageOK()
}

func personalizedTips(pc *PlanContext) []string {
	var tips []string
	if containsString(pc.Tags, "food") {
		tips = append(tips, "Save room for the local street food and markets")
	}
	if containsString(pc.Tags, "shopping") {
		tips = append(tips, "Leave space in your luggage for shopping")
	}
	if !pc.Validation.IsValid {
		tips = append(tips, "The budget is tight, favour free sights and public transport")
	}
	if pc.Travelers > 2 {
		tips = append(tips, "Book group tables and tickets ahead of time")
	}
	return tips
}

type integrateStage struct{}

func (s *integrateStage) Name() string { return "integrate" }

func (s *integrateStage) Run(ctx context.Context, pc *PlanContext) StageResult {
	if len(pc.Synthesis.Itinerary) == 0 {
		return StageFailed(fmt.Errorf("no itinerary to integrate"))
	}
	pc.Response = response_models.PlanResponse{
		Summary:         pc.Synthesis.Summary,
		Itinerary:       pc.Synthesis.Itinerary,
		Recommendations: pc.Synthesis.Recommendations,
		BudgetSummary:   pc.Budget.ToSummary(),
		Status:          pc.Status,
		Notes:           pc.Notes,
	}
	return StageOK()
}

func venueNameSet(venues []Venue) map[string]bool {
	set := make(map[string]bool, len(venues))
	for _, v := range venues {
		set[v.Name] = true
	}
	return set
}

// mergeUnique concatenates lists in order, skipping blanks and duplicates, up to limit items.
func mergeUnique(limit int, lists ...[]string) []string {
	out := make([]string, 0, limit)
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, item := range list {
			item = strings.TrimSpace(item)
			if item == "" || seen[item] {
				continue
			}
			if len(out) == limit {
				return out
			}
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
