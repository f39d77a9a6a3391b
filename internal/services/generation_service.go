package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bxttttt/AI-TravelPlanner/internal/config"
	"github.com/bxttttt/AI-TravelPlanner/internal/models/response_models"
	"github.com/bxttttt/AI-TravelPlanner/pkg/utils"
	"github.com/rs/zerolog"
)

const defaultPlaceholderSummary = "Your travel plan is being prepared"

type GenerationResult struct {
	Success  bool
	Data     *response_models.PlanResponse
	Status   string
	Attempts int
	Err      error
}

type GenerationServiceInterface interface {
	Generate(ctx context.Context, prompt string) GenerationResult
	Enabled() bool
}

type GenerationService struct {
	generator      utils.TextGenerator
	timeout        time.Duration
	repairAttempts int
	repairPause    time.Duration
	log            zerolog.Logger
}

// NewGenerationService wraps a text generator with the JSON recovery pipeline.
// A nil generator yields a disabled service.
func NewGenerationService(generator utils.TextGenerator, cfg config.LLMConfig, log zerolog.Logger) GenerationServiceInterface {
	attempts := cfg.RepairAttempts
	if attempts <= 0 {
		attempts = 5
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GenerationService{
		generator:      generator,
		timeout:        timeout,
		repairAttempts: attempts,
		repairPause:    cfg.RepairPause,
		log:            log.With().Str("component", "generation").Logger(),
	}
}

func (s *GenerationService) Enabled() bool {
	return s.generator != nil
}

// Generate makes a single provider call and recovers a plan from whatever text comes back.
// Transport failures are returned as Success=false; there is no network retry.
func (s *GenerationService) Generate(ctx context.Context, prompt string) GenerationResult {
	if s.generator == nil {
		return GenerationResult{Err: fmt.Errorf("%w: no provider configured", utils.ErrUnsupportedProvider)}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	raw, err := s.generator.Generate(callCtx, prompt)
	if err != nil {
		s.log.Warn().Err(err).Dur("elapsed", time.Since(started)).Msg("LLM call failed")
		return GenerationResult{Err: err}
	}
	s.log.Debug().Int("chars", len(raw)).Dur("elapsed", time.Since(started)).Msg("LLM call completed")

	plan, status, attempts := s.Recover(ctx, raw)
	if status != response_models.StatusGenerated {
		s.log.Info().Str("status", status).Int("attempts", attempts).Msg("LLM output needed recovery")
	}

	return GenerationResult{
		Success:  true,
		Data:     &plan,
		Status:   status,
		Attempts: attempts,
	}
}

// Recover turns raw model output into a plan: direct parse, bounded repair passes, then
// summary salvage. It always returns a structurally valid plan.
func (s *GenerationService) Recover(ctx context.Context, raw string) (response_models.PlanResponse, string, int) {
	cleaned := utils.CleanJSONResponse(raw)
	attempts := 1
	if plan, err := ParsePlan(cleaned); err == nil {
		return plan, response_models.StatusGenerated, attempts
	}

	candidate := cleaned
	for i := 0; i < s.repairAttempts; i++ {
		if i > 0 && s.repairPause > 0 {
			select {
			case <-ctx.Done():
				return s.salvage(raw, attempts)
			case <-time.After(s.repairPause):
			}
		}

		repaired := utils.RepairJSON(candidate)
		attempts++
		if plan, err := ParsePlan(repaired); err == nil {
			return plan, response_models.StatusRepaired, attempts
		}
		if repaired == candidate {
			break
		}
		candidate = repaired
	}

	return s.salvage(raw, attempts)
}

func (s *GenerationService) salvage(raw string, attempts int) (response_models.PlanResponse, string, int) {
	if summary, ok := utils.ExtractStringField(raw, "summary"); ok {
		return PlaceholderPlan(summary), response_models.StatusRepaired, attempts
	}
	s.log.Warn().Int("attempts", attempts).Msg("LLM output could not be recovered")
	return PlaceholderPlan(defaultPlaceholderSummary), response_models.StatusFallback, attempts
}

// PlaceholderPlan is a minimal single-day plan built around a summary.
func PlaceholderPlan(summary string) response_models.PlanResponse {
	return response_models.PlanResponse{
		Summary: summary,
		Itinerary: []response_models.DayPlan{{
			DayTitle: "Day 1",
			Activities: []response_models.Activity{{
				Time:        "09:00-17:00",
				Title:       "Free time",
				Description: "Explore at your own pace",
				Location:    "City centre",
				Category:    CategoryFreeTime,
				Priority:    response_models.PriorityMedium,
			}},
			Tips: []string{},
		}},
		Recommendations: response_models.Recommendations{
			Restaurants: []string{},
			Attractions: []string{},
			Tips:        []string{},
		},
	}
}

// flexNumber accepts JSON numbers and numeric strings such as "5000" or "¥5,000".
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = flexNumber(parseLooseNumber(s))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = flexNumber(f)
	return nil
}

func parseLooseNumber(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return f
}

type llmActivity struct {
	Time        string     `json:"time"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Cost        flexNumber `json:"cost"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
}

type llmDay struct {
	Date        string        `json:"date"`
	DayTitle    string        `json:"dayTitle"`
	DailyBudget flexNumber    `json:"dailyBudget"`
	Activities  []llmActivity `json:"activities"`
	Tips        []string      `json:"tips"`
}

type llmPlan struct {
	Summary         string   `json:"summary"`
	Itinerary       []llmDay `json:"itinerary"`
	Recommendations struct {
		Restaurants []string `json:"restaurants"`
		Attractions []string `json:"attractions"`
		Tips        []string `json:"tips"`
	} `json:"recommendations"`
}

// ParsePlan decodes a JSON object into a normalised plan. Arrays and scalars are rejected.
func ParsePlan(text string) (response_models.PlanResponse, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &probe); err != nil {
		return response_models.PlanResponse{}, fmt.Errorf("%w: %v", utils.ErrUnexpectedBehaviorOfAI, err)
	}

	var raw llmPlan
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return response_models.PlanResponse{}, fmt.Errorf("%w: %v", utils.ErrUnexpectedBehaviorOfAI, err)
	}

	plan := response_models.PlanResponse{
		Summary:   strings.TrimSpace(raw.Summary),
		Itinerary: make([]response_models.DayPlan, 0, len(raw.Itinerary)),
		Recommendations: response_models.Recommendations{
			Restaurants: nonNil(raw.Recommendations.Restaurants),
			Attractions: nonNil(raw.Recommendations.Attractions),
			Tips:        nonNil(raw.Recommendations.Tips),
		},
	}

	for _, d := range raw.Itinerary {
		day := response_models.DayPlan{
			Date:        d.Date,
			DayTitle:    d.DayTitle,
			DailyBudget: clampCost(d.DailyBudget),
			Activities:  make([]response_models.Activity, 0, len(d.Activities)),
			Tips:        nonNil(d.Tips),
		}
		for _, a := range d.Activities {
			day.Activities = append(day.Activities, response_models.Activity{
				Time:        a.Time,
				Title:       a.Title,
				Description: a.Description,
				Location:    a.Location,
				Cost:        clampCost(a.Cost),
				Category:    a.Category,
				Priority:    normalizePriority(a.Priority),
			})
		}
		plan.Itinerary = append(plan.Itinerary, day)
	}

	return plan, nil
}

// maxModelCost bounds a single cost coming from model output.
const maxModelCost int64 = 1_000_000_000_000

func clampCost(n flexNumber) int64 {
	f := float64(n)
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= float64(maxModelCost) {
		return maxModelCost
	}
	return roundInt(f)
}

func normalizePriority(p string) string {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case response_models.PriorityHigh:
		return response_models.PriorityHigh
	case response_models.PriorityLow:
		return response_models.PriorityLow
	default:
		return response_models.PriorityMedium
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
