package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bxttttt/AI-TravelPlanner/internal/models/request_models"
	"github.com/bxttttt/AI-TravelPlanner/internal/models/response_models"
	"github.com/rs/zerolog"
)

type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeDegraded
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeDegraded:
		return "degraded"
	case OutcomeFailed:
		return "failed"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// StageResult is the tagged result every stage returns.
type StageResult struct {
	Outcome Outcome
	Note    string
	Err     error
}

func StageOK() StageResult { return StageResult{Outcome: OutcomeOK} }

func StageDegraded(note string) StageResult {
	return StageResult{Outcome: OutcomeDegraded, Note: note}
}

func StageFailed(err error) StageResult {
	return StageResult{Outcome: OutcomeFailed, Err: err}
}

// PlanContext is the per-request state threaded through the stages.
type PlanContext struct {
	Request     request_models.TripRequest
	Destination string
	Start       time.Time
	End         time.Time
	Days        int
	Travelers   int
	Interests   []string
	Tags        []string

	Knowledge  KnowledgeResult
	Style      string
	Budget     BudgetBreakdown
	Validation BudgetValidation
	Synthesis  SynthesisResult

	// set by the live stages
	Generated  *response_models.PlanResponse
	LLMSummary string

	Response response_models.PlanResponse
	Status   string
	Notes    []string
}

var statusRank = map[string]int{
	response_models.StatusGenerated: 0,
	response_models.StatusRepaired:  1,
	response_models.StatusFallback:  2,
}

// Degrade lowers the plan status; it never raises it back.
func (pc *PlanContext) Degrade(status, note string) {
	if statusRank[status] > statusRank[pc.Status] {
		pc.Status = status
	}
	pc.AddNote(note)
}

func (pc *PlanContext) AddNote(note string) {
	if note != "" {
		pc.Notes = append(pc.Notes, note)
	}
}

type Stage interface {
	Name() string
	Run(ctx context.Context, pc *PlanContext) StageResult
}

// FallbackStage is a stage that can recover from its own failure.
type FallbackStage interface {
	Stage
	Fallback(ctx context.Context, pc *PlanContext) StageResult
}

type Pipeline struct {
	stages []Stage
	log    zerolog.Logger
}

func NewPipeline(log zerolog.Logger, stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages, log: log}
}

func (p *Pipeline) Stages() []string {
	names := make([]string, 0, len(p.stages))
	for _, s := range p.stages {
		names = append(names, s.Name())
	}
	return names
}

// Execute runs the stages in order. It returns an error only when a stage failed and
// either had no fallback or the fallback failed too.
func (p *Pipeline) Execute(ctx context.Context, pc *PlanContext) error {
	for _, stage := range p.stages {
		started := time.Now()
		res := runStage(ctx, stage, pc)

		if res.Outcome == OutcomeFailed {
			fb, ok := stage.(FallbackStage)
			if !ok {
				p.log.Error().Err(res.Err).Str("stage", stage.Name()).Msg("Stage failed")
				return fmt.Errorf("stage %s: %w", stage.Name(), res.Err)
			}
			p.log.Warn().Err(res.Err).Str("stage", stage.Name()).Msg("Stage failed, running fallback")
			res = runFallback(ctx, fb, pc)
			if res.Outcome == OutcomeFailed {
				return fmt.Errorf("stage %s fallback: %w", stage.Name(), res.Err)
			}
		}

		if res.Outcome == OutcomeDegraded {
			pc.AddNote(res.Note)
		}

		p.log.Debug().
			Str("stage", stage.Name()).
			Str("outcome", res.Outcome.String()).
			Dur("elapsed", time.Since(started)).
			Msg("Stage finished")
	}
	return nil
}

func runStage(ctx context.Context, stage Stage, pc *PlanContext) (res StageResult) {
	defer func() {
		if r := recover(); r != nil {
			res = StageFailed(fmt.Errorf("panic: %v", r))
		}
	}()
	return stage.Run(ctx, pc)
}

func runFallback(ctx context.Context, stage FallbackStage, pc *PlanContext) (res StageResult) {
	defer func() {
		if r := recover(); r != nil {
			res = StageFailed(fmt.Errorf("fallback panic: %v", r))
		}
	}()
	return stage.Fallback(ctx, pc)
}
