// Package pipeline provides the orchestrator that drives the four
// match-analysis stages in fixed order and reports progress.
package pipeline

import (
	"context"
	"strings"

	"github.com/jonathan/resume-match/internal/extraction"
	"github.com/jonathan/resume-match/internal/llm"
	"github.com/jonathan/resume-match/internal/recommend"
	"github.com/jonathan/resume-match/internal/scoring"
	"github.com/jonathan/resume-match/internal/types"
)

// State is the orchestrator's position in the pipeline.
type State string

// Pipeline states. Transitions happen strictly in order; Failed is terminal
// and reachable from any non-terminal state.
const (
	StateIdle             State = "idle"
	StateParsingJob       State = "parsing_job"
	StateParsingCV        State = "parsing_cv"
	StateAnalyzing        State = "analyzing"
	StateGeneratingReport State = "generating_report"
	StateComplete         State = "complete"
	StateFailed           State = "failed"
)

// totalSteps is the number of user-visible pipeline steps.
const totalSteps = 4

// step describes one user-visible pipeline stage.
type step struct {
	number       int
	state        State
	startMessage string
	doneMessage  string
}

var steps = [totalSteps]step{
	{1, StateParsingJob, "Extracting requirements from the job description", "Job requirements extracted"},
	{2, StateParsingCV, "Extracting the candidate profile from the resume", "Candidate profile extracted"},
	{3, StateAnalyzing, "Scoring the match", "Match scored"},
	{4, StateGeneratingReport, "Generating recommendations", "Recommendations generated"},
}

// Analyzer orchestrates the four analysis stages. It holds an injected LLM
// client; every entity it produces is request-scoped, so one Analyzer is safe
// for concurrent use as long as the client is.
type Analyzer struct {
	jobs     *extraction.JobExtractor
	cvs      *extraction.CandidateExtractor
	semantic *scoring.SemanticValidator
	reports  *recommend.Generator
}

// NewAnalyzer creates an Analyzer on top of the given LLM client.
func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{
		jobs:     extraction.NewJobExtractor(client),
		cvs:      extraction.NewCandidateExtractor(client),
		semantic: scoring.NewSemanticValidator(client),
		reports:  recommend.NewGenerator(client),
	}
}

// Analyze runs the pipeline to completion and returns the final result or the
// first error encountered. No stage is retried and partial results are never
// returned.
func (a *Analyzer) Analyze(ctx context.Context, cvText, jobText string) (*types.AnalysisResult, error) {
	result, _, err := a.run(ctx, cvText, jobText, nil)
	return result, err
}

// emitFunc receives progress events during a run. A non-nil error aborts the
// pipeline (used for consumer disconnects in streaming mode).
type emitFunc func(event types.ProgressEvent) error

// run executes the stages in order, emitting progress around each one when
// emit is non-nil. On failure it returns the number of the failing step.
func (a *Analyzer) run(ctx context.Context, cvText, jobText string, emit emitFunc) (*types.AnalysisResult, int, error) {
	if err := validateInputs(cvText, jobText); err != nil {
		return nil, steps[0].number, err
	}

	// Step 1: job parsing.
	if err := a.beginStep(ctx, steps[0], emit); err != nil {
		return nil, steps[0].number, err
	}
	job, err := a.jobs.Extract(ctx, jobText)
	if err != nil {
		return nil, steps[0].number, err
	}
	if err := a.endStep(steps[0], emit); err != nil {
		return nil, steps[0].number, err
	}

	// Step 2: cv parsing.
	if err := a.beginStep(ctx, steps[1], emit); err != nil {
		return nil, steps[1].number, err
	}
	profile, err := a.cvs.Extract(ctx, cvText)
	if err != nil {
		return nil, steps[1].number, err
	}
	if err := a.endStep(steps[1], emit); err != nil {
		return nil, steps[1].number, err
	}

	// Step 3: analyzing (deterministic scoring, semantic validation, combine).
	if err := a.beginStep(ctx, steps[2], emit); err != nil {
		return nil, steps[2].number, err
	}
	skillScore, matches := scoring.SkillMatchScore(job, profile)
	experienceScore := scoring.ExperienceAlignment(job, profile)
	assessment, err := a.semantic.Validate(ctx, jobText, cvText, job, profile)
	if err != nil {
		return nil, steps[2].number, err
	}
	breakdown := scoring.Combine(skillScore, experienceScore, assessment.SemanticMatchScore, assessment.SoftSkillsScore)
	if err := a.endStep(steps[2], emit); err != nil {
		return nil, steps[2].number, err
	}

	// Step 4: report generation.
	if err := a.beginStep(ctx, steps[3], emit); err != nil {
		return nil, steps[3].number, err
	}
	report, err := a.reports.Generate(ctx, breakdown, matches, job, profile)
	if err != nil {
		return nil, steps[3].number, err
	}
	if err := a.endStep(steps[3], emit); err != nil {
		return nil, steps[3].number, err
	}

	return &types.AnalysisResult{
		OverallScore:    breakdown.OverallScore,
		LetterGrade:     breakdown.LetterGrade,
		ScoreBreakdown:  breakdown,
		SkillMatches:    matches,
		Strengths:       report.Strengths,
		Gaps:            report.Gaps,
		Recommendations: report.Recommendations,
		Summary:         report.Summary,
	}, 0, nil
}

// beginStep checks for cancellation at the stage boundary and emits the
// in-progress event.
func (a *Analyzer) beginStep(ctx context.Context, s step, emit emitFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if emit == nil {
		return nil
	}
	return emit(types.ProgressEvent{
		Step:       s.number,
		TotalSteps: totalSteps,
		Message:    s.startMessage,
		Status:     types.StatusInProgress,
	})
}

// endStep emits the completed event for a step.
func (a *Analyzer) endStep(s step, emit emitFunc) error {
	if emit == nil {
		return nil
	}
	return emit(types.ProgressEvent{
		Step:       s.number,
		TotalSteps: totalSteps,
		Message:    s.doneMessage,
		Status:     types.StatusCompleted,
	})
}

// validateInputs fails fast on empty input before any LLM call is made.
func validateInputs(cvText, jobText string) error {
	if strings.TrimSpace(jobText) == "" {
		return &ValidationError{Field: "job_text", Message: "job description text is required"}
	}
	if strings.TrimSpace(cvText) == "" {
		return &ValidationError{Field: "cv_text", Message: "resume text is required"}
	}
	return nil
}

// StateForStep returns the pipeline state a step number corresponds to, or
// StateIdle for an out-of-range number.
func StateForStep(number int) State {
	for _, s := range steps {
		if s.number == number {
			return s.state
		}
	}
	return StateIdle
}
