// Package recommend turns a score breakdown into a prioritized improvement
// report via LLM generation, with deterministic padding so downstream
// consumers can rely on minimum list lengths.
package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-match/internal/llm"
	"github.com/jonathan/resume-match/internal/prompts"
	"github.com/jonathan/resume-match/internal/schemas"
	"github.com/jonathan/resume-match/internal/types"
)

// minListLength is the guaranteed minimum size of the recommendations,
// strengths and gaps lists. Padding to this length is a contract, not a
// fallback: consumers assume it.
const minListLength = 5

// Report is the generator's output: a short summary plus prioritized,
// categorized advice.
type Report struct {
	Summary         string                 `json:"summary"`
	Strengths       []string               `json:"strengths"`
	Gaps            []string               `json:"gaps"`
	Recommendations []types.Recommendation `json:"recommendations"`
}

// GenerationError indicates the report generation call failed or returned
// unusable data.
type GenerationError struct {
	Stage   string
	Message string
	Cause   error
}

// StageReportGeneration is the pipeline stage name carried by generation errors.
const StageReportGeneration = "report_generation"

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("report generation failed in %s: %s: %v", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("report generation failed in %s: %s", e.Stage, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Generator produces the final improvement report.
type Generator struct {
	client llm.Client
}

// NewGenerator creates a Generator backed by the given LLM client.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Generate produces a report from the breakdown and both structured records
// via one LLM call, then pads every list to at least five entries with
// lower-priority items derived from the deterministic match data.
func (g *Generator) Generate(ctx context.Context, breakdown types.ScoreBreakdown, matches []types.SkillMatch, job *types.JobRequirements, profile *types.CandidateProfile) (*Report, error) {
	breakdownJSON, err := json.Marshal(breakdown)
	if err != nil {
		return nil, &GenerationError{Stage: StageReportGeneration, Message: "failed to encode score breakdown", Cause: err}
	}
	matchesJSON, err := json.Marshal(matches)
	if err != nil {
		return nil, &GenerationError{Stage: StageReportGeneration, Message: "failed to encode skill matches", Cause: err}
	}
	jobJSON, err := json.Marshal(job)
	if err != nil {
		return nil, &GenerationError{Stage: StageReportGeneration, Message: "failed to encode job requirements", Cause: err}
	}
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, &GenerationError{Stage: StageReportGeneration, Message: "failed to encode candidate profile", Cause: err}
	}

	system := prompts.MustGet("recommend.json", "report-system")
	prompt := prompts.Format(prompts.MustGet("recommend.json", "report"), map[string]string{
		"ScoreBreakdown":   string(breakdownJSON),
		"SkillMatches":     string(matchesJSON),
		"JobRequirements":  string(jobJSON),
		"CandidateProfile": string(profileJSON),
	})

	response, err := g.client.Complete(ctx, system, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, &GenerationError{
			Stage:   StageReportGeneration,
			Message: "LLM call failed",
			Cause:   err,
		}
	}

	doc := []byte(llm.CleanJSONBlock(response))
	if err := schemas.Validate(schemas.Report, doc); err != nil {
		if inner := llm.ExtractJSONObject(string(doc)); inner != "" && inner != string(doc) {
			doc = []byte(inner)
			err = schemas.Validate(schemas.Report, doc)
		}
		if err != nil {
			return nil, &GenerationError{
				Stage:   StageReportGeneration,
				Message: "response does not match report schema",
				Cause:   err,
			}
		}
	}

	var report Report
	if err := json.Unmarshal(doc, &report); err != nil {
		return nil, &GenerationError{
			Stage:   StageReportGeneration,
			Message: "failed to parse JSON response",
			Cause:   err,
		}
	}

	normalizeReport(&report)
	padReport(&report, breakdown, matches, job, profile)

	return &report, nil
}

// normalizeReport coerces category and priority values onto the supported
// enums so a sloppy model response does not leak invalid values downstream.
func normalizeReport(report *Report) {
	for i := range report.Recommendations {
		rec := &report.Recommendations[i]
		rec.Category = normalizeCategory(rec.Category)
		rec.Priority = normalizePriority(rec.Priority)
	}
}

func normalizeCategory(category types.RecommendationCategory) types.RecommendationCategory {
	switch types.RecommendationCategory(strings.ToUpper(strings.TrimSpace(string(category)))) {
	case types.CategoryAddSkill:
		return types.CategoryAddSkill
	case types.CategoryEmphasizeExperience:
		return types.CategoryEmphasizeExperience
	case types.CategoryRemoveContent:
		return types.CategoryRemoveContent
	case types.CategoryRestructure:
		return types.CategoryRestructure
	default:
		return types.CategoryModifyContent
	}
}

func normalizePriority(priority types.RecommendationPriority) types.RecommendationPriority {
	switch types.RecommendationPriority(strings.ToUpper(strings.TrimSpace(string(priority)))) {
	case types.PriorityHigh:
		return types.PriorityHigh
	case types.PriorityLow:
		return types.PriorityLow
	default:
		return types.PriorityMedium
	}
}

// padReport fills the summary, strengths, gaps and recommendations up to
// their guaranteed minimums using the deterministic match data.
func padReport(report *Report, breakdown types.ScoreBreakdown, matches []types.SkillMatch, job *types.JobRequirements, profile *types.CandidateProfile) {
	if strings.TrimSpace(report.Summary) == "" {
		report.Summary = fmt.Sprintf(
			"The candidate scores %.1f (%s) against this role, with skill match at %.1f and experience alignment at %.1f.",
			breakdown.OverallScore, breakdown.LetterGrade,
			breakdown.SkillMatchScore, breakdown.ExperienceAlignmentScore,
		)
	}

	var matched, missing []string
	for _, m := range matches {
		if !m.Required {
			continue
		}
		if m.CandidateHas {
			matched = append(matched, m.SkillName)
		} else {
			missing = append(missing, m.SkillName)
		}
	}

	report.Strengths = padStrengths(report.Strengths, matched, breakdown, profile)
	report.Gaps = padGaps(report.Gaps, missing, breakdown, job, profile)
	report.Recommendations = padRecommendations(report.Recommendations, missing, job)
}

func padStrengths(strengths, matched []string, breakdown types.ScoreBreakdown, profile *types.CandidateProfile) []string {
	for _, skill := range matched {
		if len(strengths) >= minListLength {
			break
		}
		strengths = appendUnique(strengths, fmt.Sprintf("Has %s, a required skill for this role", skill))
	}
	generic := []string{
		fmt.Sprintf("%.1f years of professional experience across %d positions", profile.TotalYearsExperience, len(profile.WorkHistory)),
		fmt.Sprintf("Soft-skill signals scored %.0f/100 in the semantic review", breakdown.SoftSkillsScore),
		"Work history includes concrete, dated positions that can anchor achievement bullets",
		"Resume content is structured enough for automated screening to parse correctly",
		"Skill set shows a coherent technical focus rather than scattered one-off tools",
	}
	for _, item := range generic {
		if len(strengths) >= minListLength {
			break
		}
		strengths = appendUnique(strengths, item)
	}
	return strengths
}

func padGaps(gaps, missing []string, breakdown types.ScoreBreakdown, job *types.JobRequirements, profile *types.CandidateProfile) []string {
	for _, skill := range missing {
		if len(gaps) >= minListLength {
			break
		}
		gaps = appendUnique(gaps, fmt.Sprintf("Missing required skill: %s", skill))
	}
	var generic []string
	if profile.TotalYearsExperience < job.MinYearsExperience {
		generic = append(generic, fmt.Sprintf(
			"Total experience (%.1f years) is below the stated minimum of %.1f years",
			profile.TotalYearsExperience, job.MinYearsExperience,
		))
	}
	generic = append(generic,
		fmt.Sprintf("Semantic fit scored %.0f/100, leaving room to mirror the job's own vocabulary", breakdown.SemanticMatchScore),
		"Few quantified outcomes; numbers make achievements easier to verify",
		"Preferred skills from the posting are not visible in the resume",
		"Leadership and collaboration signals are thin compared to what the role asks for",
		"Resume does not call out domain context matching the employer's industry",
	)
	for _, item := range generic {
		if len(gaps) >= minListLength {
			break
		}
		gaps = appendUnique(gaps, item)
	}
	return gaps
}

func padRecommendations(recs []types.Recommendation, missing []string, job *types.JobRequirements) []types.Recommendation {
	for _, skill := range missing {
		if len(recs) >= minListLength {
			break
		}
		recs = append(recs, types.Recommendation{
			Category:  types.CategoryAddSkill,
			Priority:  types.PriorityHigh,
			Title:     fmt.Sprintf("Add %s to your skills", skill),
			Rationale: fmt.Sprintf("%s is listed as a required skill for %s; if you have any exposure to it, it must be visible.", skill, job.Title),
		})
	}
	generic := []types.Recommendation{
		{
			Category:  types.CategoryEmphasizeExperience,
			Priority:  types.PriorityLow,
			Title:     "Quantify your achievements",
			Rationale: "Concrete numbers (latency, revenue, team size) make experience claims credible and memorable.",
		},
		{
			Category:  types.CategoryModifyContent,
			Priority:  types.PriorityLow,
			Title:     "Mirror the job posting's terminology",
			Rationale: "Using the employer's own wording for skills and responsibilities improves both automated and human screening.",
		},
		{
			Category:  types.CategoryRestructure,
			Priority:  types.PriorityLow,
			Title:     "Lead with your most relevant experience",
			Rationale: "Reordering sections so role-relevant work appears first keeps the reviewer's attention on your strongest match.",
		},
		{
			Category:  types.CategoryModifyContent,
			Priority:  types.PriorityLow,
			Title:     "Tailor the professional summary to this role",
			Rationale: "A summary that names the target role and its core stack signals intent better than a generic objective.",
		},
		{
			Category:  types.CategoryRemoveContent,
			Priority:  types.PriorityLow,
			Title:     "Trim content unrelated to this application",
			Rationale: "Cutting unrelated detail makes the relevant experience denser and easier to find.",
		},
	}
	for _, rec := range generic {
		if len(recs) >= minListLength {
			break
		}
		recs = append(recs, rec)
	}
	return recs
}

func appendUnique(items []string, item string) []string {
	for _, existing := range items {
		if existing == item {
			return items
		}
	}
	return append(items, item)
}
