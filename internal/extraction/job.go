// Package extraction turns free-text job descriptions and resumes into
// structured records using LLM extraction.
package extraction

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-match/internal/llm"
	"github.com/jonathan/resume-match/internal/prompts"
	"github.com/jonathan/resume-match/internal/schemas"
	"github.com/jonathan/resume-match/internal/types"
)

// JobExtractor extracts structured requirements from job description text.
type JobExtractor struct {
	client llm.Client
}

// NewJobExtractor creates a JobExtractor backed by the given LLM client.
func NewJobExtractor(client llm.Client) *JobExtractor {
	return &JobExtractor{client: client}
}

// Extract parses jobText into a JobRequirements record via one LLM call.
// Missing optional fields are filled with safe defaults; only a completely
// unparseable response or an absent required_skills list is fatal.
func (e *JobExtractor) Extract(ctx context.Context, jobText string) (*types.JobRequirements, error) {
	if jobText == "" {
		return nil, &ExtractionError{Stage: StageJobParsing, Message: "job text is empty"}
	}

	system := prompts.MustGet("extraction.json", "job-requirements-system")
	prompt := prompts.Format(prompts.MustGet("extraction.json", "job-requirements"), map[string]string{
		"JobText": jobText,
	})

	response, err := e.client.Complete(ctx, system, prompt, llm.TierStandard)
	if err != nil {
		return nil, &ExtractionError{
			Stage:   StageJobParsing,
			Message: "LLM call failed",
			Cause:   err,
		}
	}

	doc := []byte(llm.CleanJSONBlock(response))
	if err := schemas.Validate(schemas.JobRequirements, doc); err != nil {
		// Models occasionally wrap the payload in prose; retry once on the
		// embedded object before giving up.
		if inner := llm.ExtractJSONObject(string(doc)); inner != "" && inner != string(doc) {
			doc = []byte(inner)
			err = schemas.Validate(schemas.JobRequirements, doc)
		}
		if err != nil {
			return nil, &ExtractionError{
				Stage:   StageJobParsing,
				Message: "response does not match job requirements schema",
				Cause:   err,
			}
		}
	}

	var job types.JobRequirements
	if err := json.Unmarshal(doc, &job); err != nil {
		return nil, &ExtractionError{
			Stage:   StageJobParsing,
			Message: "failed to parse JSON response",
			Cause:   err,
		}
	}

	applyJobDefaults(&job)

	if len(job.RequiredSkills) == 0 {
		return nil, &ExtractionError{
			Stage:   StageJobParsing,
			Message: "no required skills could be extracted",
		}
	}

	return &job, nil
}

// applyJobDefaults normalizes skills and fills missing optional fields.
func applyJobDefaults(job *types.JobRequirements) {
	job.RequiredSkills = NormalizeSkills(job.RequiredSkills)
	job.PreferredSkills = NormalizeSkills(job.PreferredSkills)

	if job.PreferredSkills == nil {
		job.PreferredSkills = []string{}
	}
	if job.EducationRequirements == nil {
		job.EducationRequirements = []string{}
	}
	if job.Responsibilities == nil {
		job.Responsibilities = []string{}
	}
	if job.MinYearsExperience < 0 {
		job.MinYearsExperience = 0
	}
	job.SeniorityLevel = normalizeSeniority(job.SeniorityLevel)
}

// normalizeSeniority maps free-form seniority strings onto the supported
// enum, defaulting to mid.
func normalizeSeniority(level types.SeniorityLevel) types.SeniorityLevel {
	level = types.SeniorityLevel(strings.ToLower(strings.TrimSpace(string(level))))
	switch level {
	case types.SeniorityEntry, types.SeniorityMid, types.SenioritySenior,
		types.SeniorityLead, types.SeniorityPrincipal:
		return level
	default:
		return types.SeniorityMid
	}
}
