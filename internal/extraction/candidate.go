package extraction

import (
	"context"
	"encoding/json"

	"github.com/jonathan/resume-match/internal/llm"
	"github.com/jonathan/resume-match/internal/prompts"
	"github.com/jonathan/resume-match/internal/schemas"
	"github.com/jonathan/resume-match/internal/types"
)

// CandidateExtractor extracts a structured profile from resume text.
type CandidateExtractor struct {
	client llm.Client
}

// NewCandidateExtractor creates a CandidateExtractor backed by the given LLM client.
func NewCandidateExtractor(client llm.Client) *CandidateExtractor {
	return &CandidateExtractor{client: client}
}

// Extract parses cvText into a CandidateProfile via one LLM call. Total
// experience is the sum of duration_years over the work history; overlapping
// employment ranges are not deduplicated, so concurrent positions are counted
// twice. This matches the behavior the scoring formulas were tuned against and
// is documented as a known limitation.
func (e *CandidateExtractor) Extract(ctx context.Context, cvText string) (*types.CandidateProfile, error) {
	if cvText == "" {
		return nil, &ExtractionError{Stage: StageCVParsing, Message: "resume text is empty"}
	}

	system := prompts.MustGet("extraction.json", "candidate-profile-system")
	prompt := prompts.Format(prompts.MustGet("extraction.json", "candidate-profile"), map[string]string{
		"CVText": cvText,
	})

	response, err := e.client.Complete(ctx, system, prompt, llm.TierStandard)
	if err != nil {
		return nil, &ExtractionError{
			Stage:   StageCVParsing,
			Message: "LLM call failed",
			Cause:   err,
		}
	}

	doc := []byte(llm.CleanJSONBlock(response))
	if err := schemas.Validate(schemas.CandidateProfile, doc); err != nil {
		if inner := llm.ExtractJSONObject(string(doc)); inner != "" && inner != string(doc) {
			doc = []byte(inner)
			err = schemas.Validate(schemas.CandidateProfile, doc)
		}
		if err != nil {
			return nil, &ExtractionError{
				Stage:   StageCVParsing,
				Message: "response does not match candidate profile schema",
				Cause:   err,
			}
		}
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(doc, &profile); err != nil {
		return nil, &ExtractionError{
			Stage:   StageCVParsing,
			Message: "failed to parse JSON response",
			Cause:   err,
		}
	}

	applyProfileDefaults(&profile)

	if len(profile.Skills) == 0 {
		return nil, &ExtractionError{
			Stage:   StageCVParsing,
			Message: "no skills could be extracted from the resume",
		}
	}

	return &profile, nil
}

// applyProfileDefaults normalizes skills, fills missing optional fields and
// derives total experience from the work history.
func applyProfileDefaults(profile *types.CandidateProfile) {
	profile.Skills = NormalizeSkills(profile.Skills)

	if profile.WorkHistory == nil {
		profile.WorkHistory = []types.WorkExperience{}
	}
	if profile.Education == nil {
		profile.Education = []string{}
	}
	if profile.Certifications == nil {
		profile.Certifications = []string{}
	}
	if profile.Projects == nil {
		profile.Projects = []string{}
	}

	profile.TotalYearsExperience = TotalYears(profile.WorkHistory)
}

// TotalYears sums position durations across a work history. Negative
// durations are ignored; overlaps are not merged.
func TotalYears(history []types.WorkExperience) float64 {
	total := 0.0
	for _, entry := range history {
		if entry.DurationYears > 0 {
			total += entry.DurationYears
		}
	}
	return total
}
