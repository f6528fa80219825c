package scoring

import (
	"context"
	"encoding/json"

	"github.com/jonathan/resume-match/internal/llm"
	"github.com/jonathan/resume-match/internal/prompts"
	"github.com/jonathan/resume-match/internal/schemas"
	"github.com/jonathan/resume-match/internal/types"
)

// SemanticAssessment is the LLM's judgment of fit beyond keyword overlap.
type SemanticAssessment struct {
	SemanticMatchScore float64 `json:"semantic_match_score"`
	SoftSkillsScore    float64 `json:"soft_skills_score"`
	Reasoning          string  `json:"reasoning"`
}

// SemanticValidator judges transferable-skill equivalence and soft-skill
// signals that deterministic matching cannot capture.
type SemanticValidator struct {
	client llm.Client
}

// NewSemanticValidator creates a SemanticValidator backed by the given LLM client.
func NewSemanticValidator(client llm.Client) *SemanticValidator {
	return &SemanticValidator{client: client}
}

// Validate judges the candidate against the job using both the structured
// records and the original text, via one LLM call. Scores are clamped to
// [0,100]; an unusable response fails with a ScoringError.
func (v *SemanticValidator) Validate(ctx context.Context, jobText, cvText string, job *types.JobRequirements, profile *types.CandidateProfile) (*SemanticAssessment, error) {
	jobJSON, err := json.Marshal(job)
	if err != nil {
		return nil, &ScoringError{Stage: StageAnalyzing, Message: "failed to encode job requirements", Cause: err}
	}
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, &ScoringError{Stage: StageAnalyzing, Message: "failed to encode candidate profile", Cause: err}
	}

	system := prompts.MustGet("scoring.json", "semantic-validation-system")
	prompt := prompts.Format(prompts.MustGet("scoring.json", "semantic-validation"), map[string]string{
		"JobRequirements":  string(jobJSON),
		"CandidateProfile": string(profileJSON),
		"JobText":          jobText,
		"CVText":           cvText,
	})

	response, err := v.client.Complete(ctx, system, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, &ScoringError{
			Stage:   StageAnalyzing,
			Message: "LLM call failed",
			Cause:   err,
		}
	}

	doc := []byte(llm.CleanJSONBlock(response))
	if err := schemas.Validate(schemas.SemanticValidation, doc); err != nil {
		if inner := llm.ExtractJSONObject(string(doc)); inner != "" && inner != string(doc) {
			doc = []byte(inner)
			err = schemas.Validate(schemas.SemanticValidation, doc)
		}
		if err != nil {
			return nil, &ScoringError{
				Stage:   StageAnalyzing,
				Message: "response does not match semantic validation schema",
				Cause:   err,
			}
		}
	}

	var assessment SemanticAssessment
	if err := json.Unmarshal(doc, &assessment); err != nil {
		return nil, &ScoringError{
			Stage:   StageAnalyzing,
			Message: "failed to parse JSON response",
			Cause:   err,
		}
	}

	assessment.SemanticMatchScore = clamp(assessment.SemanticMatchScore)
	assessment.SoftSkillsScore = clamp(assessment.SoftSkillsScore)

	return &assessment, nil
}
