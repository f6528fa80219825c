package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-match/internal/llm"
	"github.com/jonathan/resume-match/internal/types"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	CompleteFunc func(ctx context.Context, system, prompt string, tier llm.ModelTier) (string, error)
}

func (m *MockLLMClient) Complete(ctx context.Context, system, prompt string, tier llm.ModelTier) (string, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, system, prompt, tier)
	}
	return "{}", nil
}

func (m *MockLLMClient) Close() error {
	return nil
}

func generatorFixtures() (types.ScoreBreakdown, []types.SkillMatch, *types.JobRequirements, *types.CandidateProfile) {
	breakdown := types.ScoreBreakdown{
		SkillMatchScore:          66.67,
		ExperienceAlignmentScore: 100,
		SemanticMatchScore:       70,
		SoftSkillsScore:          65,
		OverallScore:             73.92,
		LetterGrade:              types.GradeC,
	}
	matches := []types.SkillMatch{
		{SkillName: "Python", Required: true, CandidateHas: true, MatchScore: 1},
		{SkillName: "FastAPI", Required: true, CandidateHas: true, MatchScore: 1},
		{SkillName: "Azure", Required: true, CandidateHas: false, MatchScore: 0},
	}
	job := &types.JobRequirements{
		Title:              "Backend Engineer",
		RequiredSkills:     []string{"Python", "FastAPI", "Azure"},
		MinYearsExperience: 3,
	}
	profile := &types.CandidateProfile{
		Name:                 "Jane Doe",
		Skills:               []string{"Python", "FastAPI"},
		TotalYearsExperience: 5,
	}
	return breakdown, matches, job, profile
}

func TestGenerator_Success(t *testing.T) {
	client := &MockLLMClient{
		CompleteFunc: func(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
			return `{
				"summary": "Solid match with one skill gap.",
				"strengths": ["Knows Python"],
				"gaps": ["No Azure experience"],
				"recommendations": [
					{"category": "ADD_SKILL", "priority": "HIGH", "title": "Add Azure", "rationale": "Required for the role."}
				]
			}`, nil
		},
	}
	breakdown, matches, job, profile := generatorFixtures()

	report, err := NewGenerator(client).Generate(context.Background(), breakdown, matches, job, profile)

	require.NoError(t, err)
	assert.Equal(t, "Solid match with one skill gap.", report.Summary)
	assert.Equal(t, "Knows Python", report.Strengths[0])
	assert.Equal(t, types.CategoryAddSkill, report.Recommendations[0].Category)
	assert.Equal(t, types.PriorityHigh, report.Recommendations[0].Priority)
}

func TestGenerator_PadsListsToMinimum(t *testing.T) {
	client := &MockLLMClient{
		CompleteFunc: func(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
			return `{"summary": "Short report.", "strengths": ["One"], "gaps": [], "recommendations": []}`, nil
		},
	}
	breakdown, matches, job, profile := generatorFixtures()

	report, err := NewGenerator(client).Generate(context.Background(), breakdown, matches, job, profile)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(report.Strengths), 5)
	assert.GreaterOrEqual(t, len(report.Gaps), 5)
	assert.GreaterOrEqual(t, len(report.Recommendations), 5)
}

func TestGenerator_EmptyResponsePadded(t *testing.T) {
	client := &MockLLMClient{
		CompleteFunc: func(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
			return `{}`, nil
		},
	}
	breakdown, matches, job, profile := generatorFixtures()

	report, err := NewGenerator(client).Generate(context.Background(), breakdown, matches, job, profile)

	require.NoError(t, err)
	assert.NotEmpty(t, report.Summary)
	assert.Contains(t, report.Summary, "73.9")
	assert.GreaterOrEqual(t, len(report.Strengths), 5)
	assert.GreaterOrEqual(t, len(report.Gaps), 5)
	assert.GreaterOrEqual(t, len(report.Recommendations), 5)
}

func TestGenerator_MissingSkillsBecomeHighPriorityRecommendations(t *testing.T) {
	client := &MockLLMClient{
		CompleteFunc: func(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
			return `{}`, nil
		},
	}
	breakdown, matches, job, profile := generatorFixtures()

	report, err := NewGenerator(client).Generate(context.Background(), breakdown, matches, job, profile)

	require.NoError(t, err)
	first := report.Recommendations[0]
	assert.Equal(t, types.CategoryAddSkill, first.Category)
	assert.Equal(t, types.PriorityHigh, first.Priority)
	assert.Contains(t, first.Title, "Azure")
}

func TestGenerator_NormalizesInvalidEnums(t *testing.T) {
	client := &MockLLMClient{
		CompleteFunc: func(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
			return `{
				"summary": "ok",
				"recommendations": [
					{"category": "add_skill", "priority": "high", "title": "a", "rationale": "b"},
					{"category": "SOMETHING_ELSE", "priority": "URGENT", "title": "c", "rationale": "d"}
				]
			}`, nil
		},
	}
	breakdown, matches, job, profile := generatorFixtures()

	report, err := NewGenerator(client).Generate(context.Background(), breakdown, matches, job, profile)

	require.NoError(t, err)
	assert.Equal(t, types.CategoryAddSkill, report.Recommendations[0].Category)
	assert.Equal(t, types.PriorityHigh, report.Recommendations[0].Priority)
	assert.Equal(t, types.CategoryModifyContent, report.Recommendations[1].Category)
	assert.Equal(t, types.PriorityMedium, report.Recommendations[1].Priority)
}

func TestGenerator_LLMFailure(t *testing.T) {
	client := &MockLLMClient{
		CompleteFunc: func(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
			return "", errors.New("model unavailable")
		},
	}
	breakdown, matches, job, profile := generatorFixtures()

	_, err := NewGenerator(client).Generate(context.Background(), breakdown, matches, job, profile)

	var generationErr *GenerationError
	require.ErrorAs(t, err, &generationErr)
	assert.Equal(t, StageReportGeneration, generationErr.Stage)
}

func TestGenerator_UnparseableResponse(t *testing.T) {
	client := &MockLLMClient{
		CompleteFunc: func(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
			return "I could not produce a report, sorry.", nil
		},
	}
	breakdown, matches, job, profile := generatorFixtures()

	_, err := NewGenerator(client).Generate(context.Background(), breakdown, matches, job, profile)

	var generationErr *GenerationError
	require.ErrorAs(t, err, &generationErr)
	assert.Equal(t, StageReportGeneration, generationErr.Stage)
}
