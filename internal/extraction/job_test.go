package extraction

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
	CloseFunc    func() error
}

func (m *MockLLMClient) Complete(ctx context.Context, system, prompt string, tier llm.ModelTier) (string, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, system, prompt, tier)
	}
	return "{}", nil
}

func (m *MockLLMClient) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

const validJobJSON = `{
	"title": "Senior Backend Engineer",
	"company": "TechCorp",
	"required_skills": ["python", "fastapi", "azure"],
	"preferred_skills": ["docker"],
	"min_years_experience": 5,
	"seniority_level": "senior"
}`

func TestJobExtractor_Success(t *testing.T) {
	client := &MockLLMClient{
		CompleteFunc: func(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
			return validJobJSON, nil
		},
	}

	job, err := NewJobExtractor(client).Extract(context.Background(), "We are hiring a senior backend engineer...")

	require.NoError(t, err)
	assert.Equal(t, "Senior Backend Engineer", job.Title)
	assert.Equal(t, []string{"Python", "FastAPI", "Azure"}, job.RequiredSkills)
	assert.Equal(t, []string{"Docker"}, job.PreferredSkills)
	assert.Equal(t, 5.0, job.MinYearsExperience)
	assert.Equal(t, types.SenioritySenior, job.SeniorityLevel)
}

func TestJobExtractor_MarkdownWrappedResponse(t *testing.T) {
	client := &MockLLMClient{
		CompleteFunc: func(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
			return "```json\n" + validJobJSON + "\n```", nil
		},
	}

	job, err := NewJobExtractor(client).Extract(context.Background(), "job description")

	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "FastAPI", "Azure"}, job.RequiredSkills)
}

func TestJobExtractor_ProseWrappedResponse(t *testing.T) {
	client := &MockLLMClient{
		CompleteFunc: func(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
			return "Here is the extraction:\n" + validJobJSON + "\nLet me know if you need more.", nil
		},
	}

	job, err := NewJobExtractor(client).Extract(context.Background(), "job description")

	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "FastAPI", "Azure"}, job.RequiredSkills)
}

func TestJobExtractor_EmptyInput(t *testing.T) {
	client := &MockLLMClient{}

	_, err := NewJobExtractor(client).Extract(context.Background(), "")

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, StageJobParsing, extractionErr.Stage)
}

func TestJobExtractor_LLMFailure(t *testing.T) {
	client := &MockLLMClient{
		CompleteFunc: func(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
			return "", errors.New("rate limit exceeded")
		},
	}

	_, err := NewJobExtractor(client).Extract(context.Background(), "job description")

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, StageJobParsing, extractionErr.Stage)
	assert.ErrorContains(t, err, "rate limit exceeded")
}

func TestJobExtractor_InvalidJSON(t *testing.T) {
	client := &MockLLMClient{
		CompleteFunc: func(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
			return "this is not json at all", nil
		},
	}

	_, err := NewJobExtractor(client).Extract(context.Background(), "job description")

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, StageJobParsing, extractionErr.Stage)
}

func TestJobExtractor_MissingRequiredSkills(t *testing.T) {
	client := &MockLLMClient{
		CompleteFunc: func(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
			return `{"title": "Engineer", "required_skills": []}`, nil
		},
	}

	_, err := NewJobExtractor(client).Extract(context.Background(), "job description")

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Contains(t, extractionErr.Message, "required skills")
}

func TestJobExtractor_DefaultsApplied(t *testing.T) {
	client := &MockLLMClient{
		CompleteFunc: func(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
			return `{"title": "Engineer", "required_skills": ["go"], "min_years_experience": -3, "seniority_level": "Rockstar"}`, nil
		},
	}

	job, err := NewJobExtractor(client).Extract(context.Background(), "job description")

	require.NoError(t, err)
	assert.Equal(t, 0.0, job.MinYearsExperience)
	assert.Equal(t, types.SeniorityMid, job.SeniorityLevel)
	assert.NotNil(t, job.PreferredSkills)
	assert.NotNil(t, job.EducationRequirements)
	assert.NotNil(t, job.Responsibilities)
}

func TestJobExtractor_SeniorityCaseInsensitive(t *testing.T) {
	client := &MockLLMClient{
		CompleteFunc: func(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
			return `{"required_skills": ["go"], "seniority_level": "Senior"}`, nil
		},
	}

	job, err := NewJobExtractor(client).Extract(context.Background(), "job description")

	require.NoError(t, err)
	assert.Equal(t, types.SenioritySenior, job.SeniorityLevel)
}
