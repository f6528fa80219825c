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

const validProfileJSON = `{
	"name": "Jane Doe",
	"email": "jane@example.com",
	"skills": ["python", "fastapi", "azure"],
	"work_history": [
		{"company": "Acme", "title": "Engineer", "duration_years": 4},
		{"company": "Initech", "title": "Developer", "duration_years": 2}
	],
	"education": ["BSc Computer Science"]
}`

func TestCandidateExtractor_Success(t *testing.T) {
	client := &MockLLMClient{
		CompleteFunc: func(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
			return validProfileJSON, nil
		},
	}

	profile, err := NewCandidateExtractor(client).Extract(context.Background(), "Jane Doe\nSenior Engineer...")

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, []string{"Python", "FastAPI", "Azure"}, profile.Skills)
	assert.Equal(t, 6.0, profile.TotalYearsExperience)
	assert.Len(t, profile.WorkHistory, 2)
}

func TestCandidateExtractor_EmptyInput(t *testing.T) {
	client := &MockLLMClient{}

	_, err := NewCandidateExtractor(client).Extract(context.Background(), "")

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, StageCVParsing, extractionErr.Stage)
}

func TestCandidateExtractor_LLMFailure(t *testing.T) {
	client := &MockLLMClient{
		CompleteFunc: func(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
			return "", errors.New("connection reset")
		},
	}

	_, err := NewCandidateExtractor(client).Extract(context.Background(), "resume text")

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, StageCVParsing, extractionErr.Stage)
}

func TestCandidateExtractor_NoSkills(t *testing.T) {
	client := &MockLLMClient{
		CompleteFunc: func(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
			return `{"name": "Jane Doe", "skills": []}`, nil
		},
	}

	_, err := NewCandidateExtractor(client).Extract(context.Background(), "resume text")

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Contains(t, extractionErr.Message, "skills")
}

func TestCandidateExtractor_DefaultsApplied(t *testing.T) {
	client := &MockLLMClient{
		CompleteFunc: func(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
			return `{"skills": ["go"]}`, nil
		},
	}

	profile, err := NewCandidateExtractor(client).Extract(context.Background(), "resume text")

	require.NoError(t, err)
	assert.NotNil(t, profile.WorkHistory)
	assert.NotNil(t, profile.Education)
	assert.NotNil(t, profile.Certifications)
	assert.NotNil(t, profile.Projects)
	assert.Equal(t, 0.0, profile.TotalYearsExperience)
}

func TestTotalYears_SumsDurations(t *testing.T) {
	history := []types.WorkExperience{
		{Company: "A", DurationYears: 2.5},
		{Company: "B", DurationYears: 1.5},
	}
	assert.Equal(t, 4.0, TotalYears(history))
}

func TestTotalYears_IgnoresNegativeDurations(t *testing.T) {
	history := []types.WorkExperience{
		{Company: "A", DurationYears: 3},
		{Company: "B", DurationYears: -1},
	}
	assert.Equal(t, 3.0, TotalYears(history))
}

func TestTotalYears_ConcurrentPositionsCountedTwice(t *testing.T) {
	// Overlapping ranges are summed, not merged.
	history := []types.WorkExperience{
		{Company: "A", StartDate: "2020-01", EndDate: "2022-01", DurationYears: 2},
		{Company: "B", StartDate: "2020-06", EndDate: "2022-06", DurationYears: 2},
	}
	assert.Equal(t, 4.0, TotalYears(history))
}

func TestTotalYears_Empty(t *testing.T) {
	assert.Equal(t, 0.0, TotalYears(nil))
	assert.Equal(t, 0.0, TotalYears([]types.WorkExperience{}))
}
