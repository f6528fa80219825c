package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-match/internal/types"
)

func TestWeightsSumToOne(t *testing.T) {
	sum := WeightSkillMatch + WeightExperienceAlignment + WeightSemanticMatch + WeightSoftSkills
	assert.InDelta(t, 1.0, sum, 0.0001)
}

func TestCombine_StrongCandidate(t *testing.T) {
	// 0.40*100 + 0.20*100 + 0.25*85 + 0.15*80 = 93.25
	breakdown := Combine(100, 100, 85, 80)

	assert.InDelta(t, 93.25, breakdown.OverallScore, 0.001)
	assert.Equal(t, types.GradeA, breakdown.LetterGrade)
	assert.Equal(t, 100.0, breakdown.SkillMatchScore)
	assert.Equal(t, 85.0, breakdown.SemanticMatchScore)
}

func TestCombine_WeakCandidate(t *testing.T) {
	// 0.40*33.33 + 0.20*60 + 0.25*50 + 0.15*60 = 45.33
	breakdown := Combine(33.33, 60, 50, 60)

	assert.InDelta(t, 45.33, breakdown.OverallScore, 0.01)
	assert.Equal(t, types.GradeF, breakdown.LetterGrade)
}

func TestCombine_ClampsComponents(t *testing.T) {
	breakdown := Combine(150, -20, 100, 100)

	assert.Equal(t, 100.0, breakdown.SkillMatchScore)
	assert.Equal(t, 0.0, breakdown.ExperienceAlignmentScore)
	assert.LessOrEqual(t, breakdown.OverallScore, 100.0)
}

func TestCombine_PerfectScore(t *testing.T) {
	breakdown := Combine(100, 100, 100, 100)

	assert.Equal(t, 100.0, breakdown.OverallScore)
	assert.Equal(t, types.GradeAPlus, breakdown.LetterGrade)
}

func TestLetterGradeFor_Bands(t *testing.T) {
	tests := []struct {
		score float64
		grade types.LetterGrade
	}{
		{100, types.GradeAPlus},
		{95, types.GradeAPlus},
		{94.99, types.GradeA},
		{90, types.GradeA},
		{89.99, types.GradeBPlus},
		{85, types.GradeBPlus},
		{80, types.GradeB},
		{75, types.GradeCPlus},
		{70, types.GradeC},
		{69.99, types.GradeD},
		{60, types.GradeD},
		{59.99, types.GradeF},
		{0, types.GradeF},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.grade, LetterGradeFor(tt.score), "score %.2f", tt.score)
	}
}
