package scoring

import (
	"github.com/jonathan/resume-match/internal/types"
)

// Component weights for the overall score. They sum to exactly 1.00.
const (
	WeightSkillMatch          = 0.40
	WeightExperienceAlignment = 0.20
	WeightSemanticMatch       = 0.25
	WeightSoftSkills          = 0.15
)

// Combine merges the deterministic and semantic component scores into a
// ScoreBreakdown with the fixed weighted overall score and its letter grade.
// Components are clamped to [0,100] before weighting.
func Combine(skillMatch, experience, semantic, softSkills float64) types.ScoreBreakdown {
	skillMatch = clamp(skillMatch)
	experience = clamp(experience)
	semantic = clamp(semantic)
	softSkills = clamp(softSkills)

	overall := WeightSkillMatch*skillMatch +
		WeightExperienceAlignment*experience +
		WeightSemanticMatch*semantic +
		WeightSoftSkills*softSkills

	return types.ScoreBreakdown{
		SkillMatchScore:          skillMatch,
		ExperienceAlignmentScore: experience,
		SemanticMatchScore:       semantic,
		SoftSkillsScore:          softSkills,
		OverallScore:             overall,
		LetterGrade:              LetterGradeFor(overall),
	}
}

// LetterGradeFor maps an overall score to its grade band. Boundaries are
// inclusive on the lower bound of each band, so 90.0 is an A and 89.99 a B+.
func LetterGradeFor(score float64) types.LetterGrade {
	switch {
	case score >= 95:
		return types.GradeAPlus
	case score >= 90:
		return types.GradeA
	case score >= 85:
		return types.GradeBPlus
	case score >= 80:
		return types.GradeB
	case score >= 75:
		return types.GradeCPlus
	case score >= 70:
		return types.GradeC
	case score >= 60:
		return types.GradeD
	default:
		return types.GradeF
	}
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
