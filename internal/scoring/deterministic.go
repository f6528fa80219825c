// Package scoring computes the hybrid match score: deterministic keyword and
// experience comparison combined with LLM-based semantic judgment.
package scoring

import (
	"github.com/jonathan/resume-match/internal/extraction"
	"github.com/jonathan/resume-match/internal/types"
)

// SkillMatchScore compares required and preferred job skills against the
// candidate's normalized skill set. Matching is exact on normalized names;
// every match score is either 0.0 or 1.0. Preferred skills are recorded but
// do not affect the numeric score. A job with no required skills scores 100.
func SkillMatchScore(job *types.JobRequirements, profile *types.CandidateProfile) (float64, []types.SkillMatch) {
	candidateHas := make(map[string]bool, len(profile.Skills))
	for _, skill := range profile.Skills {
		candidateHas[extraction.NormalizeSkillName(skill)] = true
	}

	matches := make([]types.SkillMatch, 0, len(job.RequiredSkills)+len(job.PreferredSkills))
	matchedRequired := 0

	for _, skill := range job.RequiredSkills {
		name := extraction.NormalizeSkillName(skill)
		has := candidateHas[name]
		if has {
			matchedRequired++
		}
		matches = append(matches, types.SkillMatch{
			SkillName:    name,
			Required:     true,
			CandidateHas: has,
			MatchScore:   boolScore(has),
		})
	}

	for _, skill := range job.PreferredSkills {
		name := extraction.NormalizeSkillName(skill)
		has := candidateHas[name]
		matches = append(matches, types.SkillMatch{
			SkillName:    name,
			Required:     false,
			CandidateHas: has,
			MatchScore:   boolScore(has),
		})
	}

	if len(job.RequiredSkills) == 0 {
		return 100, matches
	}

	score := 100 * float64(matchedRequired) / float64(len(job.RequiredSkills))
	return score, matches
}

// ExperienceAlignment scores the candidate's total experience against the
// job's minimum. Meeting the minimum scores 100, with a mild penalty (floored
// at 80) when experience exceeds the requirement by more than 2x. Below the
// minimum the score scales linearly down to 0 at 0 years.
func ExperienceAlignment(job *types.JobRequirements, profile *types.CandidateProfile) float64 {
	required := job.MinYearsExperience
	actual := profile.TotalYearsExperience

	if required <= 0 {
		return 100
	}

	if actual >= required {
		ratio := actual / required
		if ratio <= 2 {
			return 100
		}
		// Overqualification: 10 points per multiple of the requirement
		// beyond 2x, floored at 80.
		score := 100 - (ratio-2)*10
		if score < 80 {
			return 80
		}
		return score
	}

	score := 100 * actual / required
	if score < 0 {
		return 0
	}
	return score
}

func boolScore(has bool) float64 {
	if has {
		return 1.0
	}
	return 0.0
}
