// Package types provides type definitions for structured data used throughout the resume-match system.
package types

// SeniorityLevel classifies the seniority of a role.
type SeniorityLevel string

// Supported seniority levels, from least to most senior.
const (
	SeniorityEntry     SeniorityLevel = "entry"
	SeniorityMid       SeniorityLevel = "mid"
	SenioritySenior    SeniorityLevel = "senior"
	SeniorityLead      SeniorityLevel = "lead"
	SeniorityPrincipal SeniorityLevel = "principal"
)

// JobRequirements is the structured form of a free-text job description.
// Skill names are normalized before any downstream matching; the record is
// immutable once extraction completes.
type JobRequirements struct {
	Title                 string         `json:"title"`
	Company               string         `json:"company,omitempty"`
	Location              string         `json:"location,omitempty"`
	RequiredSkills        []string       `json:"required_skills"`
	PreferredSkills       []string       `json:"preferred_skills,omitempty"`
	MinYearsExperience    float64        `json:"min_years_experience"`
	EducationRequirements []string       `json:"education_requirements,omitempty"`
	Responsibilities      []string       `json:"responsibilities,omitempty"`
	SeniorityLevel        SeniorityLevel `json:"seniority_level"`
}

// WorkExperience is a single entry in a candidate's work history.
type WorkExperience struct {
	Company          string   `json:"company"`
	Title            string   `json:"title"`
	StartDate        string   `json:"start_date,omitempty"`
	EndDate          string   `json:"end_date,omitempty"`
	DurationYears    float64  `json:"duration_years"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// CandidateProfile is the structured form of a free-text resume. Skill names
// use the same normalization as JobRequirements so string equality is
// meaningful during matching.
type CandidateProfile struct {
	Name                 string           `json:"name"`
	Email                string           `json:"email,omitempty"`
	Phone                string           `json:"phone,omitempty"`
	Location             string           `json:"location,omitempty"`
	Skills               []string         `json:"skills"`
	TotalYearsExperience float64          `json:"total_years_experience"`
	WorkHistory          []WorkExperience `json:"work_history,omitempty"`
	Education            []string         `json:"education,omitempty"`
	Certifications       []string         `json:"certifications,omitempty"`
	Projects             []string         `json:"projects,omitempty"`
}

// SkillMatch records whether the candidate has one skill the job asks for.
// MatchScore is 1.0 for an exact normalized match and 0.0 otherwise.
type SkillMatch struct {
	SkillName        string  `json:"skill_name"`
	Required         bool    `json:"required"`
	CandidateHas     bool    `json:"candidate_has"`
	ProficiencyLevel string  `json:"proficiency_level,omitempty"`
	YearsExperience  float64 `json:"years_experience,omitempty"`
	MatchScore       float64 `json:"match_score"`
}

// LetterGrade is the academic-style band an overall score falls into.
type LetterGrade string

// Letter grade bands. Each threshold is inclusive on its lower bound.
const (
	GradeAPlus LetterGrade = "A+"
	GradeA     LetterGrade = "A"
	GradeBPlus LetterGrade = "B+"
	GradeB     LetterGrade = "B"
	GradeCPlus LetterGrade = "C+"
	GradeC     LetterGrade = "C"
	GradeD     LetterGrade = "D"
	GradeF     LetterGrade = "F"
)

// ScoreBreakdown holds the four component scores (each 0-100), the weighted
// overall score, and its letter grade.
type ScoreBreakdown struct {
	SkillMatchScore          float64     `json:"skill_match_score"`
	ExperienceAlignmentScore float64     `json:"experience_alignment_score"`
	SemanticMatchScore       float64     `json:"semantic_match_score"`
	SoftSkillsScore          float64     `json:"soft_skills_score"`
	OverallScore             float64     `json:"overall_score"`
	LetterGrade              LetterGrade `json:"letter_grade"`
}

// RecommendationCategory classifies what kind of resume change is suggested.
type RecommendationCategory string

// Recommendation categories.
const (
	CategoryAddSkill            RecommendationCategory = "ADD_SKILL"
	CategoryModifyContent       RecommendationCategory = "MODIFY_CONTENT"
	CategoryEmphasizeExperience RecommendationCategory = "EMPHASIZE_EXPERIENCE"
	CategoryRemoveContent       RecommendationCategory = "REMOVE_CONTENT"
	CategoryRestructure         RecommendationCategory = "RESTRUCTURE"
)

// RecommendationPriority orders recommendations by urgency.
type RecommendationPriority string

// Recommendation priorities.
const (
	PriorityHigh   RecommendationPriority = "HIGH"
	PriorityMedium RecommendationPriority = "MEDIUM"
	PriorityLow    RecommendationPriority = "LOW"
)

// Recommendation is one actionable suggestion for improving the resume.
type Recommendation struct {
	Category  RecommendationCategory `json:"category"`
	Priority  RecommendationPriority `json:"priority"`
	Title     string                 `json:"title"`
	Rationale string                 `json:"rationale"`
	Example   string                 `json:"example,omitempty"`
}

// AnalysisResult is the final output of one analysis run. Strengths, gaps and
// recommendations each contain at least five entries; the generator pads with
// lower-priority items when the LLM returns fewer.
type AnalysisResult struct {
	OverallScore    float64          `json:"overall_score"`
	LetterGrade     LetterGrade      `json:"letter_grade"`
	ScoreBreakdown  ScoreBreakdown   `json:"score_breakdown"`
	SkillMatches    []SkillMatch     `json:"skill_matches"`
	Strengths       []string         `json:"strengths"`
	Gaps            []string         `json:"gaps"`
	Recommendations []Recommendation `json:"recommendations"`
	Summary         string           `json:"summary"`
}

// ProgressStatus is the state of one pipeline step in a progress event.
type ProgressStatus string

// Progress statuses.
const (
	StatusInProgress ProgressStatus = "in_progress"
	StatusCompleted  ProgressStatus = "completed"
	StatusFailed     ProgressStatus = "failed"
)

// ProgressEvent reports the start, completion or failure of one pipeline step.
type ProgressEvent struct {
	Step       int            `json:"step"`
	TotalSteps int            `json:"total_steps"`
	Message    string         `json:"message"`
	Status     ProgressStatus `json:"status"`
}
