package scoring

import "fmt"

// StageAnalyzing is the pipeline stage name carried by scoring errors.
const StageAnalyzing = "analyzing"

// ScoringError indicates the semantic validation call failed or returned
// unusable data. The orchestrator propagates it; scores are never silently
// substituted with zero.
type ScoringError struct {
	Stage   string
	Message string
	Cause   error
}

func (e *ScoringError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scoring failed in %s: %s: %v", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("scoring failed in %s: %s", e.Stage, e.Message)
}

func (e *ScoringError) Unwrap() error {
	return e.Cause
}
