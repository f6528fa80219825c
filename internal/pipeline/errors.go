package pipeline

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-match/internal/extraction"
	"github.com/jonathan/resume-match/internal/recommend"
	"github.com/jonathan/resume-match/internal/scoring"
)

// ValidationError indicates the caller supplied empty or invalid input. It is
// raised before any LLM call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
}

// StageOf returns the pipeline stage name an error originated from, or the
// empty string for errors outside the stage taxonomy.
func StageOf(err error) string {
	var extractionErr *extraction.ExtractionError
	if errors.As(err, &extractionErr) {
		return extractionErr.Stage
	}
	var scoringErr *scoring.ScoringError
	if errors.As(err, &scoringErr) {
		return scoringErr.Stage
	}
	var generationErr *recommend.GenerationError
	if errors.As(err, &generationErr) {
		return generationErr.Stage
	}
	return ""
}
