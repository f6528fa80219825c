package extraction

import "fmt"

// Pipeline stage names carried by extraction errors.
const (
	StageJobParsing = "job_parsing"
	StageCVParsing  = "cv_parsing"
)

// ExtractionError indicates the LLM response for an extraction stage was not
// parseable, or was missing mandatory fields. It wraps provider transport
// failures as well, so callers see a single error type per stage.
type ExtractionError struct {
	Stage   string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed in %s: %s: %v", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed in %s: %s", e.Stage, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
