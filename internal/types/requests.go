package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalyzeRequest is the request body for both the synchronous and streaming
// analyze endpoints.
type AnalyzeRequest struct {
	CVText  string `json:"cv_text" validate:"required,min=1"`
	JobText string `json:"job_text" validate:"required,min=1"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
