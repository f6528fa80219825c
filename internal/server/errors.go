package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-match/internal/extraction"
	"github.com/jonathan/resume-match/internal/pipeline"
	"github.com/jonathan/resume-match/internal/recommend"
	"github.com/jonathan/resume-match/internal/scoring"
)

// HTTPStatus returns the appropriate HTTP status code for a pipeline error.
// Extraction failures map to 422 since they usually mean the supplied text
// could not be understood; scoring and generation failures are upstream LLM
// problems and map to 502.
func HTTPStatus(err error) int {
	var validationErr *pipeline.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	var extractionErr *extraction.ExtractionError
	if errors.As(err, &extractionErr) {
		return http.StatusUnprocessableEntity
	}
	var scoringErr *scoring.ScoringError
	if errors.As(err, &scoringErr) {
		return http.StatusBadGateway
	}
	var generationErr *recommend.GenerationError
	if errors.As(err, &generationErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
