package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-match/internal/db"
	"github.com/jonathan/resume-match/internal/pipeline"
	"github.com/jonathan/resume-match/internal/types"
)

// AnalyzeResponse is the response body for POST /analyze. AnalysisID is only
// set when persistence is configured; the pipeline itself never assigns IDs.
type AnalyzeResponse struct {
	AnalysisID string                `json:"analysis_id,omitempty"`
	Result     *types.AnalysisResult `json:"result"`
}

// ErrorResponse is the JSON error body. Stage names the pipeline stage that
// failed, when known, so clients can render stage-specific messages.
type ErrorResponse struct {
	Error string `json:"error"`
	Stage string `json:"stage,omitempty"`
}

// handleAnalyze runs one analysis to completion and returns the result.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeAnalyzeRequest(w, r)
	if !ok {
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), req.CVText, req.JobText)
	if err != nil {
		log.Printf("Analysis failed (stage %s): %v", pipeline.StageOf(err), err)
		s.jsonResponse(w, HTTPStatus(err), ErrorResponse{
			Error: err.Error(),
			Stage: pipeline.StageOf(err),
		})
		return
	}

	resp := AnalyzeResponse{Result: result}
	if s.db != nil {
		id, err := s.db.SaveAnalysis(r.Context(), result)
		if err != nil {
			// Persistence is best-effort; the result is still returned.
			log.Printf("Failed to persist analysis: %v", err)
		} else {
			resp.AnalysisID = id.String()
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleAnalyzeStream runs one analysis while streaming progress frames and
// the final result as newline-delimited JSON.
func (s *Server) handleAnalyzeStream(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeAnalyzeRequest(w, r)
	if !ok {
		return
	}

	stream, err := NewNDJSONWriter(w)
	if err != nil {
		s.jsonResponse(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	log.Printf("Starting streaming analysis...")

	for event := range s.analyzer.Stream(r.Context(), req.CVText, req.JobText) {
		if err := stream.WriteFrame(event); err != nil {
			// Client is gone; the pipeline stops at the next boundary
			// once the request context is cancelled.
			log.Printf("Error writing stream frame: %v", err)
			return
		}

		if event.Type == pipeline.EventResult && s.db != nil {
			if _, err := s.db.SaveAnalysis(r.Context(), event.Result); err != nil {
				log.Printf("Failed to persist analysis: %v", err)
			}
		}
		if event.Err != nil {
			log.Printf("Streaming analysis failed (stage %s): %v", pipeline.StageOf(event.Err), event.Err)
		}
	}

	log.Printf("Streaming analysis finished")
}

// handleGetAnalysis returns one stored analysis by ID.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.jsonResponse(w, http.StatusServiceUnavailable, ErrorResponse{Error: "persistence is not configured"})
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "invalid analysis ID format"})
		return
	}

	record, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		s.jsonResponse(w, http.StatusInternalServerError, ErrorResponse{Error: "database error: " + err.Error()})
		return
	}
	if record == nil {
		s.jsonResponse(w, http.StatusNotFound, ErrorResponse{Error: "analysis not found"})
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleListAnalyses returns recent analyses, newest first.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.jsonResponse(w, http.StatusServiceUnavailable, ErrorResponse{Error: "persistence is not configured"})
		return
	}

	summaries, err := s.db.ListAnalyses(r.Context(), 50)
	if err != nil {
		s.jsonResponse(w, http.StatusInternalServerError, ErrorResponse{Error: "database error: " + err.Error()})
		return
	}
	if summaries == nil {
		summaries = []db.AnalysisSummary{}
	}

	s.jsonResponse(w, http.StatusOK, summaries)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeAnalyzeRequest decodes and validates the shared analyze request body.
func (s *Server) decodeAnalyzeRequest(w http.ResponseWriter, r *http.Request) (*types.AnalyzeRequest, bool) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return nil, false
	}

	if err := req.Validate(); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return nil, false
	}

	return &req, true
}

// jsonResponse writes a JSON response with the given status code.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
