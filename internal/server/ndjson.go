package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// NDJSONWriter streams newline-delimited JSON frames, flushing after each one
// so clients see progress as it happens.
type NDJSONWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewNDJSONWriter prepares the response for NDJSON streaming.
func NewNDJSONWriter(w http.ResponseWriter) (*NDJSONWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	return &NDJSONWriter{w: w, flusher: flusher}, nil
}

// WriteFrame sends one JSON object followed by a newline.
func (n *NDJSONWriter) WriteFrame(data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := n.w.Write(append(payload, '\n')); err != nil {
		return err
	}
	n.flusher.Flush()
	return nil
}
