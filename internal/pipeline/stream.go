package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-match/internal/types"
)

// EventType discriminates the items of a streaming run.
type EventType string

// Event types on the wire.
const (
	EventProgress EventType = "progress"
	EventResult   EventType = "result"
)

// Event is one item of a streaming analysis: either a progress update or the
// terminal result. Err is set alongside the terminal failed progress event so
// consumers can inspect the typed error; it is never serialized.
type Event struct {
	Type     EventType
	Progress *types.ProgressEvent
	Result   *types.AnalysisResult
	Err      error
}

// progressFrame and resultFrame are the wire shapes of the streaming
// protocol. Field names are part of the de facto protocol and must not
// change.
type progressFrame struct {
	Type       EventType            `json:"type"`
	Step       int                  `json:"step"`
	TotalSteps int                  `json:"total_steps"`
	Message    string               `json:"message"`
	Status     types.ProgressStatus `json:"status"`
}

type resultFrame struct {
	Type EventType             `json:"type"`
	Data *types.AnalysisResult `json:"data"`
}

// MarshalJSON encodes the event in the streaming wire format.
func (e Event) MarshalJSON() ([]byte, error) {
	switch e.Type {
	case EventProgress:
		if e.Progress == nil {
			return nil, fmt.Errorf("progress event has no progress payload")
		}
		return json.Marshal(progressFrame{
			Type:       EventProgress,
			Step:       e.Progress.Step,
			TotalSteps: e.Progress.TotalSteps,
			Message:    e.Progress.Message,
			Status:     e.Progress.Status,
		})
	case EventResult:
		if e.Result == nil {
			return nil, fmt.Errorf("result event has no result payload")
		}
		return json.Marshal(resultFrame{Type: EventResult, Data: e.Result})
	default:
		return nil, fmt.Errorf("unknown event type %q", e.Type)
	}
}

// Stream runs the pipeline and delivers progress events and the final result
// on the returned channel, strictly in pipeline order. Each step yields an
// in-progress event before it runs and a completed event after; a successful
// run ends with a single result event. On failure the stream ends with a
// failed progress event for the failing step and no result. The channel is
// closed after the terminal item. Cancelling ctx stops the pipeline at the
// next stage boundary or channel send.
func (a *Analyzer) Stream(ctx context.Context, cvText, jobText string) <-chan Event {
	events := make(chan Event)

	go func() {
		defer close(events)

		send := func(event Event) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case events <- event:
				return nil
			}
		}

		result, failedStep, err := a.run(ctx, cvText, jobText, func(progress types.ProgressEvent) error {
			return send(Event{Type: EventProgress, Progress: &progress})
		})
		if err != nil {
			// A cancelled consumer is gone; do not attempt a final send.
			if ctx.Err() != nil {
				return
			}
			_ = send(Event{
				Type: EventProgress,
				Progress: &types.ProgressEvent{
					Step:       failedStep,
					TotalSteps: totalSteps,
					Message:    err.Error(),
					Status:     types.StatusFailed,
				},
				Err: err,
			})
			return
		}

		_ = send(Event{Type: EventResult, Result: result})
	}()

	return events
}
