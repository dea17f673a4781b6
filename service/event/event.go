package event

import (
	"time"

	"github.com/viant/guitarfest/model"
)

// Event types.
const (
	TypeRunCompleted = "run.completed"
	TypeRunFailed    = "run.failed"
)

type Event[T any] struct {
	Type      string            `json:"type"`
	RunID     string            `json:"runId"`
	CreatedAt time.Time         `json:"createdAt"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Data      T                 `json:"data"`
}

// Notice is the payload of run events: the completed run, or the error that
// aborted it.
type Notice struct {
	Run   *model.Run `json:"run,omitempty"`
	Error string     `json:"error,omitempty"`
}

func NewEvent[T any](eventType, runID string, data T) *Event[T] {
	return &Event[T]{
		Type:     eventType,
		RunID:    runID,
		Metadata: make(map[string]string),
		Data:     data,
	}
}

// Completed returns the event announcing run.
func Completed(run *model.Run) *Event[Notice] {
	return NewEvent(TypeRunCompleted, run.ID, Notice{Run: run})
}

// Failed returns the event announcing that runID was aborted by err.
func Failed(runID string, err error) *Event[Notice] {
	return NewEvent(TypeRunFailed, runID, Notice{Error: err.Error()})
}
