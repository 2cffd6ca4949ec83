package task

import "time"

type State string

// States follow the legacy polling contract, so clients keep comparing
// against the same strings.
const (
	StatePending State = "PENDING"
	StateStarted State = "STARTED"
	StateRetry   State = "RETRY"
	StateSuccess State = "SUCCESS"
	StateFailure State = "FAILURE"
)

func (s State) Finished() bool {
	return s == StateSuccess || s == StateFailure
}

// Task is one queued background job and its latest status.
type Task struct {
	ID           string
	Name         string
	State        State
	Payload      map[string]any
	Result       map[string]any
	ErrorMessage string
	Attempts     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	FinishedAt   *time.Time
}
