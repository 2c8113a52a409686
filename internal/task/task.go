package task

import "time"

// State enumerates the lifecycle states of a task. Transitions only move
// forward within a message round: submitted → working → completed|failed.
type State string

const (
	StateSubmitted State = "submitted"
	StateWorking   State = "working"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

// Terminal reports whether the state ends a message round.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}

// Turn is one conversational exchange: the inbound text and, once the
// round completes, the advisory text produced for it.
type Turn struct {
	Input    string
	Response string
	At       time.Time
}

// Task is one conversational unit tracked through the lifecycle. It is
// owned by the Store and mutated only through Store methods.
type Task struct {
	ID        string
	State     State
	Turns     []Turn
	Error     string // short human-readable message, set when State is failed
	CreatedAt time.Time
}

// clone returns a snapshot safe to hand out without the entry lock.
func (t *Task) clone() Task {
	out := *t
	out.Turns = make([]Turn, len(t.Turns))
	copy(out.Turns, t.Turns)
	return out
}
