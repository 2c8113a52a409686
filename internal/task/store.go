package task

import (
	"sync"
	"time"

	"github.com/highlanderkev/investing-agents/pkg/errors"
)

// Store is the process-wide in-memory task map. Every entry carries its
// own mutex so read-modify-write cycles are atomic per task id while
// unrelated tasks never serialize against each other. Tasks live for the
// process lifetime; nothing is ever deleted.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	task Task
}

// NewStore creates an empty task store.
func NewStore() *Store {
	return &Store{entries: make(map[string]*entry)}
}

// resolve returns the entry for id, creating it on first sight.
func (s *Store) resolve(id string) *entry {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok = s.entries[id]; ok {
		return e
	}
	e = &entry{task: Task{ID: id, CreatedAt: time.Now()}}
	s.entries[id] = e
	return e
}

// Begin records the inbound text as a new turn and moves the task into
// working, starting a new lifecycle round. Unseen and completed tasks are
// (re)submitted; a failed task accepts no further messages. The returned
// snapshot includes all prior turns plus the one just appended, whose
// index is also returned so the round can later complete its own turn.
func (s *Store) Begin(id, input string) (Task, int, error) {
	e := s.resolve(id)
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.task.State {
	case StateFailed:
		return Task{}, 0, errors.Wrapf(errors.ErrTaskTerminal, "task %s has failed", id)
	case StateWorking:
		// Another round is in flight for the same id; the turn is still
		// appended atomically and the state stays working.
	default:
		e.task.State = StateSubmitted
	}

	e.task.Turns = append(e.task.Turns, Turn{Input: input, At: time.Now()})
	e.task.State = StateWorking
	return e.task.clone(), len(e.task.Turns) - 1, nil
}

// Complete records the response for the round's own turn and moves the
// task to completed. A task another round has already completed accepts
// the response too, so overlapping rounds on one id finish independently.
// A failed task, an unknown turn, or a turn that already holds a response
// is an internal fault.
func (s *Store) Complete(id string, turn int, response string) (Task, error) {
	e := s.resolve(id)
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.task.State == StateFailed {
		return Task{}, errors.Wrapf(errors.ErrTaskState, "task %s is %s", id, e.task.State)
	}
	if turn < 0 || turn >= len(e.task.Turns) {
		return Task{}, errors.Wrapf(errors.ErrTaskState, "task %s has no turn %d", id, turn)
	}
	if e.task.Turns[turn].Response != "" {
		return Task{}, errors.Wrapf(errors.ErrTaskState, "task %s turn %d already completed", id, turn)
	}

	e.task.Turns[turn].Response = response
	e.task.State = StateCompleted
	return e.task.clone(), nil
}

// Fail moves a non-terminal task to the failed state with a short
// human-readable message. Terminal states are never left: failing a task
// that already completed or failed is a no-op returning the current
// snapshot.
func (s *Store) Fail(id, message string) Task {
	e := s.resolve(id)
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.task.State.Terminal() {
		return e.task.clone()
	}

	e.task.State = StateFailed
	e.task.Error = message
	return e.task.clone()
}

// Get returns a snapshot of the task, if known.
func (s *Store) Get(id string) (Task, bool) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return Task{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.task.clone(), true
}

// Len returns the number of tracked tasks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
