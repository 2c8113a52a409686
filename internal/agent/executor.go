package agent

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/highlanderkev/investing-agents/internal/a2a"
	"github.com/highlanderkev/investing-agents/internal/metrics"
	"github.com/highlanderkev/investing-agents/internal/task"
	"github.com/highlanderkev/investing-agents/pkg/errors"
	"github.com/highlanderkev/investing-agents/pkg/logger"
)

// Mode tags how an answer was produced.
type Mode string

const (
	ModeAI       Mode = "ai"
	ModeTemplate Mode = "template"
)

// Executor drives one task through its lifecycle: record the inbound
// message, classify it, produce an answer via the AI delegate or the
// template fallback, and publish the result. Delegate failures never
// surface to callers; only store faults move a task to failed.
type Executor struct {
	store    *task.Store
	delegate *Delegate
	log      *logger.Logger
}

// NewExecutor creates an executor over the store and delegate.
func NewExecutor(store *task.Store, delegate *Delegate) *Executor {
	return &Executor{
		store:    store,
		delegate: delegate,
		log:      logger.Get().With("component", "executor"),
	}
}

// Store exposes the underlying task store for read-side handlers.
func (x *Executor) Store() *task.Store {
	return x.store
}

// AIEnabled reports whether answers can come from the AI delegate.
func (x *Executor) AIEnabled() bool {
	return x.delegate.Configured()
}

// Execute runs one message round. The returned error is a caller fault
// (terminal task, store state fault) already reflected in the store; the
// emitter has by then seen a final event for anything past Begin.
func (x *Executor) Execute(ctx context.Context, msg a2a.Message, events Emitter) (a2a.Task, error) {
	taskID := msg.TaskID
	if taskID == "" {
		taskID = uuid.NewString()
	}
	input := msg.Text()
	started := time.Now()

	snapshot, turn, err := x.store.Begin(taskID, input)
	if err != nil {
		return a2a.Task{}, err
	}

	events.StatusUpdate(a2a.TaskStatusUpdateEvent{
		Kind:   a2a.KindStatusUpdate,
		TaskID: taskID,
		Status: a2a.TaskStatus{State: string(task.StateWorking), Timestamp: time.Now()},
		Final:  false,
	})

	category := Classify(input)
	metrics.Classifications.WithLabelValues(string(category)).Inc()

	answer, mode := x.answer(ctx, snapshot.Turns[:turn], input, category)

	final, err := x.store.Complete(taskID, turn, answer)
	if err != nil {
		// Only a genuine store fault reaches here; overlapping rounds
		// complete their own turns and Fail never leaves a terminal state.
		x.log.Errorf("completing task %s: %v", taskID, err)
		failed := x.store.Fail(taskID, "internal error finalizing task")
		events.StatusUpdate(a2a.TaskStatusUpdateEvent{
			Kind:   a2a.KindStatusUpdate,
			TaskID: taskID,
			Status: a2a.TaskStatus{State: string(failed.State), Timestamp: time.Now()},
			Final:  true,
		})
		metrics.ObserveTask(string(task.StateFailed), string(mode), time.Since(started))
		return TaskView(failed), errors.Wrapf(errors.ErrInternal, "task %s: %v", taskID, err)
	}

	artifact := a2a.Artifact{
		ArtifactID: uuid.NewString(),
		Name:       "advice",
		Parts:      []a2a.Part{a2a.TextPart(answer)},
		Metadata: map[string]string{
			"category": string(category),
			"mode":     string(mode),
		},
	}
	events.ArtifactUpdate(a2a.TaskArtifactUpdateEvent{
		Kind:     a2a.KindArtifactUpdate,
		TaskID:   taskID,
		Artifact: artifact,
	})
	events.StatusUpdate(a2a.TaskStatusUpdateEvent{
		Kind:   a2a.KindStatusUpdate,
		TaskID: taskID,
		Status: a2a.TaskStatus{State: string(final.State), Timestamp: time.Now()},
		Final:  true,
	})

	metrics.ObserveTask(string(final.State), string(mode), time.Since(started))
	x.log.Infow("task completed",
		"task_id", taskID,
		"category", category,
		"mode", mode,
		"duration", time.Since(started),
	)
	result := TaskView(final)
	result.Artifacts = []a2a.Artifact{artifact}
	return result, nil
}

// answer produces the advisory text. The delegate sees the turns before
// this round's own as history; any delegate error, including an
// unconfigured backend, falls back to the category template.
func (x *Executor) answer(ctx context.Context, history []task.Turn, input string, category Category) (string, Mode) {
	if x.delegate.Configured() {
		text, err := x.delegate.Generate(ctx, history, input)
		if err == nil {
			return text, ModeAI
		}
		if !errors.Is(err, errors.ErrNotConfigured) {
			x.log.Warnf("falling back to template for category %s: %v", category, err)
		}
	}
	return Fallback(category), ModeTemplate
}

// TaskView converts a store snapshot to its wire representation.
func TaskView(t task.Task) a2a.Task {
	return a2a.Task{
		Kind: a2a.KindTask,
		ID:   t.ID,
		Status: a2a.TaskStatus{
			State:     string(t.State),
			Timestamp: time.Now(),
		},
	}
}
