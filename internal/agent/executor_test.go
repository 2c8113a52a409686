package agent

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/highlanderkev/investing-agents/internal/a2a"
	"github.com/highlanderkev/investing-agents/internal/adapters/ai"
	"github.com/highlanderkev/investing-agents/internal/task"
	"github.com/highlanderkev/investing-agents/pkg/errors"
)

// mockProvider returns canned completions and records every request.
type mockProvider struct {
	reply    string
	err      error
	requests []ai.CompletionRequest
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Complete(_ context.Context, req ai.CompletionRequest) (string, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

// recordingEmitter captures the event stream in order.
type recordingEmitter struct {
	statuses  []a2a.TaskStatusUpdateEvent
	artifacts []a2a.TaskArtifactUpdateEvent
	order     []string
}

func (r *recordingEmitter) StatusUpdate(ev a2a.TaskStatusUpdateEvent) {
	r.statuses = append(r.statuses, ev)
	r.order = append(r.order, "status:"+ev.Status.State)
}

func (r *recordingEmitter) ArtifactUpdate(ev a2a.TaskArtifactUpdateEvent) {
	r.artifacts = append(r.artifacts, ev)
	r.order = append(r.order, "artifact")
}

func userMessage(taskID, text string) a2a.Message {
	return a2a.Message{
		Kind:   a2a.KindMessage,
		TaskID: taskID,
		Role:   "user",
		Parts:  []a2a.Part{a2a.TextPart(text)},
	}
}

func TestExecuteTemplateModeWhenUnconfigured(t *testing.T) {
	x := NewExecutor(task.NewStore(), NewDelegate(nil))

	result, err := x.Execute(context.Background(), userMessage("t1", "how should I diversify my portfolio?"), NopEmitter{})
	require.NoError(t, err)

	assert.Equal(t, string(task.StateCompleted), result.Status.State)
	require.Len(t, result.Artifacts, 1)

	artifact := result.Artifacts[0]
	assert.Equal(t, string(ModeTemplate), artifact.Metadata["mode"])
	assert.Equal(t, string(CategoryPortfolio), artifact.Metadata["category"])
	require.Len(t, artifact.Parts, 1)
	assert.Equal(t, Fallback(CategoryPortfolio), artifact.Parts[0].Text)
}

func TestExecuteAIMode(t *testing.T) {
	provider := &mockProvider{reply: "Spread your assets across classes."}
	x := NewExecutor(task.NewStore(), NewDelegate(provider))

	result, err := x.Execute(context.Background(), userMessage("t1", "diversification advice please"), NopEmitter{})
	require.NoError(t, err)

	assert.Equal(t, string(task.StateCompleted), result.Status.State)
	require.Len(t, result.Artifacts, 1)
	assert.Equal(t, string(ModeAI), result.Artifacts[0].Metadata["mode"])
	assert.Equal(t, "Spread your assets across classes.", result.Artifacts[0].Parts[0].Text)
}

func TestExecuteDelegateFailureFallsBackSilently(t *testing.T) {
	provider := &mockProvider{err: fmt.Errorf("backend exploded")}
	x := NewExecutor(task.NewStore(), NewDelegate(provider))

	result, err := x.Execute(context.Background(), userMessage("t1", "what are safe investments?"), NopEmitter{})
	require.NoError(t, err)

	// A delegate failure looks exactly like an unconfigured delegate.
	assert.Equal(t, string(task.StateCompleted), result.Status.State)
	require.Len(t, result.Artifacts, 1)
	assert.Equal(t, string(ModeTemplate), result.Artifacts[0].Metadata["mode"])
	assert.Equal(t, Fallback(CategoryRisk), result.Artifacts[0].Parts[0].Text)
}

func TestExecuteEventSequence(t *testing.T) {
	x := NewExecutor(task.NewStore(), NewDelegate(nil))
	emitter := &recordingEmitter{}

	_, err := x.Execute(context.Background(), userMessage("t1", "stock tips"), emitter)
	require.NoError(t, err)

	require.Equal(t, []string{"status:working", "artifact", "status:completed"}, emitter.order)
	assert.False(t, emitter.statuses[0].Final)
	assert.True(t, emitter.statuses[1].Final)
	assert.Equal(t, "t1", emitter.artifacts[0].TaskID)
}

func TestExecuteGeneratesTaskIDWhenAbsent(t *testing.T) {
	store := task.NewStore()
	x := NewExecutor(store, NewDelegate(nil))

	result, err := x.Execute(context.Background(), userMessage("", "hello"), NopEmitter{})
	require.NoError(t, err)
	require.NotEmpty(t, result.ID)

	_, ok := store.Get(result.ID)
	assert.True(t, ok)
}

func TestExecuteSecondMessageCarriesHistory(t *testing.T) {
	provider := &mockProvider{reply: "first answer"}
	x := NewExecutor(task.NewStore(), NewDelegate(provider))

	_, err := x.Execute(context.Background(), userMessage("t1", "first question"), NopEmitter{})
	require.NoError(t, err)

	provider.reply = "second answer"
	_, err = x.Execute(context.Background(), userMessage("t1", "second question"), NopEmitter{})
	require.NoError(t, err)

	require.Len(t, provider.requests, 2)

	// First call sees only the new query.
	require.Len(t, provider.requests[0].Messages, 1)
	assert.Equal(t, "first question", provider.requests[0].Messages[0].Content)

	// Second call replays the completed turn before the new query.
	second := provider.requests[1].Messages
	require.Len(t, second, 3)
	assert.Equal(t, ai.RoleUser, second[0].Role)
	assert.Equal(t, "first question", second[0].Content)
	assert.Equal(t, ai.RoleAssistant, second[1].Role)
	assert.Equal(t, "first answer", second[1].Content)
	assert.Equal(t, ai.RoleUser, second[2].Role)
	assert.Equal(t, "second question", second[2].Content)
}

func TestExecuteEmptyInputIsGeneral(t *testing.T) {
	x := NewExecutor(task.NewStore(), NewDelegate(nil))

	result, err := x.Execute(context.Background(), userMessage("t1", ""), NopEmitter{})
	require.NoError(t, err)

	require.Len(t, result.Artifacts, 1)
	assert.Equal(t, string(CategoryGeneral), result.Artifacts[0].Metadata["category"])
}

func TestExecuteRejectsFailedTask(t *testing.T) {
	store := task.NewStore()
	store.Fail("t1", "broken")
	x := NewExecutor(store, NewDelegate(nil))
	emitter := &recordingEmitter{}

	_, err := x.Execute(context.Background(), userMessage("t1", "anything"), emitter)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrTaskTerminal))

	// A rejected message produces no events at all.
	assert.Empty(t, emitter.order)
}

func TestExecuteCompletedTaskAcceptsNewRound(t *testing.T) {
	store := task.NewStore()
	x := NewExecutor(store, NewDelegate(nil))

	_, err := x.Execute(context.Background(), userMessage("t1", "first"), NopEmitter{})
	require.NoError(t, err)

	result, err := x.Execute(context.Background(), userMessage("t1", "second"), NopEmitter{})
	require.NoError(t, err)
	assert.Equal(t, string(task.StateCompleted), result.Status.State)

	snapshot, ok := store.Get("t1")
	require.True(t, ok)
	assert.Len(t, snapshot.Turns, 2)
}

func TestExecuteOverlappingRoundsStayCompleted(t *testing.T) {
	store := task.NewStore()
	x := NewExecutor(store, NewDelegate(nil))

	// Another round is already in flight for the same id when this
	// message executes.
	_, pending, err := store.Begin("t1", "earlier question")
	require.NoError(t, err)

	result, err := x.Execute(context.Background(), userMessage("t1", "current question"), NopEmitter{})
	require.NoError(t, err)
	assert.Equal(t, string(task.StateCompleted), result.Status.State)

	// The in-flight round finishes after the task already completed; it
	// records its own answer and the task never turns failed.
	_, err = store.Complete("t1", pending, "late answer")
	require.NoError(t, err)

	snapshot, ok := store.Get("t1")
	require.True(t, ok)
	assert.Equal(t, task.StateCompleted, snapshot.State)
	assert.Equal(t, "late answer", snapshot.Turns[pending].Response)

	// Follow-up messages are still accepted.
	result, err = x.Execute(context.Background(), userMessage("t1", "follow-up"), NopEmitter{})
	require.NoError(t, err)
	assert.Equal(t, string(task.StateCompleted), result.Status.State)
}

func TestExecuteHistoryExcludesOwnInput(t *testing.T) {
	store := task.NewStore()
	provider := &mockProvider{reply: "answer"}
	x := NewExecutor(store, NewDelegate(provider))

	// An overlapping unanswered round appears in the history, but the
	// current query never does.
	_, _, err := store.Begin("t1", "earlier question")
	require.NoError(t, err)

	_, err = x.Execute(context.Background(), userMessage("t1", "current question"), NopEmitter{})
	require.NoError(t, err)

	require.Len(t, provider.requests, 1)
	msgs := provider.requests[0].Messages
	require.Len(t, msgs, 2)
	assert.Equal(t, "earlier question", msgs[0].Content)
	assert.Equal(t, "current question", msgs[1].Content)
}

func TestDelegateUnconfiguredError(t *testing.T) {
	d := NewDelegate(nil)
	_, err := d.Generate(context.Background(), nil, "query")
	assert.True(t, errors.Is(err, errors.ErrNotConfigured))
	assert.Equal(t, "none", d.ProviderName())
}

func TestDelegateWrapsProviderError(t *testing.T) {
	d := NewDelegate(&mockProvider{err: fmt.Errorf("timeout")})
	_, err := d.Generate(context.Background(), nil, "query")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDelegateFailed))
}

func TestDelegateSendsSystemPreamble(t *testing.T) {
	provider := &mockProvider{reply: "ok"}
	d := NewDelegate(provider)

	_, err := d.Generate(context.Background(), nil, "query")
	require.NoError(t, err)
	require.Len(t, provider.requests, 1)
	assert.NotEmpty(t, provider.requests[0].System)
}
