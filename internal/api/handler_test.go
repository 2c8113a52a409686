package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/highlanderkev/investing-agents/internal/a2a"
	"github.com/highlanderkev/investing-agents/internal/agent"
	"github.com/highlanderkev/investing-agents/internal/task"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	executor := agent.NewExecutor(task.NewStore(), agent.NewDelegate(nil))
	return NewHandler(executor, a2a.Card("http://localhost:8000/", "test"))
}

func postRPC(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleRPC(rec, req)
	return rec
}

func rpcBody(t *testing.T, method string, params any) string {
	t.Helper()
	raw, err := json.Marshal(params)
	require.NoError(t, err)
	body, err := json.Marshal(a2a.Request{
		JSONRPC: "2.0",
		ID:      json.RawMessage(`1`),
		Method:  method,
		Params:  raw,
	})
	require.NoError(t, err)
	return string(body)
}

func sendParams(taskID, text string) a2a.MessageSendParams {
	return a2a.MessageSendParams{Message: a2a.Message{
		Kind:   a2a.KindMessage,
		TaskID: taskID,
		Role:   "user",
		Parts:  []a2a.Part{a2a.TextPart(text)},
	}}
}

func TestAgentCardEndpoint(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/.well-known/agent.json", nil)
	rec := httptest.NewRecorder()

	h.HandleAgentCard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var card a2a.AgentCard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &card))
	assert.Equal(t, "Investment Strategy Agent", card.Name)
	assert.True(t, card.Capabilities.Streaming)
	require.Len(t, card.Skills, 4)

	// Skill ids line up one-to-one with the classifier's categories.
	var skillIDs []string
	for _, skill := range card.Skills {
		skillIDs = append(skillIDs, skill.ID)
	}
	var want []string
	for _, category := range agent.Categories() {
		if category != agent.CategoryGeneral {
			want = append(want, string(category))
		}
	}
	assert.ElementsMatch(t, want, skillIDs)
}

func TestMessageSendCompletesWithArtifact(t *testing.T) {
	h := newTestHandler(t)
	rec := postRPC(t, h, rpcBody(t, a2a.MethodMessageSend, sendParams("t1", "how risky are bonds?")))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Result a2a.Task   `json:"result"`
		Error  *a2a.Error `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Nil(t, resp.Error)

	assert.Equal(t, "t1", resp.Result.ID)
	assert.Equal(t, string(task.StateCompleted), resp.Result.Status.State)
	require.Len(t, resp.Result.Artifacts, 1)
	assert.Equal(t, "template", resp.Result.Artifacts[0].Metadata["mode"])
	assert.Equal(t, "risk_analysis", resp.Result.Artifacts[0].Metadata["category"])
	assert.NotEmpty(t, resp.Result.Artifacts[0].Parts[0].Text)
}

func TestMessageStreamEmitsEventFrames(t *testing.T) {
	h := newTestHandler(t)
	rec := postRPC(t, h, rpcBody(t, a2a.MethodMessageStream, sendParams("t1", "diversify my portfolio")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	var kinds []string
	for _, line := range strings.Split(rec.Body.String(), "\n") {
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var frame struct {
			Result struct {
				Kind string `json:"kind"`
			} `json:"result"`
		}
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &frame))
		kinds = append(kinds, frame.Result.Kind)
	}

	assert.Equal(t, []string{
		a2a.KindStatusUpdate,
		a2a.KindArtifactUpdate,
		a2a.KindStatusUpdate,
	}, kinds)
}

func TestTasksGetKnownTask(t *testing.T) {
	h := newTestHandler(t)
	postRPC(t, h, rpcBody(t, a2a.MethodMessageSend, sendParams("t1", "hello")))

	rec := postRPC(t, h, rpcBody(t, a2a.MethodTasksGet, a2a.TaskQueryParams{ID: "t1"}))

	var resp struct {
		Result a2a.Task   `json:"result"`
		Error  *a2a.Error `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Nil(t, resp.Error)
	assert.Equal(t, "t1", resp.Result.ID)
	assert.Equal(t, string(task.StateCompleted), resp.Result.Status.State)
}

func TestTasksGetUnknownTask(t *testing.T) {
	h := newTestHandler(t)
	rec := postRPC(t, h, rpcBody(t, a2a.MethodTasksGet, a2a.TaskQueryParams{ID: "missing"}))

	var resp a2a.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, a2a.CodeTaskNotFound, resp.Error.Code)
}

func TestUnknownMethod(t *testing.T) {
	h := newTestHandler(t)
	rec := postRPC(t, h, rpcBody(t, "tasks/cancel", a2a.TaskQueryParams{ID: "t1"}))

	var resp a2a.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, a2a.CodeMethodNotFound, resp.Error.Code)
}

func TestMalformedJSON(t *testing.T) {
	h := newTestHandler(t)
	rec := postRPC(t, h, "{not json")

	var resp a2a.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, a2a.CodeParseError, resp.Error.Code)
}

func TestInvalidJSONRPCVersion(t *testing.T) {
	h := newTestHandler(t)
	body, _ := json.Marshal(map[string]any{"jsonrpc": "1.0", "method": "message/send"})
	rec := postRPC(t, h, string(body))

	var resp a2a.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, a2a.CodeInvalidRequest, resp.Error.Code)
}

func TestMessageSendToFailedTask(t *testing.T) {
	h := newTestHandler(t)
	h.executor.Store().Fail("t1", "broken")

	rec := postRPC(t, h, rpcBody(t, a2a.MethodMessageSend, sendParams("t1", "hello")))

	var resp a2a.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, a2a.CodeInvalidRequest, resp.Error.Code)
}

func TestGetMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.HandleRPC(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
