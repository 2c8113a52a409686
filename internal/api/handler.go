package api

import (
	"encoding/json"
	"net/http"

	"github.com/highlanderkev/investing-agents/internal/a2a"
	"github.com/highlanderkev/investing-agents/internal/agent"
	"github.com/highlanderkev/investing-agents/pkg/errors"
	"github.com/highlanderkev/investing-agents/pkg/logger"
)

// Handler serves the A2A JSON-RPC surface: message/send, message/stream
// (SSE) and tasks/get, plus the agent card.
type Handler struct {
	executor *agent.Executor
	card     a2a.AgentCard
	log      *logger.Logger
}

// NewHandler creates the JSON-RPC handler.
func NewHandler(executor *agent.Executor, card a2a.AgentCard) *Handler {
	return &Handler{
		executor: executor,
		card:     card,
		log:      logger.Get().With("component", "api"),
	}
}

// HandleAgentCard serves the static capability descriptor.
func (h *Handler) HandleAgentCard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.card)
}

// HandleRPC dispatches a single JSON-RPC request posted to the root path.
func (h *Handler) HandleRPC(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req a2a.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRPCError(w, nil, a2a.CodeParseError, "invalid JSON payload")
		return
	}
	if req.JSONRPC != "2.0" || req.Method == "" {
		writeRPCError(w, req.ID, a2a.CodeInvalidRequest, "not a valid JSON-RPC 2.0 request")
		return
	}

	switch req.Method {
	case a2a.MethodMessageSend:
		h.handleMessageSend(w, r, req)
	case a2a.MethodMessageStream:
		h.handleMessageStream(w, r, req)
	case a2a.MethodTasksGet:
		h.handleTasksGet(w, req)
	default:
		writeRPCError(w, req.ID, a2a.CodeMethodNotFound, "unknown method "+req.Method)
	}
}

func (h *Handler) handleMessageSend(w http.ResponseWriter, r *http.Request, req a2a.Request) {
	var params a2a.MessageSendParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		writeRPCError(w, req.ID, a2a.CodeInvalidParams, "invalid message/send params")
		return
	}

	result, err := h.executor.Execute(r.Context(), params.Message, agent.NopEmitter{})
	if err != nil {
		h.writeExecuteError(w, req.ID, err)
		return
	}
	writeRPCResult(w, req.ID, result)
}

// handleMessageStream runs the task while streaming lifecycle events over
// SSE. Each event is one JSON-RPC response frame carrying a status-update
// or artifact-update, matching the card's streaming capability.
func (h *Handler) handleMessageStream(w http.ResponseWriter, r *http.Request, req a2a.Request) {
	var params a2a.MessageSendParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		writeRPCError(w, req.ID, a2a.CodeInvalidParams, "invalid message/stream params")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeRPCError(w, req.ID, a2a.CodeInternalError, "streaming unsupported by connection")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	emitter := &sseEmitter{w: w, flusher: flusher, id: req.ID, log: h.log}
	if _, err := h.executor.Execute(r.Context(), params.Message, emitter); err != nil {
		// Begin-stage rejections produce no events; report them as a
		// single error frame so the client is not left hanging.
		if !emitter.wrote {
			emitter.writeFrame(a2a.Response{
				JSONRPC: "2.0",
				ID:      req.ID,
				Error:   rpcErrorFor(err),
			})
		}
	}
}

func (h *Handler) handleTasksGet(w http.ResponseWriter, req a2a.Request) {
	var params a2a.TaskQueryParams
	if err := json.Unmarshal(req.Params, &params); err != nil || params.ID == "" {
		writeRPCError(w, req.ID, a2a.CodeInvalidParams, "invalid tasks/get params")
		return
	}

	snapshot, ok := h.executor.Store().Get(params.ID)
	if !ok {
		writeRPCError(w, req.ID, a2a.CodeTaskNotFound, "task not found")
		return
	}
	writeRPCResult(w, req.ID, agent.TaskView(snapshot))
}

func (h *Handler) writeExecuteError(w http.ResponseWriter, id json.RawMessage, err error) {
	h.log.Warnf("execute rejected: %v", err)
	writeRPCErrorObj(w, id, rpcErrorFor(err))
}

// rpcErrorFor maps internal errors onto the JSON-RPC surface without
// leaking delegate details; only store faults and terminal rejections
// reach here.
func rpcErrorFor(err error) *a2a.Error {
	switch {
	case errors.Is(err, errors.ErrTaskTerminal):
		return &a2a.Error{Code: a2a.CodeInvalidRequest, Message: "task is in a terminal state"}
	case errors.Is(err, errors.ErrNotFound):
		return &a2a.Error{Code: a2a.CodeTaskNotFound, Message: "task not found"}
	default:
		return &a2a.Error{Code: a2a.CodeInternalError, Message: "internal error"}
	}
}

func writeRPCResult(w http.ResponseWriter, id json.RawMessage, result any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a2a.Response{JSONRPC: "2.0", ID: id, Result: result})
}

func writeRPCError(w http.ResponseWriter, id json.RawMessage, code int, message string) {
	writeRPCErrorObj(w, id, &a2a.Error{Code: code, Message: message})
}

func writeRPCErrorObj(w http.ResponseWriter, id json.RawMessage, rpcErr *a2a.Error) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a2a.Response{JSONRPC: "2.0", ID: id, Error: rpcErr})
}
