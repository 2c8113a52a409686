package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/highlanderkev/investing-agents/internal/a2a"
	"github.com/highlanderkev/investing-agents/pkg/logger"
)

// sseEmitter streams executor events as server-sent events, one JSON-RPC
// response frame per event. Execute calls it from a single goroutine, so
// no locking is needed around the writer.
type sseEmitter struct {
	w       http.ResponseWriter
	flusher http.Flusher
	id      json.RawMessage
	log     *logger.Logger
	wrote   bool
}

func (e *sseEmitter) StatusUpdate(ev a2a.TaskStatusUpdateEvent) {
	e.writeFrame(a2a.Response{JSONRPC: "2.0", ID: e.id, Result: ev})
}

func (e *sseEmitter) ArtifactUpdate(ev a2a.TaskArtifactUpdateEvent) {
	e.writeFrame(a2a.Response{JSONRPC: "2.0", ID: e.id, Result: ev})
}

func (e *sseEmitter) writeFrame(resp a2a.Response) {
	payload, err := json.Marshal(resp)
	if err != nil {
		e.log.Errorf("marshaling SSE frame: %v", err)
		return
	}
	if _, err := fmt.Fprintf(e.w, "data: %s\n\n", payload); err != nil {
		e.log.Warnf("writing SSE frame: %v", err)
		return
	}
	e.wrote = true
	e.flusher.Flush()
}
