package a2a

import (
	"encoding/json"
	"strings"
	"time"
)

// Object kinds used on the wire.
const (
	KindMessage        = "message"
	KindTask           = "task"
	KindStatusUpdate   = "status-update"
	KindArtifactUpdate = "artifact-update"
)

// Part is one piece of message or artifact content. Only text parts are
// supported; the agent declares text-only input and output modes.
type Part struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
}

// TextPart builds a text content part.
func TextPart(text string) Part {
	return Part{Kind: "text", Text: text}
}

// Message is an inbound or outbound conversational message.
type Message struct {
	Kind      string `json:"kind,omitempty"`
	MessageID string `json:"messageId,omitempty"`
	TaskID    string `json:"taskId,omitempty"`
	Role      string `json:"role"`
	Parts     []Part `json:"parts"`
}

// Text concatenates the text parts of the message.
func (m Message) Text() string {
	var b strings.Builder
	for _, part := range m.Parts {
		if part.Text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(part.Text)
	}
	return strings.TrimSpace(b.String())
}

// Artifact is the advisory output produced for a task. Metadata carries
// the classified category and whether the text was AI- or template-generated.
type Artifact struct {
	ArtifactID string            `json:"artifactId"`
	Name       string            `json:"name,omitempty"`
	Parts      []Part            `json:"parts"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// TaskStatus reports the lifecycle state of a task at a point in time.
type TaskStatus struct {
	State     string    `json:"state"`
	Message   *Message  `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Task is the protocol view of one conversational unit.
type Task struct {
	Kind      string     `json:"kind"`
	ID        string     `json:"id"`
	Status    TaskStatus `json:"status"`
	Artifacts []Artifact `json:"artifacts,omitempty"`
}

// TaskStatusUpdateEvent is one streamed lifecycle transition.
type TaskStatusUpdateEvent struct {
	Kind   string     `json:"kind"`
	TaskID string     `json:"taskId"`
	Status TaskStatus `json:"status"`
	Final  bool       `json:"final"`
}

// TaskArtifactUpdateEvent streams a produced artifact.
type TaskArtifactUpdateEvent struct {
	Kind     string   `json:"kind"`
	TaskID   string   `json:"taskId"`
	Artifact Artifact `json:"artifact"`
}

// JSON-RPC 2.0 envelope

type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  any             `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// JSON-RPC error codes, plus the A2A task-not-found extension.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
	CodeTaskNotFound   = -32001
)

// Method names served by the agent.
const (
	MethodMessageSend   = "message/send"
	MethodMessageStream = "message/stream"
	MethodTasksGet      = "tasks/get"
)

// MessageSendParams carries the inbound message for message/send and
// message/stream.
type MessageSendParams struct {
	Message Message `json:"message"`
}

// TaskQueryParams identifies a task for tasks/get.
type TaskQueryParams struct {
	ID string `json:"id"`
}
