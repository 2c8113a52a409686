package agent

import "github.com/highlanderkev/investing-agents/internal/a2a"

// Emitter receives the lifecycle events produced while a task executes.
// The SSE transport implements it for message/stream; message/send uses
// NopEmitter and returns only the final task.
type Emitter interface {
	StatusUpdate(a2a.TaskStatusUpdateEvent)
	ArtifactUpdate(a2a.TaskArtifactUpdateEvent)
}

// NopEmitter discards all events.
type NopEmitter struct{}

func (NopEmitter) StatusUpdate(a2a.TaskStatusUpdateEvent)     {}
func (NopEmitter) ArtifactUpdate(a2a.TaskArtifactUpdateEvent) {}
