package health

import (
	"encoding/json"
	"net/http"
	"time"
)

// TaskCounter reports how many tasks the agent currently tracks.
type TaskCounter interface {
	Len() int
}

// Handler provides health check endpoints
type Handler struct {
	tasks       TaskCounter
	startTime   time.Time
	serviceName string
	version     string
	aiEnabled   bool
}

// New creates a new health check handler
func New(tasks TaskCounter, serviceName, version string, aiEnabled bool) *Handler {
	return &Handler{
		tasks:       tasks,
		startTime:   time.Now(),
		serviceName: serviceName,
		version:     version,
		aiEnabled:   aiEnabled,
	}
}

// HealthStatus represents the overall health status
type HealthStatus struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Mode      string `json:"mode"` // "ai" or "template"
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
	Tasks     int    `json:"tasks"`
}

// HandleLiveness returns 200 OK if service is running
// Used by Kubernetes liveness probe
func (h *Handler) HandleLiveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "alive",
	})
}

// HandleReadiness checks if service is ready to accept traffic. The agent
// holds all state in memory and can always answer via templates, so
// readiness tracks liveness.
func (h *Handler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	h.writeStatus(w)
}

// HandleHealth returns detailed health status
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeStatus(w)
}

func (h *Handler) writeStatus(w http.ResponseWriter) {
	mode := "template"
	if h.aiEnabled {
		mode = "ai"
	}

	status := HealthStatus{
		Status:    "healthy",
		Service:   h.serviceName,
		Version:   h.version,
		Mode:      mode,
		Uptime:    time.Since(h.startTime).String(),
		Timestamp: time.Now().Format(time.RFC3339),
		Tasks:     h.tasks.Len(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(status)
}
