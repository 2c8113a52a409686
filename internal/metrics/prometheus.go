package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Task lifecycle metrics
	TaskExecutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "investing_agent_task_executions_total",
			Help: "Total number of task executions",
		},
		[]string{"status", "mode"}, // status: completed|failed, mode: ai|template
	)

	TaskDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "investing_agent_task_duration_seconds",
			Help:    "Task execution duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"mode"},
	)

	// Classification metrics
	Classifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "investing_agent_classifications_total",
			Help: "Total number of skill classifications by category",
		},
		[]string{"category"},
	)

	// Delegate metrics
	DelegateCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "investing_agent_delegate_calls_total",
			Help: "Total number of AI delegate calls",
		},
		[]string{"provider", "outcome"}, // outcome: success|error
	)
)

func init() {
	prometheus.MustRegister(
		TaskExecutions,
		TaskDuration,
		Classifications,
		DelegateCalls,
	)
}

// Handler returns the HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveTask records one finished task execution.
func ObserveTask(status, mode string, duration time.Duration) {
	TaskExecutions.WithLabelValues(status, mode).Inc()
	TaskDuration.WithLabelValues(mode).Observe(duration.Seconds())
}
