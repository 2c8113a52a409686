package agent

import (
	"context"

	"github.com/highlanderkev/investing-agents/internal/adapters/ai"
	"github.com/highlanderkev/investing-agents/internal/metrics"
	"github.com/highlanderkev/investing-agents/internal/task"
	"github.com/highlanderkev/investing-agents/pkg/errors"
	"github.com/highlanderkev/investing-agents/pkg/logger"
)

const systemPreamble = `You are an investment advisor agent. Provide professional,
informative responses about investment strategies, financial markets, and portfolio
management. Give clear, helpful answers focused on investment strategy and financial
analysis. Include relevant considerations like risk management, diversification, and
market trends where appropriate.`

// Delegate wraps the external generative-language capability. Absence of a
// provider is decided once at construction; Generate makes exactly one
// attempt per call with no retries, since the caller's template fallback is
// local and instantaneous.
type Delegate struct {
	provider ai.Provider
	log      *logger.Logger
}

// NewDelegate creates a delegate around the provider. A nil provider is
// valid and yields an unconfigured delegate.
func NewDelegate(provider ai.Provider) *Delegate {
	return &Delegate{
		provider: provider,
		log:      logger.Get().With("component", "delegate"),
	}
}

// Configured reports whether an AI backend is available.
func (d *Delegate) Configured() bool {
	return d != nil && d.provider != nil
}

// Generate asks the backend for an answer, replaying prior turns so the
// model sees the conversation so far. Returns ErrNotConfigured when no
// backend is present and a wrapped ErrDelegateFailed on any call error;
// both are recoverable by the executor's fallback path.
func (d *Delegate) Generate(ctx context.Context, history []task.Turn, query string) (string, error) {
	if !d.Configured() {
		return "", errors.ErrNotConfigured
	}

	req := ai.CompletionRequest{System: systemPreamble}
	for _, turn := range history {
		req.Messages = append(req.Messages, ai.Message{Role: ai.RoleUser, Content: turn.Input})
		if turn.Response != "" {
			req.Messages = append(req.Messages, ai.Message{Role: ai.RoleAssistant, Content: turn.Response})
		}
	}
	req.Messages = append(req.Messages, ai.Message{Role: ai.RoleUser, Content: query})

	text, err := d.provider.Complete(ctx, req)
	if err != nil {
		metrics.DelegateCalls.WithLabelValues(d.provider.Name(), "error").Inc()
		d.log.Warnf("delegate call failed: %v", err)
		return "", errors.Wrapf(errors.ErrDelegateFailed, "provider %s: %v", d.provider.Name(), err)
	}

	metrics.DelegateCalls.WithLabelValues(d.provider.Name(), "success").Inc()
	return text, nil
}

// ProviderName returns the backend name, or "none" when unconfigured.
func (d *Delegate) ProviderName() string {
	if !d.Configured() {
		return "none"
	}
	return d.provider.Name()
}
