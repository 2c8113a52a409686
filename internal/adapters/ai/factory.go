package ai

import (
	"context"
	"strings"

	"golang.org/x/time/rate"

	"github.com/highlanderkev/investing-agents/internal/adapters/config"
	"github.com/highlanderkev/investing-agents/pkg/errors"
)

// BuildProvider selects the chat provider for the configured backend.
// A nil provider with a nil error means no credential is present: the
// agent then runs on template responses only. Absence is decided here,
// once, not per call.
func BuildProvider(ctx context.Context, cfg config.AIConfig) (Provider, error) {
	limiter := newLimiter(cfg.ReqPerMinute, cfg.Burst)

	switch NormalizeProviderName(cfg.Provider) {
	case ProviderNameOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, nil
		}
		return NewOpenAIProvider(cfg.OpenAIKey, cfg.OpenAIModel, cfg.Timeout, limiter), nil

	case ProviderNameGemini, "google", "":
		if cfg.GeminiKey == "" {
			return nil, nil
		}
		return NewGeminiProvider(ctx, cfg.GeminiKey, cfg.GeminiModel, cfg.Timeout, limiter)

	default:
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unknown AI provider %q", cfg.Provider)
	}
}

// newLimiter builds a token bucket limiter from a requests-per-minute
// budget. A non-positive budget disables limiting.
func newLimiter(reqPerMinute float64, burst int) *rate.Limiter {
	if reqPerMinute <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(reqPerMinute/60.0), burst)
}

// NormalizeProviderName makes provider lookup more forgiving.
func NormalizeProviderName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
