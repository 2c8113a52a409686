package ai

import (
	"context"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/highlanderkev/investing-agents/pkg/errors"
)

// Ensure GeminiProvider implements Provider
var _ Provider = (*GeminiProvider)(nil)

// GeminiProvider generates completions through the Google Gemini API.
type GeminiProvider struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
}

// NewGeminiProvider creates a new Gemini provider.
func NewGeminiProvider(ctx context.Context, apiKey, model string, timeout time.Duration, limiter *rate.Limiter) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, errors.Wrap(errors.ErrInvalidInput, "gemini API key not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create gemini client")
	}

	return &GeminiProvider{
		client:  client,
		model:   model,
		timeout: timeout,
		limiter: limiter,
	}, nil
}

// Name returns provider name.
func (p *GeminiProvider) Name() string { return ProviderNameGemini }

// Complete sends a completion request to the Gemini API.
func (p *GeminiProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return "", errors.Wrap(err, "rate limiter wait")
		}
	}

	callCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, msg := range req.Messages {
		role := "user"
		if msg.Role == RoleAssistant {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role: role,
			Parts: []*genai.Part{
				{Text: msg.Content},
			},
		})
	}

	var cfg *genai.GenerateContentConfig
	if req.System != "" || req.MaxTokens > 0 {
		cfg = &genai.GenerateContentConfig{}
		if req.System != "" {
			cfg.SystemInstruction = &genai.Content{
				Parts: []*genai.Part{
					{Text: req.System},
				},
			}
		}
		if req.MaxTokens > 0 {
			cfg.MaxOutputTokens = int32(req.MaxTokens)
		}
	}

	resp, err := p.client.Models.GenerateContent(callCtx, p.model, contents, cfg)
	if err != nil {
		return "", errors.Wrap(err, "gemini generate content")
	}

	text := resp.Text()
	if text == "" {
		return "", errors.Wrap(errors.ErrUnavailable, "gemini returned an empty response")
	}

	return text, nil
}
