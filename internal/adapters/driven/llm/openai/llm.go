// Package openai provides an LLM service adapter for OpenAI-compatible
// chat completion endpoints.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/mediq-labs/mediq-cli/internal/core/ports/driven"
	"github.com/mediq-labs/mediq-cli/internal/logger"
)

// Ensure Service implements the interface.
var _ driven.LLMService = (*Service)(nil)

// Default configuration values.
const (
	DefaultModel             = "gpt-4o-mini"
	DefaultTimeout           = 120 * time.Second
	DefaultMaxAttempts       = 3
	DefaultRequestsPerMinute = 60
)

// Config holds configuration for the chat completion service.
type Config struct {
	// APIKey is the API key (required).
	APIKey string

	// BaseURL overrides the endpoint, for Azure or compatible APIs.
	BaseURL string

	// Model is the completion model (default: gpt-4o-mini).
	Model string

	// Timeout is the per-request timeout (default: 120s).
	Timeout time.Duration

	// MaxAttempts bounds transport-level retries (default: 3).
	// API-level errors are never retried.
	MaxAttempts int

	// RequestsPerMinute throttles outgoing calls (default: 60).
	RequestsPerMinute int
}

// Service calls a chat completion endpoint with client-side rate limiting
// and bounded retry on transport failures.
type Service struct {
	client      *openai.Client
	model       string
	limiter     *rate.Limiter
	maxAttempts int
}

// New creates a chat completion service.
func New(cfg Config) (*Service, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = DefaultRequestsPerMinute
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Service{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		limiter:     rate.NewLimiter(rate.Limit(cfg.RequestsPerMinute)/60, 1),
		maxAttempts: cfg.MaxAttempts,
	}, nil
}

// ModelName returns the name of the model being used.
func (s *Service) ModelName() string {
	return s.model
}

// Chat sends the message list and returns the completion text. Transport
// failures are retried with backoff up to MaxAttempts; an API error
// (auth, quota, malformed request) fails immediately. A failed call
// surfaces as one error outcome, never a partial answer.
func (s *Service) Chat(ctx context.Context, messages []driven.ChatMessage, opts driven.ChatOptions) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	oaMsgs := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		oaMsgs[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}

	req := openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    oaMsgs,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}

	var content string
	err := retry.Do(
		func() error {
			resp, err := s.client.CreateChatCompletion(ctx, req)
			if err != nil {
				var apiErr *openai.APIError
				if errors.As(err, &apiErr) {
					return retry.Unrecoverable(err)
				}
				logger.Warn("Completion transport error, will retry: %v", err)
				return err
			}
			if len(resp.Choices) == 0 {
				return retry.Unrecoverable(errors.New("completion returned no choices"))
			}
			content = resp.Choices[0].Message.Content
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(s.maxAttempts)),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	return content, nil
}
