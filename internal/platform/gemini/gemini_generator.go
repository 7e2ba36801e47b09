package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"google.golang.org/genai"

	"github.com/aperrault/phraseur/internal/config"
	"github.com/aperrault/phraseur/internal/generation"
)

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API to turn a prompt string into a text reply.
type GeminiGenerator struct {
	logger *slog.Logger
	config config.LLMConfig
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a new GeminiGenerator with the provided
// dependencies. Returns an error if the configuration is invalid or the
// client cannot be initialized.
func NewGeminiGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("%w: call timeout must be positive", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &GeminiGenerator{
		logger: logger.With(slog.String("component", "gemini_generator")),
		config: cfg,
		client: client,
		model:  cfg.ModelName,
	}, nil
}

// Ensure GeminiGenerator implements generation.Generator
var _ generation.Generator = (*GeminiGenerator)(nil)

// GenerateText implements generation.Generator. It calls the Gemini API with
// exponential backoff and jitter between retries for transient errors. Each
// individual call is bounded by the configured per-call timeout so a network
// hang cannot block a worker slot indefinitely. Permanent errors (content
// blocked, empty response) are returned immediately without retrying.
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	maxRetries := g.config.MaxRetries
	baseDelaySeconds := g.config.RetryDelaySeconds
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if maxRetries < 0 {
		g.logger.WarnContext(ctx, "invalid max retries value, using default", "max_retries", 3)
		maxRetries = 3
	}

	if baseDelaySeconds < 1 {
		g.logger.WarnContext(ctx, "invalid retry delay value, using default", "base_delay_seconds", 2)
		baseDelaySeconds = 2
	}

	timeout := time.Duration(g.config.TimeoutSeconds) * time.Second

	for attempt := 0; ; attempt++ {
		attemptNum := attempt + 1
		g.logger.InfoContext(ctx, "making Gemini API call",
			"attempt", attemptNum,
			"max_attempts", maxRetries+1)

		text, transient, err := g.callOnce(ctx, prompt, timeout)
		if err == nil {
			g.logger.InfoContext(ctx, "Gemini API call successful", "attempt", attemptNum)
			return text, nil
		}

		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"attempt", attemptNum,
			"error", err)

		if !transient {
			return "", err
		}

		if attempt >= maxRetries {
			g.logger.WarnContext(ctx, "maximum retry attempts reached", "max_retries", maxRetries)
			return "", fmt.Errorf("%w: exceeded maximum retry attempts (%d): %v",
				generation.ErrTransientFailure, maxRetries, err)
		}

		// delay = baseDelay * (2^attempt) * (0.5 + rand(0, 0.5))
		backoffSeconds := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		jitterFactor := 0.5 + rng.Float64()*0.5
		delay := time.Duration(backoffSeconds * jitterFactor * float64(time.Second))

		g.logger.InfoContext(ctx, "retrying after delay",
			"attempt", attemptNum,
			"delay_seconds", delay.Seconds())

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			g.logger.WarnContext(ctx, "API call cancelled during retry delay",
				"attempt", attemptNum,
				"ctx_err", ctx.Err())
			return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, ctx.Err())
		}
	}
}

// callOnce performs a single timeout-bounded API call. The second return
// value reports whether a failure is worth retrying.
func (g *GeminiGenerator) callOnce(
	ctx context.Context,
	prompt string,
	timeout time.Duration,
) (string, bool, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(callCtx, g.model, contents, nil)
	if err != nil {
		return "", true, fmt.Errorf("%w: %v", generation.ErrExternalCall, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", false, fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", false, fmt.Errorf("%w: finish reason %s",
			generation.ErrContentBlocked, candidate.FinishReason)
	}

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", false, fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	text := ""
	for _, part := range candidate.Content.Parts {
		text += part.Text
	}

	if text == "" {
		return "", false, fmt.Errorf("%w: no text parts in response", generation.ErrInvalidResponse)
	}

	return text, false, nil
}
