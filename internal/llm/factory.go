package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and audit-logging middleware.
func NewProvider(ctx context.Context, cfg Config, audit AuditLog) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller → retry → logging → base, so each
	// attempt is audited individually.
	logged := WithLogging(base, cfg.Provider, audit)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}
