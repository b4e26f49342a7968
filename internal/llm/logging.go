package llm

import (
	"context"
	"fmt"
	"os"
	"time"
)

// CallRecord captures one backend call for the audit log.
type CallRecord struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// AuditLog records backend calls. The SQLite store implements it.
type AuditLog interface {
	AppendLLMCall(ctx context.Context, rec CallRecord) error
}

// LoggingProvider is a decorator that records every backend call in the
// audit log.
type LoggingProvider struct {
	inner    Provider
	provider string
	audit    AuditLog
}

// WithLogging wraps a Provider with audit logging. The provider name
// ("gemini", "openai", ...) identifies the backend in the audit rows.
func WithLogging(p Provider, provider string, audit AuditLog) Provider {
	return &LoggingProvider{inner: p, provider: provider, audit: audit}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	rec := CallRecord{
		Provider:  l.provider,
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
		rec.Model = resp.Model
	}

	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	// Record the call but never fail the request over a logging error.
	if logErr := l.audit.AppendLLMCall(ctx, rec); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record LLM call: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
