package store

import (
	"context"
	"fmt"
	"time"

	"github.com/prepdeck/prepdeck/internal/llm"
)

// LLMCall is one audit row as read back from storage.
type LLMCall struct {
	ID           int64
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	CreatedAt    time.Time
}

// AppendLLMCall records one backend call in the audit log.
func (s *Store) AppendLLMCall(ctx context.Context, rec llm.CallRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO llm_calls (
			provider, model, purpose, input_tokens, output_tokens,
			latency_ms, success, error_message, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Provider, rec.Model, rec.Purpose, rec.InputTokens, rec.OutputTokens,
		rec.LatencyMs, rec.Success, rec.ErrorMessage,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert llm call: %w", err)
	}
	return nil
}

// ListLLMCalls returns the most recent audit rows, newest first. A
// non-empty purpose filters before the limit applies, so the listing
// always carries up to limit matching rows.
func (s *Store) ListLLMCalls(ctx context.Context, limit int, purpose string) ([]LLMCall, error) {
	query := `
		SELECT id, provider, model, purpose, input_tokens, output_tokens,
		       latency_ms, success, error_message, created_at
		FROM llm_calls`
	args := []any{}
	if purpose != "" {
		query += ` WHERE purpose = ?`
		args = append(args, purpose)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query llm calls: %w", err)
	}
	defer rows.Close()

	var out []LLMCall
	for rows.Next() {
		var (
			c         LLMCall
			createdAt string
		)
		if err := rows.Scan(
			&c.ID, &c.Provider, &c.Model, &c.Purpose, &c.InputTokens, &c.OutputTokens,
			&c.LatencyMs, &c.Success, &c.ErrorMessage, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan llm call: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			c.CreatedAt = ts
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate llm calls: %w", err)
	}
	return out, nil
}
