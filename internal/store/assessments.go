package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prepdeck/prepdeck/internal/assessment"
)

// SaveAssessment inserts one completed assessment record. Records are
// append-only; there is no update path.
func (s *Store) SaveAssessment(ctx context.Context, rec *assessment.Record) error {
	questions, err := json.Marshal(rec.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}
	strengths, err := json.Marshal(emptyIfNil(rec.Strengths))
	if err != nil {
		return fmt.Errorf("marshal strengths: %w", err)
	}
	areas, err := json.Marshal(emptyIfNil(rec.ImprovementAreas))
	if err != nil {
		return fmt.Errorf("marshal improvement areas: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO assessments (
			id, owner_id, quiz_score, technical_score, communication_score,
			category, questions, strengths, improvement_areas, improvement_tip, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.OwnerID, rec.QuizScore, rec.TechnicalScore, rec.CommunicationScore,
		rec.Category, string(questions), string(strengths), string(areas),
		rec.ImprovementTip, rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}

// ListAssessments returns all assessments for one owner, oldest first.
func (s *Store) ListAssessments(ctx context.Context, ownerID string) ([]assessment.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner_id, quiz_score, technical_score, communication_score,
		       category, questions, strengths, improvement_areas, improvement_tip, created_at
		FROM assessments
		WHERE owner_id = ?
		ORDER BY created_at ASC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}
	defer rows.Close()

	var out []assessment.Record
	for rows.Next() {
		rec, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assessments: %w", err)
	}
	return out, nil
}

func scanAssessment(rows *sql.Rows) (*assessment.Record, error) {
	var (
		rec       assessment.Record
		questions string
		strengths string
		areas     string
		createdAt string
	)
	if err := rows.Scan(
		&rec.ID, &rec.OwnerID, &rec.QuizScore, &rec.TechnicalScore, &rec.CommunicationScore,
		&rec.Category, &questions, &strengths, &areas, &rec.ImprovementTip, &createdAt,
	); err != nil {
		return nil, fmt.Errorf("scan assessment: %w", err)
	}

	if err := json.Unmarshal([]byte(questions), &rec.Questions); err != nil {
		return nil, fmt.Errorf("decode questions for %s: %w", rec.ID, err)
	}
	if err := json.Unmarshal([]byte(strengths), &rec.Strengths); err != nil {
		return nil, fmt.Errorf("decode strengths for %s: %w", rec.ID, err)
	}
	if err := json.Unmarshal([]byte(areas), &rec.ImprovementAreas); err != nil {
		return nil, fmt.Errorf("decode improvement areas for %s: %w", rec.ID, err)
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at for %s: %w", rec.ID, err)
	}
	rec.CreatedAt = ts

	return &rec, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
