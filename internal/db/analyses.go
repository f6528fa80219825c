package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-match/internal/types"
)

// AnalysisRecord is a stored analysis with its server-assigned identifier.
type AnalysisRecord struct {
	ID           uuid.UUID             `json:"id"`
	OverallScore float64               `json:"overall_score"`
	LetterGrade  string                `json:"letter_grade"`
	Result       *types.AnalysisResult `json:"result"`
	CreatedAt    time.Time             `json:"created_at"`
}

// AnalysisSummary is a listing row without the full result payload.
type AnalysisSummary struct {
	ID           uuid.UUID `json:"id"`
	OverallScore float64   `json:"overall_score"`
	LetterGrade  string    `json:"letter_grade"`
	CreatedAt    time.Time `json:"created_at"`
}

// SaveAnalysis stores a completed analysis and returns its new ID.
func (db *DB) SaveAnalysis(ctx context.Context, result *types.AnalysisResult) (uuid.UUID, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (overall_score, letter_grade, result)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		result.OverallScore, string(result.LetterGrade), payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis loads one stored analysis. Returns (nil, nil) when no row
// matches.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*AnalysisRecord, error) {
	var record AnalysisRecord
	var payload []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, overall_score, letter_grade, result, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&record.ID, &record.OverallScore, &record.LetterGrade, &payload, &record.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	record.Result = &types.AnalysisResult{}
	if err := json.Unmarshal(payload, record.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis result: %w", err)
	}
	return &record, nil
}

// ListAnalyses returns the most recent analyses, newest first.
func (db *DB) ListAnalyses(ctx context.Context, limit int) ([]AnalysisSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, overall_score, letter_grade, created_at
		 FROM analyses
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var summaries []AnalysisSummary
	for rows.Next() {
		var summary AnalysisSummary
		if err := rows.Scan(&summary.ID, &summary.OverallScore, &summary.LetterGrade, &summary.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}
	return summaries, nil
}
