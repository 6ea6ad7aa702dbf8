package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/newsguard/internal/types"
)

// SaveAssessment stores a completed assessment. The full record is kept as
// JSONB alongside indexed summary columns.
func (db *DB) SaveAssessment(ctx context.Context, assessment *types.FinalAssessment) error {
	record, err := json.Marshal(assessment)
	if err != nil {
		return fmt.Errorf("failed to marshal assessment: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO assessments (id, title, domain, risk_percentage, risk_level, confidence, record, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO UPDATE SET risk_percentage = $4, risk_level = $5, confidence = $6, record = $7`,
		assessment.ID, assessment.Title, assessment.Domain, assessment.RiskPercentage,
		string(assessment.RiskLevel), string(assessment.Confidence), record, assessment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save assessment %s: %w", assessment.ID, err)
	}
	return nil
}

// GetAssessment retrieves a stored assessment by id. Returns nil when absent.
func (db *DB) GetAssessment(ctx context.Context, id uuid.UUID) (*types.FinalAssessment, error) {
	var record []byte
	err := db.pool.QueryRow(ctx,
		`SELECT record FROM assessments WHERE id = $1`,
		id,
	).Scan(&record)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}

	var assessment types.FinalAssessment
	if err := json.Unmarshal(record, &assessment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assessment: %w", err)
	}
	return &assessment, nil
}

// AssessmentSummary is a lightweight view of a stored assessment for listing
type AssessmentSummary struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Domain         string    `json:"domain"`
	RiskPercentage int       `json:"risk_percentage"`
	RiskLevel      string    `json:"risk_level"`
	Confidence     string    `json:"confidence"`
	CreatedAt      string    `json:"created_at"`
}

// AssessmentFilters holds optional filters for listing assessments
type AssessmentFilters struct {
	Domain    string
	RiskLevel string
	Limit     int
}

// ListAssessments retrieves recent assessments with optional filters
func (db *DB) ListAssessments(ctx context.Context, filters AssessmentFilters) ([]AssessmentSummary, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, title, domain, risk_percentage, risk_level, confidence, created_at
		FROM assessments WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Domain != "" {
		query += fmt.Sprintf(" AND domain ILIKE $%d", argNum)
		args = append(args, "%"+filters.Domain+"%")
		argNum++
	}
	if filters.RiskLevel != "" {
		query += fmt.Sprintf(" AND risk_level = $%d", argNum)
		args = append(args, filters.RiskLevel)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	defer rows.Close()

	var summaries []AssessmentSummary
	for rows.Next() {
		var s AssessmentSummary
		var createdAt any
		if err := rows.Scan(&s.ID, &s.Title, &s.Domain, &s.RiskPercentage, &s.RiskLevel, &s.Confidence, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}
		if t, ok := createdAt.(interface{ String() string }); ok {
			s.CreatedAt = t.String()
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// DeleteAssessment deletes a stored assessment
func (db *DB) DeleteAssessment(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM assessments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assessment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("assessment not found: %s", id)
	}
	return nil
}
