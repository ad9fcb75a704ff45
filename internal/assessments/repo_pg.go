package assessments

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new assessment.
func (r *PGRepo) Create(ctx context.Context, assessment Assessment) error {
	const query = `
INSERT INTO assessments (
	id, user_id, email, responses, osrl_level, overall_score, pillar_scores, result, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	responsesPayload, err := json.Marshal(assessment.Responses)
	if err != nil {
		return err
	}
	scoresPayload, err := json.Marshal(assessment.PillarScores)
	if err != nil {
		return err
	}
	resultPayload, err := marshalJSONB(assessment.Result)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		assessment.ID,
		assessment.UserID,
		assessment.Email,
		responsesPayload,
		assessment.OSRLLevel,
		assessment.OverallScore,
		scoresPayload,
		resultPayload,
		assessment.CreatedAt,
	)
	return err
}

// GetByID returns an assessment by ID.
func (r *PGRepo) GetByID(ctx context.Context, assessmentID string) (Assessment, error) {
	const query = `
SELECT id, user_id, email, responses, osrl_level, overall_score, pillar_scores, result, created_at
FROM assessments
WHERE id = $1
LIMIT 1`

	var a Assessment
	var email sql.NullString
	var responses sql.NullString
	var pillarScores sql.NullString
	var result sql.NullString
	err := r.DB.QueryRowContext(ctx, query, assessmentID).Scan(
		&a.ID,
		&a.UserID,
		&email,
		&responses,
		&a.OSRLLevel,
		&a.OverallScore,
		&pillarScores,
		&result,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Assessment{}, ErrNotFound
		}
		return Assessment{}, err
	}
	scanAssessmentJSON(&a, email, responses, pillarScores, result)
	return a, nil
}

// ListByUser lists assessments for a user ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Assessment, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	const query = `
SELECT id, user_id, email, responses, osrl_level, overall_score, pillar_scores, result, created_at
FROM assessments
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Assessment
	for rows.Next() {
		var a Assessment
		var email sql.NullString
		var responses sql.NullString
		var pillarScores sql.NullString
		var result sql.NullString
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&email,
			&responses,
			&a.OSRLLevel,
			&a.OverallScore,
			&pillarScores,
			&result,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		scanAssessmentJSON(&a, email, responses, pillarScores, result)
		out = append(out, a)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)

func scanAssessmentJSON(a *Assessment, email, responses, pillarScores, result sql.NullString) {
	if email.Valid {
		a.Email = email.String
	}
	if responses.Valid {
		a.Responses = map[string]int{}
		if err := json.Unmarshal([]byte(responses.String), &a.Responses); err != nil {
			a.Responses = nil
		}
	}
	if pillarScores.Valid {
		a.PillarScores = map[string]int{}
		if err := json.Unmarshal([]byte(pillarScores.String), &a.PillarScores); err != nil {
			a.PillarScores = nil
		}
	}
	if result.Valid {
		a.Result = &Result{}
		if err := json.Unmarshal([]byte(result.String), a.Result); err != nil {
			a.Result = nil
		}
	}
}

func marshalJSONB(result *Result) ([]byte, error) {
	if result == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(result)
}
