package assessments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"osrl-backend/internal/catalog"
	"osrl-backend/internal/scoring"
	"osrl-backend/internal/shared/metrics"
	"osrl-backend/internal/shared/telemetry"
)

// Service contains business logic for assessments.
type Service struct {
	Repo Repo
}

// Submit validates the responses, runs the analysis pipeline synchronously and
// persists the result.
func (s *Service) Submit(ctx context.Context, userID, email string, responses map[string]int) (Assessment, error) {
	if userID == "" {
		return Assessment{}, errors.New("userID is required")
	}
	if err := validateResponses(responses); err != nil {
		return Assessment{}, err
	}

	metrics.IncAssessmentStarted()
	started := time.Now()

	result, err := Compute(responses)
	if err != nil {
		metrics.IncAssessmentFailed()
		return Assessment{}, err
	}

	assessment := Assessment{
		ID:           uuid.NewString(),
		UserID:       userID,
		Email:        email,
		Responses:    responses,
		OSRLLevel:    result.OSRLLevel,
		OverallScore: result.OverallScore,
		PillarScores: result.PillarScores,
		Result:       &result,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, assessment); err != nil {
		metrics.IncAssessmentFailed()
		telemetry.Error("assessment.store_failed", map[string]any{
			"assessment_id": assessment.ID,
			"user_id":       userID,
			"error":         err.Error(),
		})
		return Assessment{}, err
	}

	metrics.IncAssessmentCompleted()
	metrics.ObserveAssessmentDurationMs(float64(time.Since(started).Milliseconds()))
	telemetry.Info("assessment.completed", map[string]any{
		"assessment_id": assessment.ID,
		"user_id":       userID,
		"osrl_level":    assessment.OSRLLevel,
		"overall_score": assessment.OverallScore,
		"answered":      len(responses),
	})
	return assessment, nil
}

// Get returns an assessment if it belongs to the user.
func (s *Service) Get(ctx context.Context, userID, assessmentID string) (Assessment, error) {
	assessment, err := s.Repo.GetByID(ctx, assessmentID)
	if err != nil {
		return Assessment{}, err
	}
	if assessment.UserID != userID {
		return Assessment{}, ErrNotFound
	}
	return assessment, nil
}

// List returns the user's assessment history, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Assessment, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func validateResponses(responses map[string]int) error {
	if len(responses) == 0 {
		return scoring.ErrNoResponses
	}
	for id, value := range responses {
		if _, ok := catalog.QuestionByID(id); !ok {
			return &ValidationError{Field: id, Issue: "unknown question"}
		}
		if value < 1 || value > 5 {
			return &ValidationError{Field: id, Issue: "value must be between 1 and 5"}
		}
	}
	return nil
}
