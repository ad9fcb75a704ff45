package assessments

import "context"

// Repo defines persistence operations for assessments.
type Repo interface {
	Create(ctx context.Context, assessment Assessment) error
	GetByID(ctx context.Context, assessmentID string) (Assessment, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Assessment, error)
}
