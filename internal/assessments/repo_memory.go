package assessments

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores assessments in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	byID   map[string]Assessment
	byUser map[string][]Assessment
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[string]Assessment),
		byUser: make(map[string][]Assessment),
	}
}

// Create stores the assessment.
func (r *MemoryRepo) Create(ctx context.Context, assessment Assessment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[assessment.ID] = assessment
	r.byUser[assessment.UserID] = append(r.byUser[assessment.UserID], assessment)
	return nil
}

// GetByID returns an assessment by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, assessmentID string) (Assessment, error) {
	if err := ctx.Err(); err != nil {
		return Assessment{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	assessment, ok := r.byID[assessmentID]
	if !ok {
		return Assessment{}, ErrNotFound
	}
	return assessment, nil
}

// ListByUser returns assessments for a user, newest first, with limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Assessment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	userAssessments := r.byUser[userID]
	r.mu.RUnlock()

	if len(userAssessments) == 0 || offset >= len(userAssessments) {
		return []Assessment{}, nil
	}

	out := make([]Assessment, len(userAssessments))
	copy(out, userAssessments)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	end := len(out)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return out[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
