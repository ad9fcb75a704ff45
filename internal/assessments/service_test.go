package assessments

import (
	"context"
	"errors"
	"testing"

	"osrl-backend/internal/catalog"
	"osrl-backend/internal/scoring"
)

func uniformResponses(value int) map[string]int {
	out := make(map[string]int, len(catalog.Questions))
	for _, q := range catalog.Questions {
		out[q.ID] = value
	}
	return out
}

func TestSubmitPersistsFullResult(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo}

	assessment, err := svc.Submit(context.Background(), "guest:abc", "ana@example.com", uniformResponses(3))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if assessment.ID == "" {
		t.Fatalf("expected generated id")
	}
	if assessment.OSRLLevel != 4 {
		t.Errorf("osrl level = %d, want 4 for uniform threes", assessment.OSRLLevel)
	}
	if assessment.OverallScore != 60 {
		t.Errorf("overall score = %d, want 60", assessment.OverallScore)
	}
	if assessment.Result == nil {
		t.Fatalf("expected full result attached")
	}
	if len(assessment.Result.Insights) != len(catalog.Questions) {
		t.Errorf("insights = %d, want %d", len(assessment.Result.Insights), len(catalog.Questions))
	}
	if len(assessment.Result.Roadmap) != 3 {
		t.Errorf("roadmap phases = %d, want 3", len(assessment.Result.Roadmap))
	}

	stored, err := repo.GetByID(context.Background(), assessment.ID)
	if err != nil {
		t.Fatalf("GetByID after Submit: %v", err)
	}
	if stored.OSRLLevel != assessment.OSRLLevel {
		t.Errorf("stored level %d differs from returned %d", stored.OSRLLevel, assessment.OSRLLevel)
	}
}

func TestSubmitValidation(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	cases := []struct {
		name      string
		responses map[string]int
		wantField string
	}{
		{name: "unknown_question", responses: map[string]int{"gov9": 3}, wantField: "gov9"},
		{name: "value_too_low", responses: map[string]int{"gov1": 0}, wantField: "gov1"},
		{name: "value_too_high", responses: map[string]int{"gov1": 6}, wantField: "gov1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), "user-1", "", tc.responses)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.wantField {
				t.Errorf("field = %q, want %q", verr.Field, tc.wantField)
			}
		})
	}
}

func TestSubmitEmptyResponses(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	_, err := svc.Submit(context.Background(), "user-1", "", map[string]int{})
	if !errors.Is(err, scoring.ErrNoResponses) {
		t.Fatalf("expected ErrNoResponses, got %v", err)
	}
}

func TestGetEnforcesOwnership(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo}

	assessment, err := svc.Submit(context.Background(), "user-1", "", uniformResponses(2))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if _, err := svc.Get(context.Background(), "user-1", assessment.ID); err != nil {
		t.Fatalf("owner Get: %v", err)
	}
	if _, err := svc.Get(context.Background(), "user-2", assessment.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign Get should be ErrNotFound, got %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo}

	if _, err := svc.Submit(context.Background(), "user-1", "", uniformResponses(2)); err != nil {
		t.Fatalf("Submit first: %v", err)
	}
	second, err := svc.Submit(context.Background(), "user-1", "", uniformResponses(4))
	if err != nil {
		t.Fatalf("Submit second: %v", err)
	}

	list, err := svc.List(context.Background(), "user-1", 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 assessments, got %d", len(list))
	}
	if list[0].ID != second.ID {
		t.Errorf("expected newest first, got %s then %s", list[0].ID, list[1].ID)
	}
}

func TestComputePartialResponses(t *testing.T) {
	result, err := Compute(map[string]int{"gov1": 2, "gov2": 2})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(result.PillarScores) != 1 {
		t.Errorf("pillar scores = %v, want only gov", result.PillarScores)
	}
	if result.OverallScore != result.PillarScores["gov"] {
		t.Errorf("overall %d should equal the single pillar score %d", result.OverallScore, result.PillarScores["gov"])
	}
	if result.Level.Level != result.OSRLLevel {
		t.Errorf("level descriptor %d does not match level %d", result.Level.Level, result.OSRLLevel)
	}
}
