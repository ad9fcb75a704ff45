package assessments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	assessment := Assessment{
		ID:           "a1b2c3",
		UserID:       "user-1",
		Email:        "ana@example.com",
		Responses:    map[string]int{"gov1": 3},
		OSRLLevel:    4,
		OverallScore: 60,
		PillarScores: map[string]int{"gov": 60},
		Result:       &Result{OSRLLevel: 4, OverallScore: 60},
		CreatedAt:    time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO assessments").
		WithArgs(
			assessment.ID,
			assessment.UserID,
			assessment.Email,
			sqlmock.AnyArg(), // responses
			assessment.OSRLLevel,
			assessment.OverallScore,
			sqlmock.AnyArg(), // pillar_scores
			sqlmock.AnyArg(), // result
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), assessment); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Now().UTC()
	resultJSON, err := json.Marshal(Result{OSRLLevel: 5, OverallScore: 68})
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "email", "responses", "osrl_level", "overall_score", "pillar_scores", "result", "created_at",
	}).AddRow(
		"a1b2c3", "user-1", "ana@example.com", `{"gov1":4}`, 5, 68, `{"gov":68}`, string(resultJSON), created,
	)
	mock.ExpectQuery("SELECT id, user_id, email").
		WithArgs("a1b2c3").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "a1b2c3")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.OSRLLevel != 5 || got.OverallScore != 68 {
		t.Errorf("scores = %d/%d, want 5/68", got.OSRLLevel, got.OverallScore)
	}
	if got.Responses["gov1"] != 4 {
		t.Errorf("responses = %v", got.Responses)
	}
	if got.PillarScores["gov"] != 68 {
		t.Errorf("pillar scores = %v", got.PillarScores)
	}
	if got.Result == nil || got.Result.OSRLLevel != 5 {
		t.Errorf("result = %+v", got.Result)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, user_id, email").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "email", "responses", "osrl_level", "overall_score", "pillar_scores", "result", "created_at",
		}))

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "email", "responses", "osrl_level", "overall_score", "pillar_scores", "result", "created_at",
	}).
		AddRow("a2", "user-1", "", `{"gov1":4}`, 5, 68, `{"gov":68}`, `{}`, created).
		AddRow("a1", "user-1", "", `{"gov1":2}`, 2, 40, `{"gov":40}`, `{}`, created.Add(-time.Hour))

	mock.ExpectQuery("SELECT id, user_id, email").
		WithArgs("user-1", 20, 0).
		WillReturnRows(rows)

	list, err := repo.ListByUser(context.Background(), "user-1", 0, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 2 || list[0].ID != "a2" {
		t.Fatalf("list = %+v", list)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
