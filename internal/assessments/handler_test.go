package assessments

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"osrl-backend/internal/catalog"
	"osrl-backend/internal/shared/server/middleware"
)

func setupRouter(t *testing.T) (*gin.Engine, *MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := NewMemoryRepo()
	handler := NewHandler(&Service{Repo: repo})

	r := gin.New()
	r.Use(middleware.Auth("dev"))
	handler.RegisterRoutes(r.Group("/api/v1"))
	return r, repo
}

func postAssessment(t *testing.T, r *gin.Engine, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assessments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestSubmitAssessmentEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	responses := make(map[string]int, len(catalog.Questions))
	for _, q := range catalog.Questions {
		responses[q.ID] = 3
	}
	resp := postAssessment(t, r, gin.H{"email": "ana@example.com", "responses": responses})

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created Assessment
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assessment id")
	}
	if created.UserID != "guest:test-guest" {
		t.Errorf("user id = %q", created.UserID)
	}
	if created.OSRLLevel != 4 {
		t.Errorf("osrl level = %d, want 4", created.OSRLLevel)
	}
	if created.Result == nil || len(created.Result.Insights) != len(catalog.Questions) {
		t.Errorf("expected full result in response")
	}
}

func TestSubmitAssessmentValidationError(t *testing.T) {
	r, _ := setupRouter(t)

	resp := postAssessment(t, r, gin.H{"responses": map[string]int{"gov9": 3}})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	var body struct {
		Error struct {
			Code    string              `json:"code"`
			Details []map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error.Code != "validation_error" {
		t.Errorf("code = %q", body.Error.Code)
	}
	if len(body.Error.Details) != 1 || body.Error.Details[0]["field"] != "gov9" {
		t.Errorf("details = %v", body.Error.Details)
	}
}

func TestSubmitAssessmentEmptyResponses(t *testing.T) {
	r, _ := setupRouter(t)
	resp := postAssessment(t, r, gin.H{"responses": map[string]int{}})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestGetAssessmentEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	created := postAssessment(t, r, gin.H{"responses": map[string]int{"gov1": 2, "gov2": 3}})
	if created.Code != http.StatusCreated {
		t.Fatalf("seed submit failed: %d", created.Code)
	}
	var assessment Assessment
	if err := json.NewDecoder(created.Body).Decode(&assessment); err != nil {
		t.Fatalf("decode created: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assessments/"+assessment.ID, nil)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	// Another identity must not see it.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/assessments/"+assessment.ID, nil)
	req.Header.Set("X-Guest-Id", "other-guest")
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign assessment, got %d", resp.Code)
	}
}

func TestListAssessmentsGuestBlocked(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assessments", nil)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for guest history, got %d", resp.Code)
	}
}
