package assessments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"osrl-backend/internal/scoring"
	"osrl-backend/internal/shared/server/middleware"
	"osrl-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the assessments service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches assessment routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assessments", h.submitAssessment)
	rg.GET("/assessments", h.listAssessments)
	rg.GET("/assessments/:id", h.getAssessment)
}

type submitRequest struct {
	Email     string         `json:"email"`
	Responses map[string]int `json:"responses"`
}

func (h *Handler) submitAssessment(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	assessment, err := h.Svc.Submit(c.Request.Context(), userID, req.Email, req.Responses)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.Is(err, scoring.ErrNoResponses):
			respond.Error(c, http.StatusBadRequest, "validation_error", "at least one response is required", nil)
		case errors.As(err, &verr):
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid responses", []map[string]string{
				{"field": verr.Field, "issue": verr.Issue},
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process assessment", nil)
		}
		return
	}

	c.Set("assessmentId", assessment.ID)
	c.Set("osrlLevel", assessment.OSRLLevel)
	respond.JSON(c, http.StatusCreated, assessment)
}

func (h *Handler) getAssessment(c *gin.Context) {
	assessmentID := c.Param("id")
	if assessmentID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "assessment id is required", nil)
		return
	}

	userID := middleware.UserIDFromContext(c)
	assessment, err := h.Svc.Get(c.Request.Context(), userID, assessmentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "assessment not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch assessment", nil)
		}
		return
	}

	c.Set("assessmentId", assessment.ID)
	respond.JSON(c, http.StatusOK, assessment)
}

func (h *Handler) listAssessments(c *gin.Context) {
	if isGuest, ok := c.Get("isGuest"); ok {
		if guest, ok2 := isGuest.(bool); ok2 && guest {
			respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
			return
		}
	}

	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	assessments, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list assessments", nil)
		return
	}

	resp := make([]gin.H, 0, len(assessments))
	for _, a := range assessments {
		resp = append(resp, gin.H{
			"assessmentId": a.ID,
			"osrlLevel":    a.OSRLLevel,
			"overallScore": a.OverallScore,
			"pillarScores": a.PillarScores,
			"createdAt":    a.CreatedAt,
		})
	}
	respond.JSON(c, http.StatusOK, resp)
}
