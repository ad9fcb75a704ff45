package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"osrl-backend/internal/catalog"
	"osrl-backend/internal/shared/server/respond"
)

// registerCatalogRoutes exposes the static questionnaire content so clients
// render questions and level descriptions from a single source.
func registerCatalogRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{
			"pillars":   catalog.Pillars,
			"questions": catalog.Questions,
			"levels":    catalog.Levels,
		})
	})
}
