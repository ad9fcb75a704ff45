package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"osrl-backend/internal/assessments"
	googleauth "osrl-backend/internal/auth"
	"osrl-backend/internal/shared/config"
	"osrl-backend/internal/shared/metrics"
	"osrl-backend/internal/shared/server/middleware"
	"osrl-backend/internal/shared/server/respond"
	"osrl-backend/internal/shared/storage/db"
	"osrl-backend/internal/users"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(cfg.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"SUBMIT":  {Rate: 0.5, Burst: 3},
				"DEFAULT": {Rate: 5, Burst: 20},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && strings.HasSuffix(c.FullPath(), "/assessments") {
					return "SUBMIT"
				}
				return "DEFAULT"
			},
		}),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var assessmentRepo assessments.Repo
	var userRepo users.Repo
	if sqlDB != nil {
		assessmentRepo = &assessments.PGRepo{DB: sqlDB}
		userRepo = &users.PGRepo{DB: sqlDB}
	} else {
		assessmentRepo = assessments.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}
	assessmentSvc := &assessments.Service{Repo: assessmentRepo}
	assessmentHandler := assessments.NewHandler(assessmentSvc)
	userSvc := users.NewService(userRepo)
	userHandler := users.NewHandler(userSvc)
	googleAuthSvc := googleauth.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL, userSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	googleAuthSvc.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)
	assessmentHandler.RegisterRoutes(api)
	registerCatalogRoutes(api)

	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
