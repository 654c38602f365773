package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JustJay7/appeal-case-manager/internal/config"
	"github.com/JustJay7/appeal-case-manager/internal/extract"
	"github.com/JustJay7/appeal-case-manager/internal/storage"
	"github.com/JustJay7/appeal-case-manager/pkg/logger"
)

// SetupRoutes configures all application routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, store *storage.Store, extractor *extract.Extractor, logger *logger.Logger, cfg *config.Config) {
	// Create handlers
	h := NewHandlers(db, store, extractor, logger, cfg)

	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", h.HealthCheck)

		// Auth endpoints
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.GET("/auth/me", h.RequireAuth(), h.Me)

		// Case endpoints
		api.POST("/cases", h.CreateCase)
		api.GET("/cases", h.ListCases)
		api.GET("/cases/:id", h.GetCase)
		api.PUT("/cases/:id", h.UpdateCase)
		api.DELETE("/cases/:id", h.DeleteCase)

		// Document endpoints
		api.POST("/cases/:id/documents", h.UploadDocument)
		api.GET("/cases/:id/documents", h.ListCaseDocuments)
		api.GET("/documents/:id", h.GetDocument)
		api.GET("/documents/:id/download", h.DownloadDocument)
		api.DELETE("/documents/:id", h.DeleteDocument)

		// Timeline endpoints
		api.POST("/cases/:id/timeline", h.CreateTimelineEvent)
		api.GET("/cases/:id/timeline", h.ListCaseTimeline)
		api.GET("/timeline/:id", h.GetTimelineEvent)
		api.PUT("/timeline/:id", h.UpdateTimelineEvent)
		api.DELETE("/timeline/:id", h.DeleteTimelineEvent)

		// Legal analysis endpoints
		api.POST("/cases/:id/analyze", h.AnalyzeCase)
		api.GET("/cases/:id/analyses", h.ListCaseAnalyses)
		api.GET("/analyses/:id", h.GetAnalysis)
		api.PUT("/analyses/:id", h.UpdateAnalysis)
		api.DELETE("/analyses/:id", h.DeleteAnalysis)

		// Barrister report endpoints
		api.POST("/cases/:id/reports", h.GenerateReport)
		api.GET("/cases/:id/reports", h.ListCaseReports)
		api.GET("/reports/:id", h.GetReport)
		api.GET("/reports/:id/download", h.DownloadReport)
		api.DELETE("/reports/:id", h.DeleteReport)
	}
}
