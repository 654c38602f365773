package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JustJay7/appeal-case-manager/internal/config"
	"github.com/JustJay7/appeal-case-manager/internal/database"
	"github.com/JustJay7/appeal-case-manager/internal/extract"
	"github.com/JustJay7/appeal-case-manager/internal/storage"
	"github.com/JustJay7/appeal-case-manager/pkg/logger"
)

// Handlers holds all HTTP handlers
type Handlers struct {
	db        *gorm.DB
	store     *storage.Store
	extractor *extract.Extractor
	logger    *logger.Logger
	cfg       *config.Config
}

// NewHandlers creates a new handlers instance
func NewHandlers(db *gorm.DB, store *storage.Store, extractor *extract.Extractor, logger *logger.Logger, cfg *config.Config) *Handlers {
	return &Handlers{
		db:        db,
		store:     store,
		extractor: extractor,
		logger:    logger,
		cfg:       cfg,
	}
}

// HealthCheck verifies the persistence layer with a trivial read and reports
// degraded with a 503 when it fails.
func (h *Handlers) HealthCheck(c *gin.Context) {
	var count int64
	dbStatus := "healthy"
	status := "healthy"
	code := http.StatusOK

	if err := h.db.Model(&database.Case{}).Limit(1).Count(&count).Error; err != nil {
		h.logger.Error("Database health check failed", "error", err)
		dbStatus = "unhealthy"
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// errorJSON writes the standard error envelope.
func errorJSON(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// errorDetails writes the error envelope with an underlying cause attached.
func errorDetails(c *gin.Context, status int, message string, err error) {
	c.JSON(status, gin.H{"error": message, "details": err.Error()})
}

// paramID parses a numeric path parameter; a malformed value yields a 400.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// loadCase fetches a case by id or answers 404.
func (h *Handlers) loadCase(c *gin.Context, caseID uint) (*database.Case, bool) {
	var kase database.Case
	if err := h.db.First(&kase, caseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			errorJSON(c, http.StatusNotFound, "Case not found")
		} else {
			errorDetails(c, http.StatusInternalServerError, "Database error", err)
		}
		return nil, false
	}
	return &kase, true
}
