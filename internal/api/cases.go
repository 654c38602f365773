package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JustJay7/appeal-case-manager/internal/database"
)

type createCaseRequest struct {
	CaseNumber    string `json:"case_number" binding:"required"`
	DefendantName string `json:"defendant_name" binding:"required"`
	OffenseType   string `json:"offense_type"`
	Court         string `json:"court"`
	Status        string `json:"status"`
}

type updateCaseRequest struct {
	DefendantName *string `json:"defendant_name"`
	OffenseType   *string `json:"offense_type"`
	Court         *string `json:"court"`
	Status        *string `json:"status"`
}

// CreateCase registers a new appeal case. A duplicate case number is a
// conflict.
func (h *Handlers) CreateCase(c *gin.Context) {
	var req createCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorDetails(c, http.StatusBadRequest, "Invalid input data", err)
		return
	}

	var existing database.Case
	err := h.db.Where("case_number = ?", req.CaseNumber).First(&existing).Error
	if err == nil {
		errorJSON(c, http.StatusConflict, "Case number already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		errorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	kase := database.Case{
		CaseNumber:    req.CaseNumber,
		DefendantName: req.DefendantName,
		OffenseType:   defaultString(req.OffenseType, "Murder"),
		Court:         defaultString(req.Court, "NSW Supreme Court"),
		Status:        defaultString(req.Status, "Open"),
	}

	if err := h.db.Create(&kase).Error; err != nil {
		errorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	h.logger.Info("Created new case", "case_number", kase.CaseNumber, "id", kase.ID)
	c.JSON(http.StatusCreated, kase)
}

// ListCases returns all cases newest-first, optionally filtered by status
// and a free-text search across case number, defendant name and offense
// type.
func (h *Handlers) ListCases(c *gin.Context) {
	query := h.db.Model(&database.Case{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"case_number LIKE ? OR defendant_name LIKE ? OR offense_type LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var cases []database.Case
	if err := query.Order("created_at DESC").Find(&cases).Error; err != nil {
		errorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	h.logger.Info("Retrieved cases", "count", len(cases))
	c.JSON(http.StatusOK, cases)
}

// GetCase returns a single case by id.
func (h *Handlers) GetCase(c *gin.Context) {
	caseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	kase, ok := h.loadCase(c, caseID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, kase)
}

// UpdateCase applies a whitelisted partial update and bumps updated_at.
func (h *Handlers) UpdateCase(c *gin.Context) {
	caseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	kase, ok := h.loadCase(c, caseID)
	if !ok {
		return
	}

	var req updateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorDetails(c, http.StatusBadRequest, "Invalid input data", err)
		return
	}

	if req.DefendantName != nil {
		kase.DefendantName = *req.DefendantName
	}
	if req.OffenseType != nil {
		kase.OffenseType = *req.OffenseType
	}
	if req.Court != nil {
		kase.Court = *req.Court
	}
	if req.Status != nil {
		kase.Status = *req.Status
	}

	if err := h.db.Save(kase).Error; err != nil {
		errorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	h.logger.Info("Updated case", "case_number", kase.CaseNumber)
	c.JSON(http.StatusOK, kase)
}

// DeleteCase removes a case and cascades to its documents, timeline events,
// analyses and reports. Stored files are removed best-effort; failures are
// logged and do not abort the delete.
func (h *Handlers) DeleteCase(c *gin.Context) {
	caseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	kase, ok := h.loadCase(c, caseID)
	if !ok {
		return
	}

	var documents []database.Document
	if err := h.db.Where("case_id = ?", caseID).Find(&documents).Error; err != nil {
		errorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	for _, doc := range documents {
		if !h.store.Exists(doc.FilePath) {
			continue
		}
		if err := h.store.Remove(doc.FilePath); err != nil {
			h.logger.Warn("Could not delete file", "path", doc.FilePath, "error", err)
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&database.TimelineEvent{},
			&database.LegalAnalysis{},
			&database.BarristerReport{},
			&database.Document{},
		} {
			if err := tx.Where("case_id = ?", caseID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&database.Case{}, caseID).Error
	})
	if err != nil {
		errorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	h.logger.Info("Deleted case", "case_number", kase.CaseNumber)
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Case %s deleted successfully", kase.CaseNumber)})
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
