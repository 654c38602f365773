package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JustJay7/appeal-case-manager/internal/analysis"
	"github.com/JustJay7/appeal-case-manager/internal/database"
)

type updateAnalysisRequest struct {
	GroundOfMerit        *string `json:"ground_of_merit"`
	LegalBasis           *string `json:"legal_basis"`
	StrengthAssessment   *string `json:"strength_assessment"`
	NSWLawReferences     *string `json:"nsw_law_references"`
	FederalLawReferences *string `json:"federal_law_references"`
	SupportingEvidence   *string `json:"supporting_evidence"`
	AnalysisSummary      *string `json:"analysis_summary"`
}

// AnalyzeCase attaches the sample grounds-of-merit analyses to a case. Each
// invocation appends a fresh set of three.
func (h *Handlers) AnalyzeCase(c *gin.Context) {
	caseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if _, ok := h.loadCase(c, caseID); !ok {
		return
	}

	analyses := analysis.GroundsOfMerit(caseID)

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for i := range analyses {
			if err := tx.Create(&analyses[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		errorDetails(c, http.StatusInternalServerError, "Failed to create analyses", err)
		return
	}

	h.logger.Info("Analyzed case", "case_id", caseID, "analyses", len(analyses))
	c.JSON(http.StatusCreated, analyses)
}

// ListCaseAnalyses returns a case's legal analyses newest-first.
func (h *Handlers) ListCaseAnalyses(c *gin.Context) {
	caseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if _, ok := h.loadCase(c, caseID); !ok {
		return
	}

	var analyses []database.LegalAnalysis
	if err := h.db.Where("case_id = ?", caseID).Order("created_at DESC").Find(&analyses).Error; err != nil {
		errorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	h.logger.Info("Retrieved legal analyses", "case_id", caseID, "count", len(analyses))
	c.JSON(http.StatusOK, analyses)
}

// GetAnalysis returns one legal analysis by id.
func (h *Handlers) GetAnalysis(c *gin.Context) {
	record, ok := h.loadAnalysis(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpdateAnalysis applies a whitelisted partial update.
func (h *Handlers) UpdateAnalysis(c *gin.Context) {
	record, ok := h.loadAnalysis(c)
	if !ok {
		return
	}

	var req updateAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorDetails(c, http.StatusBadRequest, "Invalid input data", err)
		return
	}

	if req.GroundOfMerit != nil {
		record.GroundOfMerit = *req.GroundOfMerit
	}
	if req.LegalBasis != nil {
		record.LegalBasis = *req.LegalBasis
	}
	if req.StrengthAssessment != nil {
		record.StrengthAssessment = *req.StrengthAssessment
	}
	if req.NSWLawReferences != nil {
		record.NSWLawReferences = *req.NSWLawReferences
	}
	if req.FederalLawReferences != nil {
		record.FederalLawReferences = *req.FederalLawReferences
	}
	if req.SupportingEvidence != nil {
		record.SupportingEvidence = *req.SupportingEvidence
	}
	if req.AnalysisSummary != nil {
		record.AnalysisSummary = *req.AnalysisSummary
	}

	if err := h.db.Save(record).Error; err != nil {
		errorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	h.logger.Info("Updated legal analysis", "analysis_id", record.ID)
	c.JSON(http.StatusOK, record)
}

// DeleteAnalysis removes one legal analysis by id.
func (h *Handlers) DeleteAnalysis(c *gin.Context) {
	record, ok := h.loadAnalysis(c)
	if !ok {
		return
	}

	if err := h.db.Delete(&database.LegalAnalysis{}, record.ID).Error; err != nil {
		errorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	h.logger.Info("Deleted legal analysis", "analysis_id", record.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Legal analysis deleted successfully"})
}

func (h *Handlers) loadAnalysis(c *gin.Context) (*database.LegalAnalysis, bool) {
	analysisID, ok := paramID(c, "id")
	if !ok {
		return nil, false
	}

	var record database.LegalAnalysis
	if err := h.db.First(&record, analysisID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			errorJSON(c, http.StatusNotFound, "Legal analysis not found")
		} else {
			errorDetails(c, http.StatusInternalServerError, "Database error", err)
		}
		return nil, false
	}
	return &record, true
}
