package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JustJay7/appeal-case-manager/internal/analysis"
	"github.com/JustJay7/appeal-case-manager/internal/database"
)

// GenerateReport composes a barrister report from the case's existing legal
// analyses. A case with no analyses is a client error. When the request
// carries a valid token the report is attributed to that user.
func (h *Handlers) GenerateReport(c *gin.Context) {
	caseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	kase, ok := h.loadCase(c, caseID)
	if !ok {
		return
	}

	var analyses []database.LegalAnalysis
	if err := h.db.Where("case_id = ?", caseID).Find(&analyses).Error; err != nil {
		errorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	if len(analyses) == 0 {
		errorJSON(c, http.StatusBadRequest, "No legal analyses found. Please run analysis first.")
		return
	}

	generatedBy := ""
	if claims, err := h.tokenClaims(c); err == nil {
		generatedBy = claims.Username
	}

	report := analysis.ComposeReport(kase, analyses, generatedBy)

	if err := h.db.Create(&report).Error; err != nil {
		errorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	h.logger.Info("Generated barrister report", "report_id", report.ID, "case_id", caseID)
	c.JSON(http.StatusCreated, report)
}

// ListCaseReports returns a case's reports newest-first.
func (h *Handlers) ListCaseReports(c *gin.Context) {
	caseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if _, ok := h.loadCase(c, caseID); !ok {
		return
	}

	var reports []database.BarristerReport
	if err := h.db.Where("case_id = ?", caseID).Order("generated_at DESC").Find(&reports).Error; err != nil {
		errorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	h.logger.Info("Retrieved barrister reports", "case_id", caseID, "count", len(reports))
	c.JSON(http.StatusOK, reports)
}

// GetReport returns one barrister report by id.
func (h *Handlers) GetReport(c *gin.Context) {
	report, ok := h.loadReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report)
}

// DownloadReport renders the report as a PDF attachment.
func (h *Handlers) DownloadReport(c *gin.Context) {
	report, ok := h.loadReport(c)
	if !ok {
		return
	}

	data, err := analysis.RenderPDF(report)
	if err != nil {
		errorDetails(c, http.StatusInternalServerError, "Failed to render report", err)
		return
	}

	h.logger.Info("Downloading barrister report", "report_id", report.ID)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="report_%d.pdf"`, report.ID))
	c.Data(http.StatusOK, "application/pdf", data)
}

// DeleteReport removes one barrister report by id.
func (h *Handlers) DeleteReport(c *gin.Context) {
	report, ok := h.loadReport(c)
	if !ok {
		return
	}

	if err := h.db.Delete(&database.BarristerReport{}, report.ID).Error; err != nil {
		errorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	h.logger.Info("Deleted barrister report", "report_id", report.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Barrister report deleted successfully"})
}

func (h *Handlers) loadReport(c *gin.Context) (*database.BarristerReport, bool) {
	reportID, ok := paramID(c, "id")
	if !ok {
		return nil, false
	}

	var report database.BarristerReport
	if err := h.db.First(&report, reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			errorJSON(c, http.StatusNotFound, "Barrister report not found")
		} else {
			errorDetails(c, http.StatusInternalServerError, "Database error", err)
		}
		return nil, false
	}
	return &report, true
}
