package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JustJay7/appeal-case-manager/internal/analysis"
	"github.com/JustJay7/appeal-case-manager/internal/database"
	"github.com/JustJay7/appeal-case-manager/internal/storage"
)

// UploadDocument accepts a multipart upload for a case, stores the file
// under the case directory and extracts its text before persisting the
// record. Extraction failure degrades to a diagnostic string; the record is
// still created.
func (h *Handlers) UploadDocument(c *gin.Context) {
	caseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if _, ok := h.loadCase(c, caseID); !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "No file provided")
		return
	}

	filename := storage.SanitizeFilename(fileHeader.Filename)
	if filename == "" {
		errorJSON(c, http.StatusBadRequest, "No file selected")
		return
	}

	ext := storage.Extension(filename)
	if ext == "" {
		errorJSON(c, http.StatusBadRequest, "Invalid filename. Please provide a valid file with an extension.")
		return
	}
	if !h.cfg.ExtensionAllowed(ext) {
		errorJSON(c, http.StatusBadRequest, "File type not allowed. Allowed types: PDF, DOCX, TXT")
		return
	}

	title := c.PostForm("title")
	if title == "" {
		errorJSON(c, http.StatusBadRequest, "Document title is required")
		return
	}
	documentType := c.DefaultPostForm("document_type", "Other")

	src, err := fileHeader.Open()
	if err != nil {
		errorDetails(c, http.StatusInternalServerError, "Failed to read upload", err)
		return
	}
	defer src.Close()

	filePath, fileSize, err := h.store.Save(caseID, filename, src)
	if err != nil {
		errorDetails(c, http.StatusInternalServerError, "Failed to save file", err)
		return
	}

	extractedText := h.extractor.FromFile(filePath, ext)

	document := database.Document{
		CaseID:        caseID,
		Title:         title,
		DocumentType:  documentType,
		FilePath:      filePath,
		FileType:      ext,
		FileSize:      fileSize,
		ExtractedText: extractedText,
		UploadDate:    time.Now().UTC(),
	}

	if err := h.db.Create(&document).Error; err != nil {
		errorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	// Timeline entry is best-effort; the upload already succeeded.
	event := analysis.AutoTimelineEvent(&document)
	if err := h.db.Create(&event).Error; err != nil {
		h.logger.Error("Failed to create timeline event", "document_id", document.ID, "error", err)
	}

	h.logger.Info("Uploaded document", "document_id", document.ID, "case_id", caseID, "size", fileSize)
	c.JSON(http.StatusCreated, document)
}

// ListCaseDocuments returns a case's documents newest-first.
func (h *Handlers) ListCaseDocuments(c *gin.Context) {
	caseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if _, ok := h.loadCase(c, caseID); !ok {
		return
	}

	var documents []database.Document
	if err := h.db.Where("case_id = ?", caseID).Order("upload_date DESC").Find(&documents).Error; err != nil {
		errorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	h.logger.Info("Retrieved documents", "case_id", caseID, "count", len(documents))
	c.JSON(http.StatusOK, documents)
}

// GetDocument returns a document record by id.
func (h *Handlers) GetDocument(c *gin.Context) {
	document, ok := h.loadDocument(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, document)
}

// DownloadDocument streams the stored file as an attachment named from the
// record. A record whose file is missing on disk answers 404.
func (h *Handlers) DownloadDocument(c *gin.Context) {
	document, ok := h.loadDocument(c)
	if !ok {
		return
	}

	if !h.store.Exists(document.FilePath) {
		errorJSON(c, http.StatusNotFound, "File not found on server")
		return
	}

	h.logger.Info("Downloading document", "document_id", document.ID)
	c.FileAttachment(document.FilePath, fmt.Sprintf("%s.%s", document.Title, document.FileType))
}

// DeleteDocument removes the on-disk file first; when that fails the record
// is preserved and an error returned. Timeline events referencing the
// document keep their rows with the reference nulled.
func (h *Handlers) DeleteDocument(c *gin.Context) {
	document, ok := h.loadDocument(c)
	if !ok {
		return
	}

	if h.store.Exists(document.FilePath) {
		if err := h.store.Remove(document.FilePath); err != nil {
			h.logger.Error("Failed to delete file", "path", document.FilePath, "error", err)
			errorDetails(c, http.StatusInternalServerError, "Failed to delete file from disk", err)
			return
		}
		h.logger.Info("Deleted file", "path", document.FilePath)
	} else {
		h.logger.Warn("File not found on disk", "path", document.FilePath)
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&database.TimelineEvent{}).
			Where("document_id = ?", document.ID).
			Update("document_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&database.Document{}, document.ID).Error
	})
	if err != nil {
		errorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	h.logger.Info("Deleted document", "document_id", document.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}

func (h *Handlers) loadDocument(c *gin.Context) (*database.Document, bool) {
	documentID, ok := paramID(c, "id")
	if !ok {
		return nil, false
	}

	var document database.Document
	if err := h.db.First(&document, documentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			errorJSON(c, http.StatusNotFound, "Document not found")
		} else {
			errorDetails(c, http.StatusInternalServerError, "Database error", err)
		}
		return nil, false
	}
	return &document, true
}
