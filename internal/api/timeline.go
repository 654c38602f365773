package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JustJay7/appeal-case-manager/internal/database"
	"github.com/JustJay7/appeal-case-manager/internal/dateparse"
)

type createTimelineEventRequest struct {
	EventDate         string `json:"event_date" binding:"required"`
	EventType         string `json:"event_type" binding:"required"`
	Description       string `json:"description" binding:"required"`
	Significance      string `json:"significance"`
	RelevanceToAppeal string `json:"relevance_to_appeal"`
	DocumentID        *uint  `json:"document_id"`
}

type updateTimelineEventRequest struct {
	EventDate         *string `json:"event_date"`
	EventType         *string `json:"event_type"`
	Description       *string `json:"description"`
	Significance      *string `json:"significance"`
	RelevanceToAppeal *string `json:"relevance_to_appeal"`
}

// CreateTimelineEvent records a dated event on a case. The date string is
// parsed flexibly; a parse failure echoes the offending value back as a 400.
func (h *Handlers) CreateTimelineEvent(c *gin.Context) {
	caseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if _, ok := h.loadCase(c, caseID); !ok {
		return
	}

	var req createTimelineEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorDetails(c, http.StatusBadRequest, "Invalid input data", err)
		return
	}

	eventDate, err := dateparse.Parse(req.EventDate)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}

	event := database.TimelineEvent{
		CaseID:            caseID,
		DocumentID:        req.DocumentID,
		EventDate:         eventDate,
		EventType:         req.EventType,
		Description:       req.Description,
		Significance:      defaultString(req.Significance, "Medium"),
		RelevanceToAppeal: req.RelevanceToAppeal,
	}

	if err := h.db.Create(&event).Error; err != nil {
		errorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	h.logger.Info("Created timeline event", "event_id", event.ID, "case_id", caseID)
	c.JSON(http.StatusCreated, event)
}

// ListCaseTimeline returns a case's events in chronological order.
func (h *Handlers) ListCaseTimeline(c *gin.Context) {
	caseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if _, ok := h.loadCase(c, caseID); !ok {
		return
	}

	var events []database.TimelineEvent
	if err := h.db.Where("case_id = ?", caseID).Order("event_date ASC").Find(&events).Error; err != nil {
		errorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	h.logger.Info("Retrieved timeline events", "case_id", caseID, "count", len(events))
	c.JSON(http.StatusOK, events)
}

// GetTimelineEvent returns one event by id.
func (h *Handlers) GetTimelineEvent(c *gin.Context) {
	event, ok := h.loadTimelineEvent(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, event)
}

// UpdateTimelineEvent applies a whitelisted partial update.
func (h *Handlers) UpdateTimelineEvent(c *gin.Context) {
	event, ok := h.loadTimelineEvent(c)
	if !ok {
		return
	}

	var req updateTimelineEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorDetails(c, http.StatusBadRequest, "Invalid input data", err)
		return
	}

	if req.EventDate != nil {
		eventDate, err := dateparse.Parse(*req.EventDate)
		if err != nil {
			errorJSON(c, http.StatusBadRequest, err.Error())
			return
		}
		event.EventDate = eventDate
	}
	if req.EventType != nil {
		event.EventType = *req.EventType
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Significance != nil {
		event.Significance = *req.Significance
	}
	if req.RelevanceToAppeal != nil {
		event.RelevanceToAppeal = *req.RelevanceToAppeal
	}

	if err := h.db.Save(event).Error; err != nil {
		errorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	h.logger.Info("Updated timeline event", "event_id", event.ID)
	c.JSON(http.StatusOK, event)
}

// DeleteTimelineEvent removes one event by id.
func (h *Handlers) DeleteTimelineEvent(c *gin.Context) {
	event, ok := h.loadTimelineEvent(c)
	if !ok {
		return
	}

	if err := h.db.Delete(&database.TimelineEvent{}, event.ID).Error; err != nil {
		errorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	h.logger.Info("Deleted timeline event", "event_id", event.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Timeline event deleted successfully"})
}

func (h *Handlers) loadTimelineEvent(c *gin.Context) (*database.TimelineEvent, bool) {
	eventID, ok := paramID(c, "id")
	if !ok {
		return nil, false
	}

	var event database.TimelineEvent
	if err := h.db.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			errorJSON(c, http.StatusNotFound, "Timeline event not found")
		} else {
			errorDetails(c, http.StatusInternalServerError, "Database error", err)
		}
		return nil, false
	}
	return &event, true
}
