package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "jobboard/internal/errors"
	"jobboard/internal/models"
	"jobboard/internal/pagination"
	"jobboard/internal/services"
)

// ApplicationLogHandler handles direct audit trail requests.
type ApplicationLogHandler struct {
	logService services.ApplicationLogServicer
}

// NewApplicationLogHandler creates a new ApplicationLogHandler.
func NewApplicationLogHandler(logService services.ApplicationLogServicer) *ApplicationLogHandler {
	return &ApplicationLogHandler{logService: logService}
}

// CreateApplicationLogRequest represents the payload for creating an audit
// entry directly. Oversized cover letters are rejected here, not truncated.
type CreateApplicationLogRequest struct {
	ApplicationID      uint    `json:"application_id" binding:"required"`
	ActorID            *uint   `json:"actor_id"`
	Status             string  `json:"status" binding:"omitempty,application_status"`
	CandidateLastName  string  `json:"candidate_last_name" binding:"required,max=100"`
	CandidateFirstName string  `json:"candidate_first_name" binding:"required,max=100"`
	CV                 string  `json:"cv" binding:"max=500"`
	CoverLetter        string  `json:"cover_letter"`
	Note               string  `json:"note" binding:"max=500"`
	SentAt             *string `json:"sent_at"`
}

// CreateApplicationLog handles direct creation of an audit entry.
// @Summary     Create an audit entry
// @Description Create an application log entry directly
// @Tags        application_logs
// @Accept      json
// @Produce     json
// @Param       request body CreateApplicationLogRequest true "Audit entry details"
// @Success     201 {object} models.ApplicationLog "Entry created"
// @Failure     400 {object} ErrorResponse "Invalid input or cover letter too long"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /application_logs [post]
func (h *ApplicationLogHandler) CreateApplicationLog(c *gin.Context) {
	var req CreateApplicationLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fields := services.ApplicationLogFields{
		ApplicationID:      req.ApplicationID,
		ActorID:            req.ActorID,
		Status:             models.ApplicationStatus(req.Status),
		CandidateLastName:  req.CandidateLastName,
		CandidateFirstName: req.CandidateFirstName,
		CV:                 req.CV,
		CoverLetter:        req.CoverLetter,
		Note:               req.Note,
	}

	if req.SentAt != nil && *req.SentAt != "" {
		parsed, err := time.Parse(time.RFC3339, *req.SentAt)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid sent_at format"))
			return
		}
		fields.SentAt = &parsed
	}

	entry, err := h.logService.CreateEntry(fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"application_log": entry})
}

// GetApplicationLogs handles the retrieval of all audit entries.
// @Summary     List audit entries
// @Description Get a paginated list of all application log entries
// @Tags        application_logs
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.ApplicationLog] "Paginated entries"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /application_logs [get]
func (h *ApplicationLogHandler) GetApplicationLogs(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.logService.GetEntries(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetApplicationLogByID handles the retrieval of a single audit entry.
// @Summary     Get audit entry by ID
// @Description Get a specific application log entry by ID
// @Tags        application_logs
// @Produce     json
// @Param       id path int true "Entry ID"
// @Success     200 {object} models.ApplicationLog "Entry details"
// @Failure     400 {object} ErrorResponse "Invalid entry ID"
// @Failure     404 {object} ErrorResponse "Entry not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /application_logs/{id} [get]
func (h *ApplicationLogHandler) GetApplicationLogByID(c *gin.Context) {
	entryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry, err := h.logService.GetEntryByID(entryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application_log": entry})
}

// DeleteApplicationLog handles the deletion of an audit entry.
// @Summary     Delete an audit entry
// @Description Hard-delete an application log entry
// @Tags        application_logs
// @Produce     json
// @Param       id path int true "Entry ID"
// @Success     204 "Entry deleted"
// @Failure     400 {object} ErrorResponse "Invalid entry ID"
// @Failure     404 {object} ErrorResponse "Entry not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /application_logs/{id} [delete]
func (h *ApplicationLogHandler) DeleteApplicationLog(c *gin.Context) {
	entryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.logService.DeleteEntry(entryID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
