package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "jobboard/internal/errors"
	"jobboard/internal/models"
	"jobboard/internal/pagination"
	"jobboard/internal/services"
)

// ApplicationHandler handles job application requests.
type ApplicationHandler struct {
	applicationService services.ApplicationServicer
	logService         services.ApplicationLogServicer
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(applicationService services.ApplicationServicer, logService services.ApplicationLogServicer) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService, logService: logService}
}

// SubmitApplicationRequest represents the request payload for submitting an application.
type SubmitApplicationRequest struct {
	AdvertisementID uint   `json:"advertisement_id" binding:"required"`
	CoverLetter     string `json:"cover_letter"`
	CVPath          string `json:"cv_path" binding:"max=500"`
}

// UpdateApplicationRequest represents the full target state for an application
// update. The whole state is revalidated rather than patching single fields.
type UpdateApplicationRequest struct {
	PersonID        uint    `json:"person_id" binding:"required"`
	AdvertisementID uint    `json:"advertisement_id" binding:"required"`
	Status          string  `json:"status" binding:"required,application_status"`
	HandledBy       *uint   `json:"handled_by"`
	ApplyDate       *string `json:"apply_date"`
}

// ApplicationResponse represents an application in the response.
type ApplicationResponse struct {
	ID              uint   `json:"id"`
	PersonID        uint   `json:"person_id"`
	AdvertisementID uint   `json:"advertisement_id"`
	Status          string `json:"status"`
	ApplyDate       string `json:"apply_date"`
	HandledBy       *uint  `json:"handled_by,omitempty"`
}

// SubmitApplication handles the submission of a new job application.
// @Summary     Submit a job application
// @Description Submit an application to an advertisement for the authenticated user
// @Tags        applications
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SubmitApplicationRequest true "Application details"
// @Success     201 {object} ApplicationResponse "Application created"
// @Failure     400 {object} ErrorResponse "Invalid input or no CV available"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Advertisement or user not found"
// @Failure     409 {object} ErrorResponse "Already applied to this advertisement"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /applications [post]
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	identity, err := getIdentity(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	application, err := h.applicationService.Submit(identity, req.AdvertisementID, req.CoverLetter, req.CVPath)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/applications/%d", application.ID))
	c.JSON(http.StatusCreated, gin.H{"application": application})
}

// UpdateApplication handles a full-state application update.
// @Summary     Update an application
// @Description Replace an application's state (status, handler, ownership)
// @Tags        applications
// @Accept      json
// @Produce     json
// @Param       id path int true "Application ID"
// @Param       request body UpdateApplicationRequest true "Target application state"
// @Success     200 {object} ApplicationResponse "Updated application"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Application not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /applications/{id} [put]
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	applicationID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fields := services.ApplicationUpdateFields{
		PersonID:        req.PersonID,
		AdvertisementID: req.AdvertisementID,
		Status:          models.ApplicationStatus(req.Status),
		HandledBy:       req.HandledBy,
	}

	if req.ApplyDate != nil && *req.ApplyDate != "" {
		parsed, parseErr := time.Parse(time.RFC3339, *req.ApplyDate)
		if parseErr != nil {
			parsed, parseErr = time.Parse("2006-01-02", *req.ApplyDate)
			if parseErr != nil {
				respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid apply_date format"))
				return
			}
		}
		fields.ApplyDate = &parsed
	}

	application, err := h.applicationService.UpdateApplication(applicationID, fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": application})
}

// GetApplications handles the retrieval of all applications.
// @Summary     List applications
// @Description Get a paginated list of all applications
// @Tags        applications
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Application] "Paginated applications"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /applications [get]
func (h *ApplicationHandler) GetApplications(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.applicationService.GetApplications(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetApplicationByID handles the retrieval of a single application.
// @Summary     Get application by ID
// @Description Get a specific application by ID
// @Tags        applications
// @Produce     json
// @Param       id path int true "Application ID"
// @Success     200 {object} ApplicationResponse "Application details"
// @Failure     400 {object} ErrorResponse "Invalid application ID"
// @Failure     404 {object} ErrorResponse "Application not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /applications/{id} [get]
func (h *ApplicationHandler) GetApplicationByID(c *gin.Context) {
	applicationID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	application, err := h.applicationService.GetApplicationByID(applicationID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": application})
}

// GetApplicationsByUser handles the retrieval of one applicant's applications.
// @Summary     List applications by user
// @Description Get a paginated list of one applicant's applications
// @Tags        applications
// @Produce     json
// @Param       user_id   path  int true  "User ID"
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Application] "Paginated applications"
// @Failure     400 {object} ErrorResponse "Invalid user ID"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /applications/user/{user_id} [get]
func (h *ApplicationHandler) GetApplicationsByUser(c *gin.Context) {
	userID, err := parsePathID(c, "user_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.applicationService.GetApplicationsByUser(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetApplicationTrail handles the retrieval of an application's audit trail.
// @Summary     Get an application's audit trail
// @Description Get the chronological list of audit entries for an application
// @Tags        applications
// @Produce     json
// @Param       id path int true "Application ID"
// @Success     200 {array} models.ApplicationLog "Audit trail entries"
// @Failure     400 {object} ErrorResponse "Invalid application ID"
// @Failure     404 {object} ErrorResponse "Application not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /applications/{id}/logs [get]
func (h *ApplicationHandler) GetApplicationTrail(c *gin.Context) {
	applicationID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if _, err := h.applicationService.GetApplicationByID(applicationID); err != nil {
		respondWithError(c, err)
		return
	}

	entries, err := h.logService.GetEntriesByApplication(applicationID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application_logs": entries})
}

// DeleteApplication handles the deletion of an application.
// @Summary     Delete an application
// @Description Hard-delete an application; its audit trail is kept
// @Tags        applications
// @Produce     json
// @Param       id path int true "Application ID"
// @Success     204 "Application deleted"
// @Failure     400 {object} ErrorResponse "Invalid application ID"
// @Failure     404 {object} ErrorResponse "Application not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /applications/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	applicationID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.applicationService.DeleteApplication(applicationID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
