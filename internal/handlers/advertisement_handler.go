package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	apperrors "jobboard/internal/errors"
	"jobboard/internal/pagination"
	"jobboard/internal/services"
)

// AdvertisementHandler handles job posting requests.
type AdvertisementHandler struct {
	advertisementService services.AdvertisementServicer
}

// NewAdvertisementHandler creates a new AdvertisementHandler.
func NewAdvertisementHandler(advertisementService services.AdvertisementServicer) *AdvertisementHandler {
	return &AdvertisementHandler{advertisementService: advertisementService}
}

// AdvertisementRequest represents the payload for creating or updating an
// advertisement. Updates replace the full state.
type AdvertisementRequest struct {
	Title              string  `json:"title" binding:"required,max=200"`
	ShortDescription   string  `json:"short_description" binding:"required,max=500"`
	Description        string  `json:"description" binding:"required"`
	PublishDate        string  `json:"publish_date" binding:"required"`
	CompanyID          uint    `json:"company_id" binding:"required"`
	EmploymentType     *string `json:"employment_type" binding:"omitempty,employment_type"`
	WorkMode           *string `json:"work_mode" binding:"omitempty,work_mode"`
	SalaryMin          *int    `json:"salary_min" binding:"omitempty,gte=0"`
	SalaryMax          *int    `json:"salary_max" binding:"omitempty,gte=0"`
	RequiredExperience *string `json:"required_experience" binding:"omitempty,max=200"`
}

func (r *AdvertisementRequest) toFields() (services.AdvertisementFields, error) {
	publishDate, err := time.Parse(time.RFC3339, r.PublishDate)
	if err != nil {
		publishDate, err = time.Parse("2006-01-02", r.PublishDate)
		if err != nil {
			return services.AdvertisementFields{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid publish_date format")
		}
	}

	return services.AdvertisementFields{
		Title:              r.Title,
		ShortDescription:   r.ShortDescription,
		Description:        r.Description,
		PublishDate:        publishDate,
		CompanyID:          r.CompanyID,
		EmploymentType:     r.EmploymentType,
		WorkMode:           r.WorkMode,
		SalaryMin:          r.SalaryMin,
		SalaryMax:          r.SalaryMax,
		RequiredExperience: r.RequiredExperience,
	}, nil
}

// requireAdmin resolves the caller and checks the advertisement gate.
func requireAdmin(c *gin.Context) error {
	identity, err := getIdentity(c)
	if err != nil {
		return err
	}
	if !auth.CanManageAdvertisements(identity) {
		return apperrors.ErrForbidden
	}
	return nil
}

// CreateAdvertisement handles the creation of a new job posting.
// @Summary     Create an advertisement
// @Description Create a new job posting; admin only
// @Tags        advertisements
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AdvertisementRequest true "Advertisement details"
// @Success     201 {object} models.Advertisement "Advertisement created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin required"
// @Failure     404 {object} ErrorResponse "Company not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /advertisements [post]
func (h *AdvertisementHandler) CreateAdvertisement(c *gin.Context) {
	var req AdvertisementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := requireAdmin(c); err != nil {
		respondWithError(c, err)
		return
	}

	fields, err := req.toFields()
	if err != nil {
		respondWithError(c, err)
		return
	}

	advertisement, err := h.advertisementService.CreateAdvertisement(fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/advertisements/%d", advertisement.ID))
	c.JSON(http.StatusCreated, gin.H{"advertisement": advertisement})
}

// GetAdvertisements handles the retrieval of all advertisements.
// @Summary     List advertisements
// @Description Get a paginated list of job postings, newest first
// @Tags        advertisements
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Advertisement] "Paginated advertisements"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /advertisements [get]
func (h *AdvertisementHandler) GetAdvertisements(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.advertisementService.GetAdvertisements(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAdvertisementByID handles the retrieval of a single advertisement.
// @Summary     Get advertisement by ID
// @Description Get a specific job posting by ID
// @Tags        advertisements
// @Produce     json
// @Param       id path int true "Advertisement ID"
// @Success     200 {object} models.Advertisement "Advertisement details"
// @Failure     400 {object} ErrorResponse "Invalid advertisement ID"
// @Failure     404 {object} ErrorResponse "Advertisement not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /advertisements/{id} [get]
func (h *AdvertisementHandler) GetAdvertisementByID(c *gin.Context) {
	advertisementID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	advertisement, err := h.advertisementService.GetAdvertisementByID(advertisementID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"advertisement": advertisement})
}

// UpdateAdvertisement handles a full-state advertisement update.
// @Summary     Update an advertisement
// @Description Replace a job posting's fields; admin only
// @Tags        advertisements
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Advertisement ID"
// @Param       request body AdvertisementRequest true "Target advertisement state"
// @Success     200 {object} models.Advertisement "Updated advertisement"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin required"
// @Failure     404 {object} ErrorResponse "Advertisement not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /advertisements/{id} [put]
func (h *AdvertisementHandler) UpdateAdvertisement(c *gin.Context) {
	advertisementID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AdvertisementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := requireAdmin(c); err != nil {
		respondWithError(c, err)
		return
	}

	fields, err := req.toFields()
	if err != nil {
		respondWithError(c, err)
		return
	}

	advertisement, err := h.advertisementService.UpdateAdvertisement(advertisementID, fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"advertisement": advertisement})
}

// DeleteAdvertisement handles the deletion of an advertisement.
// @Summary     Delete an advertisement
// @Description Hard-delete a job posting; admin only
// @Tags        advertisements
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Advertisement ID"
// @Success     204 "Advertisement deleted"
// @Failure     400 {object} ErrorResponse "Invalid advertisement ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin required"
// @Failure     404 {object} ErrorResponse "Advertisement not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /advertisements/{id} [delete]
func (h *AdvertisementHandler) DeleteAdvertisement(c *gin.Context) {
	advertisementID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := requireAdmin(c); err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.advertisementService.DeleteAdvertisement(advertisementID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
