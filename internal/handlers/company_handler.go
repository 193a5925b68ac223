package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "jobboard/internal/errors"
	"jobboard/internal/pagination"
	"jobboard/internal/services"
)

// CompanyHandler handles company requests.
type CompanyHandler struct {
	companyService services.CompanyServicer
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyService services.CompanyServicer) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// CompanyRequest represents the payload for creating or updating a company.
type CompanyRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=2000"`
	City        string `json:"city" binding:"max=100"`
	Website     string `json:"website" binding:"omitempty,url,max=500"`
}

// CreateCompany handles the creation of a new company.
// @Summary     Create a company
// @Description Create a new company; admin only
// @Tags        companies
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CompanyRequest true "Company details"
// @Success     201 {object} models.Company "Company created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin required"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := requireAdmin(c); err != nil {
		respondWithError(c, err)
		return
	}

	company, err := h.companyService.CreateCompany(req.Name, req.Description, req.City, req.Website)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/companies/%d", company.ID))
	c.JSON(http.StatusCreated, gin.H{"company": company})
}

// GetCompanies handles the retrieval of all companies.
// @Summary     List companies
// @Description Get a paginated list of companies
// @Tags        companies
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Company] "Paginated companies"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /companies [get]
func (h *CompanyHandler) GetCompanies(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.companyService.GetCompanies(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCompanyByID handles the retrieval of a single company.
// @Summary     Get company by ID
// @Description Get a specific company by ID
// @Tags        companies
// @Produce     json
// @Param       id path int true "Company ID"
// @Success     200 {object} models.Company "Company details"
// @Failure     400 {object} ErrorResponse "Invalid company ID"
// @Failure     404 {object} ErrorResponse "Company not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /companies/{id} [get]
func (h *CompanyHandler) GetCompanyByID(c *gin.Context) {
	companyID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	company, err := h.companyService.GetCompanyByID(companyID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": company})
}

// UpdateCompany handles a company update.
// @Summary     Update a company
// @Description Replace a company's fields; admin only
// @Tags        companies
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Company ID"
// @Param       request body CompanyRequest true "Target company state"
// @Success     200 {object} models.Company "Updated company"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin required"
// @Failure     404 {object} ErrorResponse "Company not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /companies/{id} [put]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	companyID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := requireAdmin(c); err != nil {
		respondWithError(c, err)
		return
	}

	company, err := h.companyService.UpdateCompany(companyID, req.Name, req.Description, req.City, req.Website)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": company})
}

// DeleteCompany handles the deletion of a company.
// @Summary     Delete a company
// @Description Hard-delete a company; admin only
// @Tags        companies
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Company ID"
// @Success     204 "Company deleted"
// @Failure     400 {object} ErrorResponse "Invalid company ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin required"
// @Failure     404 {object} ErrorResponse "Company not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /companies/{id} [delete]
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	companyID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := requireAdmin(c); err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.companyService.DeleteCompany(companyID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
