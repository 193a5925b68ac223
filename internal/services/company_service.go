package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "jobboard/internal/errors"
	"jobboard/internal/models"
	"jobboard/internal/pagination"
)

// companyService handles company-related business logic.
type companyService struct {
	db *gorm.DB
}

// NewCompanyService creates a new CompanyServicer.
func NewCompanyService(db *gorm.DB) CompanyServicer {
	return &companyService{db: db}
}

// CreateCompany creates a new company.
func (s *companyService) CreateCompany(name, description, city, website string) (*models.Company, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}

	company := &models.Company{
		Name:        name,
		Description: description,
		City:        city,
		Website:     website,
	}

	if err := s.db.Create(company).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return company, nil
}

// GetCompanies retrieves a paginated list of companies.
func (s *companyService) GetCompanies(page pagination.PageRequest) (*pagination.PageResponse[models.Company], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Company{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var companies []models.Company
	if err := s.db.Scopes(pagination.Paginate(page)).Find(&companies).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(companies, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetCompanyByID retrieves a company by ID.
func (s *companyService) GetCompanyByID(id uint) (*models.Company, error) {
	var company models.Company
	if err := s.db.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &company, nil
}

// UpdateCompany replaces a company's fields.
func (s *companyService) UpdateCompany(id uint, name, description, city, website string) (*models.Company, error) {
	company, err := s.GetCompanyByID(id)
	if err != nil {
		return nil, err
	}

	company.Name = name
	company.Description = description
	company.City = city
	company.Website = website

	if err := s.db.Save(company).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return company, nil
}

// DeleteCompany hard-deletes a company.
func (s *companyService) DeleteCompany(id uint) error {
	result := s.db.Delete(&models.Company{}, id)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrCompanyNotFound
	}
	return nil
}
