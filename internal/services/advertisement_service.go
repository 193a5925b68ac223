package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "jobboard/internal/errors"
	"jobboard/internal/models"
	"jobboard/internal/pagination"
)

// advertisementService handles advertisement-related business logic.
type advertisementService struct {
	db *gorm.DB
}

// NewAdvertisementService creates a new AdvertisementServicer.
func NewAdvertisementService(db *gorm.DB) AdvertisementServicer {
	return &advertisementService{db: db}
}

// CreateAdvertisement creates a new job posting for an existing company.
func (s *advertisementService) CreateAdvertisement(fields AdvertisementFields) (*models.Advertisement, error) {
	var count int64
	if err := s.db.Model(&models.Company{}).Where("id = ?", fields.CompanyID).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return nil, apperrors.ErrCompanyNotFound
	}

	advertisement := &models.Advertisement{
		Title:              fields.Title,
		ShortDescription:   fields.ShortDescription,
		Description:        fields.Description,
		PublishDate:        fields.PublishDate,
		CompanyID:          fields.CompanyID,
		EmploymentType:     fields.EmploymentType,
		WorkMode:           fields.WorkMode,
		SalaryMin:          fields.SalaryMin,
		SalaryMax:          fields.SalaryMax,
		RequiredExperience: fields.RequiredExperience,
	}

	if err := s.db.Create(advertisement).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return advertisement, nil
}

// GetAdvertisements retrieves a paginated list of advertisements, newest first.
func (s *advertisementService) GetAdvertisements(page pagination.PageRequest) (*pagination.PageResponse[models.Advertisement], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Advertisement{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var advertisements []models.Advertisement
	if err := s.db.Scopes(pagination.Paginate(page)).
		Order("publish_date DESC").
		Find(&advertisements).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(advertisements, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAdvertisementByID retrieves an advertisement by ID.
func (s *advertisementService) GetAdvertisementByID(id uint) (*models.Advertisement, error) {
	var advertisement models.Advertisement
	if err := s.db.First(&advertisement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAdvertisementNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &advertisement, nil
}

// UpdateAdvertisement replaces an advertisement's fields with the supplied
// target state.
func (s *advertisementService) UpdateAdvertisement(id uint, fields AdvertisementFields) (*models.Advertisement, error) {
	advertisement, err := s.GetAdvertisementByID(id)
	if err != nil {
		return nil, err
	}

	advertisement.Title = fields.Title
	advertisement.ShortDescription = fields.ShortDescription
	advertisement.Description = fields.Description
	advertisement.PublishDate = fields.PublishDate
	advertisement.CompanyID = fields.CompanyID
	advertisement.EmploymentType = fields.EmploymentType
	advertisement.WorkMode = fields.WorkMode
	advertisement.SalaryMin = fields.SalaryMin
	advertisement.SalaryMax = fields.SalaryMax
	advertisement.RequiredExperience = fields.RequiredExperience

	if err := s.db.Save(advertisement).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return advertisement, nil
}

// DeleteAdvertisement hard-deletes an advertisement.
func (s *advertisementService) DeleteAdvertisement(id uint) error {
	result := s.db.Delete(&models.Advertisement{}, id)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrAdvertisementNotFound
	}
	return nil
}
