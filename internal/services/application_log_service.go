package services

import (
	"errors"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	apperrors "jobboard/internal/errors"
	"jobboard/internal/models"
	"jobboard/internal/pagination"
)

// applicationLogService handles direct access to the audit trail.
type applicationLogService struct {
	db *gorm.DB
}

// NewApplicationLogService creates a new ApplicationLogServicer.
func NewApplicationLogService(db *gorm.DB) ApplicationLogServicer {
	return &applicationLogService{db: db}
}

// CreateEntry inserts an audit trail entry directly. Unlike submission,
// an oversized cover letter is rejected here, not truncated.
func (s *applicationLogService) CreateEntry(fields ApplicationLogFields) (*models.ApplicationLog, error) {
	if fields.ApplicationID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "application ID is required")
	}
	if utf8.RuneCountInString(fields.CoverLetter) > models.MaxCoverLetterLen {
		return nil, apperrors.ErrCoverLetterTooLong
	}

	sentAt := time.Now()
	if fields.SentAt != nil {
		sentAt = *fields.SentAt
	}

	entry := &models.ApplicationLog{
		ApplicationID:      fields.ApplicationID,
		ActorID:            fields.ActorID,
		Status:             fields.Status,
		CandidateLastName:  fields.CandidateLastName,
		CandidateFirstName: fields.CandidateFirstName,
		CV:                 fields.CV,
		CoverLetter:        fields.CoverLetter,
		Note:               fields.Note,
		SentAt:             sentAt,
	}

	if err := s.db.Create(entry).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entry, nil
}

// GetEntries retrieves a paginated list of all audit trail entries.
func (s *applicationLogService) GetEntries(page pagination.PageRequest) (*pagination.PageResponse[models.ApplicationLog], error) {
	page.Defaults()

	base := s.db.Model(&models.ApplicationLog{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.ApplicationLog
	if err := base.Scopes(pagination.Paginate(page)).
		Order("sent_at DESC").
		Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(entries, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetEntryByID retrieves a single audit trail entry.
func (s *applicationLogService) GetEntryByID(id uint) (*models.ApplicationLog, error) {
	var entry models.ApplicationLog
	if err := s.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationLogNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &entry, nil
}

// GetEntriesByApplication retrieves an application's full trail in
// chronological order.
func (s *applicationLogService) GetEntriesByApplication(applicationID uint) ([]models.ApplicationLog, error) {
	var entries []models.ApplicationLog
	if err := s.db.Where("application_id = ?", applicationID).
		Order("sent_at ASC").
		Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entries, nil
}

// DeleteEntry hard-deletes an audit trail entry.
func (s *applicationLogService) DeleteEntry(id uint) error {
	result := s.db.Delete(&models.ApplicationLog{}, id)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrApplicationLogNotFound
	}
	return nil
}
