package services

import (
	"errors"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobboard/internal/auth"
	apperrors "jobboard/internal/errors"
	"jobboard/internal/logger"
	"jobboard/internal/models"
	"jobboard/internal/pagination"
)

// applicationService implements the application lifecycle: submission,
// status transitions, and the audit trail written alongside them.
type applicationService struct {
	db *gorm.DB
}

// NewApplicationService creates a new ApplicationServicer.
func NewApplicationService(db *gorm.DB) ApplicationServicer {
	return &applicationService{db: db}
}

// Submit creates a new application for the authenticated applicant together
// with its first audit trail entry. Both rows commit in one transaction so
// no application ever exists without history.
func (s *applicationService) Submit(identity *auth.Identity, advertisementID uint, coverLetter, cvPath string) (*models.Application, error) {
	if !auth.CanSubmitApplication(identity) {
		return nil, apperrors.ErrUnauthorized
	}

	if advertisementID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "advertisement ID is required")
	}

	var advertisement models.Advertisement
	if err := s.db.First(&advertisement, advertisementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAdvertisementNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var applicant models.User
	if err := s.db.First(&applicant, identity.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// An explicitly supplied CV wins over the one stored on the profile.
	cv := cvPath
	if cv == "" {
		cv = applicant.CV
	}
	if cv == "" {
		return nil, apperrors.ErrCVRequired
	}

	var count int64
	if err := s.db.Model(&models.Application{}).
		Where("person_id = ? AND advertisement_id = ?", identity.UserID, advertisementID).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateApplication
	}

	// Truncated, not rejected: submission accepts oversized letters.
	// The cap counts characters, so truncation must not split a rune.
	if utf8.RuneCountInString(coverLetter) > models.MaxCoverLetterLen {
		coverLetter = string([]rune(coverLetter)[:models.MaxCoverLetterLen])
	}

	now := time.Now()
	application := &models.Application{
		PersonID:        identity.UserID,
		AdvertisementID: advertisementID,
		Status:          models.ApplicationStatusSent,
		ApplyDate:       now,
	}

	actorID := identity.UserID
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(application).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		entry := &models.ApplicationLog{
			ApplicationID:      application.ID,
			ActorID:            &actorID,
			Status:             models.ApplicationStatusSent,
			CandidateLastName:  applicant.LastName,
			CandidateFirstName: applicant.FirstName,
			CV:                 cv,
			CoverLetter:        coverLetter,
			Note:               "Initial application submitted by the candidate",
			SentAt:             now,
		}
		if err := tx.Create(entry).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return application, nil
}

// UpdateApplication replaces the application's state with the supplied
// target state. The row is locked for the duration of the transaction so
// two staff members cannot silently overwrite each other's transition.
// The audit trail entry for the transition is appended after commit as a
// best-effort step; its failure is logged, never returned.
func (s *applicationService) UpdateApplication(id uint, fields ApplicationUpdateFields) (*models.Application, error) {
	var application models.Application
	err := s.db.Transaction(func(tx *gorm.DB) error {
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&application, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrApplicationNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		application.PersonID = fields.PersonID
		application.AdvertisementID = fields.AdvertisementID
		application.Status = fields.Status
		application.HandledBy = fields.HandledBy
		if fields.ApplyDate != nil {
			application.ApplyDate = *fields.ApplyDate
		}

		if err := tx.Save(&application).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.appendTransitionEntry(&application)

	return &application, nil
}

// appendTransitionEntry appends a new audit trail entry reflecting the
// transition that just committed. The primary state change stands whether
// or not this succeeds.
func (s *applicationService) appendTransitionEntry(application *models.Application) {
	var applicant models.User
	if err := s.db.First(&applicant, application.PersonID).Error; err != nil {
		logger.Get().Errorw("failed to snapshot applicant for audit entry",
			"error", err,
			"application_id", application.ID,
			"person_id", application.PersonID,
		)
		return
	}

	entry := &models.ApplicationLog{
		ApplicationID:      application.ID,
		ActorID:            application.HandledBy,
		Status:             application.Status,
		CandidateLastName:  applicant.LastName,
		CandidateFirstName: applicant.FirstName,
		CV:                 applicant.CV,
		Note:               "Status updated by staff",
		SentAt:             time.Now(),
	}
	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to append audit entry for transition",
			"error", err,
			"application_id", application.ID,
			"status", application.Status,
		)
	}
}

// GetApplications retrieves a paginated list of all applications.
func (s *applicationService) GetApplications(page pagination.PageRequest) (*pagination.PageResponse[models.Application], error) {
	page.Defaults()

	base := s.db.Model(&models.Application{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var applications []models.Application
	if err := base.Scopes(pagination.Paginate(page)).
		Order("apply_date DESC").
		Find(&applications).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(applications, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetApplicationByID retrieves an application by ID.
func (s *applicationService) GetApplicationByID(id uint) (*models.Application, error) {
	var application models.Application
	if err := s.db.First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &application, nil
}

// GetApplicationsByUser retrieves a paginated list of one applicant's applications.
func (s *applicationService) GetApplicationsByUser(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Application], error) {
	page.Defaults()

	base := s.db.Model(&models.Application{}).Where("person_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var applications []models.Application
	if err := base.Scopes(pagination.Paginate(page)).
		Order("apply_date DESC").
		Find(&applications).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(applications, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// DeleteApplication hard-deletes an application. Audit trail entries are
// kept; the trail outlives the row it describes.
func (s *applicationService) DeleteApplication(id uint) error {
	result := s.db.Delete(&models.Application{}, id)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}
