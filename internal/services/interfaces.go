package services

import (
	"time"

	"jobboard/internal/auth"
	"jobboard/internal/models"
	"jobboard/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName, phone, role string) (*models.User, error)
	GetUsers(page pagination.PageRequest) (*pagination.PageResponse[models.User], error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	UpdateCV(userID uint, cvPath string) (*models.User, error)
	DeleteUser(id uint) error
}

// CompanyServicer defines the contract for company-related business logic.
type CompanyServicer interface {
	CreateCompany(name, description, city, website string) (*models.Company, error)
	GetCompanies(page pagination.PageRequest) (*pagination.PageResponse[models.Company], error)
	GetCompanyByID(id uint) (*models.Company, error)
	UpdateCompany(id uint, name, description, city, website string) (*models.Company, error)
	DeleteCompany(id uint) error
}

// AdvertisementFields holds the full target state for creating or updating
// an advertisement.
type AdvertisementFields struct {
	Title              string
	ShortDescription   string
	Description        string
	PublishDate        time.Time
	CompanyID          uint
	EmploymentType     *string
	WorkMode           *string
	SalaryMin          *int
	SalaryMax          *int
	RequiredExperience *string
}

// AdvertisementServicer defines the contract for advertisement-related business logic.
type AdvertisementServicer interface {
	CreateAdvertisement(fields AdvertisementFields) (*models.Advertisement, error)
	GetAdvertisements(page pagination.PageRequest) (*pagination.PageResponse[models.Advertisement], error)
	GetAdvertisementByID(id uint) (*models.Advertisement, error)
	UpdateAdvertisement(id uint, fields AdvertisementFields) (*models.Advertisement, error)
	DeleteAdvertisement(id uint) error
}

// ApplicationUpdateFields holds the full target state for an application
// update. Updates revalidate the whole row rather than patching one field.
type ApplicationUpdateFields struct {
	PersonID        uint
	AdvertisementID uint
	Status          models.ApplicationStatus
	HandledBy       *uint
	ApplyDate       *time.Time
}

// ApplicationServicer defines the contract for the application lifecycle.
type ApplicationServicer interface {
	Submit(identity *auth.Identity, advertisementID uint, coverLetter, cvPath string) (*models.Application, error)
	UpdateApplication(id uint, fields ApplicationUpdateFields) (*models.Application, error)
	GetApplications(page pagination.PageRequest) (*pagination.PageResponse[models.Application], error)
	GetApplicationByID(id uint) (*models.Application, error)
	GetApplicationsByUser(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Application], error)
	DeleteApplication(id uint) error
}

// ApplicationLogFields holds the payload for a directly created audit entry.
type ApplicationLogFields struct {
	ApplicationID      uint
	ActorID            *uint
	Status             models.ApplicationStatus
	CandidateLastName  string
	CandidateFirstName string
	CV                 string
	CoverLetter        string
	Note               string
	SentAt             *time.Time
}

// ApplicationLogServicer defines the contract for the audit trail.
type ApplicationLogServicer interface {
	CreateEntry(fields ApplicationLogFields) (*models.ApplicationLog, error)
	GetEntries(page pagination.PageRequest) (*pagination.PageResponse[models.ApplicationLog], error)
	GetEntryByID(id uint) (*models.ApplicationLog, error)
	GetEntriesByApplication(applicationID uint) ([]models.ApplicationLog, error)
	DeleteEntry(id uint) error
}

// Stats contains public counters for the landing page.
type Stats struct {
	Advertisements int64 `json:"advertisements"`
	Companies      int64 `json:"companies"`
}

// StatsServicer defines the contract for public statistics.
type StatsServicer interface {
	GetStats() (*Stats, error)
}
