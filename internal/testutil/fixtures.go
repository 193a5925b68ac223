package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"jobboard/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates an applicant with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	n := nextID()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:     fmt.Sprintf("user%d@test.com", n),
		Password:  string(hash),
		FirstName: fmt.Sprintf("First%d", n),
		LastName:  fmt.Sprintf("Last%d", n),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestUserWithCV creates an applicant whose profile carries a CV path.
func CreateTestUserWithCV(t *testing.T, db *gorm.DB, cvPath string) *models.User {
	t.Helper()

	user := CreateTestUser(t, db)
	if err := db.Model(user).Update("cv", cvPath).Error; err != nil {
		t.Fatalf("failed to set test user CV: %v", err)
	}
	return user
}

// CreateTestAdmin creates an admin user.
func CreateTestAdmin(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := CreateTestUser(t, db)
	if err := db.Model(user).Update("is_admin", true).Error; err != nil {
		t.Fatalf("failed to promote test user: %v", err)
	}
	user.IsAdmin = true
	return user
}

// CreateTestCompany creates a company.
func CreateTestCompany(t *testing.T, db *gorm.DB) *models.Company {
	t.Helper()

	company := &models.Company{
		Name: fmt.Sprintf("Test Company %d", nextID()),
		City: "Paris",
	}
	if err := db.Create(company).Error; err != nil {
		t.Fatalf("failed to create test company: %v", err)
	}
	return company
}

// CreateTestAdvertisement creates a job posting for the given company.
func CreateTestAdvertisement(t *testing.T, db *gorm.DB, companyID uint) *models.Advertisement {
	t.Helper()

	n := nextID()
	advertisement := &models.Advertisement{
		Title:            fmt.Sprintf("Test Position %d", n),
		ShortDescription: "Short description",
		Description:      "Long description",
		PublishDate:      time.Now().Truncate(24 * time.Hour),
		CompanyID:        companyID,
	}
	if err := db.Create(advertisement).Error; err != nil {
		t.Fatalf("failed to create test advertisement: %v", err)
	}
	return advertisement
}

// CreateTestApplication creates an application in the submitted state.
func CreateTestApplication(t *testing.T, db *gorm.DB, personID, advertisementID uint) *models.Application {
	t.Helper()

	application := &models.Application{
		PersonID:        personID,
		AdvertisementID: advertisementID,
		Status:          models.ApplicationStatusSent,
		ApplyDate:       time.Now(),
	}
	if err := db.Create(application).Error; err != nil {
		t.Fatalf("failed to create test application: %v", err)
	}
	return application
}

// CreateTestApplicationLog creates an audit trail entry for the given application.
func CreateTestApplicationLog(t *testing.T, db *gorm.DB, applicationID uint, sentAt time.Time) *models.ApplicationLog {
	t.Helper()

	entry := &models.ApplicationLog{
		ApplicationID:      applicationID,
		Status:             models.ApplicationStatusSent,
		CandidateLastName:  "Doe",
		CandidateFirstName: "Jane",
		CV:                 "/uploads/cv.pdf",
		SentAt:             sentAt,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test application log: %v", err)
	}
	return entry
}
