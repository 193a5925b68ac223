package models

import "time"

// ApplicationStatus is the workflow state of a job application. Stored as
// text so rows written with legacy values still read back; transitions are
// validated against the recognized set at the binding layer.
type ApplicationStatus string

const (
	ApplicationStatusSent        ApplicationStatus = "Sent"
	ApplicationStatusUnderReview ApplicationStatus = "UnderReview"
	ApplicationStatusAccepted    ApplicationStatus = "Accepted"
	ApplicationStatusRejected    ApplicationStatus = "Rejected"
)

// Application represents a job application by a person to an advertisement.
// At most one application exists per (person_id, advertisement_id) pair.
type Application struct {
	Base
	PersonID        uint              `gorm:"not null;uniqueIndex:idx_person_advertisement" json:"person_id"`
	AdvertisementID uint              `gorm:"not null;uniqueIndex:idx_person_advertisement" json:"advertisement_id"`
	Status          ApplicationStatus `gorm:"not null" json:"status"`
	ApplyDate       time.Time         `gorm:"not null" json:"apply_date"`
	HandledBy       *uint             `json:"handled_by,omitempty"`
}

func (Application) TableName() string { return "application" }
