package models

import "time"

// Advertisement represents a job posting applicants can apply to.
type Advertisement struct {
	Base
	Title              string    `gorm:"not null" json:"title"`
	ShortDescription   string    `gorm:"not null" json:"short_description"`
	Description        string    `gorm:"not null" json:"description"`
	PublishDate        time.Time `gorm:"not null" json:"publish_date"`
	CompanyID          uint      `gorm:"not null;index" json:"company_id"`
	EmploymentType     *string   `json:"employment_type,omitempty"`
	WorkMode           *string   `json:"work_mode,omitempty"`
	SalaryMin          *int      `json:"salary_min,omitempty"`
	SalaryMax          *int      `json:"salary_max,omitempty"`
	RequiredExperience *string   `json:"required_experience,omitempty"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

func (Advertisement) TableName() string { return "advertisement" }
