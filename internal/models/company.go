package models

// Company represents an employer posting advertisements.
type Company struct {
	Base
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	City        string `json:"city"`
	Website     string `json:"website"`

	Advertisements []Advertisement `gorm:"foreignKey:CompanyID" json:"advertisements,omitempty"`
}

func (Company) TableName() string { return "company" }
