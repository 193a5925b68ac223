package models

// User represents a user account, either an applicant or a staff admin.
type User struct {
	Base
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsAdmin   bool   `gorm:"default:false" json:"is_admin"`
	CV        string `json:"cv"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

// TableName overrides the default table name. "user" is reserved in postgres.
func (User) TableName() string { return "user_account" }
