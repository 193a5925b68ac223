// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("application_status", validateApplicationStatus)
		_ = v.RegisterValidation("employment_type", validateEmploymentType)
		_ = v.RegisterValidation("work_mode", validateWorkMode)
	}
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Sent", "UnderReview", "Accepted", "Rejected":
		return true
	}
	return false
}

func validateEmploymentType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "full_time", "part_time", "contract", "internship", "apprenticeship":
		return true
	}
	return false
}

func validateWorkMode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "on_site", "remote", "hybrid":
		return true
	}
	return false
}
