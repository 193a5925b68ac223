package services

import (
	"gorm.io/gorm"

	apperrors "jobboard/internal/errors"
	"jobboard/internal/models"
)

// statsService computes public counters.
type statsService struct {
	db *gorm.DB
}

// NewStatsService creates a new StatsServicer.
func NewStatsService(db *gorm.DB) StatsServicer {
	return &statsService{db: db}
}

// GetStats returns the advertisement and company counts.
func (s *statsService) GetStats() (*Stats, error) {
	var stats Stats
	if err := s.db.Model(&models.Advertisement{}).Count(&stats.Advertisements).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Model(&models.Company{}).Count(&stats.Companies).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &stats, nil
}
