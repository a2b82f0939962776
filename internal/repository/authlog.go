package repository

import (
	"teamtrack-backend/internal/database/models"

	"gorm.io/gorm"
)

// AuthLogRepository handles database operations for auth log entries
type AuthLogRepository struct {
	db *gorm.DB
}

// NewAuthLogRepository creates a new auth log repository
func NewAuthLogRepository(db *gorm.DB) *AuthLogRepository {
	return &AuthLogRepository{db: db}
}

// Create records a login attempt
func (r *AuthLogRepository) Create(entry *models.AuthLogEntry) error {
	return r.db.Create(entry).Error
}
