package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/taskboard/taskboard-api/internal/models"
)

// GormActivityLogRepository is a GORM implementation of ActivityLogRepository
type GormActivityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository creates a new ActivityLogRepository
func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &GormActivityLogRepository{db: db}
}

// Append writes a new activity log entry. The table is append-only; nothing
// in this repository updates or deletes prior rows.
func (r *GormActivityLogRepository) Append(ctx context.Context, entry *models.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
