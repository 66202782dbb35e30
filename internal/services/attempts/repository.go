package attempts

import (
	"context"
	"errors"

	"github.com/lexivox/speech-api/internal/models"
	"gorm.io/gorm"
)

// repository implements Repository using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new attempts repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create creates a new attempt record
func (r *repository) Create(ctx context.Context, attempt *models.Attempt) error {
	if attempt == nil {
		return ErrInvalidAttempt
	}
	return r.db.WithContext(ctx).Create(attempt).Error
}

// GetByUUID retrieves an attempt by its public UUID
func (r *repository) GetByUUID(ctx context.Context, id string) (*models.Attempt, error) {
	var attempt models.Attempt
	err := r.db.WithContext(ctx).Where("uuid = ?", id).First(&attempt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, err
	}
	return &attempt, nil
}

// ListByLesson returns attempts for a lesson, newest first
func (r *repository) ListByLesson(ctx context.Context, lessonID string, limit int) ([]models.Attempt, error) {
	var attempts []models.Attempt
	err := r.db.WithContext(ctx).
		Where("lesson_id = ?", lessonID).
		Order("created_at DESC").
		Limit(limit).
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}
