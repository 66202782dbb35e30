package attempts

import (
	"context"

	"github.com/lexivox/speech-api/internal/models"
)

// Service defines the interface for attempt record operations
type Service interface {
	// RecordAttempt persists a scored attempt and assigns its UUID
	RecordAttempt(ctx context.Context, attempt *models.Attempt) error

	// GetAttempt retrieves an attempt by its public UUID
	GetAttempt(ctx context.Context, uuid string) (*models.Attempt, error)

	// ListAttempts returns attempts for a lesson, newest first
	ListAttempts(ctx context.Context, lessonID string, limit int) ([]models.Attempt, error)
}

// Repository defines the interface for attempt data persistence
type Repository interface {
	// Create creates a new attempt record
	Create(ctx context.Context, attempt *models.Attempt) error

	// GetByUUID retrieves an attempt by its public UUID
	GetByUUID(ctx context.Context, uuid string) (*models.Attempt, error)

	// ListByLesson returns attempts for a lesson, newest first
	ListByLesson(ctx context.Context, lessonID string, limit int) ([]models.Attempt, error)
}
