package attempts

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/lexivox/speech-api/internal/models"
)

// service implements Service
type service struct {
	repo Repository
}

// NewService creates a new attempts service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// RecordAttempt persists a scored attempt and assigns its UUID
func (s *service) RecordAttempt(ctx context.Context, attempt *models.Attempt) error {
	if attempt == nil {
		return ErrInvalidAttempt
	}
	if attempt.ExpectedText == "" {
		return fmt.Errorf("%w: expected text is required", ErrInvalidAttempt)
	}
	if attempt.UUID == "" {
		attempt.UUID = uuid.NewString()
	}

	if err := s.repo.Create(ctx, attempt); err != nil {
		return err
	}
	log.Printf("[DEBUG] recorded attempt %s for lesson %s (score %.2f, passed %t)",
		attempt.UUID, attempt.LessonID, attempt.Score, attempt.Passed)
	return nil
}

// GetAttempt retrieves an attempt by its public UUID
func (s *service) GetAttempt(ctx context.Context, id string) (*models.Attempt, error) {
	if id == "" {
		return nil, ErrInvalidAttempt
	}
	return s.repo.GetByUUID(ctx, id)
}

// ListAttempts returns attempts for a lesson, newest first
func (s *service) ListAttempts(ctx context.Context, lessonID string, limit int) ([]models.Attempt, error) {
	if lessonID == "" {
		return nil, ErrInvalidAttempt
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.ListByLesson(ctx, lessonID, limit)
}
