package attempts

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lexivox/speech-api/api/types"
	"github.com/lexivox/speech-api/internal/models"
	attemptsService "github.com/lexivox/speech-api/internal/services/attempts"
)

// GetByID handles attempt lookup requests
// @Summary      Get an attempt
// @Description  Retrieves a stored attempt by its identifier
// @Tags         attempts
// @Produce      json
// @Param        id path string true "Attempt identifier"
// @Success      200 {object} types.AttemptRecord "Stored attempt"
// @Failure      404 {object} types.ErrorResponse "Attempt not found"
// @Router       /api/v1/attempts/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.AttemptService == nil {
			c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Attempt storage is not available",
			})
			return
		}

		attempt, err := deps.AttemptService.GetAttempt(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, attemptsService.ErrAttemptNotFound) {
				c.JSON(http.StatusNotFound, types.ErrorResponse{
					Status:  types.StatusError,
					Code:    types.ErrCodeNotFound,
					Message: "Attempt not found",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to load attempt",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, toRecord(attempt))
	}
}

// List handles lesson history requests
// @Summary      List attempts for a lesson
// @Description  Returns the most recent attempts for a lesson, newest first
// @Tags         attempts
// @Produce      json
// @Param        lesson_id query string true "Lesson identifier"
// @Param        limit query int false "Maximum number of attempts to return"
// @Success      200 {object} types.AttemptListResponse "Attempt history"
// @Failure      400 {object} types.ErrorResponse "Missing lesson_id"
// @Router       /api/v1/attempts [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		lessonID := c.Query("lesson_id")
		if lessonID == "" {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Code:    types.ErrCodeInvalidRequest,
				Message: "lesson_id is required",
			})
			return
		}

		if deps.AttemptService == nil {
			c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Attempt storage is not available",
			})
			return
		}

		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

		attempts, err := deps.AttemptService.ListAttempts(c.Request.Context(), lessonID, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to list attempts",
				Details: err.Error(),
			})
			return
		}

		records := make([]types.AttemptRecord, 0, len(attempts))
		for i := range attempts {
			records = append(records, toRecord(&attempts[i]))
		}

		c.JSON(http.StatusOK, types.AttemptListResponse{
			Status:   types.StatusOK,
			LessonID: lessonID,
			Count:    len(records),
			Attempts: records,
		})
	}
}

func toRecord(attempt *models.Attempt) types.AttemptRecord {
	return types.AttemptRecord{
		AttemptID:        attempt.UUID,
		LessonID:         attempt.LessonID,
		StepID:           attempt.StepID,
		ExpectedText:     attempt.ExpectedText,
		ExpectedLanguage: attempt.ExpectedLanguage,
		Transcript:       attempt.Transcript,
		DetectedLanguage: attempt.DetectedLanguage,
		Confidence:       attempt.Confidence,
		LanguageMatch:    attempt.LanguageMatch,
		NoSpeechDetected: attempt.NoSpeechDetected,
		FallbackUsed:     attempt.FallbackUsed,
		Score:            attempt.Score,
		Passed:           attempt.Passed,
		ScoreLevel:       string(attempt.ScoreLevel),
		CreatedAt:        attempt.CreatedAt.UTC().Format(time.RFC3339),
	}
}
