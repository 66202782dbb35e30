package attempts

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lexivox/speech-api/api/types"
	"github.com/lexivox/speech-api/internal/models"
	"github.com/lexivox/speech-api/internal/services/scoring"
	"github.com/lexivox/speech-api/internal/services/stt"
)

// Post handles audio upload and evaluation requests
// @Summary      Submit a pronunciation attempt
// @Description  Uploads recorded audio for a lesson step, transcribes it, and scores it against the expected text. Uploads below the minimum size are rejected before transcription.
// @Tags         attempts
// @Accept       multipart/form-data
// @Produce      json
// @Param        audio formData file true "Recorded audio file"
// @Param        lesson_id formData string false "Lesson identifier"
// @Param        step_id formData string false "Lesson step identifier"
// @Param        expected_text formData string true "Text the learner was asked to read"
// @Param        expected_language formData string true "Expected spoken language"
// @Success      200 {object} types.AttemptResponse "Evaluation result"
// @Failure      400 {object} types.ErrorResponse "Bad request - missing fields or audio below minimum size"
// @Failure      413 {object} types.ErrorResponse "Payload too large"
// @Failure      502 {object} types.ErrorResponse "Transcription backend unavailable"
// @Router       /api/v1/attempts [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		expectedText := c.PostForm("expected_text")
		if expectedText == "" {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Code:    types.ErrCodeInvalidRequest,
				Message: "expected_text is required",
			})
			return
		}

		expectedLanguage := c.PostForm("expected_language")
		if expectedLanguage == "" {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Code:    types.ErrCodeInvalidRequest,
				Message: "expected_language is required",
			})
			return
		}

		fileHeader, err := c.FormFile("audio")
		if err != nil {
			if isBodyTooLarge(err) {
				c.JSON(http.StatusRequestEntityTooLarge, types.ErrorResponse{
					Status:  types.StatusError,
					Code:    types.ErrCodeAudioTooLarge,
					Message: "Uploaded audio exceeds the maximum request size",
				})
				return
			}
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Code:    types.ErrCodeInvalidRequest,
				Message: "audio file is required",
				Details: err.Error(),
			})
			return
		}

		audio, err := readUpload(fileHeader)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Code:    types.ErrCodeInvalidRequest,
				Message: "Failed to read uploaded audio",
				Details: err.Error(),
			})
			return
		}

		// Ingest size gate. The capture SDK applies the same check on
		// device, but the server never trusts the client: undersized
		// payloads are rejected here before any transcription call.
		if int64(len(audio)) < deps.MinAudioBytes {
			log.Printf("[DEBUG] rejected upload of %d bytes (minimum %d)", len(audio), deps.MinAudioBytes)
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Code:    types.ErrCodeAudioTooSmall,
				Message: fmt.Sprintf("Audio file is too small (%d bytes, minimum %d). The recording likely failed.", len(audio), deps.MinAudioBytes),
			})
			return
		}

		result, err := deps.Transcriber.Transcribe(c.Request.Context(), audio, fileHeader.Filename, expectedLanguage)
		if err != nil {
			if errors.Is(err, stt.ErrAudioTooLarge) {
				c.JSON(http.StatusRequestEntityTooLarge, types.ErrorResponse{
					Status:  types.StatusError,
					Code:    types.ErrCodeAudioTooLarge,
					Message: "Audio file exceeds the transcription backend limit",
				})
				return
			}
			c.JSON(http.StatusBadGateway, types.ErrorResponse{
				Status:  types.StatusError,
				Code:    types.ErrCodeTranscriptionUnavailable,
				Message: "Transcription service is unavailable, please retry",
				Details: err.Error(),
			})
			return
		}

		evaluation := deps.Scorer.Score(result, expectedText)

		attempt := &models.Attempt{
			LessonID:         c.PostForm("lesson_id"),
			StepID:           c.PostForm("step_id"),
			ExpectedText:     expectedText,
			ExpectedLanguage: expectedLanguage,
			FileSizeBytes:    int64(len(audio)),
			AudioDuration:    result.Duration,
			Transcript:       result.Transcript,
			DetectedLanguage: result.DetectedLanguage,
			Confidence:       result.Confidence,
			LanguageMatch:    result.LanguageMatch,
			NoSpeechDetected: result.NoSpeechDetected,
			FallbackUsed:     result.FallbackUsed,
			Score:            evaluation.Score,
			Passed:           evaluation.Passed,
			ScoreLevel:       evaluation.Level,
		}

		// Persistence is best effort. The learner still gets their
		// verdict when the write fails.
		if deps.AttemptService != nil {
			if err := deps.AttemptService.RecordAttempt(c.Request.Context(), attempt); err != nil {
				log.Printf("[ERROR] failed to record attempt: %v", err)
			}
		}

		c.JSON(http.StatusOK, buildAttemptResponse(attempt, result, evaluation))
	}
}

func buildAttemptResponse(attempt *models.Attempt, result *stt.Result, evaluation *scoring.Evaluation) types.AttemptResponse {
	response := types.AttemptResponse{
		Success:   !evaluation.NoSpeech,
		AttemptID: attempt.UUID,
		Validation: &types.ValidationResult{
			Passed:          evaluation.Passed,
			Score:           evaluation.Score,
			ScorePercentage: evaluation.ScorePercentage,
			Transcription:   result.Transcript,
			ExpectedText:    attempt.ExpectedText,
			ScoreLevel:      string(evaluation.Level),
		},
		Feedback: &types.Feedback{
			Overall:       evaluation.Overall,
			Suggestions:   evaluation.Suggestions,
			Encouragement: evaluation.Encouragement,
		},
		Details: &types.AttemptDetails{
			WordAnalysis:     evaluation.WordAnalysis,
			DetectedLanguage: result.DetectedLanguage,
			Confidence:       result.Confidence,
			LanguageMatch:    result.LanguageMatch,
			FallbackUsed:     result.FallbackUsed,
		},
	}

	if evaluation.NoSpeech {
		response.Error = types.ErrCodeNoSpeechDetected
	}

	return response
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func isBodyTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}
