package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/quizmaster-backend/internal/model"
	"github.com/stemsi/quizmaster-backend/internal/response"
	"github.com/stemsi/quizmaster-backend/internal/service"
	"github.com/stemsi/quizmaster-backend/internal/validator"
)

const maxRecentAttempts = 100

// AttemptHandler handles attempt submission and history endpoints.
type AttemptHandler struct {
	attemptService *service.AttemptService
}

// NewAttemptHandler creates a new AttemptHandler.
func NewAttemptHandler(attemptService *service.AttemptService) *AttemptHandler {
	return &AttemptHandler{attemptService: attemptService}
}

// SubmitAttempt godoc
// POST /api/v1/quizzes/:quiz_id/attempts
// Grades a finished attempt and returns it with the earned badge.
func (h *AttemptHandler) SubmitAttempt(c *gin.Context) {
	quizID, ok := paramUUID(c, "quiz_id")
	if !ok {
		return
	}

	var req model.SubmitAttemptRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.attemptService.Submit(c.Request.Context(), quizID, req)
	if err != nil {
		failWithError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// ListQuizAttempts godoc
// GET /api/v1/quizzes/:quiz_id/attempts
func (h *AttemptHandler) ListQuizAttempts(c *gin.Context) {
	quizID, ok := paramUUID(c, "quiz_id")
	if !ok {
		return
	}

	attempts, err := h.attemptService.ListByQuiz(c.Request.Context(), quizID)
	if err != nil {
		failWithError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"attempts": attempts})
}

// ListRecentAttempts godoc
// GET /api/v1/attempts?limit=10
func (h *AttemptHandler) ListRecentAttempts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultRecentAttempts)))
	if err != nil || limit < 1 || limit > maxRecentAttempts {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, map[string]string{
			"limit": "limit must be a number between 1 and " + strconv.Itoa(maxRecentAttempts),
		})
		return
	}

	attempts, err := h.attemptService.ListRecent(c.Request.Context(), limit)
	if err != nil {
		failWithError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"attempts": attempts})
}

// GetAttempt godoc
// GET /api/v1/attempts/:attempt_id
func (h *AttemptHandler) GetAttempt(c *gin.Context) {
	attemptID, ok := paramUUID(c, "attempt_id")
	if !ok {
		return
	}

	attempt, err := h.attemptService.Get(c.Request.Context(), attemptID)
	if err != nil {
		failWithError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"attempt": attempt,
		"badge":   model.BadgeFor(attempt.Score),
	})
}

// RetryAttempt godoc
// GET /api/v1/attempts/:attempt_id/retry
// Returns session settings replaying only the wrongly answered questions.
func (h *AttemptHandler) RetryAttempt(c *gin.Context) {
	attemptID, ok := paramUUID(c, "attempt_id")
	if !ok {
		return
	}

	settings, err := h.attemptService.RetrySettings(c.Request.Context(), attemptID)
	if err != nil {
		failWithError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"settings": settings})
}
