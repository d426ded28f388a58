package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stemsi/quizmaster-backend/internal/response"
	"github.com/stemsi/quizmaster-backend/internal/service"
)

// QuizHandler handles quiz upload and management endpoints.
type QuizHandler struct {
	quizService    *service.QuizService
	maxUploadBytes int64
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService *service.QuizService, maxUploadBytes int64) *QuizHandler {
	return &QuizHandler{quizService: quizService, maxUploadBytes: maxUploadBytes}
}

// UploadQuiz godoc
// POST /api/v1/quizzes
// Parses an uploaded .txt/.docx/.pdf quiz file and stores it.
func (h *QuizHandler) UploadQuiz(c *gin.Context) {
	file, header, ok := h.formFile(c)
	if !ok {
		return
	}
	defer file.Close()

	res, err := h.quizService.Import(c.Request.Context(), header.Filename, file)
	if err != nil {
		failWithError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res)
}

// PreviewQuiz godoc
// POST /api/v1/quizzes/preview
// Parses an uploaded quiz file and returns the result without storing it.
func (h *QuizHandler) PreviewQuiz(c *gin.Context) {
	file, header, ok := h.formFile(c)
	if !ok {
		return
	}
	defer file.Close()

	res, err := h.quizService.Preview(header.Filename, file)
	if err != nil {
		failWithError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

// ListQuizzes godoc
// GET /api/v1/quizzes
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.List(c.Request.Context())
	if err != nil {
		failWithError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quizzes": quizzes})
}

// GetQuiz godoc
// GET /api/v1/quizzes/:quiz_id
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quizID, ok := paramUUID(c, "quiz_id")
	if !ok {
		return
	}

	quiz, err := h.quizService.Get(c.Request.Context(), quizID)
	if err != nil {
		failWithError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quiz": quiz})
}

// DeleteQuiz godoc
// DELETE /api/v1/quizzes/:quiz_id
// Deletes a quiz together with its attempts.
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	quizID, ok := paramUUID(c, "quiz_id")
	if !ok {
		return
	}

	if err := h.quizService.Delete(c.Request.Context(), quizID); err != nil {
		failWithError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Quiz deleted"})
}

// formFile reads the "file" multipart field, bounded by maxUploadBytes.
// On failure it writes the error response and returns ok=false.
func (h *QuizHandler) formFile(c *gin.Context) (multipart.File, *multipart.FileHeader, bool) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Fail(c, http.StatusRequestEntityTooLarge, response.ErrFileTooLarge)
		} else {
			response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		}
		return nil, nil, false
	}

	file, err := header.Open()
	if err != nil {
		failWithError(c, err)
		return nil, nil, false
	}
	return file, header, true
}

// paramUUID parses a UUID path parameter, writing INVALID_ID on failure.
func paramUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return uuid.Nil, false
	}
	return id, true
}
