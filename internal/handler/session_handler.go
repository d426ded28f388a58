package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/quizmaster-backend/internal/model"
	"github.com/stemsi/quizmaster-backend/internal/response"
	"github.com/stemsi/quizmaster-backend/internal/service"
	"github.com/stemsi/quizmaster-backend/internal/validator"
)

// SessionHandler handles play session endpoints.
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// PrepareSession godoc
// POST /api/v1/quizzes/:quiz_id/sessions
// Selects and shuffles questions per the given settings and returns the prepared session.
func (h *SessionHandler) PrepareSession(c *gin.Context) {
	quizID, ok := paramUUID(c, "quiz_id")
	if !ok {
		return
	}

	var req model.PrepareSessionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	prepared, err := h.sessionService.Prepare(c.Request.Context(), quizID, req.Settings())
	if err != nil {
		failWithError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"session": prepared})
}

// TakeSession godoc
// GET /api/v1/sessions/:session_id
// Returns a prepared session once; later calls get SESSION_NOT_FOUND.
func (h *SessionHandler) TakeSession(c *gin.Context) {
	sessionID, ok := paramUUID(c, "session_id")
	if !ok {
		return
	}

	prepared, err := h.sessionService.Take(c.Request.Context(), sessionID)
	if err != nil {
		failWithError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"session": prepared})
}
