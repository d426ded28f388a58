package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/quizmaster-backend/internal/extract"
	"github.com/stemsi/quizmaster-backend/internal/quizparser"
	"github.com/stemsi/quizmaster-backend/internal/response"
	"github.com/stemsi/quizmaster-backend/internal/service"
	"github.com/stemsi/quizmaster-backend/internal/session"
)

// failWithError maps a service-layer error onto the response envelope.
// Quiz file and range errors already read as user-facing text and are passed through.
func failWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, extract.ErrUnsupportedFileFormat):
		response.FailWithMessage(c, http.StatusUnsupportedMediaType, response.ErrUnsupportedFileFormat, err.Error())
	case errors.Is(err, quizparser.ErrMissingQuizName):
		response.FailWithMessage(c, http.StatusUnprocessableEntity, response.ErrMissingQuizName, err.Error())
	case errors.Is(err, quizparser.ErrEmptyQuizName):
		response.FailWithMessage(c, http.StatusUnprocessableEntity, response.ErrEmptyQuizName, err.Error())
	case errors.Is(err, quizparser.ErrNoValidQuestions):
		response.FailWithMessage(c, http.StatusUnprocessableEntity, response.ErrNoValidQuestions, err.Error())
	case errors.Is(err, quizparser.ErrMissingCorrectAnswer):
		response.FailWithMessage(c, http.StatusUnprocessableEntity, response.ErrMissingCorrectAnswer, err.Error())
	case errors.Is(err, session.ErrInvalidRange):
		response.FailWithMessage(c, http.StatusBadRequest, response.ErrInvalidRange, err.Error())
	case errors.Is(err, service.ErrQuizNotFound), errors.Is(err, service.ErrAttemptNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, service.ErrSessionNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrSessionNotFound)
	case errors.Is(err, service.ErrUnknownQuestion):
		response.FailWithMessage(c, http.StatusBadRequest, response.ErrUnknownQuestion, err.Error())
	case errors.Is(err, service.ErrDuplicateAnswer):
		response.FailWithMessage(c, http.StatusBadRequest, response.ErrDuplicateAnswer, err.Error())
	case errors.Is(err, service.ErrNoQuestionsInSet):
		response.Fail(c, http.StatusBadRequest, response.ErrNoQuestionsInSet)
	case errors.Is(err, service.ErrNothingToRetry):
		response.Fail(c, http.StatusConflict, response.ErrNothingToRetry)
	default:
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
