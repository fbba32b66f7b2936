package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/launchforge/launchforge-backend/internal/pkg/apperrors"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondServiceError maps the service error taxonomy to HTTP statuses.
// Anything unrecognized is a 500: transient store errors propagate untouched
// and the client decides whether to retry.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		RespondError(c, http.StatusBadRequest, "validation_error", err)
	case apperrors.IsConflict(err):
		RespondError(c, http.StatusConflict, "conflict", err)
	case apperrors.IsNotFound(err):
		RespondError(c, http.StatusNotFound, "not_found", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}
