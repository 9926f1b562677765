package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/admaagape/studyapi/internal/generr"
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

// RespondServiceError maps the error taxonomy onto HTTP statuses and keeps the
// taxonomy code in the envelope so clients can branch on it.
func RespondServiceError(c *gin.Context, err error) {
	code := generr.Code(err)
	status := http.StatusInternalServerError
	switch code {
	case "invalid_generation":
		status = http.StatusBadRequest
	case "not_found":
		status = http.StatusNotFound
	case "generation_in_progress":
		status = http.StatusConflict
	case "quota_exceeded":
		status = http.StatusTooManyRequests
	case "not_configured":
		status = http.StatusServiceUnavailable
	case "network_error", "malformed_response":
		status = http.StatusBadGateway
	}
	RespondError(c, status, code, err)
}
