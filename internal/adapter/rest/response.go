package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/simaogato/banksynth/internal/domain"
	"go.uber.org/zap"
)

// Response is the envelope of every JSON response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success writes a successful envelope
func Success(c *gin.Context, status int, message string, data interface{}) {
	if status == 0 {
		status = http.StatusOK
	}

	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error aborts the chain and writes a failed envelope
func Error(c *gin.Context, status int, message string, err error) {
	c.Abort()

	resp := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}

	c.JSON(status, resp)
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidParams), errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDatasetNotFound), errors.Is(err, domain.ErrUnknownTable):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientActiveAccounts):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// failure writes err with its mapped status.
// Internal errors are logged and their detail is withheld from the client.
func failure(c *gin.Context, logger *zap.Logger, message string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(message,
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		Error(c, status, message, errors.New("internal server error"))
		return
	}
	Error(c, status, message, err)
}
