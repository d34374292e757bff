package handlers

import (
	"errors"
	"net/http"

	"carpool/internal/domain"
	"carpool/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		var ve domain.ValidationError
		errors.As(err, &ve)
		var details any
		if ve.Field != "" {
			details = gin.H{"field": ve.Field}
		}
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), details)
	case domain.IsNoSeats(err):
		respondError(c, http.StatusBadRequest, "no_seats", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsNoContent(err):
		var nc domain.NoContentError
		errors.As(err, &nc)
		body := gin.H{
			"error":      err.Error(),
			"code":       "no_content",
			"message":    err.Error(),
			"request_id": middleware.GetRequestID(c),
		}
		// Details are echoed at the top level too, e.g. {"message":..., "date":...}.
		for k, v := range nc.Details {
			if _, taken := body[k]; !taken {
				body[k] = v
			}
		}
		if len(nc.Details) > 0 {
			body["details"] = nc.Details
		}
		c.JSON(http.StatusNotFound, body)
	default:
		var se domain.StoreError
		message, details := "internal error", any(nil)
		if errors.As(err, &se) {
			message = se.Op
			if se.Err != nil {
				details = gin.H{"cause": se.Err.Error()}
			}
		}
		if message == "" {
			message = "internal error"
		}
		respondError(c, http.StatusInternalServerError, "store_error", message, details)
	}
}
