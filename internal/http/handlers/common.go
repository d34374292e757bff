package handlers

import (
	"bytes"
	"encoding/json"
	"io"

	"carpool/internal/domain"

	"github.com/gin-gonic/gin"
)

const maxBodyBytes = 1 << 20

// bindJSON decodes the request body into dst. An empty body is an error
// unless optional is set, in which case dst is left untouched.
func bindJSON(c *gin.Context, dst any, optional bool) bool {
	var raw []byte
	if c.Request.Body != nil {
		b, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
		if err != nil {
			RespondDomainError(c, domain.ValidationError{Msg: "failed to read payload", Err: err})
			return false
		}
		raw = bytes.TrimSpace(b)
	}
	if len(raw) == 0 {
		if optional {
			return true
		}
		RespondDomainError(c, domain.ValidationError{Msg: "request body is empty"})
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		RespondDomainError(c, domain.ValidationError{Msg: "invalid payload", Err: err})
		return false
	}
	return true
}
