package api

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bigyayos/appgolf/internal/auth"
	"github.com/Bigyayos/appgolf/internal/errors"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// statusForCode maps application error codes to HTTP statuses
func statusForCode(code string) int {
	switch code {
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeValidationError:
		return http.StatusBadRequest
	case errors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case errors.ErrCodeForbidden:
		return http.StatusForbidden
	case errors.ErrCodeConflict:
		return http.StatusConflict
	case errors.ErrCodeServiceError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an ErrorResponse. Internal failures keep their cause out of the body.
func respondError(c *gin.Context, err error) {
	code := errors.CodeOf(err)
	status := statusForCode(code)

	body := ErrorResponse{Error: "Internal server error", Code: code}
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) && status < http.StatusInternalServerError {
		body.Error = appErr.Message
		body.Details = appErr.Details
	} else if status == http.StatusBadGateway && appErr != nil {
		body.Error = appErr.Message
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, body)
}

// respondBindError reports a request body that failed to bind
func respondBindError(c *gin.Context, err error) {
	respondError(c, errors.InvalidInput("Invalid request format", err).WithDetails(err.Error()))
}

// principal returns the caller set by the JWT middleware
func principal(c *gin.Context) (auth.Principal, bool) {
	p, ok := auth.GetPrincipal(c)
	if !ok {
		respondError(c, errors.Unauthorized("Authentication required", nil))
	}
	return p, ok
}
