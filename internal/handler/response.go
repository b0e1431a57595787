package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tglogin/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrMalformedPayload):
		return http.StatusBadRequest, "MALFORMED_PAYLOAD", "request body must be a JSON object of string or number values"
	case errors.Is(err, domain.ErrMissingTag):
		return http.StatusBadRequest, "MISSING_HASH", "no hash provided"
	case errors.Is(err, domain.ErrInvalidSignature):
		return http.StatusUnauthorized, "INVALID_SIGNATURE", "invalid authentication data"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrMissingCredential):
		return http.StatusInternalServerError, "BOT_TOKEN_NOT_CONFIGURED", "bot token not configured"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
// Server-side errors are attached to the context for the request logger.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		_ = c.Error(err)
	}
	RespondError(c, status, code, msg)
}

// MethodNotAllowed responds to a known path requested with the wrong method.
func MethodNotAllowed(c *gin.Context) {
	RespondError(c, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
}

// NotFound responds to an unknown path.
func NotFound(c *gin.Context) {
	RespondError(c, http.StatusNotFound, "NOT_FOUND", "resource not found")
}
