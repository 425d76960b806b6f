package errors

import (
	"net/http"
	"os"
	"strings"

	"codeberg.org/pixelrave/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc. for critical errors
//     These functions handle both logging and HTTP response automatically
//   - Use logger.ErrorErr() only for non-critical errors where processing continues
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For services/internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller (handler) decide how to log and respond
//   - Do not log errors in non-handler code (avoid double logging)

// represents a standardized error response
type ErrorResponse struct {
	Error       string   `json:"error"`                 // error code (e.g., "quota_exceeded", "access_required")
	Message     string   `json:"message"`               // user-friendly message
	Details     string   `json:"details,omitempty"`     // optional details (sanitized in production)
	Remediation []string `json:"remediation,omitempty"` // step-by-step guidance, only for access_required
}

// standard error codes
const (
	CodeUnauthorized     = "unauthorized"
	CodeValidationError  = "validation_error"
	CodeServerError      = "server_error"
	CodeBadRequest       = "bad_request"
	CodeEmptyPrompt      = "empty_prompt"
	CodeQuotaExceeded    = "quota_exceeded"
	CodeAccessRequired   = "access_required"
	CodeGenerationFailed = "generation_failed"
	CodeSessionNotFound  = "session_not_found"
	CodeNotFound         = "not_found"
)

// returns a 401 unauthorized error
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "authentication required"
	}

	c.JSON(http.StatusUnauthorized, ErrorResponse{
		Error:   CodeUnauthorized,
		Message: message,
	})
}

// returns a 404 not found error
func NotFound(c *gin.Context, resource string) {
	message := "resource not found"

	if resource != "" {
		message = resource + " not found"
	}

	c.JSON(http.StatusNotFound, ErrorResponse{
		Error:   CodeNotFound,
		Message: message,
	})
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	response := ErrorResponse{
		Error:   CodeBadRequest,
		Message: message,
	}

	// add details if error provided
	if err != nil {
		response.Details = sanitizeError(err)
	}

	c.JSON(http.StatusBadRequest, response)
}

// returns a 400 bad request error for validation failures
func ValidationError(c *gin.Context, err error) {
	details := ""
	if err != nil {
		details = sanitizeError(err)
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeValidationError,
		Message: "validation failed",
		Details: details,
	})
}

// returns a 400 error for a prompt that is empty after trimming
func EmptyPrompt(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeEmptyPrompt,
		Message: "prompt must not be empty",
	})
}

// returns a 429 error when the session's daily generation quota is
// exhausted; the quota self-resolves at the next day boundary
func QuotaExceeded(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Error:   CodeQuotaExceeded,
		Message: "daily generation limit reached, try again tomorrow",
	})
}

// returns a 403 error for a gated model with no credential configured.
// The remediation hints tell the user what to do; the system cannot
// retry this on its own.
func AccessRequired(c *gin.Context, modelID string) {
	c.JSON(http.StatusForbidden, ErrorResponse{
		Error:   CodeAccessRequired,
		Message: "this model requires elevated access",
		Remediation: []string{
			"request access to " + modelID + " on the model's hub page",
			"set HF_TOKEN to a token that has been granted access",
		},
	})
}

// returns a 502 error when every provider candidate failed; the
// underlying reason is always surfaced
func GenerationFailed(c *gin.Context, err error) {
	logger.ErrorErr(err, "generation failed",
		"path", c.Request.URL.Path,
		"session_id", c.Query("session_id"),
	)

	c.JSON(http.StatusBadGateway, ErrorResponse{
		Error:   CodeGenerationFailed,
		Message: "image generation failed",
		Details: sanitizeError(err),
	})
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	// log full error server-side with context
	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	// return sanitized error to client
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: sanitizeError(err),
	})
}

// returns a 404 error for session not found
func SessionNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Error:   CodeSessionNotFound,
		Message: "session not found or expired",
	})
}

// sanitizes error messages for production
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()
	env := os.Getenv("ENVIRONMENT")

	if env != "production" {
		return errMsg
	}

	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "network") {
		return "connection error occurred"
	}

	if strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline") {
		return "request timed out"
	}

	if strings.Contains(errMsg, "permission") || strings.Contains(errMsg, "unauthorized") {
		return "permission denied"
	}

	return "an error occurred"
}
