package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	// Request errors
	ErrCodeMissingParameter = "MISSING_PARAMETER"

	// Authentication errors
	ErrCodeUnauthenticated    = "UNAUTHENTICATED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"

	// Authorization errors
	ErrCodeForbidden = "FORBIDDEN"

	// Resource errors
	ErrCodeNotFound = "NOT_FOUND"

	// Service errors
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// LoginPath is where unauthenticated requests are sent.
const LoginPath = "/login"

// Fixed messages shown to the user.
const (
	MsgInvalidAccess   = "Invalid access."
	MsgPostNotFound    = "Post not found."
	MsgTaskNotFound    = "Task not found."
	MsgProjectNotFound = "Project not found."
	MsgAccessDenied    = "Access denied."
	MsgInternalError   = "Internal server error."
)

// PageError is a terminal failure of a page request. Every PageError ends
// request processing; none is retried.
type PageError struct {
	Code    string
	Status  int
	Message string
}

// Error implements the error interface
func (e *PageError) Error() string {
	return e.Message
}

// NewPageError creates a new PageError
func NewPageError(code string, status int, message string) *PageError {
	return &PageError{
		Code:    code,
		Status:  status,
		Message: message,
	}
}

// Predefined errors
var (
	ErrMissingParameter = NewPageError(ErrCodeMissingParameter, http.StatusBadRequest, MsgInvalidAccess)
	ErrForbidden        = NewPageError(ErrCodeForbidden, http.StatusForbidden, MsgAccessDenied)
	ErrInternalError    = NewPageError(ErrCodeInternalError, http.StatusInternalServerError, MsgInternalError)
)

// HeaderErrorCode carries the PageError code on failed responses
const HeaderErrorCode = "X-Error-Code"

// SetErrorCode tags a response that is rendered by the handler itself.
func SetErrorCode(c *gin.Context, code string) {
	c.Header(HeaderErrorCode, code)
}

// RespondWithError writes the plain-text message and stops the handler chain.
func RespondWithError(c *gin.Context, err *PageError) {
	SetErrorCode(c, err.Code)
	c.String(err.Status, err.Message)
	c.Abort()
}

// Helper functions for common error responses

// MissingParameter sends a 400 response with the fixed rejection message
func MissingParameter(c *gin.Context) {
	RespondWithError(c, ErrMissingParameter)
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found."
	}
	RespondWithError(c, NewPageError(ErrCodeNotFound, http.StatusNotFound, message))
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = MsgAccessDenied
	}
	RespondWithError(c, NewPageError(ErrCodeForbidden, http.StatusForbidden, message))
}

// InternalError sends a 500 response
func InternalError(c *gin.Context) {
	RespondWithError(c, ErrInternalError)
}

// Unauthenticated redirects to the login page with no body.
func Unauthenticated(c *gin.Context) {
	// http.Redirect would write an HTML body on GET, so set the header directly.
	c.Header("Location", LoginPath)
	c.AbortWithStatus(http.StatusFound)
}
