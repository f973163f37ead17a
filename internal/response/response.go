package response

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// Error codes shared by services and handlers
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeRateLimited   = "RATE_LIMITED"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// Envelope is the uniform body of every JSON response
// @Description success=true carries data, success=false carries error
type Envelope struct {
	Success   bool        `json:"success" example:"true"`
	Data      interface{} `json:"data"`
	Error     *string     `json:"error"`
	Timestamp time.Time   `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// AppError is a business error raised by the service layer
type AppError struct {
	Code    string
	Message string
	Details string
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// OK builds a success envelope
func OK(data interface{}) Envelope {
	return Envelope{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

// Fail builds an error envelope
func Fail(message string) Envelope {
	return Envelope{
		Success:   false,
		Error:     &message,
		Timestamp: time.Now().UTC(),
	}
}

// SendSuccess writes a success envelope
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, OK(data))
}

// SendError writes an error envelope. code is kept for logging symmetry with AppError.
func SendError(c *gin.Context, status int, code, message string) {
	c.Set("error_code", code)
	c.JSON(status, Fail(message))
}

// AbortWithError writes an error envelope and stops the handler chain
func AbortWithError(c *gin.Context, status int, code, message string) {
	SendError(c, status, code, message)
	c.Abort()
}
