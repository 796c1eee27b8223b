package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lorenzobigazzi0/cassa/internal/shared/errors"
)

// APIResponse is the envelope of every JSON body the API returns.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{Success: true, Data: data, Message: message})
}

func CreatedResponse(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data, Message: message})
}

// ErrorResponse answers with a message of our own; the error type follows
// from the status so clients can switch on it the same way as for AppErrors.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	info := ErrorInfo{
		Type:    string(errorTypeForStatus(statusCode)),
		Message: message,
	}
	c.JSON(statusCode, APIResponse{Success: false, Error: &info})
}

// ErrorResponseWithError maps an AppError onto its status and type. Anything
// else is answered as a 500 without leaking its text.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
		return
	}

	info := ErrorInfo{
		Type:    string(appErr.Type),
		Message: appErr.Message,
		Details: appErr.Details,
	}
	c.JSON(appErr.Code, APIResponse{Success: false, Error: &info})
}

func errorTypeForStatus(status int) errors.ErrorType {
	switch status {
	case http.StatusBadRequest:
		return errors.ErrorTypeValidation
	case http.StatusUnauthorized:
		return errors.ErrorTypeUnauthenticated
	case http.StatusForbidden:
		return errors.ErrorTypeUnauthorized
	case http.StatusNotFound:
		return errors.ErrorTypeNotFound
	case http.StatusConflict:
		return errors.ErrorTypeConflict
	case http.StatusTooManyRequests:
		return errors.ErrorTypeTooManyRequests
	default:
		return errors.ErrorTypeInternal
	}
}
