package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID,
	})
}

// HandleServiceError maps the service sentinel errors onto HTTP responses.
// Store-level lookups never error (unknown ids are no-ops); everything here
// comes from the service boundary.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrGigNotFound),
		errors.Is(err, ErrPalNotFound),
		errors.Is(err, ErrConversationNotFound),
		errors.Is(err, ErrNotificationNotFound),
		errors.Is(err, ErrTrackingNotFound),
		errors.Is(err, ErrMedicationNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrInvalidPhone),
		errors.Is(err, ErrInvalidReading),
		errors.Is(err, ErrUploadRejected):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrRoleNotSet),
		errors.Is(err, ErrPhoneNotVerified),
		errors.Is(err, ErrProfileIncomplete):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidOtpCode):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrStorageError):
		log.Printf("Storage error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
