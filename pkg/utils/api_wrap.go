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

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP statuses.
// Booking validation rejections never reach here: they are data, not errors.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Session not found")
	case errors.Is(err, ErrItineraryDayMissing):
		RespondError(c, http.StatusNotFound, "Itinerary day not found")
	case errors.Is(err, ErrPreferencesLocked):
		RespondError(c, http.StatusConflict, "Preferences are locked for this session")
	case errors.Is(err, ErrTurnInFlight):
		RespondError(c, http.StatusConflict, "Another turn is still streaming for this session")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnsupportedVoice):
		RespondError(c, http.StatusBadRequest, "Voice must be one of: alloy, echo, fable, onyx, nova, shimmer")
	case errors.Is(err, ErrUnsupportedLanguage):
		RespondError(c, http.StatusBadRequest, "Target language must be one of: es, fr, de, it, ja, zh-CN")
	case errors.Is(err, ErrSpeechFailed), errors.Is(err, ErrTranslationFailed):
		log.Printf("Upstream provider error: %v", err)
		RespondError(c, http.StatusBadGateway, "Upstream provider error")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
