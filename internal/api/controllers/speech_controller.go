package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"concierge/internal/models/request_models"
	"concierge/internal/services"
	"concierge/pkg/utils"
)

type SpeechController struct {
	speechService services.SpeechServiceInterface
}

func NewSpeechController(speechService services.SpeechServiceInterface) *SpeechController {
	return &SpeechController{
		speechService: speechService,
	}
}

// SynthesizeHandler returns the raw MP3 payload. Audio is generated per
// request and never cached server-side.
func (s *SpeechController) SynthesizeHandler(c *gin.Context) {
	var req request_models.SpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	audio, err := s.speechService.Synthesize(c.Request.Context(), req.Text, req.Voice)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "audio/mpeg", audio)
}
