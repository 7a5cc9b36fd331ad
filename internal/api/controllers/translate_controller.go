package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"concierge/internal/models/request_models"
	"concierge/internal/services"
	"concierge/pkg/utils"
)

type TranslateController struct {
	translateService services.TranslateServiceInterface
}

func NewTranslateController(translateService services.TranslateServiceInterface) *TranslateController {
	return &TranslateController{
		translateService: translateService,
	}
}

func (t *TranslateController) TranslateHandler(c *gin.Context) {
	var req request_models.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	translated, err := t.translateService.Translate(c.Request.Context(), req.Text, req.Target)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"text": translated, "target": req.Target}, "Translated")
}
