package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"concierge/internal/models/request_models"
	"concierge/internal/models/session_models"
	"concierge/internal/services"
	"concierge/pkg/utils"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
}

func NewSessionController(sessionService services.SessionServiceInterface) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

func (s *SessionController) CreateSessionHandler(c *gin.Context) {
	created, err := s.sessionService.CreateSession()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, created, "Session created")
}

func (s *SessionController) GetSessionHandler(c *gin.Context) {
	session, err := s.sessionService.GetSession(c.GetString("session_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Session snapshot")
}

func (s *SessionController) SubmitPreferencesHandler(c *gin.Context) {
	var req request_models.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	prefs := session_models.Preferences{
		TravelStyle:      req.TravelStyle,
		Interests:        req.Interests,
		Budget:           req.Budget,
		TripDuration:     req.TripDuration,
		PreferredClimate: req.PreferredClimate,
	}
	if err := s.sessionService.SubmitPreferences(c.GetString("session_id"), prefs); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, prefs, "Preferences saved")
}

func (s *SessionController) TravelTipsHandler(c *gin.Context) {
	tips, err := s.sessionService.TravelTips(c.GetString("session_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, tips, "Travel tips")
}
