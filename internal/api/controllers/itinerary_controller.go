package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"

	"concierge/internal/models/request_models"
	"concierge/internal/services"
	"concierge/pkg/utils"
)

type ItineraryController struct {
	sessionService services.SessionServiceInterface
}

func NewItineraryController(sessionService services.SessionServiceInterface) *ItineraryController {
	return &ItineraryController{
		sessionService: sessionService,
	}
}

func (i *ItineraryController) ListItineraryHandler(c *gin.Context) {
	session, err := i.sessionService.GetSession(c.GetString("session_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session.Itinerary, "Itinerary")
}

func (i *ItineraryController) UpsertDayHandler(c *gin.Context) {
	var req request_models.ItineraryDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := i.sessionService.UpsertItineraryDay(c.GetString("session_id"), req.Day, req.Content); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Itinerary day saved")
}

func (i *ItineraryController) UpdateDayHandler(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Day must be a number")
		return
	}

	var req request_models.ItineraryDayUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := i.sessionService.UpsertItineraryDay(c.GetString("session_id"), day, req.Content); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Itinerary day saved")
}

func (i *ItineraryController) DeleteDayHandler(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Day must be a number")
		return
	}
	if err := i.sessionService.DeleteItineraryDay(c.GetString("session_id"), day); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Itinerary day removed")
}
