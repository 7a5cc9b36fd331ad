package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"concierge/internal/models/request_models"
	"concierge/internal/services"
	"concierge/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

func (b *BookingController) GetBookingHandler(c *gin.Context) {
	state, err := b.bookingService.GetState(c.GetString("session_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Booking state")
}

// AdvanceBookingHandler applies one stage transition. A rejected advance is
// still a 200: the result carries accepted=false and the reason.
func (b *BookingController) AdvanceBookingHandler(c *gin.Context) {
	var req request_models.BookingAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := b.bookingService.Advance(c.Request.Context(), c.GetString("session_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Booking advanced"
	if !result.Accepted {
		message = "Booking input rejected"
	}
	utils.RespondSuccess(c, result, message)
}

func (b *BookingController) ClearBookingHandler(c *gin.Context) {
	if err := b.bookingService.Clear(c.GetString("session_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Booking cleared")
}
