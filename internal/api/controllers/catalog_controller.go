package controllers

import (
	"github.com/gin-gonic/gin"

	"concierge/internal/models/response_models"
	"concierge/internal/repositories"
	"concierge/pkg/utils"
)

type CatalogController struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogController(catalogRepo repositories.CatalogRepository) *CatalogController {
	return &CatalogController{
		catalogRepo: catalogRepo,
	}
}

func (cc *CatalogController) ListFlightsHandler(c *gin.Context) {
	flights, err := cc.catalogRepo.ListFlights(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	offers := make([]response_models.FlightOffer, 0, len(flights))
	for i, f := range flights {
		offers = append(offers, response_models.FlightOffer{
			Index:    i,
			Airline:  f.Airline,
			Schedule: f.Schedule,
			Price:    f.Price,
		})
	}
	utils.RespondSuccess(c, offers, "Available flights")
}

func (cc *CatalogController) ListHotelsHandler(c *gin.Context) {
	hotels, err := cc.catalogRepo.ListHotels(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	offers := make([]response_models.HotelOffer, 0, len(hotels))
	for i, h := range hotels {
		offers = append(offers, response_models.HotelOffer{
			Index:         i,
			Name:          h.Name,
			Rating:        h.Rating,
			PricePerNight: h.PricePerNight,
		})
	}
	utils.RespondSuccess(c, offers, "Available hotels")
}
