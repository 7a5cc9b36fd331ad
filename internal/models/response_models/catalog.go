package response_models

// FlightOffer and HotelOffer expose catalog rows with the ordinal that
// booking advances reference.
type FlightOffer struct {
	Index    int     `json:"index"`
	Airline  string  `json:"airline"`
	Schedule string  `json:"schedule"`
	Price    float64 `json:"price"`
}

type HotelOffer struct {
	Index         int     `json:"index"`
	Name          string  `json:"name"`
	Rating        float64 `json:"rating"`
	PricePerNight float64 `json:"price_per_night"`
}
