package request_models

type PreferencesRequest struct {
	TravelStyle      string   `json:"travel_style" binding:"required"`
	Interests        []string `json:"interests"`
	Budget           int      `json:"budget"`
	TripDuration     int      `json:"trip_duration" binding:"required"`
	PreferredClimate string   `json:"preferred_climate" binding:"required"`
}
