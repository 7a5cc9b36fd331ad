package request_models

type ItineraryDayRequest struct {
	Day     int    `json:"day"`
	Content string `json:"content"`
}

type ItineraryDayUpdateRequest struct {
	Content string `json:"content"`
}
