package request_models

// BookingAdvanceRequest carries the payload for exactly one stage advance.
// Which fields matter depends on the session's current stage; everything
// else is ignored.
type BookingAdvanceRequest struct {
	Destination string `json:"destination,omitempty"`

	// Dates stage, calendar dates as YYYY-MM-DD.
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`

	// Flight stage: a catalog ordinal, or skip for a hotel-only booking.
	FlightIndex *int `json:"flight_index,omitempty"`
	SkipFlight  bool `json:"skip_flight,omitempty"`

	// Hotel stage: a catalog ordinal or an ordinal into the session's
	// suggested-hotel set.
	HotelIndex          *int `json:"hotel_index,omitempty"`
	SuggestedHotelIndex *int `json:"suggested_hotel_index,omitempty"`

	// Confirmation stage.
	Confirm bool `json:"confirm,omitempty"`
}
