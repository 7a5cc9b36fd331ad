package session_models

import "time"

// BookingStage is the strictly ordered booking progression. There is no
// skipping and no backward transition; only an explicit clear resets the
// flow to StageDestination.
type BookingStage string

const (
	StageDestination  BookingStage = "destination"
	StageDates        BookingStage = "dates"
	StageFlight       BookingStage = "flight"
	StageHotel        BookingStage = "hotel"
	StageConfirmation BookingStage = "confirmation"
	StageCompleted    BookingStage = "completed"
)

// FlightOption is a catalog flight as selected into a draft.
type FlightOption struct {
	Airline  string  `json:"airline"`
	Schedule string  `json:"schedule"`
	Price    float64 `json:"price"`
}

// HotelOption is a catalog or extractor-suggested hotel as selected into a
// draft. Suggested hotels get a synthesized price and rating.
type HotelOption struct {
	Name          string  `json:"name"`
	Rating        float64 `json:"rating"`
	PricePerNight float64 `json:"price_per_night"`
}

// BookingDraft accumulates fields as stages complete. It is only fully
// populated once the flow reaches StageConfirmation.
type BookingDraft struct {
	Destination string        `json:"destination,omitempty"`
	StartDate   time.Time     `json:"start_date,omitempty"`
	EndDate     time.Time     `json:"end_date,omitempty"`
	Flight      *FlightOption `json:"flight,omitempty"`
	Hotel       *HotelOption  `json:"hotel,omitempty"`
	Nights      int           `json:"nights,omitempty"`
	TotalCost   float64       `json:"total_cost,omitempty"`
}

// ConfirmedBooking is the immutable snapshot taken on confirmation → completed.
// TotalCost is never stored; it is always recomputed from the per-night price
// and the night count so the two cannot drift.
type ConfirmedBooking struct {
	HotelName     string    `json:"hotel_name"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	Nights        int       `json:"nights"`
	PricePerNight float64   `json:"price_per_night"`
}

func (b ConfirmedBooking) TotalCost() float64 {
	return b.PricePerNight * float64(b.Nights)
}
