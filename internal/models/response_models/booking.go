package response_models

import "concierge/internal/models/session_models"

// BookingAdvance reports the outcome of one stage-advance attempt. A
// validation failure is a rejection, not an error: Accepted is false, Reason
// says why, and Stage is unchanged so the caller re-renders the same step.
type BookingAdvance struct {
	Accepted  bool                             `json:"accepted"`
	Reason    string                           `json:"reason,omitempty"`
	Stage     session_models.BookingStage      `json:"stage"`
	Draft     session_models.BookingDraft      `json:"draft"`
	Confirmed *session_models.ConfirmedBooking `json:"confirmed_booking,omitempty"`
}

type BookingState struct {
	Active    bool                             `json:"active"`
	Stage     session_models.BookingStage      `json:"stage"`
	Draft     session_models.BookingDraft      `json:"draft"`
	Confirmed *session_models.ConfirmedBooking `json:"confirmed_booking,omitempty"`
}
