package session_models

import "time"

// Preferences is the questionnaire result. Once submitted it is immutable
// for the remainder of the session.
type Preferences struct {
	TravelStyle      string   `json:"travel_style"`
	Interests        []string `json:"interests"`
	Budget           int      `json:"budget"`
	TripDuration     int      `json:"trip_duration"`
	PreferredClimate string   `json:"preferred_climate"`
}

var (
	TravelStyles      = []string{"Luxury", "Budget", "Adventure", "Cultural", "Relaxation"}
	PreferredClimates = []string{"Tropical", "Mediterranean", "Alpine", "Desert", "Temperate"}
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry of the append-only chat history.
type Message struct {
	Role     string `json:"role"`
	Content  string `json:"content"`
	ImageRef string `json:"image_ref,omitempty"`
}

// ItineraryEntry is one day of the saved itinerary. Day numbers are unique
// within a session; the collection is kept sorted by day.
type ItineraryEntry struct {
	Day     int    `json:"day"`
	Content string `json:"content"`
}

// Session is the whole per-session state. It is owned by the session store:
// every read and mutation runs inside the store's per-session critical
// section, and handlers that need the state outside it take a Clone.
type Session struct {
	ID            string            `json:"id"`
	Preferences   *Preferences      `json:"preferences,omitempty"`
	Messages      []Message         `json:"messages"`
	Itinerary     []ItineraryEntry  `json:"itinerary"`
	BookingActive bool              `json:"booking_active"`
	BookingStage  BookingStage      `json:"booking_stage"`
	Draft         BookingDraft      `json:"booking_draft"`
	Confirmed     *ConfirmedBooking `json:"confirmed_booking,omitempty"`

	// SuggestedHotels is replaced wholesale on every finalized assistant
	// turn; duplicates and order come straight from extraction.
	SuggestedHotels []string `json:"suggested_hotels"`

	CreatedAt time.Time `json:"created_at"`
}

func NewSession(id string) *Session {
	return &Session{
		ID:           id,
		BookingStage: StageDestination,
		CreatedAt:    time.Now(),
	}
}

// Clone returns a deep copy safe to hand outside the store's critical
// section (serialization, rendering). Later writes to the live session do
// not show through.
func (s *Session) Clone() *Session {
	c := *s

	if s.Preferences != nil {
		prefs := *s.Preferences
		prefs.Interests = append([]string(nil), s.Preferences.Interests...)
		c.Preferences = &prefs
	}
	c.Messages = append([]Message(nil), s.Messages...)
	c.Itinerary = append([]ItineraryEntry(nil), s.Itinerary...)
	c.SuggestedHotels = append([]string(nil), s.SuggestedHotels...)

	if s.Draft.Flight != nil {
		flight := *s.Draft.Flight
		c.Draft.Flight = &flight
	}
	if s.Draft.Hotel != nil {
		hotel := *s.Draft.Hotel
		c.Draft.Hotel = &hotel
	}
	if s.Confirmed != nil {
		confirmed := *s.Confirmed
		c.Confirmed = &confirmed
	}
	return &c
}
