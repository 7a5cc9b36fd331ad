package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"concierge/internal/models/request_models"
	"concierge/internal/models/response_models"
	"concierge/internal/models/session_models"
	"concierge/internal/repositories"
	mem "concierge/pkg/memcache"
	"concierge/pkg/utils"
)

const dateLayout = "2006-01-02"

type BookingServiceInterface interface {
	GetState(sessionID string) (*response_models.BookingState, error)
	Advance(ctx context.Context, sessionID string, req request_models.BookingAdvanceRequest) (*response_models.BookingAdvance, error)
	Clear(sessionID string) error
}

type BookingService struct {
	store   mem.SessionStore
	catalog repositories.CatalogRepository
}

func NewBookingService(store mem.SessionStore, catalog repositories.CatalogRepository) BookingServiceInterface {
	return &BookingService{
		store:   store,
		catalog: catalog,
	}
}

func (b *BookingService) GetState(sessionID string) (*response_models.BookingState, error) {
	var state *response_models.BookingState
	ok := b.store.With(sessionID, func(session *session_models.Session) {
		snapshot := session.Clone()
		state = &response_models.BookingState{
			Active:    snapshot.BookingActive,
			Stage:     snapshot.BookingStage,
			Draft:     snapshot.Draft,
			Confirmed: snapshot.Confirmed,
		}
	})
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return state, nil
}

// Advance moves the booking forward by at most one stage. Invalid input for
// the current stage leaves the stage untouched and comes back as a rejection
// in the result, never as an error. The whole transition runs inside the
// session's critical section.
func (b *BookingService) Advance(ctx context.Context, sessionID string, req request_models.BookingAdvanceRequest) (*response_models.BookingAdvance, error) {
	var (
		result *response_models.BookingAdvance
		err    error
	)
	ok := b.store.With(sessionID, func(session *session_models.Session) {
		result, err = b.advanceLocked(ctx, session, req)
	})
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return result, err
}

func (b *BookingService) advanceLocked(ctx context.Context, session *session_models.Session, req request_models.BookingAdvanceRequest) (*response_models.BookingAdvance, error) {
	// Results outlive the critical section, so they carry a copy, never the
	// live draft.
	reject := func(reason string) *response_models.BookingAdvance {
		snapshot := session.Clone()
		return &response_models.BookingAdvance{
			Accepted:  false,
			Reason:    reason,
			Stage:     snapshot.BookingStage,
			Draft:     snapshot.Draft,
			Confirmed: snapshot.Confirmed,
		}
	}
	accept := func() *response_models.BookingAdvance {
		snapshot := session.Clone()
		return &response_models.BookingAdvance{
			Accepted:  true,
			Stage:     snapshot.BookingStage,
			Draft:     snapshot.Draft,
			Confirmed: snapshot.Confirmed,
		}
	}

	switch session.BookingStage {
	case session_models.StageDestination:
		destination := strings.TrimSpace(req.Destination)
		if destination == "" {
			return reject("destination is required"), nil
		}
		session.Draft.Destination = destination
		session.BookingActive = true
		session.BookingStage = session_models.StageDates
		return accept(), nil

	case session_models.StageDates:
		start, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return reject(fmt.Sprintf("start date must be %s", dateLayout)), nil
		}
		end, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return reject(fmt.Sprintf("end date must be %s", dateLayout)), nil
		}
		if !end.After(start) {
			return reject("end date must be after start date"), nil
		}
		session.Draft.StartDate = start
		session.Draft.EndDate = end
		session.BookingStage = session_models.StageFlight
		return accept(), nil

	case session_models.StageFlight:
		if req.SkipFlight {
			// Hotel-only booking variant.
			session.Draft.Flight = nil
			session.BookingStage = session_models.StageHotel
			return accept(), nil
		}
		if req.FlightIndex == nil {
			return reject("select a flight or skip to book hotel only"), nil
		}
		flights, err := b.catalog.ListFlights(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		idx := *req.FlightIndex
		if idx < 0 || idx >= len(flights) {
			return reject("flight selection is out of range"), nil
		}
		f := flights[idx]
		session.Draft.Flight = &session_models.FlightOption{
			Airline:  f.Airline,
			Schedule: f.Schedule,
			Price:    f.Price,
		}
		session.BookingStage = session_models.StageHotel
		return accept(), nil

	case session_models.StageHotel:
		hotel, reason, err := b.resolveHotel(ctx, session, req)
		if err != nil {
			return nil, err
		}
		if hotel == nil {
			return reject(reason), nil
		}

		nights := int(session.Draft.EndDate.Sub(session.Draft.StartDate).Hours() / 24)
		if nights < 1 {
			return reject("stay must be at least one night"), nil
		}

		session.Draft.Hotel = hotel
		session.Draft.Nights = nights
		session.Draft.TotalCost = hotel.PricePerNight * float64(nights)
		if session.Draft.Flight != nil {
			session.Draft.TotalCost += session.Draft.Flight.Price
		}
		session.BookingStage = session_models.StageConfirmation
		return accept(), nil

	case session_models.StageConfirmation:
		if !req.Confirm {
			return reject("explicit confirmation is required"), nil
		}
		session.Confirmed = &session_models.ConfirmedBooking{
			HotelName:     session.Draft.Hotel.Name,
			CheckIn:       session.Draft.StartDate,
			CheckOut:      session.Draft.EndDate,
			Nights:        session.Draft.Nights,
			PricePerNight: session.Draft.Hotel.PricePerNight,
		}
		session.BookingStage = session_models.StageCompleted
		return accept(), nil

	case session_models.StageCompleted:
		return reject("booking is already completed; clear it to start over"), nil
	}

	return reject("unknown booking stage"), nil
}

// resolveHotel picks the hotel for the current advance: a catalog ordinal or
// an ordinal into the session's suggested-hotel set. Returns (nil, reason)
// when the selection is invalid.
func (b *BookingService) resolveHotel(ctx context.Context, session *session_models.Session, req request_models.BookingAdvanceRequest) (*session_models.HotelOption, string, error) {
	switch {
	case req.HotelIndex != nil:
		hotels, err := b.catalog.ListHotels(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		idx := *req.HotelIndex
		if idx < 0 || idx >= len(hotels) {
			return nil, "hotel selection is out of range", nil
		}
		h := hotels[idx]
		return &session_models.HotelOption{
			Name:          h.Name,
			Rating:        h.Rating,
			PricePerNight: h.PricePerNight,
		}, "", nil

	case req.SuggestedHotelIndex != nil:
		idx := *req.SuggestedHotelIndex
		if idx < 0 || idx >= len(session.SuggestedHotels) {
			return nil, "suggested hotel selection is out of range", nil
		}
		offer := SuggestedHotelOffer(session.SuggestedHotels[idx])
		return &offer, "", nil

	default:
		return nil, "no hotel selected", nil
	}
}

// SuggestedHotelOffer materializes an ad-hoc offer for a hotel name that came
// out of extraction rather than the catalog. Price and rating are synthesized
// deterministically from the name so repeated renders agree: price lands in
// 80–400 per night, rating in 3.5–5.0.
func SuggestedHotelOffer(name string) session_models.HotelOption {
	h := fnv.New32a()
	h.Write([]byte(name))
	sum := h.Sum32()

	price := 80 + float64(sum%321)
	rating := 3.5 + float64((sum>>8)%16)*0.1

	return session_models.HotelOption{
		Name:          name,
		Rating:        rating,
		PricePerNight: price,
	}
}

// Clear discards the draft and any confirmed booking and returns the flow to
// the destination stage. Chat history and preferences are untouched.
func (b *BookingService) Clear(sessionID string) error {
	ok := b.store.With(sessionID, func(session *session_models.Session) {
		session.Draft = session_models.BookingDraft{}
		session.Confirmed = nil
		session.BookingActive = false
		session.BookingStage = session_models.StageDestination
	})
	if !ok {
		return utils.ErrSessionNotFound
	}
	return nil
}
