package services

import (
	"fmt"
	"slices"
	"sort"

	"github.com/google/uuid"

	"concierge/internal/models/response_models"
	"concierge/internal/models/session_models"
	mem "concierge/pkg/memcache"
	"concierge/pkg/utils"
)

type SessionServiceInterface interface {
	CreateSession() (*response_models.SessionCreated, error)
	GetSession(id string) (*session_models.Session, error)
	SubmitPreferences(id string, prefs session_models.Preferences) error
	UpsertItineraryDay(id string, day int, content string) error
	DeleteItineraryDay(id string, day int) error
	TravelTips(id string) ([]string, error)
}

type SessionService struct {
	store mem.SessionStore
}

func NewSessionService(store mem.SessionStore) SessionServiceInterface {
	return &SessionService{store: store}
}

func (s *SessionService) CreateSession() (*response_models.SessionCreated, error) {
	id := uuid.New()
	token, err := utils.CreateSessionToken(id)
	if err != nil {
		return nil, err
	}

	s.store.Put(session_models.NewSession(id.String()))

	return &response_models.SessionCreated{
		SessionID: id.String(),
		Token:     token,
	}, nil
}

// GetSession returns a point-in-time copy. Callers can marshal or inspect it
// while other requests keep mutating the live session.
func (s *SessionService) GetSession(id string) (*session_models.Session, error) {
	var snapshot *session_models.Session
	ok := s.store.With(id, func(session *session_models.Session) {
		snapshot = session.Clone()
	})
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return snapshot, nil
}

// SubmitPreferences stores the questionnaire result. Preferences are
// immutable for the rest of the session; starting over means a new session.
func (s *SessionService) SubmitPreferences(id string, prefs session_models.Preferences) error {
	if !slices.Contains(session_models.TravelStyles, prefs.TravelStyle) {
		return fmt.Errorf("%w: unknown travel style %q", utils.ErrInvalidInput, prefs.TravelStyle)
	}
	if !slices.Contains(session_models.PreferredClimates, prefs.PreferredClimate) {
		return fmt.Errorf("%w: unknown climate %q", utils.ErrInvalidInput, prefs.PreferredClimate)
	}
	if prefs.Budget < 0 {
		return fmt.Errorf("%w: budget must not be negative", utils.ErrInvalidInput)
	}
	if prefs.TripDuration < 1 || prefs.TripDuration > 30 {
		return fmt.Errorf("%w: trip duration must be between 1 and 30 days", utils.ErrInvalidInput)
	}

	var err error
	ok := s.store.With(id, func(session *session_models.Session) {
		if session.Preferences != nil {
			err = utils.ErrPreferencesLocked
			return
		}
		session.Preferences = &prefs
	})
	if !ok {
		return utils.ErrSessionNotFound
	}
	return err
}

// UpsertItineraryDay adds a day or updates it in place by day number. The
// itinerary stays sorted by day and day numbers stay unique.
func (s *SessionService) UpsertItineraryDay(id string, day int, content string) error {
	if day < 1 || day > 30 {
		return fmt.Errorf("%w: day must be between 1 and 30", utils.ErrInvalidInput)
	}

	ok := s.store.With(id, func(session *session_models.Session) {
		for i := range session.Itinerary {
			if session.Itinerary[i].Day == day {
				session.Itinerary[i].Content = content
				return
			}
		}

		session.Itinerary = append(session.Itinerary, session_models.ItineraryEntry{
			Day:     day,
			Content: content,
		})
		sort.Slice(session.Itinerary, func(i, j int) bool {
			return session.Itinerary[i].Day < session.Itinerary[j].Day
		})
	})
	if !ok {
		return utils.ErrSessionNotFound
	}
	return nil
}

func (s *SessionService) DeleteItineraryDay(id string, day int) error {
	err := utils.ErrItineraryDayMissing
	ok := s.store.With(id, func(session *session_models.Session) {
		for i := range session.Itinerary {
			if session.Itinerary[i].Day == day {
				session.Itinerary = append(session.Itinerary[:i], session.Itinerary[i+1:]...)
				err = nil
				return
			}
		}
	})
	if !ok {
		return utils.ErrSessionNotFound
	}
	return err
}

var travelTipsByStyle = map[string][]string{
	"Luxury": {
		"Research exclusive experiences",
		"Book high-end accommodations in advance",
		"Consider hiring a personal guide",
	},
	"Budget": {
		"Look for free walking tours",
		"Stay in hostels or budget accommodations",
		"Cook your own meals to save money",
	},
	"Adventure": {
		"Check equipment requirements for activities",
		"Consider travel insurance for extreme sports",
		"Research local adventure tour operators",
	},
	"Cultural": {
		"Learn about local customs and etiquette",
		"Visit museums and historical sites",
		"Try authentic local cuisine",
	},
	"Relaxation": {
		"Book spa treatments in advance",
		"Look for all-inclusive resorts",
		"Plan some downtime in your itinerary",
	},
}

// TravelTips returns the canned tips for the session's travel style.
// Sessions without preferences fall back to the relaxation set.
func (s *SessionService) TravelTips(id string) ([]string, error) {
	style := "Relaxation"
	ok := s.store.With(id, func(session *session_models.Session) {
		if session.Preferences != nil {
			style = session.Preferences.TravelStyle
		}
	})
	if !ok {
		return nil, utils.ErrSessionNotFound
	}

	tips, ok := travelTipsByStyle[style]
	if !ok {
		tips = travelTipsByStyle["Relaxation"]
	}
	return tips, nil
}
