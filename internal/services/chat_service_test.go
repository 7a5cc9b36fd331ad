package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"concierge/internal/models/session_models"
	mem "concierge/pkg/memcache"
	"concierge/pkg/utils"
)

type replayStream struct {
	deltas []string
	final  error
	delay  time.Duration
	pos    int
}

func (s *replayStream) Recv() (string, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.pos >= len(s.deltas) {
		return "", s.final
	}
	d := s.deltas[s.pos]
	s.pos++
	return d, nil
}

func (s *replayStream) Close() {}

type fakeCompletion struct {
	deltas       []string
	streamErr    error
	connectErr   error
	systemPrompt string
	userPrompt   string
	calls        int

	delay time.Duration

	audio    []byte
	synthErr error
	voice    string
}

func (f *fakeCompletion) StreamChat(ctx context.Context, systemPrompt, userPrompt string) (utils.TokenStream, error) {
	f.calls++
	f.systemPrompt = systemPrompt
	f.userPrompt = userPrompt
	if f.connectErr != nil {
		return nil, f.connectErr
	}
	final := f.streamErr
	if final == nil {
		final = io.EOF
	}
	return &replayStream{deltas: f.deltas, final: final, delay: f.delay}, nil
}

func (f *fakeCompletion) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	f.voice = voice
	return f.audio, f.synthErr
}

func newChatFixture(t *testing.T, completion *fakeCompletion) (ChatServiceInterface, mem.SessionStore, *session_models.Session) {
	t.Helper()
	store := mem.NewSessions(time.Hour)
	session := session_models.NewSession("s-1")
	store.Put(session)
	return NewChatService(store, completion), store, session
}

func TestStreamReplyAppendsOneTurn(t *testing.T) {
	completion := &fakeCompletion{deltas: []string{"Welcome ", "to Lisbon!"}}
	svc, _, session := newChatFixture(t, completion)

	var snapshots []string
	message, err := svc.StreamReply(context.Background(), "s-1", "plan a trip to Lisbon", "", func(s string) {
		snapshots = append(snapshots, s)
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(snapshots) != 2 || snapshots[1] != "Welcome to Lisbon!" {
		t.Errorf("snapshots = %v", snapshots)
	}
	if message.Role != session_models.RoleAssistant || message.Content != "Welcome to Lisbon!" {
		t.Errorf("message = %#v", message)
	}
	if !strings.HasSuffix(message.ImageRef, "Lisbon") {
		t.Errorf("image ref = %q, want keyed on the prompt's last word", message.ImageRef)
	}

	// Exactly one user and one assistant message per turn.
	if len(session.Messages) != 2 {
		t.Fatalf("history length = %d, want 2", len(session.Messages))
	}
	if session.Messages[0].Role != session_models.RoleUser || session.Messages[0].Content != "plan a trip to Lisbon" {
		t.Errorf("history[0] = %#v", session.Messages[0])
	}
	if session.Messages[1] != *message {
		t.Errorf("history[1] = %#v, want the returned message", session.Messages[1])
	}
}

func TestStreamReplyPromptComposition(t *testing.T) {
	completion := &fakeCompletion{deltas: []string{"ok"}}
	svc, _, session := newChatFixture(t, completion)

	session.Preferences = &session_models.Preferences{
		TravelStyle:      "Luxury",
		TripDuration:     5,
		PreferredClimate: "Mediterranean",
	}
	session.BookingActive = true
	session.BookingStage = session_models.StageDates

	if _, err := svc.StreamReply(context.Background(), "s-1", "hello", "French", nil); err != nil {
		t.Fatal(err)
	}

	sys := completion.systemPrompt
	for _, want := range []string{
		"expert AI travel concierge",
		`"travel_style":"Luxury"`,
		"'dates' step of booking",
		"Respond entirely in French",
		"Day X:",
		"Hotel: <name>",
	} {
		if !strings.Contains(sys, want) {
			t.Errorf("system prompt missing %q:\n%s", want, sys)
		}
	}
	if !strings.HasPrefix(completion.userPrompt, "Respond entirely in French. ") {
		t.Errorf("user prompt = %q", completion.userPrompt)
	}
	if completion.calls != 1 {
		t.Errorf("provider called %d times, want 1", completion.calls)
	}
}

func TestStreamReplyCompletedBookingDirective(t *testing.T) {
	completion := &fakeCompletion{deltas: []string{"ok"}}
	svc, _, session := newChatFixture(t, completion)

	session.BookingActive = true
	session.BookingStage = session_models.StageCompleted
	session.Confirmed = &session_models.ConfirmedBooking{HotelName: "Harbor View Inn"}

	if _, err := svc.StreamReply(context.Background(), "s-1", "what now", "", nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(completion.systemPrompt, "confirmed booking at Harbor View Inn") {
		t.Errorf("system prompt missing confirmed-booking directive:\n%s", completion.systemPrompt)
	}
}

func TestStreamReplyExtractionSideEffects(t *testing.T) {
	reply := "Here you go. Day 1: Alfama walk Day 2: Sintra\nHotel: Harbor View Inn\nHotel: Casa Verde Boutique"
	completion := &fakeCompletion{deltas: []string{reply}}
	svc, _, session := newChatFixture(t, completion)

	session.SuggestedHotels = []string{"Stale Hotel"}

	if _, err := svc.StreamReply(context.Background(), "s-1", "itinerary please", "", nil); err != nil {
		t.Fatal(err)
	}

	if len(session.Itinerary) != 2 || session.Itinerary[0].Content != "Day 1: Alfama walk" {
		t.Errorf("itinerary = %#v", session.Itinerary)
	}
	want := []string{"Harbor View Inn", "Casa Verde Boutique"}
	if len(session.SuggestedHotels) != 2 || session.SuggestedHotels[0] != want[0] || session.SuggestedHotels[1] != want[1] {
		t.Errorf("suggested hotels = %v, want replaced with %v", session.SuggestedHotels, want)
	}
}

func TestStreamReplyKeepsItineraryWhenReplyHasNoDays(t *testing.T) {
	completion := &fakeCompletion{deltas: []string{"Just some advice.\nHotel: Ritz"}}
	svc, _, session := newChatFixture(t, completion)

	session.Itinerary = []session_models.ItineraryEntry{{Day: 1, Content: "Day 1: keep me"}}
	session.SuggestedHotels = []string{"Old Pick"}

	if _, err := svc.StreamReply(context.Background(), "s-1", "tips", "", nil); err != nil {
		t.Fatal(err)
	}

	if len(session.Itinerary) != 1 || session.Itinerary[0].Content != "Day 1: keep me" {
		t.Errorf("itinerary replaced by a day-free reply: %#v", session.Itinerary)
	}
	if len(session.SuggestedHotels) != 1 || session.SuggestedHotels[0] != "Ritz" {
		t.Errorf("suggested hotels = %v, want [Ritz]", session.SuggestedHotels)
	}
}

func TestStreamReplyConnectFailureBecomesContent(t *testing.T) {
	completion := &fakeCompletion{connectErr: errors.New("dial tcp: refused")}
	svc, _, session := newChatFixture(t, completion)

	var snapshots []string
	message, err := svc.StreamReply(context.Background(), "s-1", "hello", "", func(s string) {
		snapshots = append(snapshots, s)
	})
	if err != nil {
		t.Fatalf("provider failures must not surface as errors: %v", err)
	}

	want := "An error occurred: dial tcp: refused"
	if message.Content != want {
		t.Errorf("content = %q, want %q", message.Content, want)
	}
	if len(snapshots) != 1 || snapshots[0] != want {
		t.Errorf("snapshots = %v, want exactly the error snapshot", snapshots)
	}
	if len(session.Messages) != 2 {
		t.Errorf("history length = %d, want the turn still recorded", len(session.Messages))
	}
}

func TestStreamReplyMidStreamFailureDiscardsPartial(t *testing.T) {
	completion := &fakeCompletion{deltas: []string{"partial "}, streamErr: errors.New("connection reset")}
	svc, _, session := newChatFixture(t, completion)

	session.SuggestedHotels = []string{"Old Pick"}

	message, err := svc.StreamReply(context.Background(), "s-1", "hello", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if message.Content != "An error occurred: connection reset" {
		t.Errorf("content = %q", message.Content)
	}
	// Error text has no hotel markers, so the suggestion set comes back empty.
	if session.SuggestedHotels != nil {
		t.Errorf("suggested hotels = %v, want cleared", session.SuggestedHotels)
	}
}

func TestStreamReplyRejectsConcurrentTurn(t *testing.T) {
	completion := &fakeCompletion{deltas: []string{"ok"}}
	svc, store, _ := newChatFixture(t, completion)

	if !store.BeginTurn("s-1") {
		t.Fatal("could not mark turn in flight")
	}
	defer store.EndTurn("s-1")

	_, err := svc.StreamReply(context.Background(), "s-1", "hello", "", nil)
	if !errors.Is(err, utils.ErrTurnInFlight) {
		t.Errorf("error = %v, want ErrTurnInFlight", err)
	}
}

// A streaming turn must not block or corrupt concurrent reads and writes on
// the same session: snapshot requests and manual itinerary edits interleave
// with the turn, and every access goes through the store's critical section.
// Run with -race.
func TestStreamReplyConcurrentSessionAccess(t *testing.T) {
	completion := &fakeCompletion{
		deltas: []string{"Some ", "advice ", "for ", "your ", "trip."},
		delay:  2 * time.Millisecond,
	}
	chatSvc, store, session := newChatFixture(t, completion)
	sessionSvc := NewSessionService(store)

	done := make(chan error, 1)
	go func() {
		_, err := chatSvc.StreamReply(context.Background(), "s-1", "advise me", "", nil)
		done <- err
	}()

	deadline := time.After(time.Second)
	for i := 0; ; i++ {
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("StreamReply: %v", err)
			}
			if len(session.Messages) != 2 {
				t.Errorf("history length = %d, want 2", len(session.Messages))
			}
			if len(session.Itinerary) == 0 {
				t.Error("manual itinerary entries lost during the turn")
			}
			return
		case <-deadline:
			t.Fatal("StreamReply did not finish")
		default:
		}

		day := i%30 + 1
		if err := sessionSvc.UpsertItineraryDay("s-1", day, "edited mid-turn"); err != nil {
			t.Fatalf("upsert during turn: %v", err)
		}
		snapshot, err := sessionSvc.GetSession("s-1")
		if err != nil {
			t.Fatalf("snapshot during turn: %v", err)
		}
		if _, err := json.Marshal(snapshot); err != nil {
			t.Fatalf("marshal during turn: %v", err)
		}
	}
}

func TestStreamReplyValidation(t *testing.T) {
	completion := &fakeCompletion{}
	svc, _, _ := newChatFixture(t, completion)

	if _, err := svc.StreamReply(context.Background(), "s-1", "   ", "", nil); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("blank prompt error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.StreamReply(context.Background(), "nope", "hi", "", nil); !errors.Is(err, utils.ErrSessionNotFound) {
		t.Errorf("unknown session error = %v, want ErrSessionNotFound", err)
	}
	if completion.calls != 0 {
		t.Errorf("provider called %d times for invalid turns, want 0", completion.calls)
	}
}
