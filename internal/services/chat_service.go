package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"concierge/internal/models/session_models"
	mem "concierge/pkg/memcache"
	"concierge/pkg/utils"
)

type ChatServiceInterface interface {
	// StreamReply runs one user turn: builds the prompts, streams the model
	// reply through onSnapshot (cumulative text, once per delta), appends the
	// finalized assistant message to the history exactly once, and stores
	// extraction results on the session. A second call while one is streaming
	// for the same session is rejected with ErrTurnInFlight.
	StreamReply(ctx context.Context, sessionID, prompt, language string, onSnapshot func(string)) (*session_models.Message, error)
}

type ChatService struct {
	store      mem.SessionStore
	completion utils.CompletionClientInterface
}

func NewChatService(store mem.SessionStore, completion utils.CompletionClientInterface) ChatServiceInterface {
	return &ChatService{
		store:      store,
		completion: completion,
	}
}

func (c *ChatService) StreamReply(ctx context.Context, sessionID, prompt, language string, onSnapshot func(string)) (*session_models.Message, error) {
	if !c.store.Has(sessionID) {
		return nil, utils.ErrSessionNotFound
	}
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("%w: prompt must not be empty", utils.ErrInvalidInput)
	}
	if !c.store.BeginTurn(sessionID) {
		return nil, utils.ErrTurnInFlight
	}
	defer c.store.EndTurn(sessionID)

	// The session lock is held only for the two history writes, never across
	// the provider stream; concurrent snapshot reads see a consistent
	// session throughout the turn.
	var systemPrompt string
	ok := c.store.With(sessionID, func(session *session_models.Session) {
		session.Messages = append(session.Messages, session_models.Message{
			Role:    session_models.RoleUser,
			Content: prompt,
		})
		systemPrompt = buildSystemPrompt(session, language)
	})
	if !ok {
		return nil, utils.ErrSessionNotFound
	}

	userPrompt := prompt
	if language != "" {
		// Repeated on the user message for models that ignore the system
		// instruction.
		userPrompt = fmt.Sprintf("Respond entirely in %s. %s", language, prompt)
	}

	stream, err := c.completion.StreamChat(ctx, systemPrompt, userPrompt)
	if err != nil {
		// Connection-time failures take the same path as mid-stream ones:
		// a single error snapshot delivered through the content channel.
		stream = utils.NewErrorStream(err)
	}
	final := utils.AccumulateStream(stream, onSnapshot)

	message := session_models.Message{
		Role:     session_models.RoleAssistant,
		Content:  final,
		ImageRef: imageRefFor(prompt),
	}

	// Only the finalized buffer is authoritative for side effects. The
	// suggested-hotel set is replaced on every turn; the itinerary only when
	// the reply actually contains day markers.
	c.store.With(sessionID, func(session *session_models.Session) {
		session.Messages = append(session.Messages, message)
		if entries := ExtractItinerary(final); len(entries) > 0 {
			session.Itinerary = entries
		}
		session.SuggestedHotels = ExtractHotelNames(final)
	})

	return &message, nil
}

func buildSystemPrompt(session *session_models.Session, language string) string {
	var sb strings.Builder

	sb.WriteString("You are an expert AI travel concierge. Provide detailed, informative, and engaging responses about travel destinations, cultural insights, local customs, travel tips, and personalized recommendations.")

	if session.Preferences != nil {
		prefs, err := json.Marshal(session.Preferences)
		if err == nil {
			sb.WriteString(" Consider the user's preferences: ")
			sb.Write(prefs)
			sb.WriteString(".")
		}
	}

	sb.WriteString(" Always end your response with a follow-up question to encourage further engagement.")
	sb.WriteString(" When creating itineraries, use the format 'Day X:' for each day, followed by 'Morning:', 'Afternoon:', and 'Evening:' subsections.")
	sb.WriteString(" When recommending specific hotels, list each on its own line as 'Hotel: <name>'.")

	if session.BookingActive {
		if session.BookingStage == session_models.StageCompleted && session.Confirmed != nil {
			fmt.Fprintf(&sb, " The user has a confirmed booking at %s.", session.Confirmed.HotelName)
		} else {
			fmt.Fprintf(&sb, " The user is currently at the '%s' step of booking a trip; guide them through this step.", session.BookingStage)
		}
	}

	if language != "" {
		fmt.Fprintf(&sb, " Respond entirely in %s. Translate all response content into %s, including headings, lists and itinerary text, not just the prose.", language, language)
	}

	return sb.String()
}

// imageRefFor builds the placeholder travel-image URL attached to assistant
// messages, keyed on the last word of the prompt.
func imageRefFor(prompt string) string {
	words := strings.Fields(prompt)
	if len(words) == 0 {
		return ""
	}
	return "https://source.unsplash.com/800x600/?" + url.QueryEscape(words[len(words)-1])
}
