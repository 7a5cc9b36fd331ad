package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"concierge/pkg/utils"
)

// Voices supported by the synthesis provider.
var speechVoices = []string{"alloy", "echo", "fable", "onyx", "nova", "shimmer"}

type SpeechServiceInterface interface {
	// Synthesize returns the MP3 payload for the given text. The payload is
	// handed straight to the caller for one render and retained nowhere.
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}

type SpeechService struct {
	completion utils.CompletionClientInterface
}

func NewSpeechService(completion utils.CompletionClientInterface) SpeechServiceInterface {
	return &SpeechService{completion: completion}
}

func (s *SpeechService) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text must not be empty", utils.ErrInvalidInput)
	}
	if !slices.Contains(speechVoices, voice) {
		return nil, utils.ErrUnsupportedVoice
	}
	return s.completion.Synthesize(ctx, text, voice)
}
