package utils

import "errors"

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrPreferencesLocked   = errors.New("preferences already submitted")
	ErrInvalidInput        = errors.New("invalid input")
	ErrTurnInFlight        = errors.New("a turn is already in flight for this session")
	ErrItineraryDayMissing = errors.New("itinerary day not found")
	ErrUnsupportedVoice    = errors.New("unsupported voice")
	ErrUnsupportedLanguage = errors.New("unsupported target language")
	ErrSpeechFailed        = errors.New("speech synthesis error")
	ErrTranslationFailed   = errors.New("translation error")
	ErrDatabaseError       = errors.New("database error")
)
