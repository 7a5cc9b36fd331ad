package services

import (
	"context"
	"fmt"
	"strings"

	"concierge/pkg/utils"
)

// Target codes supported by the phrase translator, mapped to the language
// name the provider is prompted with.
var translateTargets = map[string]string{
	"es":    "Spanish",
	"fr":    "French",
	"de":    "German",
	"it":    "Italian",
	"ja":    "Japanese",
	"zh-CN": "Simplified Chinese",
}

type TranslateServiceInterface interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

type TranslateService struct {
	translator utils.TranslatorClientInterface
}

func NewTranslateService(translator utils.TranslatorClientInterface) TranslateServiceInterface {
	return &TranslateService{translator: translator}
}

func (t *TranslateService) Translate(ctx context.Context, text, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: text must not be empty", utils.ErrInvalidInput)
	}
	language, ok := translateTargets[target]
	if !ok {
		return "", utils.ErrUnsupportedLanguage
	}
	return t.translator.Translate(ctx, text, language)
}
