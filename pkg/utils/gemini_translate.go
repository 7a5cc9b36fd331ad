package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// TranslatorClientInterface is the phrase-translation provider boundary.
type TranslatorClientInterface interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

// GeminiTranslator implements TranslatorClientInterface on top of Gemini.
type GeminiTranslator struct {
	client *genai.Client
	model  string
}

func NewGeminiTranslator(apiKey, model string) (*GeminiTranslator, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTranslator{
		client: client,
		model:  model,
	}, nil
}

func (t *GeminiTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	m := t.client.GenerativeModel(t.model)
	m.SetTemperature(0.1)

	prompt := fmt.Sprintf(
		"Translate the following text into %s. Return only the translation, no explanations, no quotes.\n\n%s",
		targetLanguage, text)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrTranslationFailed)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

func (t *GeminiTranslator) Close() error {
	return t.client.Close()
}
