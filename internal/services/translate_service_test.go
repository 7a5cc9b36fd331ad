package services

import (
	"context"
	"errors"
	"testing"

	"concierge/pkg/utils"
)

type fakeTranslator struct {
	language string
	result   string
	err      error
}

func (f *fakeTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	f.language = targetLanguage
	return f.result, f.err
}

func TestTranslateMapsTargetCodes(t *testing.T) {
	translator := &fakeTranslator{result: "bonjour"}
	svc := NewTranslateService(translator)

	got, err := svc.Translate(context.Background(), "hello", "fr")
	if err != nil {
		t.Fatal(err)
	}
	if got != "bonjour" {
		t.Errorf("result = %q", got)
	}
	if translator.language != "French" {
		t.Errorf("provider asked for %q, want French", translator.language)
	}
}

func TestTranslateRejectsUnknownTarget(t *testing.T) {
	svc := NewTranslateService(&fakeTranslator{})

	_, err := svc.Translate(context.Background(), "hello", "pt")
	if !errors.Is(err, utils.ErrUnsupportedLanguage) {
		t.Errorf("error = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestTranslateRejectsEmptyText(t *testing.T) {
	svc := NewTranslateService(&fakeTranslator{})

	_, err := svc.Translate(context.Background(), "   ", "es")
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}
