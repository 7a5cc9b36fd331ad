package services

import (
	"context"
	"errors"
	"testing"

	"concierge/pkg/utils"
)

func TestSynthesizeValidVoice(t *testing.T) {
	completion := &fakeCompletion{audio: []byte("mp3-bytes")}
	svc := NewSpeechService(completion)

	audio, err := svc.Synthesize(context.Background(), "bon voyage", "nova")
	if err != nil {
		t.Fatal(err)
	}
	if string(audio) != "mp3-bytes" {
		t.Errorf("audio = %q", audio)
	}
	if completion.voice != "nova" {
		t.Errorf("voice passed through = %q, want nova", completion.voice)
	}
}

func TestSynthesizeRejectsUnknownVoice(t *testing.T) {
	svc := NewSpeechService(&fakeCompletion{})

	_, err := svc.Synthesize(context.Background(), "hello", "baritone")
	if !errors.Is(err, utils.ErrUnsupportedVoice) {
		t.Errorf("error = %v, want ErrUnsupportedVoice", err)
	}
}

func TestSynthesizeRejectsEmptyText(t *testing.T) {
	svc := NewSpeechService(&fakeCompletion{})

	_, err := svc.Synthesize(context.Background(), "  ", "alloy")
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestSynthesizePropagatesProviderFailure(t *testing.T) {
	completion := &fakeCompletion{synthErr: utils.ErrSpeechFailed}
	svc := NewSpeechService(completion)

	_, err := svc.Synthesize(context.Background(), "hello", "echo")
	if !errors.Is(err, utils.ErrSpeechFailed) {
		t.Errorf("error = %v, want ErrSpeechFailed", err)
	}
}
