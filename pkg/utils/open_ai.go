package utils

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// CompletionClientInterface covers the two OpenAI capabilities the concierge
// uses: streamed chat completions and speech synthesis.
type CompletionClientInterface interface {
	StreamChat(ctx context.Context, systemPrompt, userPrompt string) (TokenStream, error)
	Synthesize(ctx context.Context, text string, voice string) ([]byte, error)
}

type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIClient) StreamChat(ctx context.Context, systemPrompt, userPrompt string) (TokenStream, error) {
	stream, err := c.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Stream: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create completion stream: %w", err)
	}
	return &chatTokenStream{stream: stream}, nil
}

// chatTokenStream adapts the go-openai delta stream to TokenStream.
type chatTokenStream struct {
	stream *openai.ChatCompletionStream
}

func (s *chatTokenStream) Recv() (string, error) {
	resp, err := s.stream.Recv()
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Delta.Content, nil
}

func (s *chatTokenStream) Close() {
	_ = s.stream.Close()
}

func (c *OpenAIClient) Synthesize(ctx context.Context, text string, voice string) ([]byte, error) {
	resp, err := c.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.TTSModel1,
		Input: text,
		Voice: openai.SpeechVoice(voice),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpeechFailed, err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: reading audio payload: %v", ErrSpeechFailed, err)
	}
	return audio, nil
}
