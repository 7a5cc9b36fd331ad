package request_models

type ChatRequest struct {
	Prompt string `json:"prompt"`

	// Language, when set, asks for the whole reply in that language.
	Language string `json:"language,omitempty"`
}
