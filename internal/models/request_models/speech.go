package request_models

type SpeechRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

type TranslateRequest struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}
