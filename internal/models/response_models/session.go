package response_models

type SessionCreated struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
}
