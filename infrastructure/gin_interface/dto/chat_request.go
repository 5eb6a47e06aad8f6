package dto

type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse mirrors the wire contract: audioUrl is JSON null when speech
// synthesis failed or produced nothing.
type ChatResponse struct {
	Text     string  `json:"text"`
	AudioUrl *string `json:"audioUrl"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
