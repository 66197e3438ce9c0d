package models

import "encoding/json"

// ChatRequest is the payload sent to the relay. Message is kept raw so the
// handler can tell a missing field from a non-string one.
type ChatRequest struct {
	Message json.RawMessage `json:"message"`
}

// ChatResponse carries the provider's reply text.
type ChatResponse struct {
	Response string `json:"response"`
}

// ErrorResponse is the body of every non-2xx relay response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}
