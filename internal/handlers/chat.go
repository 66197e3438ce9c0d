package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"humint-backend/internal/models"
	"humint-backend/pkg/logger"
)

const (
	errInvalidMessage = "Invalid message format"
	errProcessing     = "Failed to process request"
)

// completer produces a single completion for one prompt.
type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type ChatHandler struct {
	provider  completer
	showStack bool
}

// NewChatHandler builds the relay. showStack attaches the provider error's
// stack trace to 500 responses and should only be set in development.
func NewChatHandler(provider completer, showStack bool) *ChatHandler {
	return &ChatHandler{
		provider:  provider,
		showStack: showStack,
	}
}

// Chat forwards the message verbatim to the provider and returns its text.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	log := logger.WithField("request_id", chimiddleware.GetReqID(r.Context()))

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: errInvalidMessage})
		return
	}

	message, ok := parseMessage(req.Message)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: errInvalidMessage})
		return
	}

	log.Infof("📩 Received message: %s", message)
	log.Debug("🤖 Generating response...")

	text, err := h.provider.Complete(r.Context(), message)
	if err != nil {
		log.Errorf("❌ Error in chat: %v", err)
		resp := models.ErrorResponse{
			Error:   errProcessing,
			Details: err.Error(),
		}
		if h.showStack {
			resp.Stack = fmt.Sprintf("%+v", err)
		}
		writeJSON(w, http.StatusInternalServerError, resp)
		return
	}

	log.Infof("✅ AI Response: %s", text)
	writeJSON(w, http.StatusOK, models.ChatResponse{Response: text})
}

// parseMessage accepts only a JSON string with at least one character.
// Whitespace-only text is passed through untouched.
func parseMessage(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var message string
	if err := json.Unmarshal(raw, &message); err != nil {
		return "", false
	}
	if message == "" {
		return "", false
	}
	return message, true
}
