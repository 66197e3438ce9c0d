package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"humint-backend/internal/models"
)

type stubCompleter struct {
	reply string
	err   error

	calls   int
	prompts []string
}

func (s *stubCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	return s.reply, s.err
}

func postChat(t *testing.T, h *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Chat(rr, req)
	return rr
}

func TestChatHandler_Success(t *testing.T) {
	provider := &stubCompleter{reply: "hi"}
	h := NewChatHandler(provider, false)

	rr := postChat(t, h, `{"message":"hello"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"response":"hi"}`, rr.Body.String())
	assert.Equal(t, []string{"hello"}, provider.prompts)
}

func TestChatHandler_ForwardsVerbatim(t *testing.T) {
	provider := &stubCompleter{reply: "ok"}
	h := NewChatHandler(provider, false)

	rr := postChat(t, h, `{"message":"  spaced\nout  "}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"  spaced\nout  "}, provider.prompts)
}

func TestChatHandler_InvalidMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing message", `{}`},
		{"null message", `{"message":null}`},
		{"number message", `{"message":42}`},
		{"object message", `{"message":{"text":"hi"}}`},
		{"array message", `{"message":["hi"]}`},
		{"empty message", `{"message":""}`},
		{"malformed json", `{"message":`},
		{"empty body", ``},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			provider := &stubCompleter{reply: "should not be used"}
			h := NewChatHandler(provider, false)

			rr := postChat(t, h, tc.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, `{"error":"Invalid message format"}`, rr.Body.String())
			assert.Zero(t, provider.calls, "provider must not be invoked")
		})
	}
}

func TestChatHandler_ProviderFailure(t *testing.T) {
	provider := &stubCompleter{err: errors.New("quota exceeded")}
	h := NewChatHandler(provider, false)

	rr := postChat(t, h, `{"message":"hello"}`)

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Failed to process request", body.Error)
	assert.Equal(t, "quota exceeded", body.Details)
	assert.Empty(t, body.Stack, "stack must be hidden outside development")
	assert.NotContains(t, rr.Body.String(), `"stack"`)
}

func TestChatHandler_ProviderFailureDevelopmentStack(t *testing.T) {
	provider := &stubCompleter{err: errors.New("quota exceeded")}
	h := NewChatHandler(provider, true)

	rr := postChat(t, h, `{"message":"hello"}`)

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "quota exceeded", body.Details)
	assert.Contains(t, body.Stack, "quota exceeded")
	assert.Contains(t, body.Stack, "TestChatHandler_ProviderFailureDevelopmentStack")
}

func TestChatHandler_EmptyReply(t *testing.T) {
	provider := &stubCompleter{reply: ""}
	h := NewChatHandler(provider, false)

	rr := postChat(t, h, `{"message":"hello"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"response":""}`, rr.Body.String())
}
