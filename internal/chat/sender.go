package chat

import (
	"context"
	"errors"
	"strings"
	"sync"

	"humint-backend/internal/session"
	"humint-backend/pkg/logger"
)

// ErrSendInFlight rejects a send to a session that is still waiting on the
// relay.
var ErrSendInFlight = errors.New("a send is already in flight for this session")

// Relay forwards one message and returns the reply text.
type Relay interface {
	Send(ctx context.Context, message string) (string, error)
}

type Outcome int

const (
	// OutcomeReply appended an assistant message.
	OutcomeReply Outcome = iota
	// OutcomeEmpty got a successful but empty reply; nothing was appended.
	OutcomeEmpty
	// OutcomeError appended the fixed error message.
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeReply:
		return "reply"
	case OutcomeEmpty:
		return "empty"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// Result describes how a send settled. Err holds the relay failure behind
// OutcomeError and is never shown in the thread.
type Result struct {
	SessionID string
	Outcome   Outcome
	Err       error
}

// Sender runs the optimistic send cycle against a Store. Loading state is
// kept per session: different sessions may send concurrently, the same
// session may not.
type Sender struct {
	store *session.Store
	relay Relay

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewSender(store *session.Store, relay Relay) *Sender {
	return &Sender{
		store:    store,
		relay:    relay,
		inflight: make(map[string]struct{}),
	}
}

// Submit sends the store's draft input to the active session.
func (s *Sender) Submit(ctx context.Context) (Result, error) {
	return s.Send(ctx, s.store.ActiveID(), s.store.Input())
}

// Send appends text as a user message to sessionID, clears the draft input and
// relays text alone. The reply lands in sessionID even if another session
// became active meanwhile. The returned error is non-nil only when the send
// was rejected before anything was appended.
func (s *Sender) Send(ctx context.Context, sessionID, text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, session.ErrEmptyMessage
	}
	if !s.begin(sessionID) {
		return Result{}, ErrSendInFlight
	}
	defer s.end(sessionID)

	if err := s.store.AppendUserMessage(sessionID, text); err != nil {
		return Result{}, err
	}
	s.store.SetInput("")

	res := Result{SessionID: sessionID}

	reply, err := s.relay.Send(ctx, text)
	switch {
	case err != nil:
		logger.Warnf("chat relay failed for session %s: %v", sessionID, err)
		res.Outcome = OutcomeError
		res.Err = err
		s.appendSettled(sessionID, s.store.AppendErrorMessage(sessionID))
	case reply == "":
		logger.Debugf("chat relay returned no content for session %s", sessionID)
		res.Outcome = OutcomeEmpty
	default:
		res.Outcome = OutcomeReply
		s.appendSettled(sessionID, s.store.AppendAssistantMessage(sessionID, reply))
	}

	return res, nil
}

// Loading reports whether sessionID has a send outstanding.
func (s *Sender) Loading(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inflight[sessionID]
	return ok
}

// AnyLoading reports whether any session has a send outstanding.
func (s *Sender) AnyLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inflight) > 0
}

func (s *Sender) begin(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[sessionID]; busy {
		return false
	}
	s.inflight[sessionID] = struct{}{}
	return true
}

func (s *Sender) end(sessionID string) {
	s.mu.Lock()
	delete(s.inflight, sessionID)
	s.mu.Unlock()
}

// Sessions are never deleted, so this only fires on a programming error.
func (s *Sender) appendSettled(sessionID string, err error) {
	if err != nil {
		logger.Errorf("failed to settle send for session %s: %v", sessionID, err)
	}
}
