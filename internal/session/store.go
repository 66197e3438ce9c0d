package session

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Store holds every chat session of one UI instance in sidebar order, the
// active selection and the draft input. It always holds at least one session
// and the active id always resolves. All methods are safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	sessions []*Session
	activeID string
	input    string
	listener func()
	newID    func() string
}

// NewStore seeds the store. With no seed a single placeholder session is
// created. The first seed entry becomes active.
func NewStore(seed ...Session) *Store {
	s := &Store{newID: uuid.NewString}
	for i := range seed {
		sess := seed[i].clone()
		if sess.ID == "" {
			sess.ID = s.newID()
		}
		s.sessions = append(s.sessions, &sess)
	}
	if len(s.sessions) == 0 {
		s.sessions = append(s.sessions, &Session{ID: s.newID(), Title: PlaceholderTitle})
	}
	s.activeID = s.sessions[0].ID
	return s
}

// OnChange registers fn to run after every mutation. fn runs outside the
// store's lock and may read from the store.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	s.listener = fn
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.RLock()
	fn := s.listener
	s.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

// CreateSession puts a fresh placeholder session at the front, makes it
// active and clears the draft input.
func (s *Store) CreateSession() Session {
	s.mu.Lock()
	sess := &Session{ID: s.newID(), Title: PlaceholderTitle}
	s.sessions = append([]*Session{sess}, s.sessions...)
	s.activeID = sess.ID
	s.input = ""
	out := sess.clone()
	s.mu.Unlock()

	s.notify()
	return out
}

// SelectSession makes id active. Unknown ids leave the selection unchanged.
func (s *Store) SelectSession(id string) error {
	s.mu.Lock()
	if s.find(id) == nil {
		s.mu.Unlock()
		return ErrSessionNotFound
	}
	s.activeID = id
	s.mu.Unlock()

	s.notify()
	return nil
}

// AppendUserMessage appends text as a user message. The first user message of
// a session still titled PlaceholderTitle also becomes its title.
func (s *Store) AppendUserMessage(sessionID, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}

	return s.mutate(sessionID, func(sess *Session) {
		if len(sess.Messages) == 0 && sess.Title == PlaceholderTitle {
			sess.Title = Truncate(text, TitleMaxLen)
		}
		sess.Messages = append(sess.Messages, Message{Role: RoleUser, Content: text})
	})
}

func (s *Store) AppendAssistantMessage(sessionID, text string) error {
	return s.mutate(sessionID, func(sess *Session) {
		sess.Messages = append(sess.Messages, Message{Role: RoleAssistant, Content: text})
	})
}

func (s *Store) AppendErrorMessage(sessionID string) error {
	return s.mutate(sessionID, func(sess *Session) {
		sess.Messages = append(sess.Messages, Message{Role: RoleError, Content: ErrorContent})
	})
}

func (s *Store) mutate(sessionID string, fn func(*Session)) error {
	s.mu.Lock()
	sess := s.find(sessionID)
	if sess == nil {
		s.mu.Unlock()
		return ErrSessionNotFound
	}
	fn(sess)
	s.mu.Unlock()

	s.notify()
	return nil
}

// CurrentMessages returns a copy of the active thread.
func (s *Store) CurrentMessages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess := s.find(s.activeID)
	if sess == nil {
		return []Message{}
	}
	msgs := make([]Message, len(sess.Messages))
	copy(msgs, sess.Messages)
	return msgs
}

// IsEmpty reports whether the active thread has no messages yet.
func (s *Store) IsEmpty() bool {
	return len(s.CurrentMessages()) == 0
}

func (s *Store) ActiveID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID
}

// Session returns a snapshot of one session.
func (s *Store) Session(id string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess := s.find(id)
	if sess == nil {
		return Session{}, false
	}
	return sess.clone(), true
}

// Sessions returns snapshots in sidebar order, newest first.
func (s *Store) Sessions() []Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess.clone())
	}
	return out
}

func (s *Store) Input() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.input
}

func (s *Store) SetInput(text string) {
	s.mu.Lock()
	s.input = text
	s.mu.Unlock()

	s.notify()
}

// UseSuggestion copies suggestion i into the draft input without sending it.
func (s *Store) UseSuggestion(i int) error {
	if i < 0 || i >= len(Suggestions) {
		return ErrNoSuggestion
	}
	s.SetInput(Suggestions[i])
	return nil
}

// find must be called with mu held.
func (s *Store) find(id string) *Session {
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess
		}
	}
	return nil
}
