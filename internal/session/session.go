package session

import "errors"

// Role tags who produced a message. The set is closed.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleError     Role = "error"
)

const (
	PlaceholderTitle = "New Conversation"
	TitleMaxLen      = 30

	// ErrorContent replaces any relay failure in the thread.
	ErrorContent = "⚠️ Sorry, something went wrong. Please try again."
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyMessage    = errors.New("message is empty")
	ErrNoSuggestion    = errors.New("suggestion out of range")
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Session struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Messages []Message `json:"messages"`
}

func (s *Session) clone() Session {
	msgs := make([]Message, len(s.Messages))
	copy(msgs, s.Messages)
	return Session{ID: s.ID, Title: s.Title, Messages: msgs}
}

// DefaultSeed is the sidebar shown on a fresh start; the first entry is active.
func DefaultSeed() []Session {
	return []Session{
		{ID: "1", Title: "Current Conversation"},
		{ID: "2", Title: "React Learning"},
		{ID: "3", Title: "Project Ideas"},
	}
}

// Suggestions are the starter prompts offered on an empty thread.
var Suggestions = []string{
	"What can you do?",
	"How are you?",
	"Tell me a joke",
	"Who built you?",
	"Summarize a news article",
	"How to learn React?",
}

// Truncate cuts text to max runes and appends "..." when anything was cut.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
