package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"humint-backend/internal/chat"
	"humint-backend/internal/session"
)

var (
	boldGreen  = color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan   = color.New(color.FgCyan, color.Bold).SprintFunc()
	boldYellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	red        = color.New(color.FgRed).SprintFunc()
	faint      = color.New(color.Faint).SprintFunc()
)

type terminal struct {
	out   io.Writer
	store *session.Store
}

func newTerminal(out io.Writer, store *session.Store) *terminal {
	return &terminal{out: out, store: store}
}

func (t *terminal) welcome(apiURL string) {
	fmt.Fprintln(t.out, boldGreen("Humint"))
	fmt.Fprintf(t.out, "Relay: %s\n", boldCyan(apiURL))
	fmt.Fprintln(t.out, faint("Commands: /new /list /switch <n> /suggest /use <n> /quit"))
	fmt.Fprintln(t.out)
	t.suggestions()
}

func (t *terminal) prompt() {
	sess, _ := t.store.Session(t.store.ActiveID())
	fmt.Fprintf(t.out, "%s %s ", faint("["+sess.Title+"]"), boldGreen("You:"))
}

func (t *terminal) suggestions() {
	fmt.Fprintln(t.out, boldCyan("How can I help you today?"))
	for i, q := range session.Suggestions {
		fmt.Fprintf(t.out, "  %d. %s →\n", i+1, q)
	}
}

func (t *terminal) sessions() {
	active := t.store.ActiveID()
	for i, sess := range t.store.Sessions() {
		marker := " "
		if sess.ID == active {
			marker = "*"
		}
		fmt.Fprintf(t.out, "%s %d. %s %s\n", marker, i+1, sess.Title, faint(fmt.Sprintf("(%d messages)", len(sess.Messages))))
	}
}

func (t *terminal) switchTo(n int) {
	sessions := t.store.Sessions()
	if n > len(sessions) {
		t.warn("No session %d", n)
		return
	}
	if err := t.store.SelectSession(sessions[n-1].ID); err != nil {
		t.warn("%v", err)
		return
	}
	t.thread()
}

// thread redraws the active conversation, or the suggestions when it is empty.
func (t *terminal) thread() {
	if t.store.IsEmpty() {
		t.suggestions()
		return
	}
	for _, m := range t.store.CurrentMessages() {
		t.message(m)
	}
}

func (t *terminal) message(m session.Message) {
	switch m.Role {
	case session.RoleUser:
		fmt.Fprintf(t.out, "%s %s\n", boldGreen("You:"), m.Content)
	case session.RoleAssistant:
		fmt.Fprintf(t.out, "%s %s\n", boldCyan("Humint:"), m.Content)
	case session.RoleError:
		fmt.Fprintln(t.out, red(m.Content))
	}
}

func (t *terminal) draft() {
	fmt.Fprintf(t.out, "%s %s %s\n", faint("Draft:"), t.store.Input(), faint("(press Enter to send)"))
}

func (t *terminal) warn(format string, args ...interface{}) {
	fmt.Fprintln(t.out, boldYellow(fmt.Sprintf(format, args...)))
}

// send blocks until the relay settles, so the terminal never has two sends
// outstanding.
func (t *terminal) send(ctx context.Context, sender *chat.Sender) {
	if strings.TrimSpace(t.store.Input()) != "" {
		fmt.Fprintln(t.out, faint("Humint is typing..."))
	}

	res, err := sender.Submit(ctx)
	switch {
	case errors.Is(err, session.ErrEmptyMessage):
		return
	case err != nil:
		t.warn("%v", err)
		return
	}

	if res.Outcome == chat.OutcomeEmpty {
		fmt.Fprintln(t.out, faint("(no response)"))
		return
	}
	sess, _ := t.store.Session(res.SessionID)
	if n := len(sess.Messages); n > 0 {
		t.message(sess.Messages[n-1])
	}
}
