package main

import (
	"fmt"
	"strconv"
	"strings"
)

type commandKind int

const (
	cmdSend commandKind = iota
	cmdSubmitDraft
	cmdNew
	cmdList
	cmdSwitch
	cmdSuggest
	cmdUse
	cmdQuit
	cmdInvalid
)

type command struct {
	kind  commandKind
	text  string
	index int
}

// parseCommand maps one input line to an action. Lines not starting with "/"
// are messages; a blank line submits the current draft.
func parseCommand(line string) command {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return command{kind: cmdSubmitDraft}
	}
	if !strings.HasPrefix(trimmed, "/") {
		return command{kind: cmdSend, text: line}
	}

	fields := strings.Fields(trimmed)
	switch fields[0] {
	case "/quit", "/exit":
		return command{kind: cmdQuit}
	case "/new":
		return command{kind: cmdNew}
	case "/list":
		return command{kind: cmdList}
	case "/suggest":
		return command{kind: cmdSuggest}
	case "/switch", "/use":
		kind := cmdSwitch
		if fields[0] == "/use" {
			kind = cmdUse
		}
		if len(fields) != 2 {
			return command{kind: cmdInvalid, text: fmt.Sprintf("usage: %s <number>", fields[0])}
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return command{kind: cmdInvalid, text: fmt.Sprintf("%q is not a valid number", fields[1])}
		}
		return command{kind: kind, index: n}
	default:
		return command{kind: cmdInvalid, text: fmt.Sprintf("unknown command %s", fields[0])}
	}
}
