package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"humint-backend/internal/chat"
	"humint-backend/internal/config"
	"humint-backend/internal/relay"
	"humint-backend/internal/session"
	"humint-backend/pkg/logger"
)

func main() {
	cfg := config.LoadClient()
	logger.Init(cfg.LogLevel, "text")
	logger.SetOutput(os.Stderr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Println("\nShutting down...")
		cancel()
		os.Exit(0)
	}()

	store := session.NewStore(session.DefaultSeed()...)
	client := relay.New(cfg.APIURL, time.Duration(cfg.TimeoutSeconds)*time.Second)
	sender := chat.NewSender(store, client)
	ui := newTerminal(os.Stdout, store)

	ui.welcome(cfg.APIURL)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		ui.prompt()
		if !scanner.Scan() {
			break
		}

		cmd := parseCommand(scanner.Text())
		switch cmd.kind {
		case cmdQuit:
			return
		case cmdNew:
			store.CreateSession()
			ui.suggestions()
		case cmdList:
			ui.sessions()
		case cmdSwitch:
			ui.switchTo(cmd.index)
		case cmdSuggest:
			ui.suggestions()
		case cmdUse:
			if err := store.UseSuggestion(cmd.index - 1); err != nil {
				ui.warn("No suggestion %d", cmd.index)
				continue
			}
			ui.draft()
		case cmdSend:
			store.SetInput(cmd.text)
			ui.send(ctx, sender)
		case cmdSubmitDraft:
			ui.send(ctx, sender)
		case cmdInvalid:
			ui.warn("%s", cmd.text)
		}
	}
}
