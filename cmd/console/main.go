package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"messagehub/backend/internal/client"
	"messagehub/backend/internal/config"
	"messagehub/backend/internal/display"
	"messagehub/backend/internal/poller"
	"messagehub/backend/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	if len(os.Args) < 2 {
		fmt.Println("Usage: console <patient-phone>")
		os.Exit(1)
	}
	phone := os.Args[1]

	backend := client.NewBackend(cfg.BackendBase, cfg.SendTimeout)
	relay := client.NewRelay(cfg.RelayBase)

	sess := session.New(backend, relay, backend, cfg.TenantNumber)
	sess.IgnoreHistoricRealtime = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sess.Load(ctx, phone)
	render(sess)

	p := &poller.Poller{
		Session:  sess,
		Interval: cfg.PollInterval,
		OnCycle:  func() { render(sess) },
	}
	go p.Run(ctx)

	// Each stdin line is sent as the patient; blank lines are ignored.
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if err := sess.Send(ctx, text); err != nil {
			fmt.Printf("!! send failed: %v\n", err)
		}
		render(sess)
	}
}

func render(sess *session.Session) {
	msgs := sess.Messages()
	if len(msgs) == 0 {
		fmt.Println("-- no messages --")
		return
	}
	fmt.Println("----")
	for _, m := range msgs {
		fmt.Println(display.TranscriptLine(m))
	}
}
