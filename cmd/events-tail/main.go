package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"mindfulme-be/pkg/events"
	pktNats "mindfulme-be/pkg/nats"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Prints every domain event published to the EVENTS stream.
func main() {
	subject := flag.String("subject", "events.>", "subject filter, e.g. events.mood.logged")
	durable := flag.String("durable", "", "durable consumer name; empty for an ephemeral tail")
	flag.Parse()

	_ = godotenv.Load()

	url := os.Getenv("NATS_URL")
	if url == "" {
		url = "nats://localhost:4222"
	}

	sub, err := pktNats.NewSubscriber(url)
	if err != nil {
		color.Red("Failed to connect to NATS: %v", err)
		os.Exit(1)
	}
	defer sub.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = sub.Subscribe(ctx, *subject, *durable, func(ctx context.Context, event events.Event) error {
		payload, _ := json.MarshalIndent(event.Payload(), "", "  ")
		color.Cyan("%s  %s", event.Timestamp().Format("15:04:05"), event.EventType())
		color.White("%s", payload)
		return nil
	})
	if err != nil {
		color.Red("Subscribe failed: %v", err)
		os.Exit(1)
	}

	color.Green("Tailing %s on %s (Ctrl+C to stop)", *subject, url)
	<-ctx.Done()
}
