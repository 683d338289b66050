package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"fitbite-be/pkg/events"
	"fitbite-be/pkg/nats"
)

// Drains the durable event stream so purchase and survey events are not lost
// when no downstream system is attached yet. Each event is logged; real
// integrations (CRM, analytics) hang their own durable consumers off the
// same stream.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://localhost:4222"
	}

	subscriber, err := nats.NewSubscriber(natsURL)
	if err != nil {
		log.Fatalf("Error: Failed to connect to NATS: %v", err)
	}
	defer subscriber.Close()

	err = subscriber.Subscribe("events.>", "fitbite-event-log", func(ctx context.Context, event events.Event) error {
		log.Printf("[EVENT] %s payload=%v", event.EventType(), event.Payload())
		return nil
	})
	if err != nil {
		log.Fatalf("Error: Failed to subscribe: %v", err)
	}

	log.Println("Worker is draining events (Ctrl+C to stop)...")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Println("Worker shutting down")
}
