package adoption

import (
	"context"
	"time"
)

type EventType string

const (
	EventInterestRegistered EventType = "interest.registered"
	EventInterestEvaluated  EventType = "interest.evaluated"
)

// Event se publica después de cada cambio persistido.
type Event struct {
	Type       EventType
	Interest   Interest
	OccurredAt time.Time
}

// EventPublisher es el puerto hacia el broker (kafka en prod).
type EventPublisher interface {
	Publish(ctx context.Context, e Event) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, Event) error { return nil }

// NoopPublisher descarta los eventos (dev, tests).
func NoopPublisher() EventPublisher { return noopPublisher{} }
