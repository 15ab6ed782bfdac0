package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	skafka "github.com/segmentio/kafka-go"

	"pet-adoption/internal/domain/adoption"
)

// Writer es el subconjunto de *kafka.Writer que usamos (permite fakes en tests).
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// Publisher publica eventos de adopción en un topic.
// Key = animalId: todos los eventos de un animal caen en la misma partición, en orden.
type Publisher struct {
	writer Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &skafka.Writer{
			Addr:         skafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &skafka.Hash{},
			RequiredAcks: skafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

func NewPublisherWithWriter(w Writer) *Publisher {
	return &Publisher{writer: w}
}

type interestPayload struct {
	ID           string    `json:"interesseId"`
	AnimalID     string    `json:"animalId"`
	AdopterID    string    `json:"usuarioId"`
	AdopterName  string    `json:"nomeUsuario"`
	AdopterEmail string    `json:"emailUsuario"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"dataDeInteresse"`
	EvaluatedBy  string    `json:"evaluatedBy,omitempty"`
}

type envelope struct {
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurredAt"`
	Interest   interestPayload `json:"interest"`
}

func (p *Publisher) Publish(ctx context.Context, e adoption.Event) error {
	body, err := json.Marshal(envelope{
		Type:       string(e.Type),
		OccurredAt: e.OccurredAt,
		Interest: interestPayload{
			ID:           e.Interest.ID,
			AnimalID:     e.Interest.AnimalID,
			AdopterID:    e.Interest.AdopterID,
			AdopterName:  e.Interest.AdopterName,
			AdopterEmail: e.Interest.AdopterEmail,
			Status:       string(e.Interest.Status),
			CreatedAt:    e.Interest.CreatedAt,
			EvaluatedBy:  e.Interest.EvaluatedBy,
		},
	})
	if err != nil {
		return fmt.Errorf("kafka: marshal event: %w", err)
	}

	msg := skafka.Message{
		Key:   []byte(e.Interest.AnimalID),
		Value: body,
		Headers: []skafka.Header{
			{Key: "event-type", Value: []byte(e.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: write %s: %w", e.Type, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

var _ adoption.EventPublisher = (*Publisher)(nil)
