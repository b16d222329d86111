package services

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/logger"
	"github.com/sbilibin2017/gw-recipes/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter abstracts Kafka writer for publishing messages.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventPublisher emits domain events keyed by recipe id. Publishing is best
// effort: failures are logged and never reach the caller.
type EventPublisher struct {
	writer KafkaWriter
}

// NewEventPublisher creates a publisher; a nil writer disables publishing.
func NewEventPublisher(writer KafkaWriter) *EventPublisher {
	return &EventPublisher{writer: writer}
}

// Publish sends one event. Safe to call on a nil publisher.
func (p *EventPublisher) Publish(ctx context.Context, eventType string, recipeID uuid.UUID, userID *uuid.UUID, payload any) {
	event := models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		RecipeID:  recipeID.String(),
		Payload:   payload,
	}
	if userID != nil {
		event.UserID = userID.String()
	}

	if p == nil || p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", eventType)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.RecipeID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "type", eventType, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", eventType)
	}
}
