package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/skobelevsky/authgate/internal/logger"
	"github.com/skobelevsky/authgate/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishAuthEvent publishes an auth event best-effort: a nil writer or a
// broker failure is logged, never surfaced to the caller.
func publishAuthEvent(ctx context.Context, w KafkaWriter, eventType string, userID uuid.UUID, email string) {
	if w == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", eventType)
		return
	}

	event := models.AuthEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    userID.String(),
		Email:     email,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal auth event", "type", eventType, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish auth event", "type", eventType, "error", err)
	} else {
		logger.Log.Infow("Auth event published", "type", eventType, "event_id", event.EventID)
	}
}
