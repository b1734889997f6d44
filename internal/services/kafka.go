package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/parkjy76/gw-stock-chart/internal/logger"
	"github.com/parkjy76/gw-stock-chart/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishEvent publishes a domain event to Kafka. Publishing is best-effort:
// a nil writer or a publish failure never fails the triggering operation.
func publishEvent(ctx context.Context, w KafkaWriter, kind string, userID, postID int64) {
	if w == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "kind", kind)
		return
	}

	event := models.Event{
		EventID:   uuid.NewString(),
		Kind:      kind,
		UserID:    userID,
		PostID:    postID,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "kind", kind, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "kind", kind, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "kind", kind, "event_id", event.EventID)
	}
}
