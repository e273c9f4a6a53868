package repository

import (
	"context"

	"github.com/travelog-service/internal/domain"
)

// StreamRepository publishes and consumes stream jobs through consumer
// groups.
type StreamRepository interface {
	// CreateConsumerGroup ensures a consumer group exists for the stream.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// Publish appends a JSON payload to a stream.
	Publish(ctx context.Context, stream string, payload interface{}) error

	// Consume reads messages for a consumer; the channel closes when the
	// context is done.
	Consume(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)

	// Ack acknowledges a processed message.
	Ack(ctx context.Context, stream, group, messageID string) error
}
