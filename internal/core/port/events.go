package port

import (
	"context"
	"media-vault/internal/core/domain"
)

// EventPublisher publishes ingest events for the processing worker
type EventPublisher interface {
	PublishAssetIngested(ctx context.Context, event domain.AssetIngestedEvent) error
}

// EventConsumer is an interface to define an event consumer (nats, kafka, ...)
type EventConsumer interface {
	Subscribe(ctx context.Context, handler MessageService) error
	Close() error
}

// MessageService is an interface to define message handling
type MessageService interface {
	HandleMessage(ctx context.Context, data []byte) error
}
