package port

import (
	"context"
	"media-vault/internal/core/domain"
)

// ProcessingService runs the asynchronous post-ingest pipeline. It also
// implements MessageService so the event consumer can drive it directly.
type ProcessingService interface {
	MessageService
	Process(ctx context.Context, event domain.AssetIngestedEvent) error
}
