package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssetIngestedEvent is published after the registry persists a new
// (non-deduplicated) asset; the processing worker consumes it.
type AssetIngestedEvent struct {
	AssetID    uuid.UUID `json:"asset_id"`
	StorageKey string    `json:"storage_key"`
	MimeType   string    `json:"mime_type"`
	SizeBytes  int64     `json:"size_bytes"`
	Version    int       `json:"version"`
	IngestedAt time.Time `json:"ingested_at"`
}
