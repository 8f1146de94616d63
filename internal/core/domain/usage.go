package domain

import (
	"time"

	"github.com/google/uuid"
)

// UsageType tags how a referencing entity uses an asset
type UsageType string

const (
	UsageTypeContent    UsageType = "content"
	UsageTypeFeatured   UsageType = "featured"
	UsageTypeGallery    UsageType = "gallery"
	UsageTypeAttachment UsageType = "attachment"
	UsageTypeBackground UsageType = "background"
	UsageTypeThumbnail  UsageType = "thumbnail"
)

// AssetUsage records one external reference to an asset. The
// (AssetID, EntityType, EntityID, FieldName) tuple is unique.
type AssetUsage struct {
	AssetID    uuid.UUID
	EntityType string
	EntityID   string
	FieldName  string
	UsageType  UsageType
	UsedAt     time.Time
}
