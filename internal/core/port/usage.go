package port

import (
	"context"
	"media-vault/internal/core/domain"

	"github.com/google/uuid"
)

// UsageRepository is an interface to interact with asset usage rows
type UsageRepository interface {
	Upsert(ctx context.Context, usage domain.AssetUsage) error
	Delete(ctx context.Context, assetID uuid.UUID, entityType, entityID, fieldName string) error
	FindByAsset(ctx context.Context, assetID uuid.UUID) ([]domain.AssetUsage, error)
	ExistsByAsset(ctx context.Context, assetID uuid.UUID) (bool, error)
}

// UsageService tracks which external entities reference which asset
type UsageService interface {
	Record(ctx context.Context, assetID uuid.UUID, entityType, entityID, fieldName string, usageType domain.UsageType) error
	Release(ctx context.Context, assetID uuid.UUID, entityType, entityID, fieldName string) error
	List(ctx context.Context, assetID uuid.UUID) ([]domain.AssetUsage, error)
	IsInUse(ctx context.Context, assetID uuid.UUID) (bool, error)
}
