package usage

import (
	"context"
	"time"

	"media-vault/internal/core/domain"
	"media-vault/internal/core/port"

	"github.com/google/uuid"
)

type usageService struct {
	uow port.UnitOfWork
}

// NewUsageService creates a new usage tracking service
func NewUsageService(uow port.UnitOfWork) port.UsageService {
	return &usageService{uow: uow}
}

// Record upserts a usage on its unique (asset, entity type, entity id,
// field) tuple. Deleted assets are unresolvable for new references.
func (u *usageService) Record(ctx context.Context, assetID uuid.UUID, entityType, entityID, fieldName string, usageType domain.UsageType) error {

	if _, err := u.uow.AssetRepo().FindByID(ctx, assetID); err != nil {
		return err
	}

	return u.uow.UsageRepo().Upsert(ctx, domain.AssetUsage{
		AssetID:    assetID,
		EntityType: entityType,
		EntityID:   entityID,
		FieldName:  fieldName,
		UsageType:  usageType,
		UsedAt:     time.Now(),
	})
}

// Release removes a usage record; releasing an absent record is a no-op
func (u *usageService) Release(ctx context.Context, assetID uuid.UUID, entityType, entityID, fieldName string) error {
	return u.uow.UsageRepo().Delete(ctx, assetID, entityType, entityID, fieldName)
}

// List returns every usage recorded against the asset
func (u *usageService) List(ctx context.Context, assetID uuid.UUID) ([]domain.AssetUsage, error) {
	return u.uow.UsageRepo().FindByAsset(ctx, assetID)
}

// IsInUse reports whether any usage is recorded against the asset
func (u *usageService) IsInUse(ctx context.Context, assetID uuid.UUID) (bool, error) {
	return u.uow.UsageRepo().ExistsByAsset(ctx, assetID)
}
