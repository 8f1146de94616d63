package registry

import (
	"context"

	"media-vault/internal/core/domain"

	"github.com/google/uuid"
)

// Get returns the asset descriptor together with a presigned download URL
func (r *registryService) Get(ctx context.Context, id uuid.UUID) (*domain.Asset, string, error) {
	asset, err := r.uow.AssetRepo().FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	url, _, err := r.storage.PresignedDownloadURL(ctx, asset.StorageKey)
	if err != nil {
		return nil, "", err
	}
	return asset, url, nil
}

// List returns the live assets assigned to a folder (nil for root)
func (r *registryService) List(ctx context.Context, folderID *uuid.UUID) ([]domain.Asset, error) {
	return r.uow.AssetRepo().ListByFolder(ctx, folderID)
}
