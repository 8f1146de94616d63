package registry

import (
	"context"
	"fmt"

	"media-vault/internal/core/domain"
	"media-vault/internal/core/port"

	"github.com/google/uuid"
)

// Move reassigns an asset to another folder (nil for root). Both folders'
// cached aggregates change in the same transaction as the asset row.
func (r *registryService) Move(ctx context.Context, id uuid.UUID, folderID *uuid.UUID) error {

	return r.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		asset, err := uow.AssetRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		if equalFolder(asset.FolderID, folderID) {
			return nil
		}

		if folderID != nil {
			if _, err := uow.FolderRepo().FindByID(ctx, *folderID); err != nil {
				return fmt.Errorf("%w: target folder", domain.ErrFolderNotFound)
			}
		}

		if err := uow.AssetRepo().UpdateFolder(ctx, id, folderID); err != nil {
			return err
		}

		if asset.FolderID != nil {
			if err := uow.FolderRepo().AdjustAggregates(ctx, *asset.FolderID, -1, -asset.SizeBytes); err != nil {
				return err
			}
		}
		if folderID != nil {
			if err := uow.FolderRepo().AdjustAggregates(ctx, *folderID, 1, asset.SizeBytes); err != nil {
				return err
			}
		}
		return nil
	})
}

func equalFolder(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
