package registry

import (
	"context"

	"media-vault/internal/core/domain"
	"media-vault/internal/core/port"

	"github.com/google/uuid"
)

// SoftDelete tombstones an asset. Without force it fails while external
// usages are still recorded; with force the asset becomes unresolvable for
// new references but the usage rows are retained for audit.
func (r *registryService) SoftDelete(ctx context.Context, id uuid.UUID, force bool) error {

	asset, err := r.uow.AssetRepo().FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !force {
		inUse, err := r.uow.UsageRepo().ExistsByAsset(ctx, id)
		if err != nil {
			return err
		}
		if inUse {
			return domain.ErrAssetInUse
		}
	}

	return r.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		if err := uow.AssetRepo().SoftDelete(ctx, id); err != nil {
			return err
		}
		if asset.FolderID != nil {
			return uow.FolderRepo().AdjustAggregates(ctx, *asset.FolderID, -1, -asset.SizeBytes)
		}
		return nil
	})
}
