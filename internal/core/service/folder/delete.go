package folder

import (
	"context"
	"fmt"

	"media-vault/internal/core/domain"
	"media-vault/internal/core/port"

	"github.com/google/uuid"
)

// Delete removes a folder according to the chosen strategy. The default
// rejects deletion while the folder still holds live subfolders or assets.
// Cascade tombstones the whole subtree including its assets; reparenting
// lifts direct children (folders and assets) to the root first.
func (f *folderService) Delete(ctx context.Context, id uuid.UUID, strategy domain.FolderDeleteStrategy) error {

	if strategy == "" {
		strategy = domain.FolderDeleteRejectIfNonEmpty
	}

	return f.uow.Execute(ctx, func(uow port.UnitOfWork) error {

		folder, err := uow.FolderRepo().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		switch strategy {
		case domain.FolderDeleteRejectIfNonEmpty:
			return f.deleteIfEmpty(ctx, uow, folder)
		case domain.FolderDeleteCascade:
			return f.deleteCascade(ctx, uow, folder)
		case domain.FolderDeleteReparentToRoot:
			return f.deleteReparenting(ctx, uow, folder)
		default:
			return fmt.Errorf("unknown delete strategy %q", strategy)
		}
	})
}

func (f *folderService) deleteIfEmpty(ctx context.Context, uow port.UnitOfWork, folder *domain.Folder) error {
	children, err := uow.FolderRepo().CountLiveChildren(ctx, folder.ID)
	if err != nil {
		return err
	}
	if children > 0 || folder.AssetCount > 0 {
		return domain.ErrFolderNotEmpty
	}
	return uow.FolderRepo().SoftDelete(ctx, folder.ID)
}

func (f *folderService) deleteCascade(ctx context.Context, uow port.UnitOfWork, folder *domain.Folder) error {
	subtree, err := uow.FolderRepo().FindSubtree(ctx, folder.MaterializedPath)
	if err != nil {
		return err
	}

	for _, node := range subtree {
		assets, err := uow.AssetRepo().ListByFolder(ctx, &node.ID)
		if err != nil {
			return err
		}
		for _, asset := range assets {
			if err := uow.AssetRepo().SoftDelete(ctx, asset.ID); err != nil {
				return err
			}
			if err := uow.FolderRepo().AdjustAggregates(ctx, node.ID, -1, -asset.SizeBytes); err != nil {
				return err
			}
		}
		if err := uow.FolderRepo().SoftDelete(ctx, node.ID); err != nil {
			return err
		}
	}
	return nil
}

func (f *folderService) deleteReparenting(ctx context.Context, uow port.UnitOfWork, folder *domain.Folder) error {

	children, err := uow.FolderRepo().FindChildren(ctx, &folder.ID)
	if err != nil {
		return err
	}
	for i := range children {
		child := children[i]
		pos := placeUnder(nil, child.ID, child.Slug)
		if err := repositionSubtree(ctx, uow, &child, nil, pos); err != nil {
			return err
		}
	}

	assets, err := uow.AssetRepo().ListByFolder(ctx, &folder.ID)
	if err != nil {
		return err
	}
	for _, asset := range assets {
		if err := uow.AssetRepo().UpdateFolder(ctx, asset.ID, nil); err != nil {
			return err
		}
		if err := uow.FolderRepo().AdjustAggregates(ctx, folder.ID, -1, -asset.SizeBytes); err != nil {
			return err
		}
	}

	return uow.FolderRepo().SoftDelete(ctx, folder.ID)
}
