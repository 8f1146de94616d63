package folder

import (
	"context"
	"errors"
	"fmt"

	"media-vault/internal/core/domain"
	"media-vault/internal/core/port"

	"github.com/google/uuid"
)

// Rename changes a folder's display name and slug. The subtree's paths are
// recomputed in the same transaction; depth and materialized path do not
// change because the folder keeps its parent.
func (f *folderService) Rename(ctx context.Context, id uuid.UUID, name string) (*domain.Folder, error) {

	slug := slugify(name)
	if slug == "" {
		return nil, fmt.Errorf("folder name %q yields an empty slug", name)
	}

	var renamed *domain.Folder
	txErr := f.uow.Execute(ctx, func(uow port.UnitOfWork) error {

		folder, err := uow.FolderRepo().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		var parent *domain.Folder
		if folder.ParentID != nil {
			parent, err = uow.FolderRepo().FindByID(ctx, *folder.ParentID)
			if err != nil {
				if errors.Is(err, domain.ErrFolderNotFound) {
					return domain.ErrParentNotFound
				}
				return err
			}
		}

		if err := uow.FolderRepo().UpdateName(ctx, id, name, slug); err != nil {
			return err
		}

		pos := placeUnder(parent, folder.ID, slug)
		if err := repositionSubtree(ctx, uow, folder, folder.ParentID, pos); err != nil {
			return err
		}

		folder.Name = name
		folder.Slug = slug
		folder.Path = pos.path
		renamed = folder
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return renamed, nil
}
