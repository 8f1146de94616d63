package folder

import (
	"context"
	"errors"
	"strings"

	"media-vault/internal/core/domain"
	"media-vault/internal/core/port"

	"github.com/google/uuid"
)

// Move reparents a folder (nil for root). A folder can never become its own
// descendant: the target parent's materialized path is tested for the moved
// folder's prefix before anything changes, and a rejected move leaves the
// tree untouched. On success path and depth are recomputed for the whole
// subtree inside one transaction.
func (f *folderService) Move(ctx context.Context, id uuid.UUID, newParentID *uuid.UUID) error {

	return f.uow.Execute(ctx, func(uow port.UnitOfWork) error {

		folder, err := uow.FolderRepo().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		var newParent *domain.Folder
		if newParentID != nil {
			if *newParentID == id {
				return domain.ErrCyclicMove
			}
			newParent, err = uow.FolderRepo().FindByIDForUpdate(ctx, *newParentID)
			if err != nil {
				if errors.Is(err, domain.ErrFolderNotFound) {
					return domain.ErrParentNotFound
				}
				return err
			}
			if strings.HasPrefix(newParent.MaterializedPath, folder.MaterializedPath) {
				return domain.ErrCyclicMove
			}
		}

		pos := placeUnder(newParent, folder.ID, folder.Slug)
		return repositionSubtree(ctx, uow, folder, newParentID, pos)
	})
}
