package folder

import (
	"context"
	"errors"
	"fmt"

	"media-vault/internal/core/domain"

	"github.com/google/uuid"
)

// Create adds a folder under the given parent (nil for root). Depth and
// materialized path are computed from the resolved parent.
func (f *folderService) Create(ctx context.Context, name string, parentID *uuid.UUID) (*domain.Folder, error) {

	slug := slugify(name)
	if slug == "" {
		return nil, fmt.Errorf("folder name %q yields an empty slug", name)
	}

	var parent *domain.Folder
	if parentID != nil {
		found, err := f.uow.FolderRepo().FindByID(ctx, *parentID)
		if err != nil {
			if errors.Is(err, domain.ErrFolderNotFound) {
				return nil, domain.ErrParentNotFound
			}
			return nil, err
		}
		parent = found
	}

	id := uuid.New()
	pos := placeUnder(parent, id, slug)

	folder := domain.Folder{
		ID:               id,
		Name:             name,
		Slug:             slug,
		Path:             pos.path,
		ParentID:         parentID,
		Depth:            pos.depth,
		MaterializedPath: pos.materializedPath,
	}

	if err := f.uow.FolderRepo().Create(ctx, folder); err != nil {
		return nil, err
	}
	return &folder, nil
}
