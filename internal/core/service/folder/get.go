package folder

import (
	"context"

	"media-vault/internal/core/domain"

	"github.com/google/uuid"
)

// Get returns one live folder
func (f *folderService) Get(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
	return f.uow.FolderRepo().FindByID(ctx, id)
}

// ListChildren returns the live folders directly under a parent
// (nil for root level)
func (f *folderService) ListChildren(ctx context.Context, parentID *uuid.UUID) ([]domain.Folder, error) {
	return f.uow.FolderRepo().FindChildren(ctx, parentID)
}
