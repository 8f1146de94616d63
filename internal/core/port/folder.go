package port

import (
	"context"
	"media-vault/internal/core/domain"

	"github.com/google/uuid"
)

// FolderRepository is an interface to interact with folder rows
type FolderRepository interface {
	Create(ctx context.Context, folder domain.Folder) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Folder, error)
	// FindByIDForUpdate locks the row for the duration of the enclosing
	// transaction, serializing subtree mutations.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Folder, error)
	FindChildren(ctx context.Context, parentID *uuid.UUID) ([]domain.Folder, error)
	// FindSubtree returns every live folder whose materialized path starts
	// with the given prefix, shallowest first.
	FindSubtree(ctx context.Context, materializedPrefix string) ([]domain.Folder, error)
	UpdateTreePosition(ctx context.Context, id uuid.UUID, parentID *uuid.UUID, path string, depth int, materializedPath string) error
	UpdateName(ctx context.Context, id uuid.UUID, name, slug string) error
	AdjustAggregates(ctx context.Context, id uuid.UUID, deltaCount, deltaSize int64) error
	CountLiveChildren(ctx context.Context, id uuid.UUID) (int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// FolderService maintains the hierarchical asset namespace
type FolderService interface {
	Create(ctx context.Context, name string, parentID *uuid.UUID) (*domain.Folder, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Folder, error)
	ListChildren(ctx context.Context, parentID *uuid.UUID) ([]domain.Folder, error)
	Move(ctx context.Context, id uuid.UUID, newParentID *uuid.UUID) error
	Rename(ctx context.Context, id uuid.UUID, name string) (*domain.Folder, error)
	Delete(ctx context.Context, id uuid.UUID, strategy domain.FolderDeleteStrategy) error
}
