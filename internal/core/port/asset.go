package port

import (
	"context"
	"media-vault/internal/core/domain"

	"github.com/google/uuid"
)

// AssetRepository is an interface to interact with asset rows
type AssetRepository interface {
	// InsertIfAbsent inserts the asset unless a live row with the same
	// digest already exists, in which case it returns the existing row.
	// The second return is true when this call created the row.
	InsertIfAbsent(ctx context.Context, asset domain.Asset) (*domain.Asset, bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error)
	FindByDigest(ctx context.Context, digest string) (*domain.Asset, error)
	ListByFolder(ctx context.Context, folderID *uuid.UUID) ([]domain.Asset, error)
	UpdateFolder(ctx context.Context, id uuid.UUID, folderID *uuid.UUID) error
	UpdateSteps(ctx context.Context, id uuid.UUID, steps map[domain.ProcessingStep]domain.StepResult, summary domain.AssetProcessingStatus) error
	UpdateDimensions(ctx context.Context, id uuid.UUID, width, height *int, duration *float64) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// AssetService is the authoritative registry of finalized assets
type AssetService interface {
	CreateOrReuse(ctx context.Context, content []byte, digest string, meta domain.AssetMetadata) (*domain.Asset, bool, error)
	CreateVersion(ctx context.Context, parentID uuid.UUID, content []byte, digest string, meta domain.AssetMetadata) (*domain.Asset, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Asset, string, error)
	List(ctx context.Context, folderID *uuid.UUID) ([]domain.Asset, error)
	Move(ctx context.Context, id uuid.UUID, folderID *uuid.UUID) error
	SoftDelete(ctx context.Context, id uuid.UUID, force bool) error
}
