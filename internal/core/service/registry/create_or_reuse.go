package registry

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"media-vault/internal/core/domain"
	"media-vault/internal/core/port"

	"github.com/google/uuid"
)

// CreateOrReuse persists assembled content under its digest-derived key and
// registers it, unless a live asset with the same digest already exists, in
// which case the existing asset is returned. Two sessions finalizing
// identical content concurrently resolve to a single row: the insert is
// conflict-safe on the digest, and the loser transparently receives the
// winner's asset.
func (r *registryService) CreateOrReuse(ctx context.Context, content []byte, digest string, meta domain.AssetMetadata) (*domain.Asset, bool, error) {

	existing, err := r.uow.AssetRepo().FindByDigest(ctx, digest)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrAssetNotFound) {
		return nil, false, err
	}

	// bytes are durably written before the registry insert; a failed insert
	// leaves an orphan object at a deterministic key, never a row without bytes
	key := assetKey(digest)
	if err := r.storage.Write(ctx, key, bytes.NewReader(content), int64(len(content)), meta.MimeType); err != nil {
		return nil, false, fmt.Errorf("%w: %w", domain.ErrStorageWriteFailure, err)
	}

	candidate := domain.Asset{
		ID:             uuid.New(),
		Filename:       meta.Filename,
		OriginalName:   meta.Filename,
		MimeType:       meta.MimeType,
		Extension:      extensionOf(meta.Filename),
		SizeBytes:      int64(len(content)),
		StorageKey:     key,
		ChecksumSHA256: digest,
		FolderID:       meta.FolderID,
		Processing:     domain.AssetProcessingPending,
		Steps:          initialSteps(),
		Version:        1,
		IsPublic:       meta.IsPublic,
		OwnerID:        meta.OwnerID,
	}

	var asset *domain.Asset
	var isNew bool
	txErr := r.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		var insertErr error
		asset, isNew, insertErr = uow.AssetRepo().InsertIfAbsent(ctx, candidate)
		if insertErr != nil {
			return insertErr
		}
		if isNew && asset.FolderID != nil {
			if _, findErr := uow.FolderRepo().FindByID(ctx, *asset.FolderID); findErr != nil {
				return findErr
			}
			return uow.FolderRepo().AdjustAggregates(ctx, *asset.FolderID, 1, asset.SizeBytes)
		}
		return nil
	})
	if txErr != nil {
		return nil, false, fmt.Errorf("could not register asset: %w", txErr)
	}

	if isNew {
		r.publishIngested(ctx, asset)
	}

	return asset, isNew, nil
}

// publishIngested triggers the async processing pipeline; a publish failure
// is logged, never surfaced, because the asset is already servable
func (r *registryService) publishIngested(ctx context.Context, asset *domain.Asset) {
	event := domain.AssetIngestedEvent{
		AssetID:    asset.ID,
		StorageKey: asset.StorageKey,
		MimeType:   asset.MimeType,
		SizeBytes:  asset.SizeBytes,
		Version:    asset.Version,
		IngestedAt: time.Now(),
	}
	if err := r.publisher.PublishAssetIngested(ctx, event); err != nil {
		r.logger.Error("failed to publish asset ingested event", "asset_id", asset.ID, "error", err)
	}
}
