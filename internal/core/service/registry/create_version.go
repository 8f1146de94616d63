package registry

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"media-vault/internal/core/domain"
	"media-vault/internal/core/port"

	"github.com/google/uuid"
)

// CreateVersion registers new content as a successor of an existing asset.
// The parent is never deleted; history stays resolvable through the parent
// chain. Content identity still wins: byte-identical content dedups to the
// live asset that already holds the digest.
func (r *registryService) CreateVersion(ctx context.Context, parentID uuid.UUID, content []byte, digest string, meta domain.AssetMetadata) (*domain.Asset, error) {

	parent, err := r.uow.AssetRepo().FindByID(ctx, parentID)
	if err != nil {
		return nil, err
	}

	existing, err := r.uow.AssetRepo().FindByDigest(ctx, digest)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrAssetNotFound) {
		return nil, err
	}

	key := assetKey(digest)
	if err := r.storage.Write(ctx, key, bytes.NewReader(content), int64(len(content)), meta.MimeType); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageWriteFailure, err)
	}

	folderID := meta.FolderID
	if folderID == nil {
		folderID = parent.FolderID
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
		FolderID:       folderID,
		Processing:     domain.AssetProcessingPending,
		Steps:          initialSteps(),
		Version:        parent.Version + 1,
		ParentAssetID:  &parent.ID,
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
			return uow.FolderRepo().AdjustAggregates(ctx, *asset.FolderID, 1, asset.SizeBytes)
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("could not register asset version: %w", txErr)
	}

	if isNew {
		r.publishIngested(ctx, asset)
	}

	return asset, nil
}
