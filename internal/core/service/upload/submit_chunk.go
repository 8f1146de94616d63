package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"media-vault/internal/core/domain"

	"github.com/google/uuid"
)

// SubmitChunk verifies and stores one chunk of a session. Resubmitting an
// already-stored index with an identical digest is a no-op success so
// clients can retry freely. Admission is independent per (session, index);
// no cross-chunk lock is taken.
func (u *uploadService) SubmitChunk(ctx context.Context, sessionID uuid.UUID, index int, data []byte, claimedDigest string) (*domain.ChunkAck, error) {

	session, err := u.uow.SessionRepo().FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status == domain.UploadSessionStatusExpired {
		return nil, domain.ErrSessionExpired
	}
	if !session.Status.IsActive() {
		return nil, fmt.Errorf("%w: session is %s", domain.ErrUnknownSession, session.Status)
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, domain.ErrSessionExpired
	}

	if index < 0 || index >= session.ExpectedChunks {
		return nil, fmt.Errorf("%w: index %d, expected 0..%d", domain.ErrChunkIndexOutOfRange, index, session.ExpectedChunks-1)
	}

	digest := u.hasher.Sum(data)
	if digest != claimedDigest {
		return nil, fmt.Errorf("%w: computed %s, claimed %s", domain.ErrChunkDigestMismatch, digest, claimedDigest)
	}

	existing, err := u.uow.ChunkRepo().FindByIndex(ctx, sessionID, index)
	if err != nil && !errors.Is(err, domain.ErrChunkNotFound) {
		return nil, err
	}
	if existing != nil {
		if existing.ChecksumSHA256 != digest {
			// an acknowledged chunk never mutates
			return nil, fmt.Errorf("%w: index %d already stored with digest %s", domain.ErrChunkDigestMismatch, index, existing.ChecksumSHA256)
		}
		return &domain.ChunkAck{Index: index, SizeBytes: existing.SizeBytes, ChecksumSHA256: digest}, nil
	}

	key := chunkKey(sessionID, index)
	if err := u.storage.Write(ctx, key, bytes.NewReader(data), int64(len(data)), "application/octet-stream"); err != nil {
		return nil, fmt.Errorf("%w: chunk %d: %w", domain.ErrStorageWriteFailure, index, err)
	}

	chunk := domain.Chunk{
		SessionID:      sessionID,
		Index:          index,
		SizeBytes:      int64(len(data)),
		ChecksumSHA256: digest,
		StorageKey:     key,
	}
	if err := u.uow.ChunkRepo().Upsert(ctx, chunk); err != nil {
		return nil, fmt.Errorf("could not record chunk: %w", err)
	}

	if session.Status == domain.UploadSessionStatusPending {
		// first chunk moves the session to uploaded; losing this race to a
		// parallel chunk is fine
		if _, err := u.uow.SessionRepo().TransitionStatus(ctx, sessionID, domain.UploadSessionStatusPending, domain.UploadSessionStatusUploaded); err != nil {
			return nil, err
		}
	}

	return &domain.ChunkAck{Index: index, SizeBytes: chunk.SizeBytes, ChecksumSHA256: digest}, nil
}
