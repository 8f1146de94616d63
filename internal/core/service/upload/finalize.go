package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"media-vault/internal/core/domain"

	"github.com/google/uuid"
)

// Finalize assembles a complete session's chunks in index order, verifies
// the accumulated size against the declared size, and hands the content to
// the asset registry. The session is claimed with a conditional status
// transition, so a concurrent Finalize on the same session fails with
// ErrFinalizeInProgress instead of re-running assembly.
func (u *uploadService) Finalize(ctx context.Context, sessionID uuid.UUID) (*domain.Asset, bool, error) {

	session, err := u.claimSession(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}

	asset, isNew, assembleErr := u.assemble(ctx, session)
	if assembleErr != nil {
		if failErr := u.uow.SessionRepo().MarkFailed(ctx, sessionID, assembleErr.Error()); failErr != nil {
			u.logger.Error("failed to mark session as failed", "session_id", sessionID, "error", failErr)
		}
		return nil, false, assembleErr
	}

	u.cleanupChunks(ctx, sessionID)

	if _, err := u.uow.SessionRepo().TransitionStatus(ctx, sessionID, domain.UploadSessionStatusProcessing, domain.UploadSessionStatusCompleted); err != nil {
		u.logger.Error("failed to complete session", "session_id", sessionID, "error", err)
	}

	return asset, isNew, nil
}

// claimSession takes the session into processing with a conditional status
// transition. A missed claim is re-read and retried once: a first chunk can
// move the session pending to uploaded between read and claim, which is not
// a competing finalize. A second miss is.
func (u *uploadService) claimSession(ctx context.Context, sessionID uuid.UUID) (*domain.UploadSession, error) {

	session, err := u.uow.SessionRepo().FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		switch session.Status {
		case domain.UploadSessionStatusProcessing:
			return nil, domain.ErrFinalizeInProgress
		case domain.UploadSessionStatusExpired:
			return nil, domain.ErrSessionExpired
		case domain.UploadSessionStatusPending, domain.UploadSessionStatusUploaded:
		default:
			return nil, fmt.Errorf("%w: session is %s", domain.ErrUnknownSession, session.Status)
		}
		if time.Now().After(session.ExpiresAt) {
			return nil, domain.ErrSessionExpired
		}

		claimed, err := u.uow.SessionRepo().TransitionStatus(ctx, sessionID, session.Status, domain.UploadSessionStatusProcessing)
		if err != nil {
			return nil, err
		}
		if claimed {
			return session, nil
		}
		if attempt > 0 {
			return nil, domain.ErrFinalizeInProgress
		}
		session, err = u.uow.SessionRepo().FindByID(ctx, sessionID)
		if err != nil {
			return nil, err
		}
	}
}

func (u *uploadService) assemble(ctx context.Context, session *domain.UploadSession) (*domain.Asset, bool, error) {

	chunks, err := u.uow.ChunkRepo().FindBySession(ctx, session.ID)
	if err != nil {
		return nil, false, err
	}

	if len(chunks) != session.ExpectedChunks {
		return nil, false, fmt.Errorf("%w: have %d of %d chunks", domain.ErrIncompleteUpload, len(chunks), session.ExpectedChunks)
	}
	for i, chunk := range chunks {
		if chunk.Index != i {
			return nil, false, fmt.Errorf("%w: missing chunk %d", domain.ErrIncompleteUpload, i)
		}
	}

	// index-ordered concatenation keeps reassembly deterministic no matter
	// what order the chunks arrived in
	var buf bytes.Buffer
	buf.Grow(int(session.DeclaredSize))
	hasher := u.hasher.New()
	var total int64

	for _, chunk := range chunks {
		rc, readErr := u.storage.Read(ctx, chunk.StorageKey)
		if readErr != nil {
			return nil, false, fmt.Errorf("could not read chunk %d: %w", chunk.Index, readErr)
		}
		n, copyErr := io.Copy(io.MultiWriter(&buf, hasher), rc)
		rc.Close()
		if copyErr != nil {
			return nil, false, fmt.Errorf("could not read chunk %d: %w", chunk.Index, copyErr)
		}
		total += n
	}

	if total != session.DeclaredSize {
		return nil, false, fmt.Errorf("%w: assembled %d bytes, declared %d", domain.ErrSizeMismatch, total, session.DeclaredSize)
	}

	digest := u.hasher.Encode(hasher.Sum(nil))

	asset, isNew, err := u.registry.CreateOrReuse(ctx, buf.Bytes(), digest, domain.AssetMetadata{
		Filename: session.Filename,
		MimeType: session.MimeType,
		FolderID: session.FolderID,
		OwnerID:  session.OwnerID,
	})
	if err != nil {
		return nil, false, err
	}
	return asset, isNew, nil
}

// cleanupChunks is best-effort: leftovers are reclaimed by the reaper
func (u *uploadService) cleanupChunks(ctx context.Context, sessionID uuid.UUID) {
	if err := u.storage.DeleteAll(ctx, chunkPrefix(sessionID)); err != nil {
		u.logger.Warn("failed to delete chunk bytes", "session_id", sessionID, "error", err)
		return
	}
	if err := u.uow.ChunkRepo().DeleteBySession(ctx, sessionID); err != nil {
		u.logger.Warn("failed to delete chunk rows", "session_id", sessionID, "error", err)
	}
}
