package reaper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"media-vault/internal/core/domain"
	"media-vault/internal/core/port"

	"github.com/google/uuid"
)

type reaperService struct {
	uow     port.UnitOfWork
	storage port.BlobStorage
	logger  *slog.Logger
}

// NewReaperService creates the expiry reaper
func NewReaperService(uow port.UnitOfWork, storage port.BlobStorage, logger *slog.Logger) port.ReaperService {
	return &reaperService{
		uow:     uow,
		storage: storage,
		logger:  logger,
	}
}

// ReapExpiredSessions expires stale upload sessions and reclaims their
// chunk bytes. Marking the session expired is the source of truth and the
// serialization point against in-flight submits and finalizes; byte cleanup
// is best-effort and retried on the next sweep, it never blocks expiry.
func (r *reaperService) ReapExpiredSessions(ctx context.Context, now time.Time) error {

	sessions, err := r.uow.SessionRepo().FindReapable(ctx, now)
	if err != nil {
		return err
	}

	for _, session := range sessions {
		if session.Status.IsActive() {
			won, err := r.uow.SessionRepo().TransitionStatus(ctx, session.ID, session.Status, domain.UploadSessionStatusExpired)
			if err != nil {
				r.logger.Error("failed to expire session", "session_id", session.ID, "error", err)
				continue
			}
			if !won {
				// a concurrent submit or finalize moved the session first
				continue
			}
		}

		if err := r.reclaimChunks(ctx, session.ID); err != nil {
			r.logger.Warn("failed to reclaim chunks, will retry next sweep", "session_id", session.ID, "error", err)
		}
	}

	r.logger.Info("expired session sweep completed", "sessions", len(sessions))
	return nil
}

func (r *reaperService) reclaimChunks(ctx context.Context, sessionID uuid.UUID) error {
	prefix := fmt.Sprintf("chunks/%s/", sessionID)
	if err := r.storage.DeleteAll(ctx, prefix); err != nil {
		return err
	}
	// rows go last: a surviving row is what makes the session reapable again
	return r.uow.ChunkRepo().DeleteBySession(ctx, sessionID)
}
