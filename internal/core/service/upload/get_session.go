package upload

import (
	"context"

	"media-vault/internal/core/domain"

	"github.com/google/uuid"
)

// GetSession returns the session row for status polling. Failed sessions
// stay queryable until the reaper removes them.
func (u *uploadService) GetSession(ctx context.Context, sessionID uuid.UUID) (*domain.UploadSession, error) {
	return u.uow.SessionRepo().FindByID(ctx, sessionID)
}
