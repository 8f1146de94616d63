package upload

import (
	"context"
	"fmt"
	"time"

	"media-vault/internal/core/domain"

	"github.com/google/uuid"
)

// StartSession opens a chunked upload session
func (u *uploadService) StartSession(ctx context.Context, filename, mimeType string, declaredSize int64, expectedChunks int, folderID *uuid.UUID, actor string) (*domain.UploadSession, error) {

	if filename == "" {
		return nil, fmt.Errorf("%w: filename is required", domain.ErrInvalidUploadRequest)
	}
	if declaredSize <= 0 {
		return nil, fmt.Errorf("%w: declared size must be positive", domain.ErrInvalidUploadRequest)
	}
	if declaredSize > u.cfg.MaxDeclaredSize {
		return nil, fmt.Errorf("%w: declared size %d exceeds limit %d", domain.ErrInvalidUploadRequest, declaredSize, u.cfg.MaxDeclaredSize)
	}
	if expectedChunks < 1 {
		return nil, fmt.Errorf("%w: expected chunk count must be at least 1", domain.ErrInvalidUploadRequest)
	}
	if expectedChunks > u.cfg.MaxChunkCount {
		return nil, fmt.Errorf("%w: expected chunk count %d exceeds limit %d", domain.ErrInvalidUploadRequest, expectedChunks, u.cfg.MaxChunkCount)
	}

	parsed := extractMimeType(mimeType)
	if parsed == "" {
		return nil, fmt.Errorf("%w: invalid mime type %q", domain.ErrInvalidUploadRequest, mimeType)
	}

	if folderID != nil {
		if _, err := u.uow.FolderRepo().FindByID(ctx, *folderID); err != nil {
			return nil, err
		}
	}

	session := domain.UploadSession{
		ID:             uuid.New(),
		Filename:       filename,
		MimeType:       parsed,
		DeclaredSize:   declaredSize,
		ExpectedChunks: expectedChunks,
		ExpiresAt:      time.Now().Add(u.cfg.SessionTTL),
		Status:         domain.UploadSessionStatusPending,
		FolderID:       folderID,
		OwnerID:        actor,
	}

	if err := u.uow.SessionRepo().Create(ctx, session); err != nil {
		return nil, fmt.Errorf("could not create upload session: %w", err)
	}

	return &session, nil
}
