package port

import (
	"context"
	"media-vault/internal/core/domain"
	"time"

	"github.com/google/uuid"
)

// UploadSessionRepository is an interface to interact with upload session rows
type UploadSessionRepository interface {
	Create(ctx context.Context, session domain.UploadSession) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.UploadSession, error)
	// TransitionStatus flips the session from one status to another and
	// reports whether this call won the transition. A false return with a
	// nil error means another writer got there first.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.UploadSessionStatus) (bool, error)
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
	// FindReapable returns sessions that still need sweeping: active
	// sessions past expires_at, plus terminal sessions (expired, failed or
	// completed) whose chunk rows survived a failed cleanup.
	FindReapable(ctx context.Context, now time.Time) ([]domain.UploadSession, error)
}

// ChunkRepository is an interface to interact with chunk rows
type ChunkRepository interface {
	Upsert(ctx context.Context, chunk domain.Chunk) error
	FindByIndex(ctx context.Context, sessionID uuid.UUID, index int) (*domain.Chunk, error)
	FindBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.Chunk, error)
	CountBySession(ctx context.Context, sessionID uuid.UUID) (int, error)
	DeleteBySession(ctx context.Context, sessionID uuid.UUID) error
}

// UploadService owns the chunked-upload protocol
type UploadService interface {
	StartSession(ctx context.Context, filename, mimeType string, declaredSize int64, expectedChunks int, folderID *uuid.UUID, actor string) (*domain.UploadSession, error)
	SubmitChunk(ctx context.Context, sessionID uuid.UUID, index int, data []byte, claimedDigest string) (*domain.ChunkAck, error)
	Finalize(ctx context.Context, sessionID uuid.UUID) (*domain.Asset, bool, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*domain.UploadSession, error)
}
