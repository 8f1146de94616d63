package domain

import (
	"time"

	"github.com/google/uuid"
)

// UploadSessionStatus represents the status of an upload session
type UploadSessionStatus string

const (
	UploadSessionStatusPending    UploadSessionStatus = "pending"
	UploadSessionStatusUploaded   UploadSessionStatus = "uploaded"
	UploadSessionStatusProcessing UploadSessionStatus = "processing"
	UploadSessionStatusCompleted  UploadSessionStatus = "completed"
	UploadSessionStatusFailed     UploadSessionStatus = "failed"
	UploadSessionStatusExpired    UploadSessionStatus = "expired"
)

// IsActive reports whether the session still accepts chunks
func (s UploadSessionStatus) IsActive() bool {
	return s == UploadSessionStatusPending || s == UploadSessionStatusUploaded
}

// UploadSession represents a chunked upload in flight
type UploadSession struct {
	ID             uuid.UUID
	Filename       string
	MimeType       string
	DeclaredSize   int64
	ExpectedChunks int
	ExpiresAt      time.Time
	Status         UploadSessionStatus
	FailureReason  string
	FolderID       *uuid.UUID
	OwnerID        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Chunk represents one stored byte range of an upload session.
// The (SessionID, Index) pair is unique; the index space is 0..ExpectedChunks-1.
type Chunk struct {
	SessionID      uuid.UUID
	Index          int
	SizeBytes      int64
	ChecksumSHA256 string
	StorageKey     string
	CreatedAt      time.Time
}

// ChunkAck acknowledges an accepted chunk
type ChunkAck struct {
	Index          int
	SizeBytes      int64
	ChecksumSHA256 string
}
