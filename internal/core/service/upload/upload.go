package upload

import (
	"fmt"
	"log/slog"
	"mime"

	"media-vault/internal/config"
	"media-vault/internal/core/port"

	"github.com/google/uuid"
)

type uploadService struct {
	uow      port.UnitOfWork
	storage  port.BlobStorage
	registry port.AssetService
	hasher   port.ContentHasher
	cfg      config.UploadConfig
	logger   *slog.Logger
}

// NewUploadService creates a new upload service
func NewUploadService(uow port.UnitOfWork, storage port.BlobStorage, registry port.AssetService, hasher port.ContentHasher, cfg config.UploadConfig, logger *slog.Logger) port.UploadService {
	return &uploadService{
		uow:      uow,
		storage:  storage,
		registry: registry,
		hasher:   hasher,
		cfg:      cfg,
		logger:   logger,
	}
}

// chunkKey is where a session's chunk bytes live until finalize
func chunkKey(sessionID uuid.UUID, index int) string {
	return fmt.Sprintf("chunks/%s/%d", sessionID, index)
}

// chunkPrefix addresses every chunk object of a session
func chunkPrefix(sessionID uuid.UUID) string {
	return fmt.Sprintf("chunks/%s/", sessionID)
}

func extractMimeType(contentType string) string {
	mimeType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mimeType
}
