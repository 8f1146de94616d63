package registry

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"media-vault/internal/core/domain"
	"media-vault/internal/core/port"
)

type registryService struct {
	uow       port.UnitOfWork
	storage   port.BlobStorage
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewRegistryService creates a new asset registry service
func NewRegistryService(uow port.UnitOfWork, storage port.BlobStorage, publisher port.EventPublisher, logger *slog.Logger) port.AssetService {
	return &registryService{
		uow:       uow,
		storage:   storage,
		publisher: publisher,
		logger:    logger,
	}
}

// assetKey derives the storage location from the content digest, so
// identical content always resolves to the same physical object regardless
// of its original filename.
func assetKey(digest string) string {
	return fmt.Sprintf("assets/%s/%s", digest[:2], digest)
}

func extensionOf(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

func initialSteps() map[domain.ProcessingStep]domain.StepResult {
	return map[domain.ProcessingStep]domain.StepResult{
		domain.StepThumbnail:  {State: domain.StepStatePending},
		domain.StepResponsive: {State: domain.StepStatePending},
		domain.StepMetadata:   {State: domain.StepStatePending},
		domain.StepOptimize:   {State: domain.StepStatePending},
		domain.StepCDN:        {State: domain.StepStatePending},
	}
}
