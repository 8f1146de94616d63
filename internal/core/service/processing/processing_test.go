package processing_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"testing"

	"media-vault/internal/adapters/repository"
	"media-vault/internal/adapters/storage"
	"media-vault/internal/config"
	"media-vault/internal/core/domain"
	"media-vault/internal/core/service/processing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testProcessingConfig() config.ProcessingConfig {
	return config.ProcessingConfig{
		ThumbnailMaxDim: 32,
		ResponsiveDims:  []int{64},
		HeaderProbeSize: 65536,
	}
}

// pngBytes encodes a solid 100x80 test image
func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 100, 80))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("could not encode test image: %v", err)
	}
	return buf.Bytes()
}

func pngAsset() *domain.Asset {
	return &domain.Asset{
		ID:         uuid.New(),
		MimeType:   "image/png",
		StorageKey: "assets/ab/abcdef",
		SizeBytes:  1024,
	}
}

func TestProcessingService_Process_ImageCompletes(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	service := processing.NewProcessingService(mockUow, mockStorage, testProcessingConfig(), slog.Default())

	asset := pngAsset()
	data := pngBytes(t)

	mockAssetRepo := mockUow.GetAssetRepoMock()
	mockAssetRepo.On("FindByID", ctx, asset.ID).Return(asset, nil)
	mockStorage.On("ReadHeader", ctx, asset.StorageKey, int64(65536)).Return(data, nil)
	width, height := 100, 80
	mockAssetRepo.On("UpdateDimensions", ctx, asset.ID, &width, &height, (*float64)(nil)).Return(nil)
	// thumbnail + one responsive size decode the original
	mockStorage.On("Read", ctx, asset.StorageKey).Return(io.NopCloser(bytes.NewReader(data)), nil).Once()
	mockStorage.On("Read", ctx, asset.StorageKey).Return(io.NopCloser(bytes.NewReader(data)), nil).Once()
	mockStorage.On("Write", ctx, fmt.Sprintf("derived/%s/thumb.png", asset.ID), mock.Anything, mock.Anything, "image/png").Return(nil)
	mockStorage.On("Write", ctx, fmt.Sprintf("derived/%s/w64.png", asset.ID), mock.Anything, mock.Anything, "image/png").Return(nil)
	mockAssetRepo.On("UpdateSteps", ctx, asset.ID, mock.MatchedBy(func(steps map[domain.ProcessingStep]domain.StepResult) bool {
		return steps[domain.StepMetadata].State == domain.StepStateCompleted &&
			steps[domain.StepThumbnail].State == domain.StepStateCompleted &&
			steps[domain.StepResponsive].State == domain.StepStateCompleted &&
			steps[domain.StepOptimize].State == domain.StepStateSkipped &&
			steps[domain.StepCDN].State == domain.StepStateSkipped
	}), domain.AssetProcessingCompleted).Return(nil)

	// Act
	err := service.Process(ctx, domain.AssetIngestedEvent{AssetID: asset.ID})

	// Assert: disabled steps are skipped, not failed
	assert.NoError(t, err)
	mockAssetRepo.AssertExpectations(t)
	mockStorage.AssertExpectations(t)
}

func TestProcessingService_Process_NonImageSkipsImageSteps(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	service := processing.NewProcessingService(mockUow, mockStorage, testProcessingConfig(), slog.Default())

	asset := pngAsset()
	asset.MimeType = "application/pdf"

	mockAssetRepo := mockUow.GetAssetRepoMock()
	mockAssetRepo.On("FindByID", ctx, asset.ID).Return(asset, nil)
	mockAssetRepo.On("UpdateSteps", ctx, asset.ID, mock.MatchedBy(func(steps map[domain.ProcessingStep]domain.StepResult) bool {
		for _, name := range []domain.ProcessingStep{domain.StepMetadata, domain.StepThumbnail, domain.StepResponsive, domain.StepOptimize, domain.StepCDN} {
			if steps[name].State != domain.StepStateSkipped {
				return false
			}
		}
		return true
	}), domain.AssetProcessingCompleted).Return(nil)

	// Act
	err := service.Process(ctx, domain.AssetIngestedEvent{AssetID: asset.ID})

	// Assert
	assert.NoError(t, err)
	mockStorage.AssertNotCalled(t, "Read", mock.Anything, mock.Anything)
}

func TestProcessingService_Process_FailedStepIsIsolated(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	service := processing.NewProcessingService(mockUow, mockStorage, testProcessingConfig(), slog.Default())

	asset := pngAsset()
	data := pngBytes(t)

	mockAssetRepo := mockUow.GetAssetRepoMock()
	mockAssetRepo.On("FindByID", ctx, asset.ID).Return(asset, nil)
	// metadata probe fails; the rest of the pipeline still runs
	mockStorage.On("ReadHeader", ctx, asset.StorageKey, mock.Anything).Return(nil, fmt.Errorf("range read refused"))
	mockStorage.On("Read", ctx, asset.StorageKey).Return(io.NopCloser(bytes.NewReader(data)), nil).Once()
	mockStorage.On("Read", ctx, asset.StorageKey).Return(io.NopCloser(bytes.NewReader(data)), nil).Once()
	mockStorage.On("Write", ctx, mock.Anything, mock.Anything, mock.Anything, "image/png").Return(nil)
	mockAssetRepo.On("UpdateSteps", ctx, asset.ID, mock.MatchedBy(func(steps map[domain.ProcessingStep]domain.StepResult) bool {
		return steps[domain.StepMetadata].State == domain.StepStateFailed &&
			steps[domain.StepMetadata].Error != "" &&
			steps[domain.StepThumbnail].State == domain.StepStateCompleted
	}), domain.AssetProcessingPartial).Return(nil)

	// Act
	err := service.Process(ctx, domain.AssetIngestedEvent{AssetID: asset.ID})

	// Assert: a failed step marks the summary partial, not the whole run
	assert.NoError(t, err)
	mockAssetRepo.AssertExpectations(t)
}

func TestProcessingService_Process_RedeliverySkipsCompletedSteps(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	service := processing.NewProcessingService(mockUow, mockStorage, testProcessingConfig(), slog.Default())

	asset := pngAsset()
	data := pngBytes(t)
	asset.Steps = map[domain.ProcessingStep]domain.StepResult{
		domain.StepMetadata:   {State: domain.StepStateCompleted},
		domain.StepThumbnail:  {State: domain.StepStateCompleted},
		domain.StepResponsive: {State: domain.StepStateFailed, Error: "transient"},
	}

	mockAssetRepo := mockUow.GetAssetRepoMock()
	mockAssetRepo.On("FindByID", ctx, asset.ID).Return(asset, nil)
	// only the failed responsive step re-runs
	mockStorage.On("Read", ctx, asset.StorageKey).Return(io.NopCloser(bytes.NewReader(data)), nil).Once()
	mockStorage.On("Write", ctx, fmt.Sprintf("derived/%s/w64.png", asset.ID), mock.Anything, mock.Anything, "image/png").Return(nil)
	mockAssetRepo.On("UpdateSteps", ctx, asset.ID, mock.MatchedBy(func(steps map[domain.ProcessingStep]domain.StepResult) bool {
		return steps[domain.StepResponsive].State == domain.StepStateCompleted
	}), domain.AssetProcessingCompleted).Return(nil)

	// Act
	err := service.Process(ctx, domain.AssetIngestedEvent{AssetID: asset.ID})

	// Assert
	assert.NoError(t, err)
	mockStorage.AssertNotCalled(t, "ReadHeader", mock.Anything, mock.Anything, mock.Anything)
	mockStorage.AssertExpectations(t)
}

func TestProcessingService_Process_MissingAssetIsDropped(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := processing.NewProcessingService(mockUow, storage.NewMockStorage(), testProcessingConfig(), slog.Default())

	assetID := uuid.New()
	mockAssetRepo := mockUow.GetAssetRepoMock()
	mockAssetRepo.On("FindByID", ctx, assetID).Return(nil, domain.ErrAssetNotFound)

	// Act
	err := service.Process(ctx, domain.AssetIngestedEvent{AssetID: assetID})

	// Assert: nil error so the broker acks instead of redelivering forever
	assert.NoError(t, err)
	mockAssetRepo.AssertNotCalled(t, "UpdateSteps", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessingService_HandleMessage_BadPayload(t *testing.T) {
	// Arrange
	mockUow := repository.NewMockUnitOfWork()
	service := processing.NewProcessingService(mockUow, storage.NewMockStorage(), testProcessingConfig(), slog.Default())

	// Act
	err := service.HandleMessage(context.Background(), []byte("not json"))

	// Assert
	assert.Error(t, err)
}

func TestProcessingService_HandleMessage_RoutesEvent(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := processing.NewProcessingService(mockUow, storage.NewMockStorage(), testProcessingConfig(), slog.Default())

	assetID := uuid.New()
	payload, _ := json.Marshal(domain.AssetIngestedEvent{AssetID: assetID})
	mockUow.GetAssetRepoMock().On("FindByID", ctx, assetID).Return(nil, domain.ErrAssetNotFound)

	// Act
	err := service.HandleMessage(ctx, payload)

	// Assert
	assert.NoError(t, err)
	mockUow.GetAssetRepoMock().AssertExpectations(t)
}
