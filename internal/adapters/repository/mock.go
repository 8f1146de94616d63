package repository

import (
	"context"
	"time"

	"media-vault/internal/core/domain"
	"media-vault/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUploadSessionRepository struct {
	mock.Mock
}

func NewMockUploadSessionRepository() *MockUploadSessionRepository {
	return &MockUploadSessionRepository{}
}

func (m *MockUploadSessionRepository) Create(ctx context.Context, session domain.UploadSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockUploadSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.UploadSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadSession), args.Error(1)
}

func (m *MockUploadSessionRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.UploadSessionStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockUploadSessionRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

func (m *MockUploadSessionRepository) FindReapable(ctx context.Context, now time.Time) ([]domain.UploadSession, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UploadSession), args.Error(1)
}

type MockChunkRepository struct {
	mock.Mock
}

func NewMockChunkRepository() *MockChunkRepository {
	return &MockChunkRepository{}
}

func (m *MockChunkRepository) Upsert(ctx context.Context, chunk domain.Chunk) error {
	args := m.Called(ctx, chunk)
	return args.Error(0)
}

func (m *MockChunkRepository) FindByIndex(ctx context.Context, sessionID uuid.UUID, index int) (*domain.Chunk, error) {
	args := m.Called(ctx, sessionID, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chunk), args.Error(1)
}

func (m *MockChunkRepository) FindBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.Chunk, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Chunk), args.Error(1)
}

func (m *MockChunkRepository) CountBySession(ctx context.Context, sessionID uuid.UUID) (int, error) {
	args := m.Called(ctx, sessionID)
	return args.Int(0), args.Error(1)
}

func (m *MockChunkRepository) DeleteBySession(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockAssetRepository struct {
	mock.Mock
}

func NewMockAssetRepository() *MockAssetRepository {
	return &MockAssetRepository{}
}

func (m *MockAssetRepository) InsertIfAbsent(ctx context.Context, asset domain.Asset) (*domain.Asset, bool, error) {
	args := m.Called(ctx, asset)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Asset), args.Bool(1), args.Error(2)
}

func (m *MockAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) FindByDigest(ctx context.Context, digest string) (*domain.Asset, error) {
	args := m.Called(ctx, digest)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) ListByFolder(ctx context.Context, folderID *uuid.UUID) ([]domain.Asset, error) {
	args := m.Called(ctx, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) UpdateFolder(ctx context.Context, id uuid.UUID, folderID *uuid.UUID) error {
	args := m.Called(ctx, id, folderID)
	return args.Error(0)
}

func (m *MockAssetRepository) UpdateSteps(ctx context.Context, id uuid.UUID, steps map[domain.ProcessingStep]domain.StepResult, summary domain.AssetProcessingStatus) error {
	args := m.Called(ctx, id, steps, summary)
	return args.Error(0)
}

func (m *MockAssetRepository) UpdateDimensions(ctx context.Context, id uuid.UUID, width, height *int, duration *float64) error {
	args := m.Called(ctx, id, width, height, duration)
	return args.Error(0)
}

func (m *MockAssetRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFolderRepository struct {
	mock.Mock
}

func NewMockFolderRepository() *MockFolderRepository {
	return &MockFolderRepository{}
}

func (m *MockFolderRepository) Create(ctx context.Context, folder domain.Folder) error {
	args := m.Called(ctx, folder)
	return args.Error(0)
}

func (m *MockFolderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folder), args.Error(1)
}

func (m *MockFolderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folder), args.Error(1)
}

func (m *MockFolderRepository) FindChildren(ctx context.Context, parentID *uuid.UUID) ([]domain.Folder, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Folder), args.Error(1)
}

func (m *MockFolderRepository) FindSubtree(ctx context.Context, materializedPrefix string) ([]domain.Folder, error) {
	args := m.Called(ctx, materializedPrefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Folder), args.Error(1)
}

func (m *MockFolderRepository) UpdateTreePosition(ctx context.Context, id uuid.UUID, parentID *uuid.UUID, path string, depth int, materializedPath string) error {
	args := m.Called(ctx, id, parentID, path, depth, materializedPath)
	return args.Error(0)
}

func (m *MockFolderRepository) UpdateName(ctx context.Context, id uuid.UUID, name, slug string) error {
	args := m.Called(ctx, id, name, slug)
	return args.Error(0)
}

func (m *MockFolderRepository) AdjustAggregates(ctx context.Context, id uuid.UUID, deltaCount, deltaSize int64) error {
	args := m.Called(ctx, id, deltaCount, deltaSize)
	return args.Error(0)
}

func (m *MockFolderRepository) CountLiveChildren(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFolderRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUsageRepository struct {
	mock.Mock
}

func NewMockUsageRepository() *MockUsageRepository {
	return &MockUsageRepository{}
}

func (m *MockUsageRepository) Upsert(ctx context.Context, usage domain.AssetUsage) error {
	args := m.Called(ctx, usage)
	return args.Error(0)
}

func (m *MockUsageRepository) Delete(ctx context.Context, assetID uuid.UUID, entityType, entityID, fieldName string) error {
	args := m.Called(ctx, assetID, entityType, entityID, fieldName)
	return args.Error(0)
}

func (m *MockUsageRepository) FindByAsset(ctx context.Context, assetID uuid.UUID) ([]domain.AssetUsage, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssetUsage), args.Error(1)
}

func (m *MockUsageRepository) ExistsByAsset(ctx context.Context, assetID uuid.UUID) (bool, error) {
	args := m.Called(ctx, assetID)
	return args.Bool(0), args.Error(1)
}

type MockUnitOfWork struct {
	mock.Mock
	sessionRepo *MockUploadSessionRepository
	chunkRepo   *MockChunkRepository
	assetRepo   *MockAssetRepository
	folderRepo  *MockFolderRepository
	usageRepo   *MockUsageRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		sessionRepo: &MockUploadSessionRepository{},
		chunkRepo:   &MockChunkRepository{},
		assetRepo:   &MockAssetRepository{},
		folderRepo:  &MockFolderRepository{},
		usageRepo:   &MockUsageRepository{},
	}
}

func (m *MockUnitOfWork) SessionRepo() port.UploadSessionRepository {
	return m.sessionRepo
}

func (m *MockUnitOfWork) ChunkRepo() port.ChunkRepository {
	return m.chunkRepo
}

func (m *MockUnitOfWork) AssetRepo() port.AssetRepository {
	return m.assetRepo
}

func (m *MockUnitOfWork) FolderRepo() port.FolderRepository {
	return m.folderRepo
}

func (m *MockUnitOfWork) UsageRepo() port.UsageRepository {
	return m.usageRepo
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	args := m.Called(ctx, fn)

	if err := fn(m); err != nil {
		return err
	}

	return args.Error(0)
}

func (m *MockUnitOfWork) GetSessionRepoMock() *MockUploadSessionRepository {
	return m.sessionRepo
}

func (m *MockUnitOfWork) GetChunkRepoMock() *MockChunkRepository {
	return m.chunkRepo
}

func (m *MockUnitOfWork) GetAssetRepoMock() *MockAssetRepository {
	return m.assetRepo
}

func (m *MockUnitOfWork) GetFolderRepoMock() *MockFolderRepository {
	return m.folderRepo
}

func (m *MockUnitOfWork) GetUsageRepoMock() *MockUsageRepository {
	return m.usageRepo
}
