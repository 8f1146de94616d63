package registry

import (
	"context"

	"media-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAssetService is a mock implementation of AssetService
type MockAssetService struct {
	mock.Mock
}

// NewMockAssetService creates a new MockAssetService
func NewMockAssetService() *MockAssetService {
	return &MockAssetService{}
}

func (m *MockAssetService) CreateOrReuse(ctx context.Context, content []byte, digest string, meta domain.AssetMetadata) (*domain.Asset, bool, error) {
	args := m.Called(ctx, content, digest, meta)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Asset), args.Bool(1), args.Error(2)
}

func (m *MockAssetService) CreateVersion(ctx context.Context, parentID uuid.UUID, content []byte, digest string, meta domain.AssetMetadata) (*domain.Asset, error) {
	args := m.Called(ctx, parentID, content, digest, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetService) Get(ctx context.Context, id uuid.UUID) (*domain.Asset, string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.Asset), args.String(1), args.Error(2)
}

func (m *MockAssetService) List(ctx context.Context, folderID *uuid.UUID) ([]domain.Asset, error) {
	args := m.Called(ctx, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetService) Move(ctx context.Context, id uuid.UUID, folderID *uuid.UUID) error {
	args := m.Called(ctx, id, folderID)
	return args.Error(0)
}

func (m *MockAssetService) SoftDelete(ctx context.Context, id uuid.UUID, force bool) error {
	args := m.Called(ctx, id, force)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a new MockEventPublisher
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

func (m *MockEventPublisher) PublishAssetIngested(ctx context.Context, event domain.AssetIngestedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
