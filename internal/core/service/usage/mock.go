package usage

import (
	"context"

	"media-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUsageService is a mock implementation of UsageService
type MockUsageService struct {
	mock.Mock
}

// NewMockUsageService creates a new MockUsageService
func NewMockUsageService() *MockUsageService {
	return &MockUsageService{}
}

func (m *MockUsageService) Record(ctx context.Context, assetID uuid.UUID, entityType, entityID, fieldName string, usageType domain.UsageType) error {
	args := m.Called(ctx, assetID, entityType, entityID, fieldName, usageType)
	return args.Error(0)
}

func (m *MockUsageService) Release(ctx context.Context, assetID uuid.UUID, entityType, entityID, fieldName string) error {
	args := m.Called(ctx, assetID, entityType, entityID, fieldName)
	return args.Error(0)
}

func (m *MockUsageService) List(ctx context.Context, assetID uuid.UUID) ([]domain.AssetUsage, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssetUsage), args.Error(1)
}

func (m *MockUsageService) IsInUse(ctx context.Context, assetID uuid.UUID) (bool, error) {
	args := m.Called(ctx, assetID)
	return args.Bool(0), args.Error(1)
}
