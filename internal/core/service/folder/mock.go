package folder

import (
	"context"

	"media-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFolderService is a mock implementation of FolderService
type MockFolderService struct {
	mock.Mock
}

// NewMockFolderService creates a new MockFolderService
func NewMockFolderService() *MockFolderService {
	return &MockFolderService{}
}

func (m *MockFolderService) Create(ctx context.Context, name string, parentID *uuid.UUID) (*domain.Folder, error) {
	args := m.Called(ctx, name, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folder), args.Error(1)
}

func (m *MockFolderService) Get(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folder), args.Error(1)
}

func (m *MockFolderService) ListChildren(ctx context.Context, parentID *uuid.UUID) ([]domain.Folder, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Folder), args.Error(1)
}

func (m *MockFolderService) Move(ctx context.Context, id uuid.UUID, newParentID *uuid.UUID) error {
	args := m.Called(ctx, id, newParentID)
	return args.Error(0)
}

func (m *MockFolderService) Rename(ctx context.Context, id uuid.UUID, name string) (*domain.Folder, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folder), args.Error(1)
}

func (m *MockFolderService) Delete(ctx context.Context, id uuid.UUID, strategy domain.FolderDeleteStrategy) error {
	args := m.Called(ctx, id, strategy)
	return args.Error(0)
}
