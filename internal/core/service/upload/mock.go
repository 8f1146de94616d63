package upload

import (
	"context"

	"media-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUploadService is a mock implementation of UploadService
type MockUploadService struct {
	mock.Mock
}

// NewMockUploadService creates a new MockUploadService
func NewMockUploadService() *MockUploadService {
	return &MockUploadService{}
}

func (m *MockUploadService) StartSession(ctx context.Context, filename, mimeType string, declaredSize int64, expectedChunks int, folderID *uuid.UUID, actor string) (*domain.UploadSession, error) {
	args := m.Called(ctx, filename, mimeType, declaredSize, expectedChunks, folderID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadSession), args.Error(1)
}

func (m *MockUploadService) SubmitChunk(ctx context.Context, sessionID uuid.UUID, index int, data []byte, claimedDigest string) (*domain.ChunkAck, error) {
	args := m.Called(ctx, sessionID, index, data, claimedDigest)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChunkAck), args.Error(1)
}

func (m *MockUploadService) Finalize(ctx context.Context, sessionID uuid.UUID) (*domain.Asset, bool, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Asset), args.Bool(1), args.Error(2)
}

func (m *MockUploadService) GetSession(ctx context.Context, sessionID uuid.UUID) (*domain.UploadSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadSession), args.Error(1)
}
