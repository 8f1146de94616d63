package folder_test

import (
	"context"
	"log/slog"
	"testing"

	"media-vault/internal/adapters/repository"
	"media-vault/internal/core/domain"
	"media-vault/internal/core/service/folder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFolderService_Create_Root(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := folder.NewFolderService(mockUow, slog.Default())

	mockFolderRepo := mockUow.GetFolderRepoMock()
	mockFolderRepo.On("Create", ctx, mock.AnythingOfType("domain.Folder")).Return(nil)

	// Act
	created, err := service.Create(ctx, "Marketing Assets", nil)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "marketing-assets", created.Slug)
	assert.Equal(t, "/marketing-assets", created.Path)
	assert.Equal(t, 0, created.Depth)
	assert.Equal(t, "/"+created.ID.String()+"/", created.MaterializedPath)
	assert.Nil(t, created.ParentID)
	mockFolderRepo.AssertExpectations(t)
}

func TestFolderService_Create_UnderParent(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := folder.NewFolderService(mockUow, slog.Default())

	parentID := uuid.New()
	parent := &domain.Folder{
		ID:               parentID,
		Path:             "/campaigns",
		Depth:            0,
		MaterializedPath: "/" + parentID.String() + "/",
	}

	mockFolderRepo := mockUow.GetFolderRepoMock()
	mockFolderRepo.On("FindByID", ctx, parentID).Return(parent, nil)
	mockFolderRepo.On("Create", ctx, mock.AnythingOfType("domain.Folder")).Return(nil)

	// Act
	created, err := service.Create(ctx, "Summer 2026", &parentID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "/campaigns/summer-2026", created.Path)
	assert.Equal(t, 1, created.Depth)
	assert.Equal(t, parent.MaterializedPath+created.ID.String()+"/", created.MaterializedPath)
	mockFolderRepo.AssertExpectations(t)
}

func TestFolderService_Create_ParentNotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := folder.NewFolderService(mockUow, slog.Default())

	parentID := uuid.New()
	mockUow.GetFolderRepoMock().On("FindByID", ctx, parentID).Return(nil, domain.ErrFolderNotFound)

	// Act
	created, err := service.Create(ctx, "orphan", &parentID)

	// Assert
	assert.ErrorIs(t, err, domain.ErrParentNotFound)
	assert.Nil(t, created)
}

func TestFolderService_Create_EmptySlug(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := folder.NewFolderService(mockUow, slog.Default())

	// Act
	created, err := service.Create(ctx, "!!!", nil)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, created)
	mockUow.GetFolderRepoMock().AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
