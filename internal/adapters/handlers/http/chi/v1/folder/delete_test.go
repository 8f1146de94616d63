package folder_test

import (
	"io"
	"log/slog"
	http2 "net/http"
	"net/http/httptest"
	"testing"

	"media-vault/internal/core/domain"
	"media-vault/internal/core/service/folder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeleteFolderV1(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("success - default strategy rejects non-empty", func(t *testing.T) {
		// Arrange
		folderID := uuid.New()

		mockService := folder.NewMockFolderService()
		mockService.On("Delete", mock.Anything, folderID, domain.FolderDeleteRejectIfNonEmpty).Return(nil)

		h := newFolderRouter(mockService, discardLogger)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodDelete, "/api/v1/folder/"+folderID.String(), nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNoContent, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("success - cascade strategy", func(t *testing.T) {
		// Arrange
		folderID := uuid.New()

		mockService := folder.NewMockFolderService()
		mockService.On("Delete", mock.Anything, folderID, domain.FolderDeleteCascade).Return(nil)

		h := newFolderRouter(mockService, discardLogger)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodDelete, "/api/v1/folder/"+folderID.String()+"?strategy=cascade", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNoContent, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("success - reparent children to root", func(t *testing.T) {
		// Arrange
		folderID := uuid.New()

		mockService := folder.NewMockFolderService()
		mockService.On("Delete", mock.Anything, folderID, domain.FolderDeleteReparentToRoot).Return(nil)

		h := newFolderRouter(mockService, discardLogger)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodDelete, "/api/v1/folder/"+folderID.String()+"?strategy=reparentChildrenToRoot", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNoContent, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("error - unknown strategy", func(t *testing.T) {
		// Arrange
		folderID := uuid.New()

		mockService := folder.NewMockFolderService()
		h := newFolderRouter(mockService, discardLogger)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodDelete, "/api/v1/folder/"+folderID.String()+"?strategy=obliterate", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error - folder not empty", func(t *testing.T) {
		// Arrange
		folderID := uuid.New()

		mockService := folder.NewMockFolderService()
		mockService.On("Delete", mock.Anything, folderID, domain.FolderDeleteRejectIfNonEmpty).
			Return(domain.ErrFolderNotEmpty)

		h := newFolderRouter(mockService, discardLogger)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodDelete, "/api/v1/folder/"+folderID.String(), nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusConflict, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("error - folder not found", func(t *testing.T) {
		// Arrange
		folderID := uuid.New()

		mockService := folder.NewMockFolderService()
		mockService.On("Delete", mock.Anything, folderID, domain.FolderDeleteRejectIfNonEmpty).
			Return(domain.ErrFolderNotFound)

		h := newFolderRouter(mockService, discardLogger)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodDelete, "/api/v1/folder/"+folderID.String(), nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}
