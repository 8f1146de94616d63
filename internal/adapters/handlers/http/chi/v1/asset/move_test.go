package asset_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	http2 "net/http"
	"net/http/httptest"
	"testing"

	asset2 "media-vault/internal/adapters/handlers/http/chi/v1/asset"
	"media-vault/internal/core/domain"
	"media-vault/internal/core/service/registry"
	"media-vault/internal/core/service/usage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMoveAssetV1(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("success - move into folder", func(t *testing.T) {
		// Arrange
		assetID := uuid.New()
		folderID := uuid.New()

		mockAssets := registry.NewMockAssetService()
		mockAssets.On("Move", mock.Anything, assetID, &folderID).Return(nil)

		h := newAssetRouter(mockAssets, usage.NewMockUsageService(), discardLogger)
		w := httptest.NewRecorder()

		jsonBody, _ := json.Marshal(asset2.V1MoveAssetRequest{FolderID: &folderID})
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/asset/"+assetID.String()+"/move", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNoContent, w.Code)
		mockAssets.AssertExpectations(t)
	})

	t.Run("success - move to root", func(t *testing.T) {
		// Arrange
		assetID := uuid.New()

		mockAssets := registry.NewMockAssetService()
		mockAssets.On("Move", mock.Anything, assetID, (*uuid.UUID)(nil)).Return(nil)

		h := newAssetRouter(mockAssets, usage.NewMockUsageService(), discardLogger)
		w := httptest.NewRecorder()

		jsonBody, _ := json.Marshal(asset2.V1MoveAssetRequest{})
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/asset/"+assetID.String()+"/move", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNoContent, w.Code)
		mockAssets.AssertExpectations(t)
	})

	t.Run("error - target folder not found", func(t *testing.T) {
		// Arrange
		assetID := uuid.New()
		folderID := uuid.New()

		mockAssets := registry.NewMockAssetService()
		mockAssets.On("Move", mock.Anything, assetID, &folderID).Return(domain.ErrFolderNotFound)

		h := newAssetRouter(mockAssets, usage.NewMockUsageService(), discardLogger)
		w := httptest.NewRecorder()

		jsonBody, _ := json.Marshal(asset2.V1MoveAssetRequest{FolderID: &folderID})
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/asset/"+assetID.String()+"/move", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNotFound, w.Code)
		mockAssets.AssertExpectations(t)
	})

	t.Run("error - asset not found", func(t *testing.T) {
		// Arrange
		assetID := uuid.New()

		mockAssets := registry.NewMockAssetService()
		mockAssets.On("Move", mock.Anything, assetID, (*uuid.UUID)(nil)).Return(domain.ErrAssetNotFound)

		h := newAssetRouter(mockAssets, usage.NewMockUsageService(), discardLogger)
		w := httptest.NewRecorder()

		jsonBody, _ := json.Marshal(asset2.V1MoveAssetRequest{})
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/asset/"+assetID.String()+"/move", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNotFound, w.Code)
		mockAssets.AssertExpectations(t)
	})

	t.Run("error - invalid json body", func(t *testing.T) {
		// Arrange
		assetID := uuid.New()

		h := newAssetRouter(registry.NewMockAssetService(), usage.NewMockUsageService(), discardLogger)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodPost, "/api/v1/asset/"+assetID.String()+"/move", bytes.NewReader([]byte("not json")))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
	})
}
