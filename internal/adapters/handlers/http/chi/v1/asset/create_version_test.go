package asset_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	http2 "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	asset2 "media-vault/internal/adapters/handlers/http/chi/v1/asset"
	"media-vault/internal/core/domain"
	"media-vault/internal/core/service/registry"
	"media-vault/internal/core/service/usage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateVersionV1(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	content := []byte("revised document body")
	sum := sha256.Sum256(content)
	contentDigest := hex.EncodeToString(sum[:])

	t.Run("success - new version created", func(t *testing.T) {
		// Arrange
		parentID := uuid.New()
		created := &domain.Asset{
			ID:             uuid.New(),
			Filename:       "contract.pdf",
			MimeType:       "application/pdf",
			SizeBytes:      int64(len(content)),
			ChecksumSHA256: contentDigest,
			Version:        2,
			ParentAssetID:  &parentID,
		}

		mockAssets := registry.NewMockAssetService()
		mockAssets.On("CreateVersion", mock.Anything, parentID, content, contentDigest,
			domain.AssetMetadata{Filename: "contract.pdf", MimeType: "application/pdf", OwnerID: "user-42"}).
			Return(created, nil)

		h := newAssetRouter(mockAssets, usage.NewMockUsageService(), discardLogger)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodPost, "/api/v1/asset/"+parentID.String()+"/version", bytes.NewReader(content))
		req.Header.Set("X-Content-Checksum-Sha256", contentDigest)
		req.Header.Set("X-Asset-Filename", "contract.pdf")
		req.Header.Set("Content-Type", "application/pdf")
		req.Header.Set("X-Actor-ID", "user-42")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusCreated, w.Code)

		var response asset2.V1AssetResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.Equal(t, created.ID, response.ID)
		assert.Equal(t, 2, response.Version)
		require.NotNil(t, response.ParentAssetID)
		assert.Equal(t, parentID, *response.ParentAssetID)

		mockAssets.AssertExpectations(t)
	})

	t.Run("error - missing checksum header", func(t *testing.T) {
		// Arrange
		parentID := uuid.New()

		mockAssets := registry.NewMockAssetService()
		h := newAssetRouter(mockAssets, usage.NewMockUsageService(), discardLogger)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodPost, "/api/v1/asset/"+parentID.String()+"/version", bytes.NewReader(content))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockAssets.AssertNotCalled(t, "CreateVersion", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error - checksum does not match body", func(t *testing.T) {
		// Arrange
		parentID := uuid.New()

		mockAssets := registry.NewMockAssetService()
		h := newAssetRouter(mockAssets, usage.NewMockUsageService(), discardLogger)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodPost, "/api/v1/asset/"+parentID.String()+"/version", bytes.NewReader(content))
		req.Header.Set("X-Content-Checksum-Sha256", "deadbeef")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockAssets.AssertNotCalled(t, "CreateVersion", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error - empty body", func(t *testing.T) {
		// Arrange
		parentID := uuid.New()

		h := newAssetRouter(registry.NewMockAssetService(), usage.NewMockUsageService(), discardLogger)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodPost, "/api/v1/asset/"+parentID.String()+"/version", nil)
		req.Header.Set("X-Content-Checksum-Sha256", contentDigest)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
	})

	t.Run("error - parent asset not found", func(t *testing.T) {
		// Arrange
		parentID := uuid.New()

		mockAssets := registry.NewMockAssetService()
		mockAssets.On("CreateVersion", mock.Anything, parentID, content, contentDigest, mock.Anything).
			Return(nil, domain.ErrAssetNotFound)

		h := newAssetRouter(mockAssets, usage.NewMockUsageService(), discardLogger)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodPost, "/api/v1/asset/"+parentID.String()+"/version", bytes.NewReader(content))
		req.Header.Set("X-Content-Checksum-Sha256", contentDigest)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNotFound, w.Code)
		mockAssets.AssertExpectations(t)
	})

	t.Run("error - storage unavailable", func(t *testing.T) {
		// Arrange
		parentID := uuid.New()

		mockAssets := registry.NewMockAssetService()
		mockAssets.On("CreateVersion", mock.Anything, parentID, content, contentDigest, mock.Anything).
			Return(nil, domain.ErrStorageWriteFailure)

		h := newAssetRouter(mockAssets, usage.NewMockUsageService(), discardLogger)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodPost, "/api/v1/asset/"+parentID.String()+"/version", bytes.NewReader(content))
		req.Header.Set("X-Content-Checksum-Sha256", contentDigest)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusServiceUnavailable, w.Code)
		mockAssets.AssertExpectations(t)
	})

	t.Run("success - uppercase checksum header accepted", func(t *testing.T) {
		// Arrange
		parentID := uuid.New()
		created := &domain.Asset{ID: uuid.New(), Version: 2, ParentAssetID: &parentID}

		mockAssets := registry.NewMockAssetService()
		mockAssets.On("CreateVersion", mock.Anything, parentID, content, contentDigest, mock.Anything).
			Return(created, nil)

		h := newAssetRouter(mockAssets, usage.NewMockUsageService(), discardLogger)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodPost, "/api/v1/asset/"+parentID.String()+"/version", bytes.NewReader(content))
		req.Header.Set("X-Content-Checksum-Sha256", strings.ToUpper(contentDigest))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusCreated, w.Code)
		mockAssets.AssertExpectations(t)
	})
}
