package asset_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	http2 "net/http"
	"net/http/httptest"
	"testing"
	"time"

	asset2 "media-vault/internal/adapters/handlers/http/chi/v1/asset"
	"media-vault/internal/core/domain"
	"media-vault/internal/core/service/registry"
	"media-vault/internal/core/service/usage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordUsageV1(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("success - usage recorded", func(t *testing.T) {
		// Arrange
		assetID := uuid.New()

		mockUsage := usage.NewMockUsageService()
		mockUsage.On("Record", mock.Anything, assetID, "article", "article-7", "hero_image", domain.UsageTypeFeatured).
			Return(nil)

		h := newAssetRouter(registry.NewMockAssetService(), mockUsage, discardLogger)
		w := httptest.NewRecorder()

		jsonBody, _ := json.Marshal(asset2.V1RecordUsageRequest{
			EntityType: "article",
			EntityID:   "article-7",
			FieldName:  "hero_image",
			UsageType:  "featured",
		})
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/asset/"+assetID.String()+"/usage", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNoContent, w.Code)
		mockUsage.AssertExpectations(t)
	})

	t.Run("error - missing entity fields", func(t *testing.T) {
		// Arrange
		assetID := uuid.New()

		mockUsage := usage.NewMockUsageService()
		h := newAssetRouter(registry.NewMockAssetService(), mockUsage, discardLogger)
		w := httptest.NewRecorder()

		jsonBody, _ := json.Marshal(asset2.V1RecordUsageRequest{EntityType: "article"})
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/asset/"+assetID.String()+"/usage", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockUsage.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error - asset not found", func(t *testing.T) {
		// Arrange
		assetID := uuid.New()

		mockUsage := usage.NewMockUsageService()
		mockUsage.On("Record", mock.Anything, assetID, "article", "article-7", "hero_image", domain.UsageType("")).
			Return(domain.ErrAssetNotFound)

		h := newAssetRouter(registry.NewMockAssetService(), mockUsage, discardLogger)
		w := httptest.NewRecorder()

		jsonBody, _ := json.Marshal(asset2.V1RecordUsageRequest{
			EntityType: "article",
			EntityID:   "article-7",
			FieldName:  "hero_image",
		})
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/asset/"+assetID.String()+"/usage", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNotFound, w.Code)
		mockUsage.AssertExpectations(t)
	})
}

func TestReleaseUsageV1(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("success - usage released", func(t *testing.T) {
		// Arrange
		assetID := uuid.New()

		mockUsage := usage.NewMockUsageService()
		mockUsage.On("Release", mock.Anything, assetID, "article", "article-7", "hero_image").Return(nil)

		h := newAssetRouter(registry.NewMockAssetService(), mockUsage, discardLogger)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodDelete,
			"/api/v1/asset/"+assetID.String()+"/usage?entity_type=article&entity_id=article-7&field_name=hero_image", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNoContent, w.Code)
		mockUsage.AssertExpectations(t)
	})

	t.Run("error - missing query params", func(t *testing.T) {
		// Arrange
		assetID := uuid.New()

		mockUsage := usage.NewMockUsageService()
		h := newAssetRouter(registry.NewMockAssetService(), mockUsage, discardLogger)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodDelete, "/api/v1/asset/"+assetID.String()+"/usage?entity_type=article", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockUsage.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListUsageV1(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("success - usage records returned", func(t *testing.T) {
		// Arrange
		assetID := uuid.New()
		usages := []domain.AssetUsage{
			{AssetID: assetID, EntityType: "article", EntityID: "article-7", FieldName: "hero_image", UsageType: domain.UsageTypeFeatured, UsedAt: time.Now()},
			{AssetID: assetID, EntityType: "page", EntityID: "landing", FieldName: "background", UsageType: domain.UsageTypeBackground, UsedAt: time.Now()},
		}

		mockUsage := usage.NewMockUsageService()
		mockUsage.On("List", mock.Anything, assetID).Return(usages, nil)

		h := newAssetRouter(registry.NewMockAssetService(), mockUsage, discardLogger)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodGet, "/api/v1/asset/"+assetID.String()+"/usage", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)

		var response []asset2.V1UsageResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.Len(t, response, 2)
		assert.Equal(t, "article", response[0].EntityType)
		assert.Equal(t, "featured", response[0].UsageType)

		mockUsage.AssertExpectations(t)
	})

	t.Run("success - no usage", func(t *testing.T) {
		// Arrange
		assetID := uuid.New()

		mockUsage := usage.NewMockUsageService()
		mockUsage.On("List", mock.Anything, assetID).Return([]domain.AssetUsage{}, nil)

		h := newAssetRouter(registry.NewMockAssetService(), mockUsage, discardLogger)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodGet, "/api/v1/asset/"+assetID.String()+"/usage", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)

		var response []asset2.V1UsageResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.Empty(t, response)

		mockUsage.AssertExpectations(t)
	})
}
