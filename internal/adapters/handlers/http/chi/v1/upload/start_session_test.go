package upload_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	http2 "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"media-vault/internal/adapters/handlers/http/chi"
	upload2 "media-vault/internal/adapters/handlers/http/chi/v1/upload"
	"media-vault/internal/core/domain"
	"media-vault/internal/core/service/upload"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testMaxChunkSize = 5 << 20

func TestStartSessionV1(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("success - session opened", func(t *testing.T) {
		// Arrange
		sessionID := uuid.New()
		expiresAt := time.Now().Add(30 * time.Minute)

		mockService := upload.NewMockUploadService()
		mockService.On("StartSession", mock.Anything, "report.pdf", "application/pdf", int64(1024), 2, (*uuid.UUID)(nil), "user-42").
			Return(&domain.UploadSession{
				ID:             sessionID,
				Filename:       "report.pdf",
				MimeType:       "application/pdf",
				DeclaredSize:   1024,
				ExpectedChunks: 2,
				Status:         domain.UploadSessionStatusPending,
				ExpiresAt:      expiresAt,
			}, nil)

		handler := upload2.NewUploadHandlerV1(mockService, testMaxChunkSize, discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, nil, "", testMaxChunkSize)
		w := httptest.NewRecorder()

		requestBody := upload2.V1StartSessionRequest{
			Filename:   "report.pdf",
			MimeType:   "application/pdf",
			SizeBytes:  1024,
			ChunkCount: 2,
		}
		jsonBody, _ := json.Marshal(requestBody)
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/session", bytes.NewReader(jsonBody))
		req.Header.Set("X-Actor-ID", "user-42")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusCreated, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var response upload2.V1StartSessionResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.Equal(t, sessionID, response.SessionID)
		assert.WithinDuration(t, expiresAt, response.ExpiresAt, time.Second)

		mockService.AssertExpectations(t)
	})

	t.Run("error - missing filename", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		handler := upload2.NewUploadHandlerV1(mockService, testMaxChunkSize, discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, nil, "", testMaxChunkSize)
		w := httptest.NewRecorder()

		requestBody := upload2.V1StartSessionRequest{
			MimeType:   "application/pdf",
			SizeBytes:  1024,
			ChunkCount: 2,
		}
		jsonBody, _ := json.Marshal(requestBody)
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/session", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "StartSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error - invalid json body", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		handler := upload2.NewUploadHandlerV1(mockService, testMaxChunkSize, discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, nil, "", testMaxChunkSize)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/session", bytes.NewReader([]byte("not json")))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
	})

	t.Run("error - declared size rejected", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		mockService.On("StartSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domain.ErrInvalidUploadRequest)

		handler := upload2.NewUploadHandlerV1(mockService, testMaxChunkSize, discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, nil, "", testMaxChunkSize)
		w := httptest.NewRecorder()

		requestBody := upload2.V1StartSessionRequest{
			Filename:   "huge.bin",
			MimeType:   "application/octet-stream",
			SizeBytes:  -5,
			ChunkCount: 1,
		}
		jsonBody, _ := json.Marshal(requestBody)
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/session", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("error - target folder not found", func(t *testing.T) {
		// Arrange
		folderID := uuid.New()

		mockService := upload.NewMockUploadService()
		mockService.On("StartSession", mock.Anything, "photo.png", "image/png", int64(2048), 1, &folderID, "").
			Return(nil, domain.ErrFolderNotFound)

		handler := upload2.NewUploadHandlerV1(mockService, testMaxChunkSize, discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, nil, "", testMaxChunkSize)
		w := httptest.NewRecorder()

		requestBody := upload2.V1StartSessionRequest{
			Filename:   "photo.png",
			MimeType:   "image/png",
			SizeBytes:  2048,
			ChunkCount: 1,
			FolderID:   &folderID,
		}
		jsonBody, _ := json.Marshal(requestBody)
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/session", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("error - service internal error", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		mockService.On("StartSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("database connection lost"))

		handler := upload2.NewUploadHandlerV1(mockService, testMaxChunkSize, discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, nil, "", testMaxChunkSize)
		w := httptest.NewRecorder()

		requestBody := upload2.V1StartSessionRequest{
			Filename:   "report.pdf",
			MimeType:   "application/pdf",
			SizeBytes:  1024,
			ChunkCount: 2,
		}
		jsonBody, _ := json.Marshal(requestBody)
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/session", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusServiceUnavailable, w.Code)
		mockService.AssertExpectations(t)
	})
}
