package upload

import (
	"log/slog"

	"media-vault/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 upload routes
type HandlerV1 struct {
	uploadService port.UploadService
	logger        *slog.Logger
	maxChunkSize  int64
}

// NewUploadHandlerV1 creates HandlerV1
func NewUploadHandlerV1(service port.UploadService, maxChunkSize int64, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		uploadService: service,
		logger:        logger,
		maxChunkSize:  maxChunkSize,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/session", h.StartSessionV1)
	router.Get("/session/{sessionID}", h.GetSessionV1)
	router.Put("/session/{sessionID}/chunk/{index}", h.SubmitChunkV1)
	router.Post("/session/{sessionID}/finalize", h.FinalizeV1)

	return router
}
