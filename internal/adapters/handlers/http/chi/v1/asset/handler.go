package asset

import (
	"log/slog"

	"media-vault/internal/core/port"

	"github.com/go-chi/chi/v5"
)

type HandlerV1 struct {
	assetService port.AssetService
	usageService port.UsageService
	hasher       port.ContentHasher
	logger       *slog.Logger
	maxBodySize  int64
}

func NewAssetHandlerV1(assetService port.AssetService, usageService port.UsageService, hasher port.ContentHasher, logger *slog.Logger, maxBodySize int64) *HandlerV1 {
	return &HandlerV1{
		assetService: assetService,
		usageService: usageService,
		hasher:       hasher,
		logger:       logger,
		maxBodySize:  maxBodySize,
	}
}

func (h *HandlerV1) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListV1)
	r.Get("/{assetID}", h.GetV1)
	r.Delete("/{assetID}", h.DeleteV1)
	r.Post("/{assetID}/move", h.MoveV1)
	r.Post("/{assetID}/version", h.CreateVersionV1)
	r.Get("/{assetID}/usage", h.ListUsageV1)
	r.Post("/{assetID}/usage", h.RecordUsageV1)
	r.Delete("/{assetID}/usage", h.ReleaseUsageV1)
	return r
}
