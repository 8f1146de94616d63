package folder

import (
	"log/slog"
	"time"

	"media-vault/internal/core/domain"
	"media-vault/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type HandlerV1 struct {
	folderService port.FolderService
	logger        *slog.Logger
}

func NewFolderHandlerV1(folderService port.FolderService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		folderService: folderService,
		logger:        logger,
	}
}

func (h *HandlerV1) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CreateV1)
	r.Get("/{folderID}", h.GetV1)
	r.Get("/{folderID}/children", h.ListChildrenV1)
	r.Post("/{folderID}/move", h.MoveV1)
	r.Patch("/{folderID}", h.RenameV1)
	r.Delete("/{folderID}", h.DeleteV1)
	return r
}

// V1FolderResponse is the wire shape of a folder
type V1FolderResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Slug       string     `json:"slug"`
	Path       string     `json:"path"`
	ParentID   *uuid.UUID `json:"parent_id,omitempty"`
	Depth      int        `json:"depth"`
	AssetCount int64      `json:"asset_count"`
	TotalSize  int64      `json:"total_size"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NewV1FolderResponse maps a domain folder to its wire shape
func NewV1FolderResponse(folder *domain.Folder) V1FolderResponse {
	return V1FolderResponse{
		ID:         folder.ID,
		Name:       folder.Name,
		Slug:       folder.Slug,
		Path:       folder.Path,
		ParentID:   folder.ParentID,
		Depth:      folder.Depth,
		AssetCount: folder.AssetCount,
		TotalSize:  folder.TotalSize,
		CreatedAt:  folder.CreatedAt,
		UpdatedAt:  folder.UpdatedAt,
	}
}
