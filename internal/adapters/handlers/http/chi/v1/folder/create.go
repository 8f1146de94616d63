package folder

import (
	"encoding/json"
	"errors"
	"net/http"

	"media-vault/internal/core/domain"

	"github.com/google/uuid"
)

// V1CreateFolderRequest creates a folder; nil parent means the root
type V1CreateFolderRequest struct {
	Name     string     `json:"name"`
	ParentID *uuid.UUID `json:"parent_id"`
}

func (h *HandlerV1) CreateV1(w http.ResponseWriter, r *http.Request) {

	var req V1CreateFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	created, err := h.folderService.Create(r.Context(), req.Name, req.ParentID)
	switch {
	case errors.Is(err, domain.ErrParentNotFound):
		http.Error(w, "parent folder not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrFolderPathTaken):
		http.Error(w, "a folder with that path already exists", http.StatusConflict)
		return
	case err != nil:
		h.logger.Error("error creating folder", "name", req.Name, "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(NewV1FolderResponse(created)); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}
