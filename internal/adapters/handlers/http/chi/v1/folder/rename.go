package folder

import (
	"encoding/json"
	"errors"
	"net/http"

	"media-vault/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1RenameFolderRequest renames a folder; slug and paths are recomputed
type V1RenameFolderRequest struct {
	Name string `json:"name"`
}

func (h *HandlerV1) RenameV1(w http.ResponseWriter, r *http.Request) {

	folderID, parseErr := uuid.Parse(chi.URLParam(r, "folderID"))
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	var req V1RenameFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	renamed, err := h.folderService.Rename(r.Context(), folderID, req.Name)
	switch {
	case errors.Is(err, domain.ErrFolderNotFound):
		http.Error(w, "folder not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrFolderPathTaken):
		http.Error(w, "a folder with that path already exists", http.StatusConflict)
		return
	case err != nil:
		h.logger.Error("error renaming folder", "folder_id", folderID, "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(NewV1FolderResponse(renamed)); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}
