package folder

import (
	"encoding/json"
	"errors"
	"net/http"

	"media-vault/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1MoveFolderRequest carries the new parent; null means the root
type V1MoveFolderRequest struct {
	ParentID *uuid.UUID `json:"parent_id"`
}

func (h *HandlerV1) MoveV1(w http.ResponseWriter, r *http.Request) {

	folderID, parseErr := uuid.Parse(chi.URLParam(r, "folderID"))
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	var req V1MoveFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.folderService.Move(r.Context(), folderID, req.ParentID)
	switch {
	case errors.Is(err, domain.ErrFolderNotFound):
		http.Error(w, "folder not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrParentNotFound):
		http.Error(w, "parent folder not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrCyclicMove):
		http.Error(w, "cannot move a folder into its own subtree", http.StatusConflict)
		return
	case errors.Is(err, domain.ErrFolderPathTaken):
		http.Error(w, "a folder with that path already exists", http.StatusConflict)
		return
	case err != nil:
		h.logger.Error("error moving folder", "folder_id", folderID, "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
		return
	}
}
