package folder

import (
	"errors"
	"net/http"

	"media-vault/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *HandlerV1) DeleteV1(w http.ResponseWriter, r *http.Request) {

	folderID, parseErr := uuid.Parse(chi.URLParam(r, "folderID"))
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	strategy := domain.FolderDeleteRejectIfNonEmpty
	switch raw := r.URL.Query().Get("strategy"); raw {
	case "", string(domain.FolderDeleteRejectIfNonEmpty):
	case string(domain.FolderDeleteCascade):
		strategy = domain.FolderDeleteCascade
	case string(domain.FolderDeleteReparentToRoot):
		strategy = domain.FolderDeleteReparentToRoot
	default:
		http.Error(w, "unknown delete strategy", http.StatusBadRequest)
		return
	}

	err := h.folderService.Delete(r.Context(), folderID, strategy)
	switch {
	case errors.Is(err, domain.ErrFolderNotFound):
		http.Error(w, "folder not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrFolderNotEmpty):
		http.Error(w, "folder is not empty", http.StatusConflict)
		return
	case err != nil:
		h.logger.Error("error deleting folder", "folder_id", folderID, "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
		return
	}
}
