package folder

import (
	"encoding/json"
	"errors"
	"net/http"

	"media-vault/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *HandlerV1) GetV1(w http.ResponseWriter, r *http.Request) {

	folderID, parseErr := uuid.Parse(chi.URLParam(r, "folderID"))
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	folder, err := h.folderService.Get(r.Context(), folderID)
	switch {
	case errors.Is(err, domain.ErrFolderNotFound):
		http.Error(w, "folder not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error fetching folder", "folder_id", folderID, "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(NewV1FolderResponse(folder)); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}

func (h *HandlerV1) ListChildrenV1(w http.ResponseWriter, r *http.Request) {

	folderID, parseErr := uuid.Parse(chi.URLParam(r, "folderID"))
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	children, err := h.folderService.ListChildren(r.Context(), &folderID)
	if err != nil {
		h.logger.Error("error listing folder children", "folder_id", folderID, "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := make([]V1FolderResponse, 0, len(children))
	for i := range children {
		resp = append(resp, NewV1FolderResponse(&children[i]))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
