package asset

import (
	"encoding/json"
	"errors"
	"net/http"

	"media-vault/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1MoveAssetRequest carries the target folder; null means the root
type V1MoveAssetRequest struct {
	FolderID *uuid.UUID `json:"folder_id"`
}

func (h *HandlerV1) MoveV1(w http.ResponseWriter, r *http.Request) {

	assetID, parseErr := uuid.Parse(chi.URLParam(r, "assetID"))
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	var req V1MoveAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.assetService.Move(r.Context(), assetID, req.FolderID)
	switch {
	case errors.Is(err, domain.ErrAssetNotFound):
		http.Error(w, "asset not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrFolderNotFound):
		http.Error(w, "folder not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error moving asset", "asset_id", assetID, "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
		return
	}
}
