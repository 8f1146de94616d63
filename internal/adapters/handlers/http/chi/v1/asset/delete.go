package asset

import (
	"errors"
	"net/http"

	"media-vault/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *HandlerV1) DeleteV1(w http.ResponseWriter, r *http.Request) {

	assetID, parseErr := uuid.Parse(chi.URLParam(r, "assetID"))
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	force := r.URL.Query().Get("force") == "true"

	err := h.assetService.SoftDelete(r.Context(), assetID, force)
	switch {
	case errors.Is(err, domain.ErrAssetNotFound):
		http.Error(w, "asset not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrAssetInUse):
		http.Error(w, "asset is referenced by other entities", http.StatusConflict)
		return
	case err != nil:
		h.logger.Error("error deleting asset", "asset_id", assetID, "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
		return
	}
}
