package asset

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"media-vault/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *HandlerV1) CreateVersionV1(w http.ResponseWriter, r *http.Request) {

	parentID, parseErr := uuid.Parse(chi.URLParam(r, "assetID"))
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	declaredDigest := strings.ToLower(r.Header.Get("X-Content-Checksum-Sha256"))
	if declaredDigest == "" {
		http.Error(w, "missing X-Content-Checksum-Sha256 header", http.StatusBadRequest)
		return
	}

	body := http.MaxBytesReader(w, r.Body, h.maxBodySize)
	defer body.Close()
	content, readErr := io.ReadAll(body)
	if readErr != nil {
		http.Error(w, "request body too large or unreadable", http.StatusRequestEntityTooLarge)
		return
	}
	if len(content) == 0 {
		http.Error(w, "empty body", http.StatusBadRequest)
		return
	}

	if h.hasher.Sum(content) != declaredDigest {
		http.Error(w, "content does not match declared checksum", http.StatusBadRequest)
		return
	}

	meta := domain.AssetMetadata{
		Filename: r.Header.Get("X-Asset-Filename"),
		MimeType: r.Header.Get("Content-Type"),
		OwnerID:  r.Header.Get("X-Actor-ID"),
	}

	created, err := h.assetService.CreateVersion(r.Context(), parentID, content, declaredDigest, meta)
	switch {
	case errors.Is(err, domain.ErrAssetNotFound):
		http.Error(w, "parent asset not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrStorageWriteFailure):
		h.logger.Error("storage write failed creating version", "parent_id", parentID, "error", err)
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
		return
	case err != nil:
		h.logger.Error("error creating asset version", "parent_id", parentID, "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(NewV1AssetResponse(created, "")); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}
