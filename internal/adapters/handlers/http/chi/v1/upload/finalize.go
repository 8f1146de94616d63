package upload

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"media-vault/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1AssetDescriptor is the asset shape returned by finalize
type V1AssetDescriptor struct {
	ID            uuid.UUID  `json:"id"`
	Filename      string     `json:"filename"`
	OriginalName  string     `json:"original_name"`
	MimeType      string     `json:"mime_type"`
	Extension     string     `json:"extension"`
	SizeBytes     int64      `json:"size_bytes"`
	StorageKey    string     `json:"storage_key"`
	Checksum      string     `json:"checksum_sha256"`
	FolderID      *uuid.UUID `json:"folder_id,omitempty"`
	Processing    string     `json:"processing"`
	Version       int        `json:"version"`
	ParentAssetID *uuid.UUID `json:"parent_asset_id,omitempty"`
	IsPublic      bool       `json:"is_public"`
	CreatedAt     time.Time  `json:"created_at"`
}

// V1FinalizeResponse is the response to finalize
type V1FinalizeResponse struct {
	Asset        V1AssetDescriptor `json:"asset"`
	Deduplicated bool              `json:"deduplicated"`
}

// NewV1AssetDescriptor maps a domain asset to its wire shape
func NewV1AssetDescriptor(asset *domain.Asset) V1AssetDescriptor {
	return V1AssetDescriptor{
		ID:            asset.ID,
		Filename:      asset.Filename,
		OriginalName:  asset.OriginalName,
		MimeType:      asset.MimeType,
		Extension:     asset.Extension,
		SizeBytes:     asset.SizeBytes,
		StorageKey:    asset.StorageKey,
		Checksum:      asset.ChecksumSHA256,
		FolderID:      asset.FolderID,
		Processing:    string(asset.Processing),
		Version:       asset.Version,
		ParentAssetID: asset.ParentAssetID,
		IsPublic:      asset.IsPublic,
		CreatedAt:     asset.CreatedAt,
	}
}

func (h *HandlerV1) FinalizeV1(w http.ResponseWriter, r *http.Request) {

	sessionID, parseErr := uuid.Parse(chi.URLParam(r, "sessionID"))
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	asset, isNew, err := h.uploadService.Finalize(r.Context(), sessionID)
	switch {
	case errors.Is(err, domain.ErrUnknownSession):
		http.Error(w, "session not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrSessionExpired):
		http.Error(w, "session expired", http.StatusGone)
		return
	case errors.Is(err, domain.ErrFinalizeInProgress):
		http.Error(w, "finalize already in progress", http.StatusConflict)
		return
	case errors.Is(err, domain.ErrIncompleteUpload), errors.Is(err, domain.ErrSizeMismatch):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrStorageWriteFailure):
		h.logger.Error("storage write failed during finalize", "session_id", sessionID, "error", err)
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
		return
	case err != nil:
		h.logger.Error("error finalizing upload", "session_id", sessionID, "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := V1FinalizeResponse{
			Asset:        NewV1AssetDescriptor(asset),
			Deduplicated: !isNew,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}
