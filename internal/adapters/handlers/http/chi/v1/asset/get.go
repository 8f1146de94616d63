package asset

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"media-vault/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1AssetResponse is the wire shape of an asset
type V1AssetResponse struct {
	ID             uuid.UUID                                        `json:"id"`
	Filename       string                                           `json:"filename"`
	OriginalName   string                                           `json:"original_name"`
	MimeType       string                                           `json:"mime_type"`
	Extension      string                                           `json:"extension"`
	SizeBytes      int64                                            `json:"size_bytes"`
	StorageKey     string                                           `json:"storage_key"`
	Checksum       string                                           `json:"checksum_sha256"`
	Width          *int                                             `json:"width,omitempty"`
	Height         *int                                             `json:"height,omitempty"`
	Duration       *float64                                         `json:"duration,omitempty"`
	FolderID       *uuid.UUID                                       `json:"folder_id,omitempty"`
	Processing     string                                           `json:"processing"`
	Steps          map[domain.ProcessingStep]domain.StepResult      `json:"steps,omitempty"`
	Version        int                                              `json:"version"`
	ParentAssetID  *uuid.UUID                                       `json:"parent_asset_id,omitempty"`
	IsPublic       bool                                             `json:"is_public"`
	DownloadURL    string                                           `json:"download_url,omitempty"`
	CreatedAt      time.Time                                        `json:"created_at"`
	UpdatedAt      time.Time                                        `json:"updated_at"`
}

// NewV1AssetResponse maps a domain asset to its wire shape
func NewV1AssetResponse(asset *domain.Asset, downloadURL string) V1AssetResponse {
	return V1AssetResponse{
		ID:            asset.ID,
		Filename:      asset.Filename,
		OriginalName:  asset.OriginalName,
		MimeType:      asset.MimeType,
		Extension:     asset.Extension,
		SizeBytes:     asset.SizeBytes,
		StorageKey:    asset.StorageKey,
		Checksum:      asset.ChecksumSHA256,
		Width:         asset.Width,
		Height:        asset.Height,
		Duration:      asset.Duration,
		FolderID:      asset.FolderID,
		Processing:    string(asset.Processing),
		Steps:         asset.Steps,
		Version:       asset.Version,
		ParentAssetID: asset.ParentAssetID,
		IsPublic:      asset.IsPublic,
		DownloadURL:   downloadURL,
		CreatedAt:     asset.CreatedAt,
		UpdatedAt:     asset.UpdatedAt,
	}
}

func (h *HandlerV1) GetV1(w http.ResponseWriter, r *http.Request) {

	assetID, parseErr := uuid.Parse(chi.URLParam(r, "assetID"))
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	asset, downloadURL, err := h.assetService.Get(r.Context(), assetID)
	switch {
	case errors.Is(err, domain.ErrAssetNotFound):
		http.Error(w, "asset not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error fetching asset", "asset_id", assetID, "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(NewV1AssetResponse(asset, downloadURL)); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}

func (h *HandlerV1) ListV1(w http.ResponseWriter, r *http.Request) {

	var folderID *uuid.UUID
	if raw := r.URL.Query().Get("folder_id"); raw != "" {
		id, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			http.Error(w, parseErr.Error(), http.StatusBadRequest)
			return
		}
		folderID = &id
	}

	assets, err := h.assetService.List(r.Context(), folderID)
	if err != nil {
		h.logger.Error("error listing assets", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := make([]V1AssetResponse, 0, len(assets))
	for i := range assets {
		resp = append(resp, NewV1AssetResponse(&assets[i], ""))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
