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

// V1RecordUsageRequest registers one external reference to an asset
type V1RecordUsageRequest struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	FieldName  string `json:"field_name"`
	UsageType  string `json:"usage_type"`
}

// V1UsageResponse is the wire shape of a usage record
type V1UsageResponse struct {
	AssetID    uuid.UUID `json:"asset_id"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	FieldName  string    `json:"field_name"`
	UsageType  string    `json:"usage_type"`
	UsedAt     time.Time `json:"used_at"`
}

func (h *HandlerV1) RecordUsageV1(w http.ResponseWriter, r *http.Request) {

	assetID, parseErr := uuid.Parse(chi.URLParam(r, "assetID"))
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	var req V1RecordUsageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.EntityType == "" || req.EntityID == "" || req.FieldName == "" {
		http.Error(w, "entity_type, entity_id and field_name are required", http.StatusBadRequest)
		return
	}

	err := h.usageService.Record(r.Context(), assetID, req.EntityType, req.EntityID, req.FieldName, domain.UsageType(req.UsageType))
	switch {
	case errors.Is(err, domain.ErrAssetNotFound):
		http.Error(w, "asset not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error recording usage", "asset_id", assetID, "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
		return
	}
}

func (h *HandlerV1) ReleaseUsageV1(w http.ResponseWriter, r *http.Request) {

	assetID, parseErr := uuid.Parse(chi.URLParam(r, "assetID"))
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	entityType, entityID, fieldName := q.Get("entity_type"), q.Get("entity_id"), q.Get("field_name")
	if entityType == "" || entityID == "" || fieldName == "" {
		http.Error(w, "entity_type, entity_id and field_name are required", http.StatusBadRequest)
		return
	}

	if err := h.usageService.Release(r.Context(), assetID, entityType, entityID, fieldName); err != nil {
		h.logger.Error("error releasing usage", "asset_id", assetID, "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HandlerV1) ListUsageV1(w http.ResponseWriter, r *http.Request) {

	assetID, parseErr := uuid.Parse(chi.URLParam(r, "assetID"))
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	usages, err := h.usageService.List(r.Context(), assetID)
	if err != nil {
		h.logger.Error("error listing usage", "asset_id", assetID, "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := make([]V1UsageResponse, 0, len(usages))
	for _, u := range usages {
		resp = append(resp, V1UsageResponse{
			AssetID:    u.AssetID,
			EntityType: u.EntityType,
			EntityID:   u.EntityID,
			FieldName:  u.FieldName,
			UsageType:  string(u.UsageType),
			UsedAt:     u.UsedAt,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
