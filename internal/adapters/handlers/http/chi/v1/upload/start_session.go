package upload

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"media-vault/internal/core/domain"

	"github.com/google/uuid"
)

// V1StartSessionRequest is the request to open a chunked upload session
type V1StartSessionRequest struct {
	Filename   string     `json:"filename"`
	MimeType   string     `json:"mime_type"`
	SizeBytes  int64      `json:"size_bytes"`
	ChunkCount int        `json:"chunk_count"`
	FolderID   *uuid.UUID `json:"folder_id,omitempty"`
}

// V1StartSessionResponse is the response to open a chunked upload session
type V1StartSessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *HandlerV1) StartSessionV1(w http.ResponseWriter, r *http.Request) {

	var req V1StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding start session request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Filename == "" || req.MimeType == "" {
		http.Error(w, "missing param", http.StatusBadRequest)
		return
	}

	actor := r.Header.Get("X-Actor-ID")

	session, err := h.uploadService.StartSession(r.Context(), req.Filename, req.MimeType, req.SizeBytes, req.ChunkCount, req.FolderID, actor)
	switch {
	case errors.Is(err, domain.ErrInvalidUploadRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrFolderNotFound):
		http.Error(w, "folder not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error starting upload session", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := V1StartSessionResponse{
			SessionID: session.ID,
			ExpiresAt: session.ExpiresAt,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}
