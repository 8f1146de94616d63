package upload

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"media-vault/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1ChunkAckResponse acknowledges one stored chunk
type V1ChunkAckResponse struct {
	Index     int    `json:"index"`
	SizeBytes int64  `json:"size_bytes"`
	Checksum  string `json:"checksum_sha256"`
}

func (h *HandlerV1) SubmitChunkV1(w http.ResponseWriter, r *http.Request) {

	sessionID, parseErr := uuid.Parse(chi.URLParam(r, "sessionID"))
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	index, parseErr := strconv.Atoi(chi.URLParam(r, "index"))
	if parseErr != nil {
		http.Error(w, "invalid chunk index", http.StatusBadRequest)
		return
	}

	claimedDigest := r.Header.Get("X-Chunk-Checksum-Sha256")
	if claimedDigest == "" {
		http.Error(w, "missing X-Chunk-Checksum-Sha256 header", http.StatusBadRequest)
		return
	}

	data, readErr := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxChunkSize))
	if readErr != nil {
		http.Error(w, "could not read chunk body", http.StatusRequestEntityTooLarge)
		return
	}

	ack, err := h.uploadService.SubmitChunk(r.Context(), sessionID, index, data, claimedDigest)
	switch {
	case errors.Is(err, domain.ErrUnknownSession):
		http.Error(w, "session not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrSessionExpired):
		http.Error(w, "session expired", http.StatusGone)
		return
	case errors.Is(err, domain.ErrChunkIndexOutOfRange), errors.Is(err, domain.ErrChunkDigestMismatch):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrStorageWriteFailure):
		h.logger.Error("storage write failed", "session_id", sessionID, "index", index, "error", err)
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
		return
	case err != nil:
		h.logger.Error("error submitting chunk", "session_id", sessionID, "index", index, "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := V1ChunkAckResponse{
			Index:     ack.Index,
			SizeBytes: ack.SizeBytes,
			Checksum:  ack.ChecksumSHA256,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}
