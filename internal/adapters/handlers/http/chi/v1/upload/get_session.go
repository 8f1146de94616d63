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

// V1SessionResponse is the status-polling shape of a session
type V1SessionResponse struct {
	ID             uuid.UUID  `json:"id"`
	Filename       string     `json:"filename"`
	MimeType       string     `json:"mime_type"`
	DeclaredSize   int64      `json:"declared_size"`
	ExpectedChunks int        `json:"expected_chunks"`
	Status         string     `json:"status"`
	FailureReason  string     `json:"failure_reason,omitempty"`
	FolderID       *uuid.UUID `json:"folder_id,omitempty"`
	ExpiresAt      time.Time  `json:"expires_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (h *HandlerV1) GetSessionV1(w http.ResponseWriter, r *http.Request) {

	sessionID, parseErr := uuid.Parse(chi.URLParam(r, "sessionID"))
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.uploadService.GetSession(r.Context(), sessionID)
	switch {
	case errors.Is(err, domain.ErrUnknownSession):
		http.Error(w, "session not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error fetching session", "session_id", sessionID, "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := V1SessionResponse{
			ID:             session.ID,
			Filename:       session.Filename,
			MimeType:       session.MimeType,
			DeclaredSize:   session.DeclaredSize,
			ExpectedChunks: session.ExpectedChunks,
			Status:         string(session.Status),
			FailureReason:  session.FailureReason,
			FolderID:       session.FolderID,
			ExpiresAt:      session.ExpiresAt,
			CreatedAt:      session.CreatedAt,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}
