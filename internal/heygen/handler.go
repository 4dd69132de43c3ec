package heygen

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/diazdennis/monica-chatbot/pkg/logging"
)

// Handler exposes the avatar-provider proxy endpoints.
type Handler struct {
	client *Client
	logger *logging.Logger
}

// NewHandler creates a HeyGen proxy handler.
func NewHandler(client *Client, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{client: client, logger: logger}
}

// Token handles POST /heygen/token.
func (h *Handler) Token(w http.ResponseWriter, r *http.Request) {
	token, err := h.client.CreateToken(r.Context())
	if err != nil {
		h.logger.Error("failed to generate access token", "error", err)
		http.Error(w, "Failed to generate HeyGen access token", http.StatusBadGateway)
		return
	}
	h.writeJSON(w, map[string]string{"token": token})
}

// CreateSession handles POST /heygen/session. The body is optional.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var cfg SessionConfig
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	session, err := h.client.CreateSession(r.Context(), cfg)
	if err != nil {
		h.logger.Error("failed to create streaming session", "error", err)
		http.Error(w, "Failed to create HeyGen streaming session", http.StatusBadGateway)
		return
	}
	h.writeJSON(w, session)
}

// CloseSession handles DELETE /heygen/session/{sessionID}.
func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		http.Error(w, "sessionID is required", http.StatusBadRequest)
		return
	}

	if err := h.client.CloseSession(r.Context(), sessionID); err != nil {
		h.logger.Error("failed to close streaming session", "error", err, "session_id", sessionID)
		http.Error(w, "Failed to close HeyGen streaming session", http.StatusBadGateway)
		return
	}
	h.writeJSON(w, map[string]bool{"success": true})
}

// Avatars handles GET /heygen/avatars.
func (h *Handler) Avatars(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]any{"avatars": h.client.ListAvatars(r.Context())})
}

// Voices handles GET /heygen/voices.
func (h *Handler) Voices(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]any{"voices": h.client.ListVoices(r.Context())})
}

func (h *Handler) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}
