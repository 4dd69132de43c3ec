package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/diazdennis/monica-chatbot/pkg/logging"
)

// Handler wires HTTP requests to the chat service.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a chat handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// turnRequest is the body of POST /chat and POST /chat/transcript.
type turnRequest struct {
	SessionID string    `json:"sessionId"`
	Messages  []Message `json:"messages"`
}

// validate rejects malformed request shapes before they reach the service.
func (r *turnRequest) validate() string {
	if r.SessionID == "" {
		return "sessionId is required"
	}
	if len(r.Messages) == 0 {
		return "messages must not be empty"
	}
	for _, m := range r.Messages {
		if !m.Role.Valid() {
			return "invalid message role"
		}
	}
	return ""
}

// Chat handles POST /chat.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if msg := req.validate(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	result, err := h.service.ProcessTurn(r.Context(), req.SessionID, req.Messages)
	if err != nil {
		if errors.Is(err, ErrEmptyConversation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to process chat turn", "error", err, "session_id", req.SessionID)
		http.Error(w, "Failed to get response from AI", http.StatusBadGateway)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// Greeting handles GET /chat/greeting. A session ID is generated when the
// caller does not supply one.
func (h *Handler) Greeting(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	result, err := h.service.Greeting(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("failed to generate greeting", "error", err, "session_id", sessionID)
		http.Error(w, "Failed to get response from AI", http.StatusBadGateway)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// Transcript handles POST /chat/transcript.
func (h *Handler) Transcript(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if msg := req.validate(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	h.writeJSON(w, http.StatusOK, h.service.Transcript(r.Context(), req.SessionID, req.Messages))
}

// Health handles GET /chat/health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "monica-chat",
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}
