package http

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"debt-assistant/domain"
	"debt-assistant/repository"
	"debt-assistant/service"
)

type chatRequest struct {
	Message string `json:"message"`
}

type errorBody struct {
	Error string `json:"error"`
}

type ChatHandler struct {
	service *service.ChatService
	log     repository.ChatLogRepository
}

func NewChatHandler(service *service.ChatService, chatLog repository.ChatLogRepository) *ChatHandler {
	return &ChatHandler{service: service, log: chatLog}
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	resp := h.service.Process(req.Message)

	status := "success"
	if resp.Type == domain.IntentError {
		status = "error"
	}
	if err := h.log.Append(domain.ChatLogEntry{
		Timestamp: time.Now(),
		Message:   req.Message,
		Response:  resp,
		Status:    status,
	}); err != nil {
		log.Printf("Warning: failed to append chat log: %v", err)
	}

	// Encode into a buffer first so an encoding failure can still produce a
	// clean 500 instead of a half-written body.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(resp); err != nil {
		log.Printf("Error encoding response: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorBody{Error: message}); err != nil {
		log.Printf("Error writing error response: %v", err)
	}
}
