package http

import (
	"encoding/json"
	"net/http"

	"debt-assistant/repository"
)

type HistoryHandler struct {
	log repository.ChatLogRepository
}

func NewHistoryHandler(chatLog repository.ChatLogRepository) *HistoryHandler {
	return &HistoryHandler{log: chatLog}
}

// History handles GET /api/history: the chat log in append order.
func (h *HistoryHandler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.log.All())
}
