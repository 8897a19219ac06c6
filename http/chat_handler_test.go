package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"debt-assistant/domain"
	"debt-assistant/repository"
	"debt-assistant/service"
)

func newTestHandler() (*ChatHandler, *repository.ChatLogMemory) {
	dataset := repository.BuiltinDataset()
	chatService := service.NewChatService(dataset, repository.NewMemoryCache(), nil)
	chatLog := repository.NewChatLogMemory()
	return NewChatHandler(chatService, chatLog), chatLog
}

func TestChatHandler_OK(t *testing.T) {

	handler, chatLog := newTestHandler()

	body := []byte(`{"message": "Hello"}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/api/chat",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()

	handler.Chat(w, req)

	resp := w.Result()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var chatResp domain.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if chatResp.Type != domain.IntentGreeting {
		t.Errorf("expected greeting, got %s", chatResp.Type)
	}

	entries := chatLog.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Message != "Hello" || entries[0].Status != "success" {
		t.Errorf("unexpected log entry: %+v", entries[0])
	}
}

func TestChatHandler_MethodNotAllowed(t *testing.T) {

	handler, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	w := httptest.NewRecorder()

	handler.Chat(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestChatHandler_BadRequest(t *testing.T) {

	handler, _ := newTestHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/api/chat",
		bytes.NewBuffer([]byte(`{invalid-json}`)),
	)

	w := httptest.NewRecorder()
	handler.Chat(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestChatHandler_MissingMessage(t *testing.T) {

	handler, _ := newTestHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/api/chat",
		bytes.NewBuffer([]byte(`{}`)),
	)

	w := httptest.NewRecorder()
	handler.Chat(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var body errorBody
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error == "" {
		t.Errorf("expected explanatory error message")
	}
}

func TestHistoryHandler(t *testing.T) {

	handler, chatLog := newTestHandler()
	historyHandler := NewHistoryHandler(chatLog)

	for _, msg := range []string{`{"message": "Hello"}`, `{"message": "tell me about Japan"}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(msg))
		handler.Chat(httptest.NewRecorder(), req)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	w := httptest.NewRecorder()
	historyHandler.History(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var entries []domain.ChatLogEntry
	if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "Hello" {
		t.Errorf("history out of order: %+v", entries)
	}
}

func TestHistoryHandler_MethodNotAllowed(t *testing.T) {

	_, chatLog := newTestHandler()
	historyHandler := NewHistoryHandler(chatLog)

	req := httptest.NewRequest(http.MethodPost, "/api/history", nil)
	w := httptest.NewRecorder()
	historyHandler.History(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}
