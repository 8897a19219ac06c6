package repository

import (
	"sync"

	"debt-assistant/domain"
)

// ChatLogMemory is an in-memory append-only chat log. Appends are guarded so
// concurrent request handlers cannot interleave entries.
type ChatLogMemory struct {
	mu      sync.Mutex
	entries []domain.ChatLogEntry
}

// NewChatLogMemory creates a new in-memory chat log.
func NewChatLogMemory() *ChatLogMemory {
	return &ChatLogMemory{
		entries: []domain.ChatLogEntry{},
	}
}

// Append stores one entry at the end of the log.
func (r *ChatLogMemory) Append(entry domain.ChatLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

// All returns a snapshot of the log in append order.
func (r *ChatLogMemory) All() []domain.ChatLogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ChatLogEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
