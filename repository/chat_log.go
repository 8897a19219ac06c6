package repository

import "debt-assistant/domain"

type ChatLogRepository interface {
	Append(entry domain.ChatLogEntry) error
	All() []domain.ChatLogEntry
}
