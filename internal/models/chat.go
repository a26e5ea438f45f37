package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы чата находки
const (
	ChatStatusActive   = "ACTIVE"
	ChatStatusResolved = "RESOLVED"
	ChatStatusClosed   = "CLOSED"
)

// Отправители сообщений в чате находки
const (
	ChatSenderFinder = "FINDER"
	ChatSenderOwner  = "OWNER"
)

// FoundChat - анонимный чат между нашедшим вещь и её владельцем.
// Создаётся лениво при первом обращении нашедшего по QR-коду устройства.
type FoundChat struct {
	ID              uuid.UUID `json:"id"`
	DeviceID        uuid.UUID `json:"device_id"`
	FinderSessionID string    `json:"-"`
	FinderName      string    `json:"finder_name,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ChatMessage - сообщение чата, выдаётся в порядке возрастания создания
type ChatMessage struct {
	ID        int64     `json:"id"`
	ChatID    uuid.UUID `json:"chat_id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
