package models

import (
	"time"

	"github.com/google/uuid"
)

// Видимость зоны интереса
const (
	AreaVisibilityPublic           = "PUBLIC"
	AreaVisibilityPrivateShareable = "PRIVATE_SHAREABLE"
	AreaVisibilityPrivate          = "PRIVATE"
)

// Роли участников зоны
const (
	AreaRoleAdmin  = "ADMIN"
	AreaRoleMember = "MEMBER"
)

// Статусы приглашений и заявок на вступление
const (
	InvitationStatusPending  = "PENDING"
	InvitationStatusAccepted = "ACCEPTED"
	InvitationStatusRejected = "REJECTED"
)

// Границы радиуса зоны интереса в метрах
const (
	AreaRadiusMinMeters = 100
	AreaRadiusMaxMeters = 10000
)

// Area - зона интереса: именованная круговая область на карте
type Area struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters int       `json:"radius_meters"`
	Visibility   string    `json:"visibility"`
	CreatorID    uuid.UUID `json:"creator_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AreaMember - членство пользователя в зоне интереса, уникально по (area_id, user_id)
type AreaMember struct {
	ID                   int64     `json:"id"`
	AreaID               uuid.UUID `json:"area_id"`
	UserID               uuid.UUID `json:"user_id"`
	Role                 string    `json:"role"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	NewEventsCount       int       `json:"new_events_count"`
	JoinedAt             time.Time `json:"joined_at"`
}

// AreaInvitation - приглашение в зону или заявка на вступление.
// Заявка направлена админам зоны (ReceiverID пустой), приглашение - конкретному пользователю.
type AreaInvitation struct {
	ID         uuid.UUID  `json:"id"`
	AreaID     uuid.UUID  `json:"area_id"`
	SenderID   uuid.UUID  `json:"sender_id"`
	ReceiverID *uuid.UUID `json:"receiver_id,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
