package models

import (
	"time"

	"github.com/google/uuid"
)

// Роли участников группы
const (
	GroupRoleAdmin  = "ADMIN"
	GroupRoleMember = "MEMBER"
)

// Group - группа пользователей для обмена событиями и геопозицией
type Group struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatorID   uuid.UUID `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// GroupMember - членство пользователя в группе
type GroupMember struct {
	ID       int64     `json:"id"`
	GroupID  uuid.UUID `json:"group_id"`
	UserID   uuid.UUID `json:"user_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}
