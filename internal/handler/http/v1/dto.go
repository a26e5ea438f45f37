package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateAreaRequest DTO для создания зоны интереса
// @Description DTO для создания зоны интереса
type CreateAreaRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=255"`
	Description  string  `json:"description,omitempty"`
	Latitude     float64 `json:"latitude" validate:"latitude"`
	Longitude    float64 `json:"longitude" validate:"longitude"`
	RadiusMeters int     `json:"radius_meters" validate:"required,gt=0"`
	Visibility   string  `json:"visibility" validate:"required,oneof=PUBLIC PRIVATE_SHAREABLE PRIVATE"`
}

// AreaResponse DTO для ответа с информацией о зоне интереса
// @Description DTO для ответа с информацией о зоне интереса
type AreaResponse struct {
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

// InviteUserRequest DTO для приглашения пользователя в зону
// @Description DTO для приглашения пользователя в зону
type InviteUserRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required,uuid"`
}

// InvitationResponse DTO для ответа с заявкой или приглашением
// @Description DTO для ответа с заявкой или приглашением
type InvitationResponse struct {
	ID         uuid.UUID  `json:"id"`
	AreaID     uuid.UUID  `json:"area_id"`
	SenderID   uuid.UUID  `json:"sender_id"`
	ReceiverID *uuid.UUID `json:"receiver_id,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
}

// MemberResponse DTO для ответа с членством в зоне
// @Description DTO для ответа с членством в зоне
type MemberResponse struct {
	AreaID               uuid.UUID `json:"area_id"`
	UserID               uuid.UUID `json:"user_id"`
	Role                 string    `json:"role"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	NewEventsCount       int       `json:"new_events_count"`
}

// UpdateMembershipRequest DTO для переключения уведомлений по зоне
// @Description DTO для переключения уведомлений по зоне
type UpdateMembershipRequest struct {
	NotificationsEnabled *bool `json:"notifications_enabled" validate:"required"`
}

// CreateEventRequest DTO для создания события
// @Description DTO для создания события
type CreateEventRequest struct {
	Type             string  `json:"type" validate:"required,oneof=THEFT LOST ACCIDENT FIRE GENERAL"`
	Description      string  `json:"description,omitempty"`
	Latitude         float64 `json:"latitude" validate:"latitude"`
	Longitude        float64 `json:"longitude" validate:"longitude"`
	IsPublic         bool    `json:"is_public"`
	IsUrgent         bool    `json:"is_urgent"`
	GroupID          *string `json:"group_id,omitempty" validate:"omitempty,uuid"`
	DeviceID         *string `json:"device_id,omitempty" validate:"omitempty,uuid"`
	PhoneDeviceID    *string `json:"phone_device_id,omitempty" validate:"omitempty,uuid"`
	RealTimeTracking bool    `json:"real_time_tracking"`
	ImageURL         string  `json:"image_url,omitempty" validate:"omitempty,url"`
}

// EventResponse DTO для ответа с информацией о событии
// @Description DTO для ответа с информацией о событии
type EventResponse struct {
	ID               uuid.UUID  `json:"id"`
	CreatorID        uuid.UUID  `json:"creator_id"`
	Type             string     `json:"type"`
	Description      string     `json:"description,omitempty"`
	Latitude         float64    `json:"latitude"`
	Longitude        float64    `json:"longitude"`
	IsPublic         bool       `json:"is_public"`
	IsUrgent         bool       `json:"is_urgent"`
	Status           string     `json:"status"`
	GroupID          *uuid.UUID `json:"group_id,omitempty"`
	DeviceID         *uuid.UUID `json:"device_id,omitempty"`
	PhoneDeviceID    *uuid.UUID `json:"phone_device_id,omitempty"`
	RealTimeTracking bool       `json:"real_time_tracking"`
	ImageURL         string     `json:"image_url,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// CloseEventRequest DTO для закрытия события
// @Description DTO для закрытия события
type CloseEventRequest struct {
	StopTracking bool `json:"stop_tracking"`
}

// StartChatRequest DTO для старта чата находки по QR-коду
// @Description DTO для старта чата находки по QR-коду
type StartChatRequest struct {
	FinderName string `json:"finder_name,omitempty" validate:"omitempty,max=255"`
	SessionID  string `json:"session_id,omitempty"`
	Message    string `json:"message,omitempty" validate:"omitempty,max=2000"`
}

// ChatResponse DTO для ответа с информацией о чате находки.
// SessionID заполняется только в ответе на старт чата для нашедшего.
// @Description DTO для ответа с информацией о чате находки
type ChatResponse struct {
	ID         uuid.UUID `json:"id"`
	DeviceID   uuid.UUID `json:"device_id"`
	FinderName string    `json:"finder_name,omitempty"`
	Status     string    `json:"status"`
	SessionID  string    `json:"session_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ChatMessageRequest DTO для отправки сообщения в чат
// @Description DTO для отправки сообщения в чат
type ChatMessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// ChatMessageResponse DTO для ответа с сообщением чата
// @Description DTO для ответа с сообщением чата
type ChatMessageResponse struct {
	ID        int64     `json:"id"`
	ChatID    uuid.UUID `json:"chat_id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// SetChatStatusRequest DTO для завершения чата
// @Description DTO для завершения чата
type SetChatStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=RESOLVED CLOSED"`
}

// PublicDeviceResponse DTO для публичной QR-страницы устройства
// @Description DTO для публичной QR-страницы устройства
type PublicDeviceResponse struct {
	Name   string `json:"name"`
	QRCode string `json:"qr_code"`
}

// ReportPositionRequest DTO для отправки геопозиции.
// Теги координат только диапазонные: нулевая широта и долгота валидны.
// @Description DTO для отправки геопозиции
type ReportPositionRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// PositionResponse DTO для ответа с позицией участника группы
// @Description DTO для ответа с позицией участника группы
type PositionResponse struct {
	Source     string     `json:"source"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	DeviceID   *uuid.UUID `json:"device_id,omitempty"`
	Label      string     `json:"label,omitempty"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	ReportedAt time.Time  `json:"reported_at"`
}
