package models

import (
	"time"

	"github.com/google/uuid"
)

// Типы событий
const (
	EventTypeTheft    = "THEFT"
	EventTypeLost     = "LOST"
	EventTypeAccident = "ACCIDENT"
	EventTypeFire     = "FIRE"
	EventTypeGeneral  = "GENERAL"
)

// Статусы событий
const (
	EventStatusInProgress = "IN_PROGRESS"
	EventStatusClosed     = "CLOSED"
)

// Event - событие на карте (кража, потеря, происшествие)
type Event struct {
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
