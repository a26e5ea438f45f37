package models

import (
	"time"

	"github.com/google/uuid"
)

// Источники позиций для карты группы
const (
	PositionSourceDevice = "DEVICE"
	PositionSourcePhone  = "PHONE"
)

// Position - последняя известная позиция участника группы или его трекера
type Position struct {
	Source     string     `json:"source"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	DeviceID   *uuid.UUID `json:"device_id,omitempty"`
	Label      string     `json:"label,omitempty"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	ReportedAt time.Time  `json:"reported_at"`
}
