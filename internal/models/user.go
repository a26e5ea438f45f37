package models

import (
	"time"

	"github.com/google/uuid"
)

// User - профиль пользователя и его флаги приватности
type User struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	ShowName         bool      `json:"show_name"`
	ShowEmail        bool      `json:"show_email"`
	ShowPublicEvents bool      `json:"show_public_events"`
	CreatedAt        time.Time `json:"created_at"`
}

// Device - зарегистрированный GPS-трекер или метка с QR-кодом
type Device struct {
	ID               uuid.UUID `json:"id"`
	OwnerID          uuid.UUID `json:"owner_id"`
	Name             string    `json:"name"`
	QRCode           string    `json:"qr_code"`
	QRSharingEnabled bool      `json:"qr_sharing_enabled"`
	DeviceKey        string    `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
}
