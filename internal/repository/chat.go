package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smolentsev/lostradar/internal/apperrors"
	"github.com/smolentsev/lostradar/internal/models"
	"github.com/smolentsev/lostradar/internal/service"
)

type ChatRepository struct {
	db *pgxpool.Pool
}

func NewChatRepository(db *pgxpool.Pool) service.ChatRepository {
	return &ChatRepository{db: db}
}

// GetDeviceByQR возвращает устройство по QR-коду, nil если код не зарегистрирован
func (r *ChatRepository) GetDeviceByQR(ctx context.Context, qrCode string) (*models.Device, error) {
	device := &models.Device{}
	query := `
		SELECT id, owner_id, name, qr_code, qr_sharing_enabled, device_key, created_at
		FROM devices
		WHERE qr_code = $1;
	`
	err := r.db.QueryRow(ctx, query, qrCode).Scan(
		&device.ID,
		&device.OwnerID,
		&device.Name,
		&device.QRCode,
		&device.QRSharingEnabled,
		&device.DeviceKey,
		&device.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get device by qr code: %w", err)
	}
	return device, nil
}

// GetDeviceByID возвращает устройство по id, nil если его нет
func (r *ChatRepository) GetDeviceByID(ctx context.Context, id uuid.UUID) (*models.Device, error) {
	device := &models.Device{}
	query := `
		SELECT id, owner_id, name, qr_code, qr_sharing_enabled, device_key, created_at
		FROM devices
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&device.ID,
		&device.OwnerID,
		&device.Name,
		&device.QRCode,
		&device.QRSharingEnabled,
		&device.DeviceKey,
		&device.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get device by id: %w", err)
	}
	return device, nil
}

// UpsertActiveChat создает активный чат или возвращает существующий для той же пары
// (устройство, сессия нашедшего). Идемпотентность обеспечивает частичный уникальный
// индекс по status = 'ACTIVE': конкурентные старты схлопываются в одну строку.
func (r *ChatRepository) UpsertActiveChat(ctx context.Context, chat *models.FoundChat) error {
	query := `
		INSERT INTO found_chats (device_id, finder_session_id, finder_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (device_id, finder_session_id) WHERE status = 'ACTIVE'
		DO UPDATE SET updated_at = NOW()
		RETURNING id, finder_name, status, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		chat.DeviceID,
		chat.FinderSessionID,
		chat.FinderName,
	).Scan(&chat.ID, &chat.FinderName, &chat.Status, &chat.CreatedAt, &chat.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert active chat: %w", err)
	}
	return nil
}

// GetChat возвращает чат по id, nil если его нет
func (r *ChatRepository) GetChat(ctx context.Context, id uuid.UUID) (*models.FoundChat, error) {
	chat := &models.FoundChat{}
	query := `
		SELECT id, device_id, finder_session_id, finder_name, status, created_at, updated_at
		FROM found_chats
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&chat.ID,
		&chat.DeviceID,
		&chat.FinderSessionID,
		&chat.FinderName,
		&chat.Status,
		&chat.CreatedAt,
		&chat.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get chat: %w", err)
	}
	return chat, nil
}

// ListOwnerChats возвращает чаты по устройствам владельца, новые сверху
func (r *ChatRepository) ListOwnerChats(ctx context.Context, ownerID uuid.UUID) ([]*models.FoundChat, error) {
	query := `
		SELECT c.id, c.device_id, c.finder_session_id, c.finder_name, c.status, c.created_at, c.updated_at
		FROM found_chats c
		JOIN devices d ON d.id = c.device_id
		WHERE d.owner_id = $1
		ORDER BY c.updated_at DESC;
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owner chats: %w", err)
	}
	defer rows.Close()

	chats := make([]*models.FoundChat, 0)
	for rows.Next() {
		chat := &models.FoundChat{}
		err := rows.Scan(
			&chat.ID,
			&chat.DeviceID,
			&chat.FinderSessionID,
			&chat.FinderName,
			&chat.Status,
			&chat.CreatedAt,
			&chat.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat row: %w", err)
		}
		chats = append(chats, chat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return chats, nil
}

// SetChatStatus атомарно переводит чат из ACTIVE в терминальный статус.
// Для уже закрытого чата возвращает InvalidState.
func (r *ChatRepository) SetChatStatus(ctx context.Context, chatID uuid.UUID, newStatus string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE found_chats SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'ACTIVE';
	`, chatID, newStatus)
	if err != nil {
		return fmt.Errorf("failed to set chat status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.InvalidState("chat is not active")
	}
	return nil
}

// InsertMessage сохраняет сообщение чата
func (r *ChatRepository) InsertMessage(ctx context.Context, msg *models.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (chat_id, sender, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query, msg.ChatID, msg.Sender, msg.Content).
		Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}

// ListMessages возвращает сообщения чата в порядке возрастания создания.
// afterID позволяет клиенту забирать только новые сообщения при поллинге.
func (r *ChatRepository) ListMessages(ctx context.Context, chatID uuid.UUID, afterID int64) ([]*models.ChatMessage, error) {
	query := `
		SELECT id, chat_id, sender, content, created_at
		FROM chat_messages
		WHERE chat_id = $1 AND id > $2
		ORDER BY id ASC;
	`
	rows, err := r.db.Query(ctx, query, chatID, afterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	defer rows.Close()

	messages := make([]*models.ChatMessage, 0)
	for rows.Next() {
		msg := &models.ChatMessage{}
		err := rows.Scan(&msg.ID, &msg.ChatID, &msg.Sender, &msg.Content, &msg.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return messages, nil
}
