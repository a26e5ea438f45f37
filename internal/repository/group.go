package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smolentsev/lostradar/internal/models"
	"github.com/smolentsev/lostradar/internal/service"
)

type GroupRepository struct {
	db *pgxpool.Pool
}

func NewGroupRepository(db *pgxpool.Pool) service.GroupRepository {
	return &GroupRepository{db: db}
}

// GetMember возвращает членство пользователя в группе, nil если его нет
func (r *GroupRepository) GetMember(ctx context.Context, groupID, userID uuid.UUID) (*models.GroupMember, error) {
	m := &models.GroupMember{}
	query := `
		SELECT id, group_id, user_id, role, joined_at
		FROM group_members
		WHERE group_id = $1 AND user_id = $2;
	`
	err := r.db.QueryRow(ctx, query, groupID, userID).Scan(
		&m.ID,
		&m.GroupID,
		&m.UserID,
		&m.Role,
		&m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group member: %w", err)
	}
	return m, nil
}

// ListMemberPositions собирает для карты группы последние позиции телефонов
// участников и их GPS-трекеров. Read-side агрегат, ничего не мутирует.
func (r *GroupRepository) ListMemberPositions(ctx context.Context, groupID uuid.UUID) ([]*models.Position, error) {
	query := `
		SELECT
			'PHONE' as source,
			u.id as user_id,
			NULL::uuid as device_id,
			CASE WHEN u.show_name THEN u.name ELSE '' END as label,
			ST_Y(up.location::geometry) as latitude,
			ST_X(up.location::geometry) as longitude,
			up.reported_at
		FROM user_positions up
		JOIN users u ON u.id = up.user_id
		JOIN group_members gm ON gm.user_id = u.id
		WHERE gm.group_id = $1
		UNION ALL
		SELECT
			'DEVICE' as source,
			NULL::uuid as user_id,
			d.id as device_id,
			d.name as label,
			ST_Y(dp.location::geometry) as latitude,
			ST_X(dp.location::geometry) as longitude,
			dp.reported_at
		FROM device_positions dp
		JOIN devices d ON d.id = dp.device_id
		JOIN group_members gm ON gm.user_id = d.owner_id
		WHERE gm.group_id = $1
		ORDER BY reported_at DESC;
	`
	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list member positions: %w", err)
	}
	defer rows.Close()

	positions := make([]*models.Position, 0)
	for rows.Next() {
		p := &models.Position{}
		err := rows.Scan(
			&p.Source,
			&p.UserID,
			&p.DeviceID,
			&p.Label,
			&p.Latitude,
			&p.Longitude,
			&p.ReportedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan position row: %w", err)
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return positions, nil
}

// UpsertUserPosition сохраняет последнюю позицию телефона пользователя
func (r *GroupRepository) UpsertUserPosition(ctx context.Context, userID uuid.UUID, lat, lng float64) error {
	query := `
		INSERT INTO user_positions (user_id, location, reported_at)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET location = EXCLUDED.location, reported_at = NOW();
	`
	if _, err := r.db.Exec(ctx, query, userID, lng, lat); err != nil {
		return fmt.Errorf("failed to upsert user position: %w", err)
	}
	return nil
}

// UpsertDevicePosition сохраняет последнюю позицию трекера
func (r *GroupRepository) UpsertDevicePosition(ctx context.Context, deviceID uuid.UUID, lat, lng float64) error {
	query := `
		INSERT INTO device_positions (device_id, location, reported_at)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), NOW())
		ON CONFLICT (device_id)
		DO UPDATE SET location = EXCLUDED.location, reported_at = NOW();
	`
	if _, err := r.db.Exec(ctx, query, deviceID, lng, lat); err != nil {
		return fmt.Errorf("failed to upsert device position: %w", err)
	}
	return nil
}

// GetDeviceByKey возвращает устройство по ключу трекера, nil если ключ неизвестен
func (r *GroupRepository) GetDeviceByKey(ctx context.Context, deviceKey string) (*models.Device, error) {
	device := &models.Device{}
	query := `
		SELECT id, owner_id, name, qr_code, qr_sharing_enabled, device_key, created_at
		FROM devices
		WHERE device_key = $1;
	`
	err := r.db.QueryRow(ctx, query, deviceKey).Scan(
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
		return nil, fmt.Errorf("failed to get device by key: %w", err)
	}
	return device, nil
}
