package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/smolentsev/lostradar/internal/apperrors"
	"github.com/smolentsev/lostradar/internal/models"
	"github.com/smolentsev/lostradar/internal/service"
)

const uniqueViolationCode = "23505"

type AreaRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewAreaRepository(db *pgxpool.Pool, redisClient *redis.Client) service.AreaRepository {
	return &AreaRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// CreateWithAdmin создает зону и членство ADMIN для создателя в одной транзакции.
// Обе строки или ни одной: зона без админа существовать не должна.
func (r *AreaRepository) CreateWithAdmin(ctx context.Context, area *models.Area) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx for area create: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO areas (name, description, location, radius_meters, visibility, creator_id)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6, $7)
		RETURNING id, created_at, updated_at;
	`
	err = tx.QueryRow(ctx, query,
		area.Name,
		area.Description,
		area.Longitude,
		area.Latitude,
		area.RadiusMeters,
		area.Visibility,
		area.CreatorID,
	).Scan(&area.ID, &area.CreatedAt, &area.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create area: %w", err)
	}

	memberQuery := `
		INSERT INTO area_members (area_id, user_id, role)
		VALUES ($1, $2, $3);
	`
	if _, err := tx.Exec(ctx, memberQuery, area.ID, area.CreatorID, models.AreaRoleAdmin); err != nil {
		return fmt.Errorf("failed to create admin membership: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit area create: %w", err)
	}
	return nil
}

// GetByID возвращает зону по её UUID, nil если зоны нет
func (r *AreaRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Area, error) {
	area := &models.Area{}
	query := `
		SELECT
			id,
			name,
			description,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			radius_meters,
			visibility,
			creator_id,
			created_at,
			updated_at
		FROM areas
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&area.ID,
		&area.Name,
		&area.Description,
		&area.Latitude,
		&area.Longitude,
		&area.RadiusMeters,
		&area.Visibility,
		&area.CreatorID,
		&area.CreatedAt,
		&area.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get area by id: %w", err)
	}
	return area, nil
}

// Delete удаляет зону; членства и приглашения каскадируются на уровне схемы
func (r *AreaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM areas WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete area: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NotFound("area %s not found", id)
	}
	return nil
}

// ListMemberAreas возвращает зоны, в которых состоит пользователь
func (r *AreaRepository) ListMemberAreas(ctx context.Context, userID uuid.UUID) ([]*models.Area, error) {
	query := `
		SELECT
			a.id,
			a.name,
			a.description,
			ST_Y(a.location::geometry) as latitude,
			ST_X(a.location::geometry) as longitude,
			a.radius_meters,
			a.visibility,
			a.creator_id,
			a.created_at,
			a.updated_at
		FROM areas a
		JOIN area_members am ON am.area_id = a.id
		WHERE am.user_id = $1
		ORDER BY a.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list member areas: %w", err)
	}
	defer rows.Close()

	areas := make([]*models.Area, 0)
	for rows.Next() {
		area := &models.Area{}
		err := rows.Scan(
			&area.ID,
			&area.Name,
			&area.Description,
			&area.Latitude,
			&area.Longitude,
			&area.RadiusMeters,
			&area.Visibility,
			&area.CreatorID,
			&area.CreatedAt,
			&area.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan area row: %w", err)
		}
		areas = append(areas, area)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return areas, nil
}

// GetMember возвращает членство пользователя в зоне, nil если его нет
func (r *AreaRepository) GetMember(ctx context.Context, areaID, userID uuid.UUID) (*models.AreaMember, error) {
	m := &models.AreaMember{}
	query := `
		SELECT id, area_id, user_id, role, notifications_enabled, new_events_count, joined_at
		FROM area_members
		WHERE area_id = $1 AND user_id = $2;
	`
	err := r.db.QueryRow(ctx, query, areaID, userID).Scan(
		&m.ID,
		&m.AreaID,
		&m.UserID,
		&m.Role,
		&m.NotificationsEnabled,
		&m.NewEventsCount,
		&m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get area member: %w", err)
	}
	return m, nil
}

// CreateMember создает членство; дубликат по (area_id, user_id) превращается в Conflict
func (r *AreaRepository) CreateMember(ctx context.Context, m *models.AreaMember) error {
	query := `
		INSERT INTO area_members (area_id, user_id, role)
		VALUES ($1, $2, $3)
		RETURNING id, notifications_enabled, new_events_count, joined_at;
	`
	err := r.db.QueryRow(ctx, query, m.AreaID, m.UserID, m.Role).Scan(
		&m.ID,
		&m.NotificationsEnabled,
		&m.NewEventsCount,
		&m.JoinedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.Conflict("user is already a member of this area")
		}
		return fmt.Errorf("failed to create area member: %w", err)
	}
	return nil
}

// DeleteMember удаляет членство пользователя в зоне
func (r *AreaRepository) DeleteMember(ctx context.Context, areaID, userID uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM area_members WHERE area_id = $1 AND user_id = $2;`, areaID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete area member: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NotFound("membership not found")
	}
	return nil
}

// UpdateMemberNotifications включает или выключает уведомления по зоне
func (r *AreaRepository) UpdateMemberNotifications(ctx context.Context, areaID, userID uuid.UUID, enabled bool) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE area_members SET notifications_enabled = $3
		WHERE area_id = $1 AND user_id = $2;
	`, areaID, userID, enabled)
	if err != nil {
		return fmt.Errorf("failed to update member notifications: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NotFound("membership not found")
	}
	return nil
}

// ResetNewEvents сбрасывает счетчик непросмотренных событий
func (r *AreaRepository) ResetNewEvents(ctx context.Context, areaID, userID uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE area_members SET new_events_count = 0
		WHERE area_id = $1 AND user_id = $2;
	`, areaID, userID)
	if err != nil {
		return fmt.Errorf("failed to reset new events count: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NotFound("membership not found")
	}
	return nil
}

// CreateInvitation создает заявку или приглашение; висящий дубликат заявки - Conflict
func (r *AreaRepository) CreateInvitation(ctx context.Context, inv *models.AreaInvitation) error {
	query := `
		INSERT INTO area_invitations (area_id, sender_id, receiver_id)
		VALUES ($1, $2, $3)
		RETURNING id, status, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query, inv.AreaID, inv.SenderID, inv.ReceiverID).Scan(
		&inv.ID,
		&inv.Status,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.Conflict("a pending join request already exists")
		}
		return fmt.Errorf("failed to create invitation: %w", err)
	}
	return nil
}

// GetInvitation возвращает приглашение по id, nil если его нет
func (r *AreaRepository) GetInvitation(ctx context.Context, id uuid.UUID) (*models.AreaInvitation, error) {
	inv := &models.AreaInvitation{}
	query := `
		SELECT id, area_id, sender_id, receiver_id, status, created_at, updated_at
		FROM area_invitations
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&inv.ID,
		&inv.AreaID,
		&inv.SenderID,
		&inv.ReceiverID,
		&inv.Status,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	return inv, nil
}

// DecideInvitation атомарно переводит приглашение из PENDING в терминальный статус.
// Переход защищён условным UPDATE по текущему статусу: из двух конкурентных решений
// выигрывает ровно одно, проигравший получает InvalidState. Для ACCEPTED в той же
// транзакции создается членство.
func (r *AreaRepository) DecideInvitation(ctx context.Context, invID uuid.UUID, newStatus string, member *models.AreaMember) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx for invitation decide: %w", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, `
		UPDATE area_invitations SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING';
	`, invID, newStatus)
	if err != nil {
		return fmt.Errorf("failed to update invitation status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.InvalidState("invitation is no longer pending")
	}

	if newStatus == models.InvitationStatusAccepted && member != nil {
		query := `
			INSERT INTO area_members (area_id, user_id, role)
			VALUES ($1, $2, $3)
			ON CONFLICT (area_id, user_id) DO NOTHING
			RETURNING id, notifications_enabled, new_events_count, joined_at;
		`
		err := tx.QueryRow(ctx, query, member.AreaID, member.UserID, member.Role).Scan(
			&member.ID,
			&member.NotificationsEnabled,
			&member.NewEventsCount,
			&member.JoinedAt,
		)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to create membership on accept: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit invitation decide: %w", err)
	}
	return nil
}

// ListAreaAdmins возвращает идентификаторы админов зоны
func (r *AreaRepository) ListAreaAdmins(ctx context.Context, areaID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `
		SELECT user_id FROM area_members
		WHERE area_id = $1 AND role = 'ADMIN';
	`, areaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list area admins: %w", err)
	}
	defer rows.Close()

	admins := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan admin row: %w", err)
		}
		admins = append(admins, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return admins, nil
}

// GetAreaFromCache пытается получить зону из Redis
func (r *AreaRepository) GetAreaFromCache(ctx context.Context, id uuid.UUID) (*models.Area, error) {
	key := fmt.Sprintf("area:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get area from cache: %w", err)
	}

	area := &models.Area{}
	if err := json.Unmarshal(val, area); err != nil {
		return nil, fmt.Errorf("failed to unmarshal area from cache: %w", err)
	}
	return area, nil
}

// SetAreaCache сохраняет зону в Redis
func (r *AreaRepository) SetAreaCache(ctx context.Context, area *models.Area) error {
	key := fmt.Sprintf("area:%s", area.ID.String())
	val, err := json.Marshal(area)
	if err != nil {
		return fmt.Errorf("failed to marshal area for cache: %w", err)
	}
	// Срок жизни кэша - 5 минут
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set area in cache: %w", err)
	}
	return nil
}

// InvalidateAreaCache удаляет зону из Redis кэша
func (r *AreaRepository) InvalidateAreaCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("area:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate area cache: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
