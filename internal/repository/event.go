package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smolentsev/lostradar/internal/apperrors"
	"github.com/smolentsev/lostradar/internal/geo"
	"github.com/smolentsev/lostradar/internal/models"
	"github.com/smolentsev/lostradar/internal/service"
)

const eventColumns = `
	e.id,
	e.creator_id,
	e.type,
	e.description,
	ST_Y(e.location::geometry) as latitude,
	ST_X(e.location::geometry) as longitude,
	e.is_public,
	e.is_urgent,
	e.status,
	e.group_id,
	e.device_id,
	e.phone_device_id,
	e.real_time_tracking,
	e.image_url,
	e.created_at,
	e.updated_at
`

type EventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) service.EventRepository {
	return &EventRepository{db: db}
}

// Create создает новую запись о событии в бд
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (creator_id, type, description, location, is_public, is_urgent, group_id, device_id, phone_device_id, real_time_tracking, image_url)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, status, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		event.CreatorID,
		event.Type,
		event.Description,
		event.Longitude,
		event.Latitude,
		event.IsPublic,
		event.IsUrgent,
		event.GroupID,
		event.DeviceID,
		event.PhoneDeviceID,
		event.RealTimeTracking,
		event.ImageURL,
	).Scan(&event.ID, &event.Status, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// GetByID возвращает событие по его UUID, nil если события нет
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events e WHERE e.id = $1;`
	row := r.db.QueryRow(ctx, query, id)
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event by id: %w", err)
	}
	return event, nil
}

// ListPublicInBox возвращает публичные события внутри вьюпорта карты.
// Прямоугольный предикат вьюпорта, не путать с круговой проверкой зоны.
func (r *EventRepository) ListPublicInBox(ctx context.Context, box geo.BoundingBox) ([]*models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		WHERE
			e.is_public = TRUE
			AND e.location::geometry && ST_MakeEnvelope($1, $2, $3, $4, 4326);
	`
	rows, err := r.db.Query(ctx, query,
		box.SouthWest.Lng,
		box.SouthWest.Lat,
		box.NorthEast.Lng,
		box.NorthEast.Lat,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list public events in box: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

// ListInAreas возвращает события, попадающие в круг хотя бы одной из перечисленных зон
func (r *EventRepository) ListInAreas(ctx context.Context, areaIDs []uuid.UUID) ([]*models.Event, error) {
	if len(areaIDs) == 0 {
		return []*models.Event{}, nil
	}
	query := `
		SELECT DISTINCT ` + eventColumns + `
		FROM events e
		JOIN areas a ON a.id = ANY($1)
			AND ST_DWithin(e.location, a.location, a.radius_meters);
	`
	// DISTINCT по колонкам события: одно событие может попасть в несколько зон
	rows, err := r.db.Query(ctx, query, areaIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list events in areas: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

// ListGroupEvents возвращает события групп, в которых состоит пользователь
func (r *EventRepository) ListGroupEvents(ctx context.Context, userID uuid.UUID) ([]*models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		WHERE e.group_id IN (
			SELECT group_id FROM group_members WHERE user_id = $1
		);
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group events: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

// Close переводит событие в статус CLOSED. Условный UPDATE по текущему статусу:
// повторное закрытие получает InvalidState, а не молчаливый успех.
func (r *EventRepository) Close(ctx context.Context, id uuid.UUID, stopTracking bool) error {
	query := `
		UPDATE events SET
			status = 'CLOSED',
			real_time_tracking = CASE WHEN $2 THEN FALSE ELSE real_time_tracking END,
			updated_at = NOW()
		WHERE id = $1 AND status = 'IN_PROGRESS';
	`
	cmdTag, err := r.db.Exec(ctx, query, id, stopTracking)
	if err != nil {
		return fmt.Errorf("failed to close event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.InvalidState("event is not in progress")
	}
	return nil
}

// BumpAreaCounters увеличивает счетчик непросмотренных событий у членов всех зон,
// в круг которых попадает событие. Создатель события не считается.
func (r *EventRepository) BumpAreaCounters(ctx context.Context, eventID uuid.UUID) error {
	query := `
		UPDATE area_members am
		SET new_events_count = new_events_count + 1
		FROM areas a, events e
		WHERE e.id = $1
			AND a.id = am.area_id
			AND am.user_id <> e.creator_id
			AND ST_DWithin(e.location, a.location, a.radius_meters);
	`
	if _, err := r.db.Exec(ctx, query, eventID); err != nil {
		return fmt.Errorf("failed to bump area counters: %w", err)
	}
	return nil
}

// ListNotifiableMembers возвращает пользователей, которым нужно отправить push о событии:
// члены накрывающих зон с включенными уведомлениями, кроме автора события
func (r *EventRepository) ListNotifiableMembers(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT am.user_id
		FROM area_members am
		JOIN areas a ON a.id = am.area_id
		JOIN events e ON e.id = $1
		WHERE am.notifications_enabled = TRUE
			AND am.user_id <> e.creator_id
			AND ST_DWithin(e.location, a.location, a.radius_meters);
	`
	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifiable members: %w", err)
	}
	defer rows.Close()

	users := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan notifiable member: %w", err)
		}
		users = append(users, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return users, nil
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	event := &models.Event{}
	err := row.Scan(
		&event.ID,
		&event.CreatorID,
		&event.Type,
		&event.Description,
		&event.Latitude,
		&event.Longitude,
		&event.IsPublic,
		&event.IsUrgent,
		&event.Status,
		&event.GroupID,
		&event.DeviceID,
		&event.PhoneDeviceID,
		&event.RealTimeTracking,
		&event.ImageURL,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func collectEvents(rows pgx.Rows) ([]*models.Event, error) {
	events := make([]*models.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return events, nil
}
