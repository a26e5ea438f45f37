package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/smolentsev/lostradar/internal/apperrors"
	"github.com/smolentsev/lostradar/internal/geo"
	"github.com/smolentsev/lostradar/internal/models"
	"github.com/smolentsev/lostradar/internal/notification"
)

// Параметры сортировки ленты событий
const (
	SortByCreatedAt = "createdAt"
	SortByType      = "type"
	SortOrderAsc    = "asc"
	SortOrderDesc   = "desc"
)

// EventFilters - фильтры и сортировка ленты. Применяются после объединения
// источников видимости, чтобы фильтром нельзя было обойти правила доступа.
type EventFilters struct {
	Status    string
	Type      string
	SortBy    string
	SortOrder string
}

// EventRepository определяет контракт для работы с бд событий
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	ListPublicInBox(ctx context.Context, box geo.BoundingBox) ([]*models.Event, error)
	ListInAreas(ctx context.Context, areaIDs []uuid.UUID) ([]*models.Event, error)
	ListGroupEvents(ctx context.Context, userID uuid.UUID) ([]*models.Event, error)
	Close(ctx context.Context, id uuid.UUID, stopTracking bool) error
	BumpAreaCounters(ctx context.Context, eventID uuid.UUID) error
	ListNotifiableMembers(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error)
}

// EventService определяет контракт для бизнес-логики событий
type EventService interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	ListVisibleEvents(ctx context.Context, userID uuid.UUID, box geo.BoundingBox, filters EventFilters) ([]*models.Event, error)
	CloseEvent(ctx context.Context, userID, eventID uuid.UUID, stopTracking bool) (*models.Event, error)
}

type eventService struct {
	repo      EventRepository
	areaRepo  AreaRepository
	logger    *logrus.Logger
	publisher notification.Publisher
}

func NewEventService(repo EventRepository, areaRepo AreaRepository, logger *logrus.Logger, publisher notification.Publisher) EventService {
	return &eventService{
		repo:      repo,
		areaRepo:  areaRepo,
		logger:    logger,
		publisher: publisher,
	}
}

// CreateEvent создает событие и уведомляет членов накрывающих зон.
// Счетчики и push-и - best effort: их сбой не откатывает созданное событие.
func (s *eventService) CreateEvent(ctx context.Context, event *models.Event) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "event",
		"method":  "CreateEvent",
		"type":    event.Type,
	})
	log.Info("Attempting to create a new event")

	event.Status = models.EventStatusInProgress
	if err := s.repo.Create(ctx, event); err != nil {
		log.WithError(err).Error("Failed to create event in repository")
		return fmt.Errorf("service: could not create event: %w", err)
	}

	if err := s.repo.BumpAreaCounters(ctx, event.ID); err != nil {
		log.WithError(err).Warn("Failed to bump area counters")
	}

	s.notifyAreaMembers(ctx, log, event)

	log.WithField("event_id", event.ID).Info("Event created successfully")
	return nil
}

// ListVisibleEvents возвращает события, которые пользователь имеет право видеть:
// объединение публичных событий вьюпорта, событий его зон интереса и событий его
// групп, без дубликатов. Членские события зоны не обрезаются вьюпортом: если круг
// зоны пересекает запрошенный бокс, событие возвращается, даже когда его координаты
// за пределами бокса.
func (s *eventService) ListVisibleEvents(ctx context.Context, userID uuid.UUID, box geo.BoundingBox, filters EventFilters) ([]*models.Event, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "event",
		"method":  "ListVisibleEvents",
		"user_id": userID,
	})

	box = box.Normalized()

	publicEvents, err := s.repo.ListPublicInBox(ctx, box)
	if err != nil {
		log.WithError(err).Error("Failed to list public events")
		return nil, fmt.Errorf("service: could not list public events: %w", err)
	}

	memberAreas, err := s.areaRepo.ListMemberAreas(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list member areas")
		return nil, fmt.Errorf("service: could not list member areas: %w", err)
	}

	// Круговой предикат зоны отделён от прямоугольного предиката вьюпорта:
	// зона участвует в выдаче, только если её круг пересекает запрошенный бокс
	relevantAreaIDs := make([]uuid.UUID, 0, len(memberAreas))
	for _, area := range memberAreas {
		center := geo.Point{Lat: area.Latitude, Lng: area.Longitude}
		if box.IntersectsCircle(center, float64(area.RadiusMeters)) {
			relevantAreaIDs = append(relevantAreaIDs, area.ID)
		}
	}

	areaEvents, err := s.repo.ListInAreas(ctx, relevantAreaIDs)
	if err != nil {
		log.WithError(err).Error("Failed to list area events")
		return nil, fmt.Errorf("service: could not list area events: %w", err)
	}

	groupEvents, err := s.repo.ListGroupEvents(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list group events")
		return nil, fmt.Errorf("service: could not list group events: %w", err)
	}

	merged := mergeEvents(publicEvents, areaEvents, groupEvents)
	merged = applyFilters(merged, filters)
	sortEvents(merged, filters)

	log.WithField("count", len(merged)).Info("Visible events listed")
	return merged, nil
}

// CloseEvent закрывает событие; разрешено только его создателю
func (s *eventService) CloseEvent(ctx context.Context, userID, eventID uuid.UUID, stopTracking bool) (*models.Event, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "event",
		"method":   "CloseEvent",
		"event_id": eventID,
	})

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		log.WithError(err).Error("Failed to get event for close")
		return nil, fmt.Errorf("service: could not get event: %w", err)
	}
	if event == nil {
		return nil, apperrors.NotFound("event %s not found", eventID)
	}
	if event.CreatorID != userID {
		return nil, apperrors.Authorization("only the creator can close an event")
	}

	if err := s.repo.Close(ctx, eventID, stopTracking); err != nil {
		if _, ok := apperrors.KindOf(err); ok {
			return nil, err
		}
		log.WithError(err).Error("Failed to close event in repository")
		return nil, fmt.Errorf("service: could not close event: %w", err)
	}

	event.Status = models.EventStatusClosed
	if stopTracking {
		event.RealTimeTracking = false
	}
	log.Info("Event closed successfully")
	return event, nil
}

// notifyAreaMembers рассылает push-и членам зон, в круг которых попало событие.
// Сбои только логируются: доставка уведомлений не влияет на исходный запрос.
func (s *eventService) notifyAreaMembers(ctx context.Context, log *logrus.Entry, event *models.Event) {
	members, err := s.repo.ListNotifiableMembers(ctx, event.ID)
	if err != nil {
		log.WithError(err).Warn("Failed to list notifiable members")
		return
	}
	for _, memberID := range members {
		if err := s.publisher.Publish(ctx, notification.Notification{
			UserID: memberID,
			Kind:   notification.KindAreaEvent,
			Title:  "New event in your area",
			Body:   fmt.Sprintf("A new %s event was reported near you", event.Type),
			Data:   map[string]any{"event_id": event.ID.String()},
		}); err != nil {
			log.WithError(err).Warn("Failed to publish area event notification")
		}
	}
}

// mergeEvents объединяет источники видимости, убирая дубликаты по id события
func mergeEvents(sources ...[]*models.Event) []*models.Event {
	seen := make(map[uuid.UUID]struct{})
	merged := make([]*models.Event, 0)
	for _, source := range sources {
		for _, event := range source {
			if _, ok := seen[event.ID]; ok {
				continue
			}
			seen[event.ID] = struct{}{}
			merged = append(merged, event)
		}
	}
	return merged
}

// applyFilters фильтрует объединённый список по статусу и типу
func applyFilters(events []*models.Event, filters EventFilters) []*models.Event {
	if filters.Status == "" && filters.Type == "" {
		return events
	}
	filtered := make([]*models.Event, 0, len(events))
	for _, event := range events {
		if filters.Status != "" && event.Status != filters.Status {
			continue
		}
		if filters.Type != "" && event.Type != filters.Type {
			continue
		}
		filtered = append(filtered, event)
	}
	return filtered
}

// sortEvents сортирует ленту. Срочные незакрытые события всегда первыми;
// закрытое срочное событие сортируется как обычное. При равенстве ключа
// порядок стабилизируется по id, чтобы пагинация была детерминированной.
func sortEvents(events []*models.Event, filters EventFilters) {
	desc := filters.SortOrder == SortOrderDesc

	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]

		aUrgent := a.IsUrgent && a.Status == models.EventStatusInProgress
		bUrgent := b.IsUrgent && b.Status == models.EventStatusInProgress
		if aUrgent != bUrgent {
			return aUrgent
		}

		var less, equal bool
		switch filters.SortBy {
		case SortByType:
			less = a.Type < b.Type
			equal = a.Type == b.Type
		default:
			less = a.CreatedAt.Before(b.CreatedAt)
			equal = a.CreatedAt.Equal(b.CreatedAt)
		}

		if equal {
			return a.ID.String() < b.ID.String()
		}
		if desc {
			return !less
		}
		return less
	})
}
