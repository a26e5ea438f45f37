package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/smolentsev/lostradar/internal/apperrors"
	"github.com/smolentsev/lostradar/internal/geo"
	"github.com/smolentsev/lostradar/internal/models"
	notification_mocks "github.com/smolentsev/lostradar/internal/notification/mocks"
	"github.com/smolentsev/lostradar/internal/service"
	"github.com/smolentsev/lostradar/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestEventService(t *testing.T) (service.EventService, *mocks.MockEventRepository, *mocks.MockAreaRepository, *notification_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockEventRepository(ctrl)
	areaRepoMock := mocks.NewMockAreaRepository(ctrl)
	publisherMock := notification_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return service.NewEventService(repoMock, areaRepoMock, logger, publisherMock), repoMock, areaRepoMock, publisherMock
}

// Вьюпорт над центром Буэнос-Айреса, используется в большинстве тестов ленты
func testViewport() geo.BoundingBox {
	return geo.BoundingBox{
		NorthEast: geo.Point{Lat: -34.58, Lng: -58.36},
		SouthWest: geo.Point{Lat: -34.62, Lng: -58.40},
	}
}

func makeEvent(eventType string, isPublic bool, createdAt time.Time) *models.Event {
	return &models.Event{
		ID:        uuid.New(),
		CreatorID: uuid.New(),
		Type:      eventType,
		Status:    models.EventStatusInProgress,
		IsPublic:  isPublic,
		CreatedAt: createdAt,
	}
}

func eventIDs(events []*models.Event) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestCreateEvent_Success(t *testing.T) {
	// Подготовка
	svc, repoMock, _, publisherMock := newTestEventService(t)
	ctx := context.Background()
	event := &models.Event{
		CreatorID: uuid.New(),
		Type:      models.EventTypeTheft,
		Latitude:  -34.6037,
		Longitude: -58.3816,
		IsPublic:  true,
		IsUrgent:  true,
	}
	memberID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, event).
		DoAndReturn(func(ctx context.Context, e *models.Event) error {
			e.ID = uuid.New()
			return nil
		}).Times(1)
	repoMock.EXPECT().BumpAreaCounters(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().ListNotifiableMembers(ctx, gomock.Any()).
		Return([]uuid.UUID{memberID}, nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	err := svc.CreateEvent(ctx, event)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusInProgress, event.Status)
}

func TestCreateEvent_NotificationFailureDoesNotFail(t *testing.T) {
	// Сбой счетчиков и push-ей не откатывает созданное событие
	svc, repoMock, _, _ := newTestEventService(t)
	ctx := context.Background()
	event := &models.Event{CreatorID: uuid.New(), Type: models.EventTypeLost}

	repoMock.EXPECT().Create(ctx, event).Return(nil).Times(1)
	repoMock.EXPECT().BumpAreaCounters(ctx, gomock.Any()).
		Return(assert.AnError).Times(1)
	repoMock.EXPECT().ListNotifiableMembers(ctx, gomock.Any()).
		Return(nil, assert.AnError).Times(1)

	require.NoError(t, svc.CreateEvent(ctx, event))
}

func TestListVisibleEvents_UnionWithoutDuplicates(t *testing.T) {
	// Подготовка: одно событие видно и как публичное, и через зону интереса
	svc, repoMock, areaRepoMock, _ := newTestEventService(t)
	ctx := context.Background()
	userID := uuid.New()
	box := testViewport()
	now := time.Now()

	shared := makeEvent(models.EventTypeTheft, true, now)
	publicOnly := makeEvent(models.EventTypeLost, true, now.Add(time.Minute))
	areaOnly := makeEvent(models.EventTypeFire, false, now.Add(2*time.Minute))
	groupOnly := makeEvent(models.EventTypeGeneral, false, now.Add(3*time.Minute))

	area := &models.Area{
		ID:           uuid.New(),
		Latitude:     -34.6037,
		Longitude:    -58.3816,
		RadiusMeters: 5000,
	}

	// Ожидания
	repoMock.EXPECT().ListPublicInBox(ctx, box).
		Return([]*models.Event{shared, publicOnly}, nil).Times(1)
	areaRepoMock.EXPECT().ListMemberAreas(ctx, userID).
		Return([]*models.Area{area}, nil).Times(1)
	repoMock.EXPECT().ListInAreas(ctx, []uuid.UUID{area.ID}).
		Return([]*models.Event{shared, areaOnly}, nil).Times(1)
	repoMock.EXPECT().ListGroupEvents(ctx, userID).
		Return([]*models.Event{groupOnly}, nil).Times(1)

	// Действие
	events, err := svc.ListVisibleEvents(ctx, userID, box, service.EventFilters{})

	// Проверки: каждое событие ровно один раз
	require.NoError(t, err)
	require.Len(t, events, 4)
	assert.ElementsMatch(t,
		[]uuid.UUID{shared.ID, publicOnly.ID, areaOnly.ID, groupOnly.ID},
		eventIDs(events))
}

func TestListVisibleEvents_SkipsAreasOutsideViewport(t *testing.T) {
	// Зона, чей круг не пересекает вьюпорт, в выборку не попадает
	svc, repoMock, areaRepoMock, _ := newTestEventService(t)
	ctx := context.Background()
	userID := uuid.New()
	box := testViewport()

	nearArea := &models.Area{
		ID:           uuid.New(),
		Latitude:     -34.6037,
		Longitude:    -58.3816,
		RadiusMeters: 5000,
	}
	// Москва: далеко за пределами вьюпорта Буэнос-Айреса
	farArea := &models.Area{
		ID:           uuid.New(),
		Latitude:     55.7558,
		Longitude:    37.6173,
		RadiusMeters: 10000,
	}

	repoMock.EXPECT().ListPublicInBox(ctx, box).Return(nil, nil).Times(1)
	areaRepoMock.EXPECT().ListMemberAreas(ctx, userID).
		Return([]*models.Area{nearArea, farArea}, nil).Times(1)
	repoMock.EXPECT().ListInAreas(ctx, []uuid.UUID{nearArea.ID}).
		Return(nil, nil).Times(1)
	repoMock.EXPECT().ListGroupEvents(ctx, userID).Return(nil, nil).Times(1)

	_, err := svc.ListVisibleEvents(ctx, userID, box, service.EventFilters{})

	require.NoError(t, err)
}

func TestListVisibleEvents_AreaEventOutsideViewportReturned(t *testing.T) {
	// Событие зоны не обрезается вьюпортом: круг зоны пересекает бокс,
	// а координаты самого события лежат за его пределами
	svc, repoMock, areaRepoMock, _ := newTestEventService(t)
	ctx := context.Background()
	userID := uuid.New()
	box := testViewport()

	area := &models.Area{
		ID:           uuid.New(),
		Latitude:     -34.62,
		Longitude:    -58.40,
		RadiusMeters: 3000,
	}
	outside := makeEvent(models.EventTypeTheft, false, time.Now())
	outside.Latitude = -34.64
	outside.Longitude = -58.42

	repoMock.EXPECT().ListPublicInBox(ctx, box).Return(nil, nil).Times(1)
	areaRepoMock.EXPECT().ListMemberAreas(ctx, userID).
		Return([]*models.Area{area}, nil).Times(1)
	repoMock.EXPECT().ListInAreas(ctx, []uuid.UUID{area.ID}).
		Return([]*models.Event{outside}, nil).Times(1)
	repoMock.EXPECT().ListGroupEvents(ctx, userID).Return(nil, nil).Times(1)

	events, err := svc.ListVisibleEvents(ctx, userID, box, service.EventFilters{})

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, outside.ID, events[0].ID)
}

func TestListVisibleEvents_NoMemberships(t *testing.T) {
	// Пользователь без зон и групп видит только публичные события вьюпорта
	svc, repoMock, areaRepoMock, _ := newTestEventService(t)
	ctx := context.Background()
	userID := uuid.New()
	box := testViewport()
	public := makeEvent(models.EventTypeAccident, true, time.Now())

	repoMock.EXPECT().ListPublicInBox(ctx, box).
		Return([]*models.Event{public}, nil).Times(1)
	areaRepoMock.EXPECT().ListMemberAreas(ctx, userID).Return(nil, nil).Times(1)
	repoMock.EXPECT().ListInAreas(ctx, []uuid.UUID{}).Return(nil, nil).Times(1)
	repoMock.EXPECT().ListGroupEvents(ctx, userID).Return(nil, nil).Times(1)

	events, err := svc.ListVisibleEvents(ctx, userID, box, service.EventFilters{})

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].IsPublic)
}

func TestListVisibleEvents_FiltersAfterUnion(t *testing.T) {
	// Фильтр по типу применяется к объединённому списку
	svc, repoMock, areaRepoMock, _ := newTestEventService(t)
	ctx := context.Background()
	userID := uuid.New()
	box := testViewport()
	now := time.Now()

	theft := makeEvent(models.EventTypeTheft, true, now)
	lost := makeEvent(models.EventTypeLost, true, now)
	areaTheft := makeEvent(models.EventTypeTheft, false, now)

	area := &models.Area{ID: uuid.New(), Latitude: -34.6037, Longitude: -58.3816, RadiusMeters: 5000}

	repoMock.EXPECT().ListPublicInBox(ctx, box).
		Return([]*models.Event{theft, lost}, nil).Times(1)
	areaRepoMock.EXPECT().ListMemberAreas(ctx, userID).
		Return([]*models.Area{area}, nil).Times(1)
	repoMock.EXPECT().ListInAreas(ctx, []uuid.UUID{area.ID}).
		Return([]*models.Event{areaTheft}, nil).Times(1)
	repoMock.EXPECT().ListGroupEvents(ctx, userID).Return(nil, nil).Times(1)

	events, err := svc.ListVisibleEvents(ctx, userID, box,
		service.EventFilters{Type: models.EventTypeTheft})

	require.NoError(t, err)
	require.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, models.EventTypeTheft, e.Type)
	}
}

func TestListVisibleEvents_UrgentFirst(t *testing.T) {
	// Срочные незакрытые события всегда первыми; закрытое срочное - как обычное
	svc, repoMock, areaRepoMock, _ := newTestEventService(t)
	ctx := context.Background()
	userID := uuid.New()
	box := testViewport()
	now := time.Now()

	old := makeEvent(models.EventTypeLost, true, now.Add(-2*time.Hour))
	urgent := makeEvent(models.EventTypeTheft, true, now)
	urgent.IsUrgent = true
	closedUrgent := makeEvent(models.EventTypeFire, true, now.Add(-time.Hour))
	closedUrgent.IsUrgent = true
	closedUrgent.Status = models.EventStatusClosed

	repoMock.EXPECT().ListPublicInBox(ctx, box).
		Return([]*models.Event{old, urgent, closedUrgent}, nil).Times(1)
	areaRepoMock.EXPECT().ListMemberAreas(ctx, userID).Return(nil, nil).Times(1)
	repoMock.EXPECT().ListInAreas(ctx, []uuid.UUID{}).Return(nil, nil).Times(1)
	repoMock.EXPECT().ListGroupEvents(ctx, userID).Return(nil, nil).Times(1)

	events, err := svc.ListVisibleEvents(ctx, userID, box,
		service.EventFilters{SortBy: service.SortByCreatedAt, SortOrder: service.SortOrderAsc})

	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, urgent.ID, events[0].ID)
	// Остальные по возрастанию createdAt
	assert.Equal(t, old.ID, events[1].ID)
	assert.Equal(t, closedUrgent.ID, events[2].ID)
}

func TestListVisibleEvents_EqualKeyOrderedByID(t *testing.T) {
	// При равном ключе сортировки порядок детерминирован по id
	svc, repoMock, areaRepoMock, _ := newTestEventService(t)
	ctx := context.Background()
	userID := uuid.New()
	box := testViewport()
	createdAt := time.Now()

	a := makeEvent(models.EventTypeGeneral, true, createdAt)
	b := makeEvent(models.EventTypeGeneral, true, createdAt)
	first, second := a, b
	if b.ID.String() < a.ID.String() {
		first, second = b, a
	}

	repoMock.EXPECT().ListPublicInBox(ctx, box).
		Return([]*models.Event{b, a}, nil).Times(1)
	areaRepoMock.EXPECT().ListMemberAreas(ctx, userID).Return(nil, nil).Times(1)
	repoMock.EXPECT().ListInAreas(ctx, []uuid.UUID{}).Return(nil, nil).Times(1)
	repoMock.EXPECT().ListGroupEvents(ctx, userID).Return(nil, nil).Times(1)

	events, err := svc.ListVisibleEvents(ctx, userID, box,
		service.EventFilters{SortOrder: service.SortOrderDesc})

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, first.ID, events[0].ID)
	assert.Equal(t, second.ID, events[1].ID)
}

func TestCloseEvent_Success(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _ := newTestEventService(t)
	ctx := context.Background()
	creatorID := uuid.New()
	event := &models.Event{
		ID:               uuid.New(),
		CreatorID:        creatorID,
		Status:           models.EventStatusInProgress,
		RealTimeTracking: true,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, event.ID).Return(event, nil).Times(1)
	repoMock.EXPECT().Close(ctx, event.ID, true).Return(nil).Times(1)

	// Действие
	closed, err := svc.CloseEvent(ctx, creatorID, event.ID, true)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusClosed, closed.Status)
	assert.False(t, closed.RealTimeTracking)
}

func TestCloseEvent_NotCreator(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _ := newTestEventService(t)
	ctx := context.Background()
	event := &models.Event{ID: uuid.New(), CreatorID: uuid.New()}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, event.ID).Return(event, nil).Times(1)
	repoMock.EXPECT().Close(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := svc.CloseEvent(ctx, uuid.New(), event.ID, false)

	// Проверки
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
}

func TestCloseEvent_AlreadyClosed(t *testing.T) {
	// Повторное закрытие проигрывает CAS в репозитории
	svc, repoMock, _, _ := newTestEventService(t)
	ctx := context.Background()
	creatorID := uuid.New()
	event := &models.Event{ID: uuid.New(), CreatorID: creatorID, Status: models.EventStatusClosed}

	repoMock.EXPECT().GetByID(ctx, event.ID).Return(event, nil).Times(1)
	repoMock.EXPECT().Close(ctx, event.ID, false).
		Return(apperrors.InvalidState("event is not in progress")).Times(1)

	_, err := svc.CloseEvent(ctx, creatorID, event.ID, false)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
}

func TestCloseEvent_NotFound(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _ := newTestEventService(t)
	ctx := context.Background()
	eventID := uuid.New()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, eventID).Return(nil, nil).Times(1)

	// Действие
	_, err := svc.CloseEvent(ctx, uuid.New(), eventID, false)

	// Проверки
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
