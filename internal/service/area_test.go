package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/smolentsev/lostradar/internal/apperrors"
	"github.com/smolentsev/lostradar/internal/models"
	notification_mocks "github.com/smolentsev/lostradar/internal/notification/mocks"
	"github.com/smolentsev/lostradar/internal/service"
	"github.com/smolentsev/lostradar/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAreaService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestAreaService(t *testing.T) (service.AreaService, *mocks.MockAreaRepository, *notification_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAreaRepository(ctrl)
	publisherMock := notification_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return service.NewAreaService(repoMock, logger, publisherMock), repoMock, publisherMock
}

func TestCreateArea_Success(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAreaService(t)
	ctx := context.Background()
	area := &models.Area{
		Name:         "Мой район",
		Latitude:     -34.6037,
		Longitude:    -58.3816,
		RadiusMeters: 5000,
		Visibility:   models.AreaVisibilityPrivateShareable,
		CreatorID:    uuid.New(),
	}

	// Ожидания
	repoMock.EXPECT().
		CreateWithAdmin(ctx, area).
		DoAndReturn(func(ctx context.Context, a *models.Area) error {
			a.ID = uuid.New()
			return nil
		}).Times(1)

	// Действие
	err := svc.CreateArea(ctx, area)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, area.ID)
}

func TestCreateArea_RadiusTooSmall(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAreaService(t)
	ctx := context.Background()
	area := &models.Area{Name: "Зона", RadiusMeters: 50}

	// Ожидания: репозиторий не должен вызываться
	repoMock.EXPECT().CreateWithAdmin(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := svc.CreateArea(ctx, area)

	// Проверки
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestCreateArea_RadiusTooLarge(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAreaService(t)
	ctx := context.Background()
	area := &models.Area{Name: "Зона", RadiusMeters: 20000}

	// Ожидания
	repoMock.EXPECT().CreateWithAdmin(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := svc.CreateArea(ctx, area)

	// Проверки
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestCreateArea_RadiusBounds(t *testing.T) {
	// Граничные значения радиуса допустимы
	for _, radius := range []int{100, 10000} {
		svc, repoMock, _ := newTestAreaService(t)
		ctx := context.Background()
		area := &models.Area{Name: "Зона", RadiusMeters: radius}

		repoMock.EXPECT().CreateWithAdmin(ctx, area).Return(nil).Times(1)

		require.NoError(t, svc.CreateArea(ctx, area))
	}
}

func TestRequestJoin_Success(t *testing.T) {
	// Подготовка
	svc, repoMock, publisherMock := newTestAreaService(t)
	ctx := context.Background()
	userID := uuid.New()
	adminID := uuid.New()
	area := &models.Area{
		ID:         uuid.New(),
		Name:       "Закрытый район",
		Visibility: models.AreaVisibilityPrivateShareable,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, area.ID).Return(area, nil).Times(1)
	repoMock.EXPECT().GetMember(ctx, area.ID, userID).Return(nil, nil).Times(1)
	repoMock.EXPECT().
		CreateInvitation(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, inv *models.AreaInvitation) error {
			assert.Equal(t, userID, inv.SenderID)
			assert.Nil(t, inv.ReceiverID)
			inv.ID = uuid.New()
			inv.Status = models.InvitationStatusPending
			return nil
		}).Times(1)
	repoMock.EXPECT().ListAreaAdmins(ctx, area.ID).Return([]uuid.UUID{adminID}, nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	inv, err := svc.RequestJoin(ctx, userID, area.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusPending, inv.Status)
}

func TestRequestJoin_AreaNotFound(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAreaService(t)
	ctx := context.Background()
	areaID := uuid.New()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, areaID).Return(nil, nil).Times(1)

	// Действие
	_, err := svc.RequestJoin(ctx, uuid.New(), areaID)

	// Проверки
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestRequestJoin_AlreadyMember(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAreaService(t)
	ctx := context.Background()
	userID := uuid.New()
	area := &models.Area{ID: uuid.New(), Visibility: models.AreaVisibilityPrivateShareable}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, area.ID).Return(area, nil).Times(1)
	repoMock.EXPECT().GetMember(ctx, area.ID, userID).
		Return(&models.AreaMember{AreaID: area.ID, UserID: userID}, nil).Times(1)
	repoMock.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := svc.RequestJoin(ctx, userID, area.ID)

	// Проверки
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestRequestJoin_PublicAreaRejected(t *testing.T) {
	// Заявки принимает только PRIVATE_SHAREABLE; в PUBLIC вступают напрямую
	svc, repoMock, _ := newTestAreaService(t)
	ctx := context.Background()
	area := &models.Area{ID: uuid.New(), Visibility: models.AreaVisibilityPublic}

	repoMock.EXPECT().GetByID(ctx, area.ID).Return(area, nil).Times(1)

	_, err := svc.RequestJoin(ctx, uuid.New(), area.ID)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
}

func TestRequestJoin_PrivateAreaRejected(t *testing.T) {
	// PRIVATE зона не принимает непрошеных заявок
	svc, repoMock, _ := newTestAreaService(t)
	ctx := context.Background()
	area := &models.Area{ID: uuid.New(), Visibility: models.AreaVisibilityPrivate}

	repoMock.EXPECT().GetByID(ctx, area.ID).Return(area, nil).Times(1)

	_, err := svc.RequestJoin(ctx, uuid.New(), area.ID)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
}

func TestJoinPublic_Success(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAreaService(t)
	ctx := context.Background()
	userID := uuid.New()
	area := &models.Area{ID: uuid.New(), Visibility: models.AreaVisibilityPublic}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, area.ID).Return(area, nil).Times(1)
	repoMock.EXPECT().
		CreateMember(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, m *models.AreaMember) error {
			assert.Equal(t, models.AreaRoleMember, m.Role)
			m.ID = 1
			return nil
		}).Times(1)

	// Действие
	member, err := svc.JoinPublic(ctx, userID, area.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, userID, member.UserID)
}

func TestAcceptInvitation_Success(t *testing.T) {
	// Подготовка
	svc, repoMock, publisherMock := newTestAreaService(t)
	ctx := context.Background()
	adminID := uuid.New()
	senderID := uuid.New()
	areaID := uuid.New()
	inv := &models.AreaInvitation{
		ID:       uuid.New(),
		AreaID:   areaID,
		SenderID: senderID,
		Status:   models.InvitationStatusPending,
	}

	// Ожидания
	repoMock.EXPECT().GetInvitation(ctx, inv.ID).Return(inv, nil).Times(1)
	repoMock.EXPECT().GetMember(ctx, areaID, adminID).
		Return(&models.AreaMember{Role: models.AreaRoleAdmin}, nil).Times(1)
	repoMock.EXPECT().
		DecideInvitation(ctx, inv.ID, models.InvitationStatusAccepted, gomock.Any()).
		DoAndReturn(func(ctx context.Context, invID uuid.UUID, status string, m *models.AreaMember) error {
			// Членство создается для отправителя заявки
			assert.Equal(t, senderID, m.UserID)
			m.ID = 7
			return nil
		}).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	member, err := svc.AcceptInvitation(ctx, adminID, areaID, inv.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, senderID, member.UserID)
}

func TestAcceptInvitation_NotAdmin(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAreaService(t)
	ctx := context.Background()
	callerID := uuid.New()
	areaID := uuid.New()
	inv := &models.AreaInvitation{
		ID:       uuid.New(),
		AreaID:   areaID,
		SenderID: uuid.New(),
		Status:   models.InvitationStatusPending,
	}

	// Ожидания: обычный участник решать заявку не может, статус не трогаем
	repoMock.EXPECT().GetInvitation(ctx, inv.ID).Return(inv, nil).Times(1)
	repoMock.EXPECT().GetMember(ctx, areaID, callerID).
		Return(&models.AreaMember{Role: models.AreaRoleMember}, nil).Times(1)
	repoMock.EXPECT().DecideInvitation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := svc.AcceptInvitation(ctx, callerID, areaID, inv.ID)

	// Проверки
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
}

func TestAcceptInvitation_AlreadyDecided(t *testing.T) {
	// Из двух конкурентных решений выигрывает одно, проигравший видит InvalidState
	svc, repoMock, _ := newTestAreaService(t)
	ctx := context.Background()
	adminID := uuid.New()
	areaID := uuid.New()
	inv := &models.AreaInvitation{
		ID:       uuid.New(),
		AreaID:   areaID,
		SenderID: uuid.New(),
		Status:   models.InvitationStatusPending,
	}

	repoMock.EXPECT().GetInvitation(ctx, inv.ID).Return(inv, nil).Times(1)
	repoMock.EXPECT().GetMember(ctx, areaID, adminID).
		Return(&models.AreaMember{Role: models.AreaRoleAdmin}, nil).Times(1)
	repoMock.EXPECT().
		DecideInvitation(ctx, inv.ID, models.InvitationStatusAccepted, gomock.Any()).
		Return(apperrors.InvalidState("invitation is no longer pending")).Times(1)

	_, err := svc.AcceptInvitation(ctx, adminID, areaID, inv.ID)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
}

func TestRejectInvitation_ByReceiver(t *testing.T) {
	// Адресное приглашение решает сам получатель
	svc, repoMock, _ := newTestAreaService(t)
	ctx := context.Background()
	receiverID := uuid.New()
	areaID := uuid.New()
	inv := &models.AreaInvitation{
		ID:         uuid.New(),
		AreaID:     areaID,
		SenderID:   uuid.New(),
		ReceiverID: &receiverID,
		Status:     models.InvitationStatusPending,
	}

	repoMock.EXPECT().GetInvitation(ctx, inv.ID).Return(inv, nil).Times(1)
	repoMock.EXPECT().
		DecideInvitation(ctx, inv.ID, models.InvitationStatusRejected, nil).
		Return(nil).Times(1)

	rejected, err := svc.RejectInvitation(ctx, receiverID, areaID, inv.ID)

	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusRejected, rejected.Status)
}

func TestLeave_CreatorForbidden(t *testing.T) {
	// Создатель не может выйти из зоны: она осталась бы без админа
	svc, repoMock, _ := newTestAreaService(t)
	ctx := context.Background()
	creatorID := uuid.New()
	area := &models.Area{ID: uuid.New(), CreatorID: creatorID}

	repoMock.EXPECT().GetByID(ctx, area.ID).Return(area, nil).Times(1)
	repoMock.EXPECT().DeleteMember(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.Leave(ctx, creatorID, area.ID)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
}

func TestLeave_Success(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAreaService(t)
	ctx := context.Background()
	userID := uuid.New()
	area := &models.Area{ID: uuid.New(), CreatorID: uuid.New()}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, area.ID).Return(area, nil).Times(1)
	repoMock.EXPECT().DeleteMember(ctx, area.ID, userID).Return(nil).Times(1)

	// Действие и проверки
	require.NoError(t, svc.Leave(ctx, userID, area.ID))
}

func TestDeleteArea_NotCreator(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAreaService(t)
	ctx := context.Background()
	area := &models.Area{ID: uuid.New(), CreatorID: uuid.New()}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, area.ID).Return(area, nil).Times(1)
	repoMock.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := svc.DeleteArea(ctx, uuid.New(), area.ID)

	// Проверки
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
}

func TestGetArea_FromCache(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAreaService(t)
	ctx := context.Background()
	userID := uuid.New()
	area := &models.Area{ID: uuid.New(), Visibility: models.AreaVisibilityPublic}

	// Ожидания: попадание в кеш, БД не трогаем
	repoMock.EXPECT().GetAreaFromCache(ctx, area.ID).Return(area, nil).Times(1)

	// Действие
	got, err := svc.GetArea(ctx, userID, area.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, area, got)
}

func TestGetArea_PrivateRequiresMembership(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestAreaService(t)
	ctx := context.Background()
	userID := uuid.New()
	area := &models.Area{ID: uuid.New(), Visibility: models.AreaVisibilityPrivate}

	// Ожидания
	repoMock.EXPECT().GetAreaFromCache(ctx, area.ID).Return(area, nil).Times(1)
	repoMock.EXPECT().GetMember(ctx, area.ID, userID).Return(nil, nil).Times(1)

	// Действие
	_, err := svc.GetArea(ctx, userID, area.ID)

	// Проверки
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
}
