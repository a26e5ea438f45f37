package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/smolentsev/lostradar/internal/apperrors"
	"github.com/smolentsev/lostradar/internal/models"
	"github.com/smolentsev/lostradar/internal/service"
	"github.com/smolentsev/lostradar/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestGroupService(t *testing.T) (service.GroupService, *mocks.MockGroupRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockGroupRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return service.NewGroupService(repoMock, logger), repoMock
}

func TestPositions_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestGroupService(t)
	ctx := context.Background()
	userID := uuid.New()
	groupID := uuid.New()
	stored := []*models.Position{
		{Label: "Мама", Latitude: -34.60, Longitude: -58.38, Source: models.PositionSourcePhone},
		{Label: "Велосипед", Latitude: -34.61, Longitude: -58.39, Source: models.PositionSourceDevice},
	}

	// Ожидания
	repoMock.EXPECT().GetMember(ctx, groupID, userID).
		Return(&models.GroupMember{GroupID: groupID, UserID: userID}, nil).Times(1)
	repoMock.EXPECT().ListMemberPositions(ctx, groupID).Return(stored, nil).Times(1)

	// Действие
	positions, err := svc.Positions(ctx, userID, groupID)

	// Проверки
	require.NoError(t, err)
	assert.Len(t, positions, 2)
}

func TestPositions_NotMember(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestGroupService(t)
	ctx := context.Background()
	userID := uuid.New()
	groupID := uuid.New()

	// Ожидания: позиции чужой группы не выдаются
	repoMock.EXPECT().GetMember(ctx, groupID, userID).Return(nil, nil).Times(1)
	repoMock.EXPECT().ListMemberPositions(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := svc.Positions(ctx, userID, groupID)

	// Проверки
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
}

func TestReportUserPosition_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestGroupService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Ожидания
	repoMock.EXPECT().UpsertUserPosition(ctx, userID, -34.6037, -58.3816).Return(nil).Times(1)

	// Действие и проверки
	require.NoError(t, svc.ReportUserPosition(ctx, userID, -34.6037, -58.3816))
}

func TestReportDevicePosition_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestGroupService(t)
	ctx := context.Background()
	device := &models.Device{ID: uuid.New(), OwnerID: uuid.New(), DeviceKey: "tracker-key"}

	// Ожидания
	repoMock.EXPECT().GetDeviceByKey(ctx, device.DeviceKey).Return(device, nil).Times(1)
	repoMock.EXPECT().UpsertDevicePosition(ctx, device.ID, -34.6037, -58.3816).Return(nil).Times(1)

	// Действие и проверки
	require.NoError(t, svc.ReportDevicePosition(ctx, device.DeviceKey, -34.6037, -58.3816))
}

func TestReportDevicePosition_UnknownKey(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestGroupService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetDeviceByKey(ctx, "bogus").Return(nil, nil).Times(1)
	repoMock.EXPECT().UpsertDevicePosition(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := svc.ReportDevicePosition(ctx, "bogus", -34.6037, -58.3816)

	// Проверки
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
}
