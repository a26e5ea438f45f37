package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/smolentsev/lostradar/internal/apperrors"
	"github.com/smolentsev/lostradar/internal/models"
)

// GroupRepository определяет контракт для работы с бд групп и позиций
type GroupRepository interface {
	GetMember(ctx context.Context, groupID, userID uuid.UUID) (*models.GroupMember, error)
	ListMemberPositions(ctx context.Context, groupID uuid.UUID) ([]*models.Position, error)
	UpsertUserPosition(ctx context.Context, userID uuid.UUID, lat, lng float64) error
	UpsertDevicePosition(ctx context.Context, deviceID uuid.UUID, lat, lng float64) error
	GetDeviceByKey(ctx context.Context, deviceKey string) (*models.Device, error)
}

// GroupService определяет контракт для агрегации позиций группы
type GroupService interface {
	Positions(ctx context.Context, userID, groupID uuid.UUID) ([]*models.Position, error)
	ReportUserPosition(ctx context.Context, userID uuid.UUID, lat, lng float64) error
	ReportDevicePosition(ctx context.Context, deviceKey string, lat, lng float64) error
}

type groupService struct {
	repo   GroupRepository
	logger *logrus.Logger
}

func NewGroupService(repo GroupRepository, logger *logrus.Logger) GroupService {
	return &groupService{
		repo:   repo,
		logger: logger,
	}
}

// Positions возвращает последние позиции участников группы и их трекеров
// для отображения на карте. Доступно только членам группы.
func (s *groupService) Positions(ctx context.Context, userID, groupID uuid.UUID) ([]*models.Position, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "group",
		"method":   "Positions",
		"group_id": groupID,
	})

	member, err := s.repo.GetMember(ctx, groupID, userID)
	if err != nil {
		log.WithError(err).Error("Failed to check group membership")
		return nil, fmt.Errorf("service: could not check membership: %w", err)
	}
	if member == nil {
		return nil, apperrors.Authorization("group membership required")
	}

	positions, err := s.repo.ListMemberPositions(ctx, groupID)
	if err != nil {
		log.WithError(err).Error("Failed to list member positions")
		return nil, fmt.Errorf("service: could not list positions: %w", err)
	}

	log.WithField("count", len(positions)).Info("Group positions listed")
	return positions, nil
}

// ReportUserPosition сохраняет позицию телефона пользователя
func (s *groupService) ReportUserPosition(ctx context.Context, userID uuid.UUID, lat, lng float64) error {
	if err := s.repo.UpsertUserPosition(ctx, userID, lat, lng); err != nil {
		s.logger.WithError(err).Error("Failed to upsert user position")
		return fmt.Errorf("service: could not report position: %w", err)
	}
	return nil
}

// ReportDevicePosition сохраняет позицию трекера по его ключу устройства
func (s *groupService) ReportDevicePosition(ctx context.Context, deviceKey string, lat, lng float64) error {
	device, err := s.repo.GetDeviceByKey(ctx, deviceKey)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get device by key")
		return fmt.Errorf("service: could not get device: %w", err)
	}
	if device == nil {
		return apperrors.Authorization("unknown device key")
	}

	if err := s.repo.UpsertDevicePosition(ctx, device.ID, lat, lng); err != nil {
		s.logger.WithError(err).Error("Failed to upsert device position")
		return fmt.Errorf("service: could not report device position: %w", err)
	}
	return nil
}
