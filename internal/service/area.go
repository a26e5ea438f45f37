package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/smolentsev/lostradar/internal/apperrors"
	"github.com/smolentsev/lostradar/internal/models"
	"github.com/smolentsev/lostradar/internal/notification"
)

// AreaRepository определяет контракт для работы с бд зон интереса
type AreaRepository interface {
	CreateWithAdmin(ctx context.Context, area *models.Area) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Area, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListMemberAreas(ctx context.Context, userID uuid.UUID) ([]*models.Area, error)
	GetMember(ctx context.Context, areaID, userID uuid.UUID) (*models.AreaMember, error)
	CreateMember(ctx context.Context, m *models.AreaMember) error
	DeleteMember(ctx context.Context, areaID, userID uuid.UUID) error
	UpdateMemberNotifications(ctx context.Context, areaID, userID uuid.UUID, enabled bool) error
	ResetNewEvents(ctx context.Context, areaID, userID uuid.UUID) error
	CreateInvitation(ctx context.Context, inv *models.AreaInvitation) error
	GetInvitation(ctx context.Context, id uuid.UUID) (*models.AreaInvitation, error)
	DecideInvitation(ctx context.Context, invID uuid.UUID, newStatus string, member *models.AreaMember) error
	ListAreaAdmins(ctx context.Context, areaID uuid.UUID) ([]uuid.UUID, error)
	GetAreaFromCache(ctx context.Context, id uuid.UUID) (*models.Area, error)
	SetAreaCache(ctx context.Context, area *models.Area) error
	InvalidateAreaCache(ctx context.Context, id uuid.UUID) error
}

// AreaService определяет контракт для бизнес-логики зон интереса
type AreaService interface {
	CreateArea(ctx context.Context, area *models.Area) error
	GetArea(ctx context.Context, userID, areaID uuid.UUID) (*models.Area, error)
	ListMyAreas(ctx context.Context, userID uuid.UUID) ([]*models.Area, error)
	DeleteArea(ctx context.Context, userID, areaID uuid.UUID) error
	JoinPublic(ctx context.Context, userID, areaID uuid.UUID) (*models.AreaMember, error)
	RequestJoin(ctx context.Context, userID, areaID uuid.UUID) (*models.AreaInvitation, error)
	InviteUser(ctx context.Context, adminID, areaID, receiverID uuid.UUID) (*models.AreaInvitation, error)
	AcceptInvitation(ctx context.Context, callerID, areaID, invID uuid.UUID) (*models.AreaMember, error)
	RejectInvitation(ctx context.Context, callerID, areaID, invID uuid.UUID) (*models.AreaInvitation, error)
	ToggleNotifications(ctx context.Context, userID, areaID uuid.UUID, enabled bool) error
	MarkSeen(ctx context.Context, userID, areaID uuid.UUID) error
	Leave(ctx context.Context, userID, areaID uuid.UUID) error
}

type areaService struct {
	repo      AreaRepository
	logger    *logrus.Logger
	publisher notification.Publisher
}

func NewAreaService(repo AreaRepository, logger *logrus.Logger, publisher notification.Publisher) AreaService {
	return &areaService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// CreateArea создает зону интереса и членство ADMIN для создателя
func (s *areaService) CreateArea(ctx context.Context, area *models.Area) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "area",
		"method":  "CreateArea",
		"name":    area.Name,
	})
	log.Info("Attempting to create a new area")

	if area.RadiusMeters < models.AreaRadiusMinMeters || area.RadiusMeters > models.AreaRadiusMaxMeters {
		return apperrors.Validation("radius must be between %d and %d meters",
			models.AreaRadiusMinMeters, models.AreaRadiusMaxMeters)
	}

	if err := s.repo.CreateWithAdmin(ctx, area); err != nil {
		log.WithError(err).Error("Failed to create area in repository")
		return fmt.Errorf("service: could not create area: %w", err)
	}

	log.WithField("area_id", area.ID).Info("Area created successfully")
	return nil
}

// GetArea возвращает зону с учётом видимости: PRIVATE зоны видят только участники
func (s *areaService) GetArea(ctx context.Context, userID, areaID uuid.UUID) (*models.Area, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "area",
		"method":  "GetArea",
		"area_id": areaID,
	})

	area, err := s.repo.GetAreaFromCache(ctx, areaID)
	if err != nil {
		log.WithError(err).Warn("Failed to read area cache")
	}
	if area == nil {
		area, err = s.repo.GetByID(ctx, areaID)
		if err != nil {
			log.WithError(err).Error("Failed to get area from repository")
			return nil, fmt.Errorf("service: could not get area: %w", err)
		}
		if area == nil {
			return nil, apperrors.NotFound("area %s not found", areaID)
		}
		if err := s.repo.SetAreaCache(ctx, area); err != nil {
			log.WithError(err).Warn("Failed to set area cache")
		}
	}

	if area.Visibility == models.AreaVisibilityPrivate {
		member, err := s.repo.GetMember(ctx, areaID, userID)
		if err != nil {
			return nil, fmt.Errorf("service: could not check membership: %w", err)
		}
		if member == nil {
			return nil, apperrors.Authorization("area is private")
		}
	}

	return area, nil
}

// ListMyAreas возвращает зоны пользователя
func (s *areaService) ListMyAreas(ctx context.Context, userID uuid.UUID) ([]*models.Area, error) {
	areas, err := s.repo.ListMemberAreas(ctx, userID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list member areas")
		return nil, fmt.Errorf("service: could not list areas: %w", err)
	}
	return areas, nil
}

// DeleteArea удаляет зону; разрешено только создателю, членства каскадируются
func (s *areaService) DeleteArea(ctx context.Context, userID, areaID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "area",
		"method":  "DeleteArea",
		"area_id": areaID,
	})

	area, err := s.repo.GetByID(ctx, areaID)
	if err != nil {
		log.WithError(err).Error("Failed to get area for delete")
		return fmt.Errorf("service: could not get area: %w", err)
	}
	if area == nil {
		return apperrors.NotFound("area %s not found", areaID)
	}
	if area.CreatorID != userID {
		return apperrors.Authorization("only the creator can delete an area")
	}

	if err := s.repo.Delete(ctx, areaID); err != nil {
		log.WithError(err).Error("Failed to delete area in repository")
		return fmt.Errorf("service: could not delete area: %w", err)
	}
	if err := s.repo.InvalidateAreaCache(ctx, areaID); err != nil {
		log.WithError(err).Warn("Failed to invalidate area cache")
	}

	log.Info("Area deleted successfully")
	return nil
}

// JoinPublic вступает в PUBLIC зону напрямую, без заявки
func (s *areaService) JoinPublic(ctx context.Context, userID, areaID uuid.UUID) (*models.AreaMember, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "area",
		"method":  "JoinPublic",
		"area_id": areaID,
		"user_id": userID,
	})

	area, err := s.repo.GetByID(ctx, areaID)
	if err != nil {
		log.WithError(err).Error("Failed to get area for join")
		return nil, fmt.Errorf("service: could not get area: %w", err)
	}
	if area == nil {
		return nil, apperrors.NotFound("area %s not found", areaID)
	}
	if area.Visibility != models.AreaVisibilityPublic {
		return nil, apperrors.InvalidState("area is not public, request to join instead")
	}

	member := &models.AreaMember{
		AreaID: areaID,
		UserID: userID,
		Role:   models.AreaRoleMember,
	}
	if err := s.repo.CreateMember(ctx, member); err != nil {
		if _, ok := apperrors.KindOf(err); ok {
			return nil, err
		}
		log.WithError(err).Error("Failed to create membership")
		return nil, fmt.Errorf("service: could not join area: %w", err)
	}

	log.Info("User joined public area")
	return member, nil
}

// RequestJoin создает заявку на вступление в PRIVATE_SHAREABLE зону.
// PUBLIC зоны вступают напрямую, PRIVATE заявок не принимают.
func (s *areaService) RequestJoin(ctx context.Context, userID, areaID uuid.UUID) (*models.AreaInvitation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "area",
		"method":  "RequestJoin",
		"area_id": areaID,
		"user_id": userID,
	})
	log.Info("Processing join request")

	area, err := s.repo.GetByID(ctx, areaID)
	if err != nil {
		log.WithError(err).Error("Failed to get area for join request")
		return nil, fmt.Errorf("service: could not get area: %w", err)
	}
	if area == nil {
		return nil, apperrors.NotFound("area %s not found", areaID)
	}

	switch area.Visibility {
	case models.AreaVisibilityPrivateShareable:
		// Единственная видимость, принимающая заявки
	case models.AreaVisibilityPublic:
		return nil, apperrors.InvalidState("public area accepts direct joins, not requests")
	default:
		return nil, apperrors.InvalidState("private area does not accept join requests")
	}

	member, err := s.repo.GetMember(ctx, areaID, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not check membership: %w", err)
	}
	if member != nil {
		return nil, apperrors.Conflict("user is already a member of this area")
	}

	inv := &models.AreaInvitation{
		AreaID:   areaID,
		SenderID: userID,
	}
	if err := s.repo.CreateInvitation(ctx, inv); err != nil {
		if _, ok := apperrors.KindOf(err); ok {
			return nil, err
		}
		log.WithError(err).Error("Failed to create join request")
		return nil, fmt.Errorf("service: could not create join request: %w", err)
	}

	// Уведомляем админов зоны; сбой доставки не прерывает запрос
	s.notifyAdmins(ctx, log, area, inv)

	log.WithField("invitation_id", inv.ID).Info("Join request created")
	return inv, nil
}

// InviteUser создает приглашение конкретному пользователю от имени админа зоны
func (s *areaService) InviteUser(ctx context.Context, adminID, areaID, receiverID uuid.UUID) (*models.AreaInvitation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "area",
		"method":      "InviteUser",
		"area_id":     areaID,
		"receiver_id": receiverID,
	})

	if err := s.requireAdmin(ctx, areaID, adminID); err != nil {
		return nil, err
	}

	member, err := s.repo.GetMember(ctx, areaID, receiverID)
	if err != nil {
		return nil, fmt.Errorf("service: could not check membership: %w", err)
	}
	if member != nil {
		return nil, apperrors.Conflict("user is already a member of this area")
	}

	inv := &models.AreaInvitation{
		AreaID:     areaID,
		SenderID:   adminID,
		ReceiverID: &receiverID,
	}
	if err := s.repo.CreateInvitation(ctx, inv); err != nil {
		if _, ok := apperrors.KindOf(err); ok {
			return nil, err
		}
		log.WithError(err).Error("Failed to create invitation")
		return nil, fmt.Errorf("service: could not create invitation: %w", err)
	}

	if err := s.publisher.Publish(ctx, notification.Notification{
		UserID: receiverID,
		Kind:   notification.KindJoinRequest,
		Title:  "Area invitation",
		Body:   "You have been invited to join an area",
		Data:   map[string]any{"area_id": areaID.String(), "invitation_id": inv.ID.String()},
	}); err != nil {
		log.WithError(err).Warn("Failed to publish invite notification")
	}

	log.WithField("invitation_id", inv.ID).Info("Invitation created")
	return inv, nil
}

// AcceptInvitation принимает заявку или приглашение.
// Заявку (receiver пустой) принимает админ зоны за отправителя; адресное
// приглашение принимает сам получатель. Переход из PENDING и вставка членства
// атомарны, из конкурентных решений выигрывает ровно одно.
func (s *areaService) AcceptInvitation(ctx context.Context, callerID, areaID, invID uuid.UUID) (*models.AreaMember, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "area",
		"method":        "AcceptInvitation",
		"invitation_id": invID,
	})

	inv, newMemberID, err := s.resolveDecision(ctx, callerID, areaID, invID)
	if err != nil {
		return nil, err
	}

	member := &models.AreaMember{
		AreaID: inv.AreaID,
		UserID: newMemberID,
		Role:   models.AreaRoleMember,
	}
	if err := s.repo.DecideInvitation(ctx, invID, models.InvitationStatusAccepted, member); err != nil {
		if _, ok := apperrors.KindOf(err); ok {
			return nil, err
		}
		log.WithError(err).Error("Failed to accept invitation")
		return nil, fmt.Errorf("service: could not accept invitation: %w", err)
	}

	if err := s.publisher.Publish(ctx, notification.Notification{
		UserID: newMemberID,
		Kind:   notification.KindInviteDecided,
		Title:  "Area membership",
		Body:   "Your area membership was approved",
		Data:   map[string]any{"area_id": inv.AreaID.String()},
	}); err != nil {
		log.WithError(err).Warn("Failed to publish accept notification")
	}

	log.Info("Invitation accepted")
	return member, nil
}

// RejectInvitation отклоняет заявку или приглашение
func (s *areaService) RejectInvitation(ctx context.Context, callerID, areaID, invID uuid.UUID) (*models.AreaInvitation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "area",
		"method":        "RejectInvitation",
		"invitation_id": invID,
	})

	inv, _, err := s.resolveDecision(ctx, callerID, areaID, invID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DecideInvitation(ctx, invID, models.InvitationStatusRejected, nil); err != nil {
		if _, ok := apperrors.KindOf(err); ok {
			return nil, err
		}
		log.WithError(err).Error("Failed to reject invitation")
		return nil, fmt.Errorf("service: could not reject invitation: %w", err)
	}

	inv.Status = models.InvitationStatusRejected
	log.Info("Invitation rejected")
	return inv, nil
}

// resolveDecision загружает приглашение и проверяет право вызывающего решать его судьбу.
// Возвращает приглашение и пользователя, который станет участником при принятии.
func (s *areaService) resolveDecision(ctx context.Context, callerID, areaID, invID uuid.UUID) (*models.AreaInvitation, uuid.UUID, error) {
	inv, err := s.repo.GetInvitation(ctx, invID)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("service: could not get invitation: %w", err)
	}
	if inv == nil || inv.AreaID != areaID {
		return nil, uuid.Nil, apperrors.NotFound("invitation %s not found", invID)
	}

	if inv.ReceiverID == nil {
		// Заявка на вступление: решает админ зоны, участником становится отправитель
		if err := s.requireAdmin(ctx, inv.AreaID, callerID); err != nil {
			return nil, uuid.Nil, err
		}
		return inv, inv.SenderID, nil
	}

	// Адресное приглашение: решает сам получатель
	if *inv.ReceiverID != callerID {
		return nil, uuid.Nil, apperrors.Authorization("only the invited user can decide this invitation")
	}
	return inv, *inv.ReceiverID, nil
}

// ToggleNotifications включает или выключает уведомления по зоне
func (s *areaService) ToggleNotifications(ctx context.Context, userID, areaID uuid.UUID, enabled bool) error {
	if err := s.repo.UpdateMemberNotifications(ctx, areaID, userID, enabled); err != nil {
		if _, ok := apperrors.KindOf(err); ok {
			return err
		}
		s.logger.WithError(err).Error("Failed to toggle notifications")
		return fmt.Errorf("service: could not toggle notifications: %w", err)
	}
	return nil
}

// MarkSeen сбрасывает счетчик непросмотренных событий зоны
func (s *areaService) MarkSeen(ctx context.Context, userID, areaID uuid.UUID) error {
	if err := s.repo.ResetNewEvents(ctx, areaID, userID); err != nil {
		if _, ok := apperrors.KindOf(err); ok {
			return err
		}
		s.logger.WithError(err).Error("Failed to mark area as seen")
		return fmt.Errorf("service: could not mark area as seen: %w", err)
	}
	return nil
}

// Leave выходит из зоны. Создатель выйти не может: зона без админа недопустима,
// создатель должен удалить зону целиком.
func (s *areaService) Leave(ctx context.Context, userID, areaID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "area",
		"method":  "Leave",
		"area_id": areaID,
		"user_id": userID,
	})

	area, err := s.repo.GetByID(ctx, areaID)
	if err != nil {
		log.WithError(err).Error("Failed to get area for leave")
		return fmt.Errorf("service: could not get area: %w", err)
	}
	if area == nil {
		return apperrors.NotFound("area %s not found", areaID)
	}
	if area.CreatorID == userID {
		return apperrors.Authorization("creator cannot leave the area, delete it instead")
	}

	if err := s.repo.DeleteMember(ctx, areaID, userID); err != nil {
		if _, ok := apperrors.KindOf(err); ok {
			return err
		}
		log.WithError(err).Error("Failed to delete membership")
		return fmt.Errorf("service: could not leave area: %w", err)
	}

	log.Info("User left area")
	return nil
}

func (s *areaService) requireAdmin(ctx context.Context, areaID, userID uuid.UUID) error {
	member, err := s.repo.GetMember(ctx, areaID, userID)
	if err != nil {
		return fmt.Errorf("service: could not check membership: %w", err)
	}
	if member == nil || member.Role != models.AreaRoleAdmin {
		return apperrors.Authorization("admin role required")
	}
	return nil
}

func (s *areaService) notifyAdmins(ctx context.Context, log *logrus.Entry, area *models.Area, inv *models.AreaInvitation) {
	admins, err := s.repo.ListAreaAdmins(ctx, area.ID)
	if err != nil {
		log.WithError(err).Warn("Failed to list area admins for notification")
		return
	}
	for _, adminID := range admins {
		if err := s.publisher.Publish(ctx, notification.Notification{
			UserID: adminID,
			Kind:   notification.KindJoinRequest,
			Title:  "Join request",
			Body:   fmt.Sprintf("New join request for area %q", area.Name),
			Data:   map[string]any{"area_id": area.ID.String(), "invitation_id": inv.ID.String()},
		}); err != nil {
			log.WithError(err).Warn("Failed to publish join request notification")
		}
	}
}
