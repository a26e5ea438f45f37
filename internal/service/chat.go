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

// ChatRepository определяет контракт для работы с бд чатов находок
type ChatRepository interface {
	GetDeviceByQR(ctx context.Context, qrCode string) (*models.Device, error)
	GetDeviceByID(ctx context.Context, id uuid.UUID) (*models.Device, error)
	UpsertActiveChat(ctx context.Context, chat *models.FoundChat) error
	GetChat(ctx context.Context, id uuid.UUID) (*models.FoundChat, error)
	ListOwnerChats(ctx context.Context, ownerID uuid.UUID) ([]*models.FoundChat, error)
	SetChatStatus(ctx context.Context, chatID uuid.UUID, newStatus string) error
	InsertMessage(ctx context.Context, msg *models.ChatMessage) error
	ListMessages(ctx context.Context, chatID uuid.UUID, afterID int64) ([]*models.ChatMessage, error)
}

// ChatService определяет контракт для бизнес-логики чатов находок
type ChatService interface {
	PublicDevice(ctx context.Context, qrCode string) (*models.Device, error)
	StartChat(ctx context.Context, qrCode, finderName, sessionID, message string) (*models.FoundChat, error)
	PostFinderMessage(ctx context.Context, chatID uuid.UUID, sessionID, content string) (*models.ChatMessage, error)
	PostOwnerMessage(ctx context.Context, ownerID, chatID uuid.UUID, content string) (*models.ChatMessage, error)
	ListFinderMessages(ctx context.Context, chatID uuid.UUID, sessionID string, afterID int64) ([]*models.ChatMessage, error)
	ListOwnerMessages(ctx context.Context, ownerID, chatID uuid.UUID, afterID int64) ([]*models.ChatMessage, error)
	ListOwnerChats(ctx context.Context, ownerID uuid.UUID) ([]*models.FoundChat, error)
	SetStatus(ctx context.Context, ownerID, chatID uuid.UUID, newStatus string) (*models.FoundChat, error)
}

type chatService struct {
	repo      ChatRepository
	logger    *logrus.Logger
	publisher notification.Publisher
}

func NewChatService(repo ChatRepository, logger *logrus.Logger, publisher notification.Publisher) ChatService {
	return &chatService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// PublicDevice возвращает устройство для публичной QR-страницы.
// Незарегистрированный код - NotFound, выключенный QR-шаринг - Authorization.
func (s *chatService) PublicDevice(ctx context.Context, qrCode string) (*models.Device, error) {
	device, err := s.repo.GetDeviceByQR(ctx, qrCode)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get device by qr code")
		return nil, fmt.Errorf("service: could not get device: %w", err)
	}
	if device == nil {
		return nil, apperrors.NotFound("qr code is not registered")
	}
	if !device.QRSharingEnabled {
		return nil, apperrors.Authorization("qr sharing is disabled for this device")
	}
	return device, nil
}

// StartChat лениво создает анонимный чат по QR-коду устройства.
// Повторный старт с той же сессией нашедшего возвращает существующий активный чат.
// Сессия - непрозрачный токен на предъявителя, аккаунт нашедшему не нужен.
func (s *chatService) StartChat(ctx context.Context, qrCode, finderName, sessionID, message string) (*models.FoundChat, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "chat",
		"method":  "StartChat",
	})
	log.Info("Starting found-object chat")

	device, err := s.PublicDevice(ctx, qrCode)
	if err != nil {
		return nil, err
	}

	if sessionID == "" {
		sessionID = newFinderSession()
	}

	chat := &models.FoundChat{
		DeviceID:        device.ID,
		FinderSessionID: sessionID,
		FinderName:      finderName,
	}
	if err := s.repo.UpsertActiveChat(ctx, chat); err != nil {
		log.WithError(err).Error("Failed to upsert chat")
		return nil, fmt.Errorf("service: could not start chat: %w", err)
	}

	if message != "" {
		msg := &models.ChatMessage{
			ChatID:  chat.ID,
			Sender:  models.ChatSenderFinder,
			Content: message,
		}
		if err := s.repo.InsertMessage(ctx, msg); err != nil {
			log.WithError(err).Error("Failed to insert initial message")
			return nil, fmt.Errorf("service: could not post initial message: %w", err)
		}
	}

	if err := s.publisher.Publish(ctx, notification.Notification{
		UserID: device.OwnerID,
		Kind:   notification.KindChatMessage,
		Title:  "Your item may have been found",
		Body:   fmt.Sprintf("Someone scanned the QR code of %q", device.Name),
		Data:   map[string]any{"chat_id": chat.ID.String()},
	}); err != nil {
		log.WithError(err).Warn("Failed to publish chat notification")
	}

	log.WithField("chat_id", chat.ID).Info("Chat started")
	return chat, nil
}

// PostFinderMessage отправляет сообщение от имени нашедшего по токену сессии
func (s *chatService) PostFinderMessage(ctx context.Context, chatID uuid.UUID, sessionID, content string) (*models.ChatMessage, error) {
	chat, err := s.activeChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat.FinderSessionID != sessionID {
		return nil, apperrors.Authorization("invalid chat session")
	}

	msg := &models.ChatMessage{
		ChatID:  chatID,
		Sender:  models.ChatSenderFinder,
		Content: content,
	}
	if err := s.repo.InsertMessage(ctx, msg); err != nil {
		s.logger.WithError(err).Error("Failed to insert finder message")
		return nil, fmt.Errorf("service: could not post message: %w", err)
	}

	s.notifyOwner(ctx, chat)
	return msg, nil
}

// PostOwnerMessage отправляет сообщение от имени владельца устройства
func (s *chatService) PostOwnerMessage(ctx context.Context, ownerID, chatID uuid.UUID, content string) (*models.ChatMessage, error) {
	chat, err := s.activeChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, chat, ownerID); err != nil {
		return nil, err
	}

	msg := &models.ChatMessage{
		ChatID:  chatID,
		Sender:  models.ChatSenderOwner,
		Content: content,
	}
	if err := s.repo.InsertMessage(ctx, msg); err != nil {
		s.logger.WithError(err).Error("Failed to insert owner message")
		return nil, fmt.Errorf("service: could not post message: %w", err)
	}
	return msg, nil
}

// ListFinderMessages выдает сообщения чата нашедшему. Чтение разрешено и в
// закрытом чате, запрещена только запись.
func (s *chatService) ListFinderMessages(ctx context.Context, chatID uuid.UUID, sessionID string, afterID int64) ([]*models.ChatMessage, error) {
	chat, err := s.getChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat.FinderSessionID != sessionID {
		return nil, apperrors.Authorization("invalid chat session")
	}
	return s.listMessages(ctx, chatID, afterID)
}

// ListOwnerMessages выдает сообщения чата владельцу устройства
func (s *chatService) ListOwnerMessages(ctx context.Context, ownerID, chatID uuid.UUID, afterID int64) ([]*models.ChatMessage, error) {
	chat, err := s.getChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, chat, ownerID); err != nil {
		return nil, err
	}
	return s.listMessages(ctx, chatID, afterID)
}

// ListOwnerChats возвращает чаты по всем устройствам владельца
func (s *chatService) ListOwnerChats(ctx context.Context, ownerID uuid.UUID) ([]*models.FoundChat, error) {
	chats, err := s.repo.ListOwnerChats(ctx, ownerID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list owner chats")
		return nil, fmt.Errorf("service: could not list chats: %w", err)
	}
	return chats, nil
}

// SetStatus переводит чат в RESOLVED или CLOSED. Разрешено только владельцу
// устройства; единственные допустимые переходы - из ACTIVE.
func (s *chatService) SetStatus(ctx context.Context, ownerID, chatID uuid.UUID, newStatus string) (*models.FoundChat, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "chat",
		"method":  "SetStatus",
		"chat_id": chatID,
		"status":  newStatus,
	})

	if newStatus != models.ChatStatusResolved && newStatus != models.ChatStatusClosed {
		return nil, apperrors.InvalidState("status must be RESOLVED or CLOSED")
	}

	chat, err := s.getChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, chat, ownerID); err != nil {
		return nil, err
	}

	if err := s.repo.SetChatStatus(ctx, chatID, newStatus); err != nil {
		if _, ok := apperrors.KindOf(err); ok {
			return nil, err
		}
		log.WithError(err).Error("Failed to set chat status")
		return nil, fmt.Errorf("service: could not set chat status: %w", err)
	}

	chat.Status = newStatus
	log.Info("Chat status updated")
	return chat, nil
}

func (s *chatService) getChat(ctx context.Context, chatID uuid.UUID) (*models.FoundChat, error) {
	chat, err := s.repo.GetChat(ctx, chatID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get chat")
		return nil, fmt.Errorf("service: could not get chat: %w", err)
	}
	if chat == nil {
		return nil, apperrors.NotFound("chat %s not found", chatID)
	}
	return chat, nil
}

// activeChat возвращает чат, только если в него ещё можно писать
func (s *chatService) activeChat(ctx context.Context, chatID uuid.UUID) (*models.FoundChat, error) {
	chat, err := s.getChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat.Status != models.ChatStatusActive {
		return nil, apperrors.InvalidState("chat is not active")
	}
	return chat, nil
}

func (s *chatService) requireOwner(ctx context.Context, chat *models.FoundChat, userID uuid.UUID) error {
	device, err := s.repo.GetDeviceByID(ctx, chat.DeviceID)
	if err != nil {
		return fmt.Errorf("service: could not get chat device: %w", err)
	}
	if device == nil || device.OwnerID != userID {
		return apperrors.Authorization("only the device owner may access this chat")
	}
	return nil
}

func (s *chatService) listMessages(ctx context.Context, chatID uuid.UUID, afterID int64) ([]*models.ChatMessage, error) {
	messages, err := s.repo.ListMessages(ctx, chatID, afterID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list chat messages")
		return nil, fmt.Errorf("service: could not list messages: %w", err)
	}
	return messages, nil
}

func (s *chatService) notifyOwner(ctx context.Context, chat *models.FoundChat) {
	device, err := s.repo.GetDeviceByID(ctx, chat.DeviceID)
	if err != nil || device == nil {
		s.logger.WithError(err).Warn("Failed to resolve device for chat notification")
		return
	}
	if err := s.publisher.Publish(ctx, notification.Notification{
		UserID: device.OwnerID,
		Kind:   notification.KindChatMessage,
		Title:  "New message about your item",
		Body:   "The finder sent a new message",
		Data:   map[string]any{"chat_id": chat.ID.String()},
	}); err != nil {
		s.logger.WithError(err).Warn("Failed to publish chat message notification")
	}
}

// newFinderSession генерирует непрозрачный токен сессии нашедшего.
// Два uuid, чтобы токен нельзя было перебрать.
func newFinderSession() string {
	return uuid.NewString() + uuid.NewString()
}
