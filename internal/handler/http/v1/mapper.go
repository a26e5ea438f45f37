package v1

import (
	"github.com/google/uuid"
	"github.com/smolentsev/lostradar/internal/models"
)

// DTOToAreaModel преобразует DTO создания зоны в доменную модель
func DTOToAreaModel(dto CreateAreaRequest, creatorID uuid.UUID) *models.Area {
	return &models.Area{
		Name:         dto.Name,
		Description:  dto.Description,
		Latitude:     dto.Latitude,
		Longitude:    dto.Longitude,
		RadiusMeters: dto.RadiusMeters,
		Visibility:   dto.Visibility,
		CreatorID:    creatorID,
	}
}

// ModelToAreaResponse преобразует доменную модель зоны в DTO для ответа
func ModelToAreaResponse(model *models.Area) *AreaResponse {
	return &AreaResponse{
		ID:           model.ID,
		Name:         model.Name,
		Description:  model.Description,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		RadiusMeters: model.RadiusMeters,
		Visibility:   model.Visibility,
		CreatorID:    model.CreatorID,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// ModelsToAreaResponses преобразует слайс моделей зон в слайс DTO
func ModelsToAreaResponses(areas []*models.Area) []*AreaResponse {
	responses := make([]*AreaResponse, len(areas))
	for i, area := range areas {
		responses[i] = ModelToAreaResponse(area)
	}
	return responses
}

// ModelToInvitationResponse преобразует приглашение в DTO для ответа
func ModelToInvitationResponse(model *models.AreaInvitation) *InvitationResponse {
	return &InvitationResponse{
		ID:         model.ID,
		AreaID:     model.AreaID,
		SenderID:   model.SenderID,
		ReceiverID: model.ReceiverID,
		Status:     model.Status,
		CreatedAt:  model.CreatedAt,
	}
}

// ModelToMemberResponse преобразует членство в DTO для ответа
func ModelToMemberResponse(model *models.AreaMember) *MemberResponse {
	return &MemberResponse{
		AreaID:               model.AreaID,
		UserID:               model.UserID,
		Role:                 model.Role,
		NotificationsEnabled: model.NotificationsEnabled,
		NewEventsCount:       model.NewEventsCount,
	}
}

// DTOToEventModel преобразует DTO создания события в доменную модель
func DTOToEventModel(dto CreateEventRequest, creatorID uuid.UUID) *models.Event {
	event := &models.Event{
		CreatorID:        creatorID,
		Type:             dto.Type,
		Description:      dto.Description,
		Latitude:         dto.Latitude,
		Longitude:        dto.Longitude,
		IsPublic:         dto.IsPublic,
		IsUrgent:         dto.IsUrgent,
		RealTimeTracking: dto.RealTimeTracking,
		ImageURL:         dto.ImageURL,
	}
	// Валидность uuid уже проверена тегами валидатора
	if dto.GroupID != nil {
		id, _ := uuid.Parse(*dto.GroupID)
		event.GroupID = &id
	}
	if dto.DeviceID != nil {
		id, _ := uuid.Parse(*dto.DeviceID)
		event.DeviceID = &id
	}
	if dto.PhoneDeviceID != nil {
		id, _ := uuid.Parse(*dto.PhoneDeviceID)
		event.PhoneDeviceID = &id
	}
	return event
}

// ModelToEventResponse преобразует доменную модель события в DTO для ответа
func ModelToEventResponse(model *models.Event) *EventResponse {
	return &EventResponse{
		ID:               model.ID,
		CreatorID:        model.CreatorID,
		Type:             model.Type,
		Description:      model.Description,
		Latitude:         model.Latitude,
		Longitude:        model.Longitude,
		IsPublic:         model.IsPublic,
		IsUrgent:         model.IsUrgent,
		Status:           model.Status,
		GroupID:          model.GroupID,
		DeviceID:         model.DeviceID,
		PhoneDeviceID:    model.PhoneDeviceID,
		RealTimeTracking: model.RealTimeTracking,
		ImageURL:         model.ImageURL,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

// ModelsToEventResponses преобразует слайс моделей событий в слайс DTO
func ModelsToEventResponses(events []*models.Event) []*EventResponse {
	responses := make([]*EventResponse, len(events))
	for i, event := range events {
		responses[i] = ModelToEventResponse(event)
	}
	return responses
}

// ModelToChatResponse преобразует чат находки в DTO для ответа
func ModelToChatResponse(model *models.FoundChat) *ChatResponse {
	return &ChatResponse{
		ID:         model.ID,
		DeviceID:   model.DeviceID,
		FinderName: model.FinderName,
		Status:     model.Status,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

// ModelsToChatResponses преобразует слайс чатов в слайс DTO
func ModelsToChatResponses(chats []*models.FoundChat) []*ChatResponse {
	responses := make([]*ChatResponse, len(chats))
	for i, chat := range chats {
		responses[i] = ModelToChatResponse(chat)
	}
	return responses
}

// ModelToMessageResponse преобразует сообщение чата в DTO для ответа
func ModelToMessageResponse(model *models.ChatMessage) *ChatMessageResponse {
	return &ChatMessageResponse{
		ID:        model.ID,
		ChatID:    model.ChatID,
		Sender:    model.Sender,
		Content:   model.Content,
		CreatedAt: model.CreatedAt,
	}
}

// ModelsToMessageResponses преобразует слайс сообщений в слайс DTO
func ModelsToMessageResponses(messages []*models.ChatMessage) []*ChatMessageResponse {
	responses := make([]*ChatMessageResponse, len(messages))
	for i, msg := range messages {
		responses[i] = ModelToMessageResponse(msg)
	}
	return responses
}

// ModelsToPositionResponses преобразует слайс позиций в слайс DTO
func ModelsToPositionResponses(positions []*models.Position) []*PositionResponse {
	responses := make([]*PositionResponse, len(positions))
	for i, pos := range positions {
		responses[i] = &PositionResponse{
			Source:     pos.Source,
			UserID:     pos.UserID,
			DeviceID:   pos.DeviceID,
			Label:      pos.Label,
			Latitude:   pos.Latitude,
			Longitude:  pos.Longitude,
			ReportedAt: pos.ReportedAt,
		}
	}
	return responses
}
