package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1.
// Публичная часть (QR-страница, чат нашедшего, трекеры) не требует сессии.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, sessionAuth gin.HandlerFunc) {
	// Публичные маршруты находок: нашедшему не нужен аккаунт
	api.GET("/qr/:code/public", h.qrLanding)
	public := api.Group("/public")
	{
		public.POST("/device/:qrCode/chat", h.startChat)
		public.POST("/chat/:chatId/session/:sessionId/message", h.postFinderMessage)
		public.GET("/chat/:chatId/session/:sessionId/messages", h.listFinderMessages)
	}

	// Трекеры авторизуются ключом устройства, а не сессией
	api.POST("/devices/position", h.reportDevicePosition)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	authorized := api.Group("", sessionAuth)
	{
		areas := authorized.Group("/areas")
		{
			areas.POST("", h.createArea)
			areas.GET("", h.listMyAreas)
			areas.GET("/:id", h.getArea)
			areas.DELETE("/:id", h.deleteArea)
			areas.POST("/:id/join", h.joinArea)
			areas.POST("/:id/request-join", h.requestJoin)
			areas.POST("/:id/invitations", h.inviteUser)
			areas.POST("/:id/invitations/:invId/accept", h.acceptInvitation)
			areas.POST("/:id/invitations/:invId/reject", h.rejectInvitation)
			areas.PATCH("/:id/membership", h.updateMembership)
			areas.POST("/:id/seen", h.markAreaSeen)
			areas.POST("/:id/leave", h.leaveArea)
		}

		events := authorized.Group("/events")
		{
			events.POST("", h.createEvent)
			events.GET("", h.listEvents)
			events.POST("/:id/close", h.closeEvent)
		}

		chats := authorized.Group("/chats")
		{
			chats.GET("", h.listOwnerChats)
			chats.POST("/:id/message", h.postOwnerMessage)
			chats.GET("/:id/messages", h.listOwnerMessages)
			chats.POST("/:id/status", h.setChatStatus)
		}

		authorized.GET("/groups/:id/positions", h.groupPositions)
		authorized.POST("/positions", h.reportPosition)
	}
}
