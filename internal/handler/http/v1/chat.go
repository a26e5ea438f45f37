package v1

import (
	"fmt"
	"html"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary QR landing page
// @Description Public landing page shown after scanning the QR code of a found object. No account required.
// @Tags FoundChats
// @Produce html
// @Param code path string true "QR code"
// @Success 200 {string} string "HTML landing page"
// @Failure 403 {object} map[string]string "QR sharing is disabled"
// @Failure 404 {object} map[string]string "QR code is not registered"
// @Router /qr/{code}/public [get]
func (h *Handler) qrLanding(c *gin.Context) {
	log := h.logger.WithField("method", "qrLanding")

	device, err := h.chatService.PublicDevice(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.respondError(c, log, err, "Failed to get device for landing page")
		return
	}

	chatURL := fmt.Sprintf("%s/api/v1/public/device/%s/chat", h.cfg.PublicBaseURL, device.QRCode)
	page := fmt.Sprintf(
		`<!DOCTYPE html><html><head><meta charset="utf-8"><title>Found item</title></head>`+
			`<body><h1>You found %s</h1>`+
			`<p>The owner is looking for this item. Start an anonymous chat to return it:</p>`+
			`<p><a href="%s">Contact the owner</a></p></body></html>`,
		html.EscapeString(device.Name), chatURL)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// @Summary Start a found-object chat
// @Description Start (or resume) an anonymous chat with the owner of a scanned item. Repeating the call with the same session token returns the same active chat. The returned session token authorizes further finder requests.
// @Tags FoundChats
// @Accept json
// @Produce json
// @Param qrCode path string true "QR code"
// @Param chat body StartChatRequest false "Chat start request"
// @Success 201 {object} ChatResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 403 {object} map[string]string "QR sharing is disabled"
// @Failure 404 {object} map[string]string "QR code is not registered"
// @Router /public/device/{qrCode}/chat [post]
func (h *Handler) startChat(c *gin.Context) {
	log := h.logger.WithField("method", "startChat")

	var input StartChatRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := h.validate.Struct(input); err != nil {
			log.WithError(err).Warn("Validation failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	chat, err := h.chatService.StartChat(c.Request.Context(), c.Param("qrCode"), input.FinderName, input.SessionID, input.Message)
	if err != nil {
		h.respondError(c, log, err, "Failed to start chat in service")
		return
	}

	// Токен сессии отдаем нашедшему только здесь
	resp := ModelToChatResponse(chat)
	resp.SessionID = chat.FinderSessionID
	c.JSON(http.StatusCreated, resp)
}

// @Summary Post a finder message
// @Description Post a message to an active chat on behalf of the finder, authorized by the session token.
// @Tags FoundChats
// @Accept json
// @Produce json
// @Param chatId path string true "Chat ID"
// @Param sessionId path string true "Finder session token"
// @Param message body ChatMessageRequest true "Message"
// @Success 201 {object} ChatMessageResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 403 {object} map[string]string "Invalid session token"
// @Failure 404 {object} map[string]string "Chat not found"
// @Failure 409 {object} map[string]string "Chat is not active"
// @Router /public/chat/{chatId}/session/{sessionId}/message [post]
func (h *Handler) postFinderMessage(c *gin.Context) {
	chatID, err := uuid.Parse(c.Param("chatId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat ID"})
		return
	}
	log := h.logger.WithField("method", "postFinderMessage").WithField("chat_id", chatID)

	var input ChatMessageRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.chatService.PostFinderMessage(c.Request.Context(), chatID, c.Param("sessionId"), input.Content)
	if err != nil {
		h.respondError(c, log, err, "Failed to post finder message in service")
		return
	}
	c.JSON(http.StatusCreated, ModelToMessageResponse(msg))
}

// @Summary List finder messages
// @Description Poll chat messages on behalf of the finder. Reading stays available after the chat is resolved or closed.
// @Tags FoundChats
// @Accept json
// @Produce json
// @Param chatId path string true "Chat ID"
// @Param sessionId path string true "Finder session token"
// @Param afterId query int false "Return messages with ID greater than this" default(0)
// @Success 200 {array} ChatMessageResponse
// @Failure 400 {object} map[string]string "Invalid chat ID"
// @Failure 403 {object} map[string]string "Invalid session token"
// @Failure 404 {object} map[string]string "Chat not found"
// @Router /public/chat/{chatId}/session/{sessionId}/messages [get]
func (h *Handler) listFinderMessages(c *gin.Context) {
	chatID, err := uuid.Parse(c.Param("chatId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat ID"})
		return
	}
	log := h.logger.WithField("method", "listFinderMessages").WithField("chat_id", chatID)

	afterID, _ := strconv.ParseInt(c.DefaultQuery("afterId", "0"), 10, 64)

	messages, err := h.chatService.ListFinderMessages(c.Request.Context(), chatID, c.Param("sessionId"), afterID)
	if err != nil {
		h.respondError(c, log, err, "Failed to list finder messages in service")
		return
	}
	c.JSON(http.StatusOK, ModelsToMessageResponses(messages))
}

// @Summary List my chats
// @Description List found-object chats across all devices of the current user.
// @Tags FoundChats
// @Accept json
// @Produce json
// @Security SessionAuth
// @Success 200 {array} ChatResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /chats [get]
func (h *Handler) listOwnerChats(c *gin.Context) {
	log := h.logger.WithField("method", "listOwnerChats")

	chats, err := h.chatService.ListOwnerChats(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, log, err, "Failed to list chats in service")
		return
	}
	c.JSON(http.StatusOK, ModelsToChatResponses(chats))
}

// @Summary Post an owner message
// @Description Post a message to an active chat on behalf of the device owner.
// @Tags FoundChats
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Chat ID"
// @Param message body ChatMessageRequest true "Message"
// @Success 201 {object} ChatMessageResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 403 {object} map[string]string "Only the device owner may write"
// @Failure 404 {object} map[string]string "Chat not found"
// @Failure 409 {object} map[string]string "Chat is not active"
// @Router /chats/{id}/message [post]
func (h *Handler) postOwnerMessage(c *gin.Context) {
	chatID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat ID"})
		return
	}
	log := h.logger.WithField("method", "postOwnerMessage").WithField("chat_id", chatID)

	var input ChatMessageRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.chatService.PostOwnerMessage(c.Request.Context(), currentUserID(c), chatID, input.Content)
	if err != nil {
		h.respondError(c, log, err, "Failed to post owner message in service")
		return
	}
	c.JSON(http.StatusCreated, ModelToMessageResponse(msg))
}

// @Summary List chat messages as owner
// @Description Poll chat messages on behalf of the device owner.
// @Tags FoundChats
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Chat ID"
// @Param afterId query int false "Return messages with ID greater than this" default(0)
// @Success 200 {array} ChatMessageResponse
// @Failure 400 {object} map[string]string "Invalid chat ID"
// @Failure 403 {object} map[string]string "Only the device owner may read"
// @Failure 404 {object} map[string]string "Chat not found"
// @Router /chats/{id}/messages [get]
func (h *Handler) listOwnerMessages(c *gin.Context) {
	chatID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat ID"})
		return
	}
	log := h.logger.WithField("method", "listOwnerMessages").WithField("chat_id", chatID)

	afterID, _ := strconv.ParseInt(c.DefaultQuery("afterId", "0"), 10, 64)

	messages, err := h.chatService.ListOwnerMessages(c.Request.Context(), currentUserID(c), chatID, afterID)
	if err != nil {
		h.respondError(c, log, err, "Failed to list owner messages in service")
		return
	}
	c.JSON(http.StatusOK, ModelsToMessageResponses(messages))
}

// @Summary Set chat status
// @Description Move an active chat to RESOLVED or CLOSED. Only the device owner may do this; closed chats stay readable.
// @Tags FoundChats
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Chat ID"
// @Param status body SetChatStatusRequest true "New status"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 403 {object} map[string]string "Only the device owner may update"
// @Failure 404 {object} map[string]string "Chat not found"
// @Failure 409 {object} map[string]string "Chat is not active or illegal target status"
// @Router /chats/{id}/status [post]
func (h *Handler) setChatStatus(c *gin.Context) {
	chatID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat ID"})
		return
	}
	log := h.logger.WithField("method", "setChatStatus").WithField("chat_id", chatID)

	var input SetChatStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chat, err := h.chatService.SetStatus(c.Request.Context(), currentUserID(c), chatID, input.Status)
	if err != nil {
		h.respondError(c, log, err, "Failed to set chat status in service")
		return
	}
	c.JSON(http.StatusOK, ModelToChatResponse(chat))
}
