package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/smolentsev/lostradar/internal/apperrors"
	"github.com/smolentsev/lostradar/internal/config"
	"github.com/smolentsev/lostradar/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	areaService  service.AreaService
	eventService service.EventService
	chatService  service.ChatService
	groupService service.GroupService
	logger       *logrus.Logger
	validate     *validator.Validate
	cfg          *config.Config
}

func NewHandler(
	areaService service.AreaService,
	eventService service.EventService,
	chatService service.ChatService,
	groupService service.GroupService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		areaService:  areaService,
		eventService: eventService,
		chatService:  chatService,
		groupService: groupService,
		logger:       logger,
		validate:     validator.New(),
		cfg:          cfg,
	}
}

// respondError транслирует доменные ошибки в HTTP-статусы.
// Неопознанные ошибки логируются и превращаются в 500 без деталей наружу.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, msg string) {
	if kind, ok := apperrors.KindOf(err); ok {
		c.JSON(kindToStatus(kind), gin.H{"error": err.Error()})
		return
	}
	log.WithError(err).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func kindToStatus(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindAuthorization:
		return http.StatusForbidden
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict, apperrors.KindInvalidState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
