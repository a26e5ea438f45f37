package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/smolentsev/lostradar/internal/geo"
	"github.com/smolentsev/lostradar/internal/service"
)

// @Summary Create a new event
// @Description Report a theft, loss or other incident on the map. Members of covering areas get notified.
// @Tags Events
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param event body CreateEventRequest true "Event creation request"
// @Success 201 {object} EventResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events [post]
func (h *Handler) createEvent(c *gin.Context) {
	var input CreateEventRequest
	log := h.logger.WithField("method", "createEvent")

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

	model := DTOToEventModel(input, currentUserID(c))
	if err := h.eventService.CreateEvent(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "Failed to create event in service")
		return
	}
	c.JSON(http.StatusCreated, ModelToEventResponse(model))
}

// @Summary List visible events
// @Description List events the current user may see in the viewport: public events inside the box, events of the user's areas whose circle intersects the box, and events of the user's groups. Filters apply after the union.
// @Tags Events
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param northEast query string true "Viewport north-east corner as lat,lng"
// @Param southWest query string true "Viewport south-west corner as lat,lng"
// @Param status query string false "Filter by status" Enums(IN_PROGRESS, CLOSED)
// @Param type query string false "Filter by type" Enums(THEFT, LOST, ACCIDENT, FIRE, GENERAL)
// @Param sortBy query string false "Sort key" Enums(createdAt, type) default(createdAt)
// @Param sortOrder query string false "Sort order" Enums(asc, desc) default(asc)
// @Success 200 {array} EventResponse
// @Failure 400 {object} map[string]string "Invalid viewport"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events [get]
func (h *Handler) listEvents(c *gin.Context) {
	log := h.logger.WithField("method", "listEvents")

	box, ok := h.parseViewport(c)
	if !ok {
		return
	}

	filters := service.EventFilters{
		Status:    c.Query("status"),
		Type:      c.Query("type"),
		SortBy:    c.DefaultQuery("sortBy", service.SortByCreatedAt),
		SortOrder: c.DefaultQuery("sortOrder", service.SortOrderAsc),
	}

	events, err := h.eventService.ListVisibleEvents(c.Request.Context(), currentUserID(c), box, filters)
	if err != nil {
		h.respondError(c, log, err, "Failed to list events from service")
		return
	}
	c.JSON(http.StatusOK, ModelsToEventResponses(events))
}

// @Summary Close an event
// @Description Close an in-progress event. Only the creator may close it; optionally stops real-time tracking.
// @Tags Events
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Event ID"
// @Param close body CloseEventRequest false "Close options"
// @Success 200 {object} EventResponse
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 403 {object} map[string]string "Only the creator can close"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 409 {object} map[string]string "Event is not in progress"
// @Router /events/{id}/close [post]
func (h *Handler) closeEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}
	log := h.logger.WithField("method", "closeEvent").WithField("event_id", eventID)

	// Тело опционально: без него трекинг не трогаем
	var input CloseEventRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	event, err := h.eventService.CloseEvent(c.Request.Context(), currentUserID(c), eventID, input.StopTracking)
	if err != nil {
		h.respondError(c, log, err, "Failed to close event in service")
		return
	}
	c.JSON(http.StatusOK, ModelToEventResponse(event))
}

// parseViewport разбирает вьюпорт из query-параметров
// northEast=lat,lng и southWest=lat,lng
func (h *Handler) parseViewport(c *gin.Context) (geo.BoundingBox, bool) {
	northEast, ok := h.parseCorner(c, "northEast")
	if !ok {
		return geo.BoundingBox{}, false
	}
	southWest, ok := h.parseCorner(c, "southWest")
	if !ok {
		return geo.BoundingBox{}, false
	}
	return geo.BoundingBox{NorthEast: northEast, SouthWest: southWest}, true
}

func (h *Handler) parseCorner(c *gin.Context, name string) (geo.Point, bool) {
	parts := strings.Split(c.Query(name), ",")
	if len(parts) == 2 {
		lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		lng, errLng := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errLat == nil && errLng == nil {
			return geo.Point{Lat: lat, Lng: lng}, true
		}
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid viewport parameter " + name})
	return geo.Point{}, false
}
