package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Get group positions
// @Description Get the latest known positions of group members and their trackers. Group membership required.
// @Tags Groups
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Group ID"
// @Success 200 {array} PositionResponse
// @Failure 400 {object} map[string]string "Invalid group ID"
// @Failure 403 {object} map[string]string "Group membership required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /groups/{id}/positions [get]
func (h *Handler) groupPositions(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group ID"})
		return
	}
	log := h.logger.WithField("method", "groupPositions").WithField("group_id", groupID)

	positions, err := h.groupService.Positions(c.Request.Context(), currentUserID(c), groupID)
	if err != nil {
		h.respondError(c, log, err, "Failed to get group positions from service")
		return
	}
	c.JSON(http.StatusOK, ModelsToPositionResponses(positions))
}

// @Summary Report my position
// @Description Store the latest phone position of the current user for group maps.
// @Tags Groups
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param position body ReportPositionRequest true "Position report"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /positions [post]
func (h *Handler) reportPosition(c *gin.Context) {
	var input ReportPositionRequest
	log := h.logger.WithField("method", "reportPosition")

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

	if err := h.groupService.ReportUserPosition(c.Request.Context(), currentUserID(c), input.Latitude, input.Longitude); err != nil {
		h.respondError(c, log, err, "Failed to report position in service")
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Report a tracker position
// @Description Ingest endpoint for GPS trackers. Authorized by the X-Device-Key header instead of a user session.
// @Tags Groups
// @Accept json
// @Produce json
// @Param X-Device-Key header string true "Device key"
// @Param position body ReportPositionRequest true "Position report"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 403 {object} map[string]string "Unknown device key"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /devices/position [post]
func (h *Handler) reportDevicePosition(c *gin.Context) {
	log := h.logger.WithField("method", "reportDevicePosition")

	deviceKey := c.GetHeader("X-Device-Key")
	if deviceKey == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "device key required"})
		return
	}

	var input ReportPositionRequest
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

	if err := h.groupService.ReportDevicePosition(c.Request.Context(), deviceKey, input.Latitude, input.Longitude); err != nil {
		h.respondError(c, log, err, "Failed to report device position in service")
		return
	}
	c.Status(http.StatusOK)
}
