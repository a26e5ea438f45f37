package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Create a new area of interest
// @Description Create a named circular area on the map. The creator becomes its admin.
// @Tags Areas
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param area body CreateAreaRequest true "Area creation request"
// @Success 201 {object} AreaResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /areas [post]
func (h *Handler) createArea(c *gin.Context) {
	var input CreateAreaRequest
	log := h.logger.WithField("method", "createArea")

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

	model := DTOToAreaModel(input, currentUserID(c))
	if err := h.areaService.CreateArea(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "Failed to create area in service")
		return
	}
	c.JSON(http.StatusCreated, ModelToAreaResponse(model))
}

// @Summary List my areas
// @Description Get all areas the current user is a member of.
// @Tags Areas
// @Accept json
// @Produce json
// @Security SessionAuth
// @Success 200 {array} AreaResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /areas [get]
func (h *Handler) listMyAreas(c *gin.Context) {
	log := h.logger.WithField("method", "listMyAreas")

	areas, err := h.areaService.ListMyAreas(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, log, err, "Failed to list areas from service")
		return
	}
	c.JSON(http.StatusOK, ModelsToAreaResponses(areas))
}

// @Summary Get area by ID
// @Description Get a single area by its ID. Private areas are visible to members only.
// @Tags Areas
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Area ID"
// @Success 200 {object} AreaResponse
// @Failure 400 {object} map[string]string "Invalid area ID"
// @Failure 403 {object} map[string]string "Area is private"
// @Failure 404 {object} map[string]string "Area not found"
// @Router /areas/{id} [get]
func (h *Handler) getArea(c *gin.Context) {
	areaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid area ID"})
		return
	}
	log := h.logger.WithField("method", "getArea").WithField("area_id", areaID)

	area, err := h.areaService.GetArea(c.Request.Context(), currentUserID(c), areaID)
	if err != nil {
		h.respondError(c, log, err, "Failed to get area from service")
		return
	}
	c.JSON(http.StatusOK, ModelToAreaResponse(area))
}

// @Summary Delete an area
// @Description Delete an area by its ID. Only the creator may delete; memberships cascade.
// @Tags Areas
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Area ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid area ID"
// @Failure 403 {object} map[string]string "Only the creator can delete"
// @Failure 404 {object} map[string]string "Area not found"
// @Router /areas/{id} [delete]
func (h *Handler) deleteArea(c *gin.Context) {
	areaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid area ID"})
		return
	}
	log := h.logger.WithField("method", "deleteArea").WithField("area_id", areaID)

	if err := h.areaService.DeleteArea(c.Request.Context(), currentUserID(c), areaID); err != nil {
		h.respondError(c, log, err, "Failed to delete area in service")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Join a public area
// @Description Join a PUBLIC area directly, without a request.
// @Tags Areas
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Area ID"
// @Success 201 {object} MemberResponse
// @Failure 400 {object} map[string]string "Invalid area ID"
// @Failure 404 {object} map[string]string "Area not found"
// @Failure 409 {object} map[string]string "Area is not public or already joined"
// @Router /areas/{id}/join [post]
func (h *Handler) joinArea(c *gin.Context) {
	areaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid area ID"})
		return
	}
	log := h.logger.WithField("method", "joinArea").WithField("area_id", areaID)

	member, err := h.areaService.JoinPublic(c.Request.Context(), currentUserID(c), areaID)
	if err != nil {
		h.respondError(c, log, err, "Failed to join area in service")
		return
	}
	c.JSON(http.StatusCreated, ModelToMemberResponse(member))
}

// @Summary Request to join an area
// @Description Create a join request for a PRIVATE_SHAREABLE area. Area admins decide it.
// @Tags Areas
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Area ID"
// @Success 201 {object} InvitationResponse
// @Failure 400 {object} map[string]string "Invalid area ID"
// @Failure 404 {object} map[string]string "Area not found"
// @Failure 409 {object} map[string]string "Area does not accept requests or already a member"
// @Router /areas/{id}/request-join [post]
func (h *Handler) requestJoin(c *gin.Context) {
	areaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid area ID"})
		return
	}
	log := h.logger.WithField("method", "requestJoin").WithField("area_id", areaID)

	inv, err := h.areaService.RequestJoin(c.Request.Context(), currentUserID(c), areaID)
	if err != nil {
		h.respondError(c, log, err, "Failed to create join request in service")
		return
	}
	c.JSON(http.StatusCreated, ModelToInvitationResponse(inv))
}

// @Summary Invite a user to an area
// @Description Invite a specific user to the area. Admin role required.
// @Tags Areas
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Area ID"
// @Param invitation body InviteUserRequest true "Invitation request"
// @Success 201 {object} InvitationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 409 {object} map[string]string "User is already a member"
// @Router /areas/{id}/invitations [post]
func (h *Handler) inviteUser(c *gin.Context) {
	areaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid area ID"})
		return
	}
	log := h.logger.WithField("method", "inviteUser").WithField("area_id", areaID)

	var input InviteUserRequest
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

	receiverID, err := uuid.Parse(input.ReceiverID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid receiver ID"})
		return
	}

	inv, err := h.areaService.InviteUser(c.Request.Context(), currentUserID(c), areaID, receiverID)
	if err != nil {
		h.respondError(c, log, err, "Failed to create invitation in service")
		return
	}
	c.JSON(http.StatusCreated, ModelToInvitationResponse(inv))
}

// @Summary Accept an invitation or join request
// @Description Accept a pending invitation. Join requests are decided by area admins, targeted invitations by the invited user. Exactly one concurrent decision wins.
// @Tags Areas
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Area ID"
// @Param invId path string true "Invitation ID"
// @Success 200 {object} MemberResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 403 {object} map[string]string "Not allowed to decide this invitation"
// @Failure 404 {object} map[string]string "Invitation not found"
// @Failure 409 {object} map[string]string "Invitation is no longer pending"
// @Router /areas/{id}/invitations/{invId}/accept [post]
func (h *Handler) acceptInvitation(c *gin.Context) {
	areaID, invID, ok := h.invitationIDs(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "acceptInvitation").WithField("invitation_id", invID)

	member, err := h.areaService.AcceptInvitation(c.Request.Context(), currentUserID(c), areaID, invID)
	if err != nil {
		h.respondError(c, log, err, "Failed to accept invitation in service")
		return
	}
	c.JSON(http.StatusOK, ModelToMemberResponse(member))
}

// @Summary Reject an invitation or join request
// @Description Reject a pending invitation. Join requests are decided by area admins, targeted invitations by the invited user.
// @Tags Areas
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Area ID"
// @Param invId path string true "Invitation ID"
// @Success 200 {object} InvitationResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 403 {object} map[string]string "Not allowed to decide this invitation"
// @Failure 404 {object} map[string]string "Invitation not found"
// @Failure 409 {object} map[string]string "Invitation is no longer pending"
// @Router /areas/{id}/invitations/{invId}/reject [post]
func (h *Handler) rejectInvitation(c *gin.Context) {
	areaID, invID, ok := h.invitationIDs(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "rejectInvitation").WithField("invitation_id", invID)

	inv, err := h.areaService.RejectInvitation(c.Request.Context(), currentUserID(c), areaID, invID)
	if err != nil {
		h.respondError(c, log, err, "Failed to reject invitation in service")
		return
	}
	c.JSON(http.StatusOK, ModelToInvitationResponse(inv))
}

// @Summary Update my membership
// @Description Toggle event notifications for the current user in the area.
// @Tags Areas
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Area ID"
// @Param membership body UpdateMembershipRequest true "Membership update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Membership not found"
// @Router /areas/{id}/membership [patch]
func (h *Handler) updateMembership(c *gin.Context) {
	areaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid area ID"})
		return
	}
	log := h.logger.WithField("method", "updateMembership").WithField("area_id", areaID)

	var input UpdateMembershipRequest
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

	if err := h.areaService.ToggleNotifications(c.Request.Context(), currentUserID(c), areaID, *input.NotificationsEnabled); err != nil {
		h.respondError(c, log, err, "Failed to toggle notifications in service")
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Mark area events as seen
// @Description Reset the unseen events counter of the current user for the area.
// @Tags Areas
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Area ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid area ID"
// @Failure 404 {object} map[string]string "Membership not found"
// @Router /areas/{id}/seen [post]
func (h *Handler) markAreaSeen(c *gin.Context) {
	areaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid area ID"})
		return
	}
	log := h.logger.WithField("method", "markAreaSeen").WithField("area_id", areaID)

	if err := h.areaService.MarkSeen(c.Request.Context(), currentUserID(c), areaID); err != nil {
		h.respondError(c, log, err, "Failed to mark area as seen in service")
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Leave an area
// @Description Leave the area. The creator cannot leave and must delete the area instead.
// @Tags Areas
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Area ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid area ID"
// @Failure 403 {object} map[string]string "Creator cannot leave"
// @Failure 404 {object} map[string]string "Area or membership not found"
// @Router /areas/{id}/leave [post]
func (h *Handler) leaveArea(c *gin.Context) {
	areaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid area ID"})
		return
	}
	log := h.logger.WithField("method", "leaveArea").WithField("area_id", areaID)

	if err := h.areaService.Leave(c.Request.Context(), currentUserID(c), areaID); err != nil {
		h.respondError(c, log, err, "Failed to leave area in service")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) invitationIDs(c *gin.Context) (areaID, invID uuid.UUID, ok bool) {
	areaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid area ID"})
		return uuid.Nil, uuid.Nil, false
	}
	invID, err = uuid.Parse(c.Param("invId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invitation ID"})
		return uuid.Nil, uuid.Nil, false
	}
	return areaID, invID, true
}
