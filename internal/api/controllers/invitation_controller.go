package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderlog/internal/models/request_models"
	"wanderlog/internal/services"
	"wanderlog/pkg/utils"
)

type InvitationController struct {
	invitationService services.InvitationServiceInterface
}

func NewInvitationController(invitationService services.InvitationServiceInterface) *InvitationController {
	return &InvitationController{
		invitationService: invitationService,
	}
}

// SendInviteEmail godoc
// @Summary Invite someone to a trip by email
// @Tags Invitations
// @Accept json
// @Produce json
// @Param request body request_models.SendInviteRequest true "Invitation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /sendInviteEmail [post]
func (i *InvitationController) SendInviteEmail(c *gin.Context) {
	var req request_models.SendInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := i.invitationService.SendInvite(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Invitation email sent successfully")
}

// JoinTrip godoc
// @Summary Accept a trip invitation
// @Description Target of the link in invitation emails
// @Tags Invitations
// @Produce json
// @Param tripId query string true "Trip ID"
// @Param email query string true "Invitee email"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /joinTrip [get]
func (i *InvitationController) JoinTrip(c *gin.Context) {
	var q request_models.JoinTripQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if _, err := i.invitationService.JoinTrip(c.Request.Context(), q.TripID, q.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "You have been successfully added to the trip")
}
