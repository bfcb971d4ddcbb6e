package api

import (
	"net/http"

	"pharmashift/internal/domain/shift"
	reqdto "pharmashift/internal/handler/dto/request"
	resdto "pharmashift/internal/handler/dto/response"
	"pharmashift/internal/handler/httperr"
	"pharmashift/internal/handler/middleware"
	"pharmashift/internal/usecase/commands"
	"pharmashift/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
}

func NewBookingHandler(cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Accept invitation
// @Description Book the invited pharmacist onto the shift. Exactly one of several concurrent accepts wins.
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.InvitationActionRequest true "Invitation"
// @Success 200 {object} resdto.AcceptInvitationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /api/acceptInvitation [post]
func (h *BookingHandler) AcceptInvitation(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.InvitationActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "invitationId is required")
		return
	}

	res, err := h.cmds.AcceptInvitation(c.Request.Context(), req.ToAcceptInput(actor))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAcceptResult(res))
}

// @Summary Decline invitation
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.InvitationActionRequest true "Invitation"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /api/declineInvitation [post]
func (h *BookingHandler) DeclineInvitation(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.InvitationActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "invitationId is required")
		return
	}

	if err := h.cmds.DeclineInvitation(c.Request.Context(), req.ToDeclineInput(actor)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Success: true, Message: "Invitation declined"})
}

// @Summary Cancel a booked shift as the assigned pharmacist
// @Description Cancels a filled shift and charges the tiered penalty to the pharmacist.
// @Description The penalty tier is priced at cancelledAt when it is later than the server clock. An absent or past cancelledAt is ignored and the server clock is used.
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CancelShiftRequest true "Cancellation"
// @Success 200 {object} resdto.CancelShiftResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/cancelShiftAsWorker [post]
func (h *BookingHandler) CancelShiftAsWorker(c *gin.Context) {
	h.cancel(c, shift.PartyWorker)
}

// @Summary Cancel a booked shift as the employer who posted it
// @Description Cancels a filled shift and charges the tiered penalty to the employer.
// @Description The penalty tier is priced at cancelledAt when it is later than the server clock. An absent or past cancelledAt is ignored and the server clock is used.
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CancelShiftRequest true "Cancellation"
// @Success 200 {object} resdto.CancelShiftResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/cancelShiftAsPoster [post]
func (h *BookingHandler) CancelShiftAsPoster(c *gin.Context) {
	h.cancel(c, shift.PartyPoster)
}

func (h *BookingHandler) cancel(c *gin.Context, party shift.Party) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CancelShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid request")
		return
	}

	res, err := h.cmds.CancelFilledShift(c.Request.Context(), req.ToInput(actor, party))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelResult(res))
}

func requireActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.CodeUnauthorized, "Unauthorized")
		return shared.Actor{}, false
	}
	return actor, true
}
