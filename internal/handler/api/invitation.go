package api

import (
	"net/http"

	resdto "pharmashift/internal/handler/dto/response"
	"pharmashift/internal/handler/httperr"
	"pharmashift/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvitationHandler struct {
	q queries.InvitationQueries
}

func NewInvitationHandler(q queries.InvitationQueries) *InvitationHandler {
	return &InvitationHandler{q: q}
}

// @Summary List my invitations
// @Description Invitations addressed to the caller by id or email. Overdue pending invitations are reported as expired.
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.InvitationResponse
// @Failure 401 {object} httperr.Response
// @Router /api/invitations [get]
func (h *InvitationHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	views, err := h.q.ListForPharmacist(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvitationViews(views))
}

// @Summary Get invitation
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invitation ID"
// @Success 200 {object} resdto.InvitationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/invitations/{id} [get]
func (h *InvitationHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid invitation id")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvitationView(view))
}
