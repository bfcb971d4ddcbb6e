package api

import (
	"net/http"

	resdto "pharmashift/internal/handler/dto/response"
	"pharmashift/internal/handler/httperr"
	"pharmashift/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ShiftHandler struct {
	q queries.ShiftQueries
}

func NewShiftHandler(q queries.ShiftQueries) *ShiftHandler {
	return &ShiftHandler{q: q}
}

// @Summary Get shift
// @Description The assignee is only shown to the poster and the assigned pharmacist.
// @Tags shifts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shift ID"
// @Success 200 {object} resdto.ShiftResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/shifts/{id} [get]
func (h *ShiftHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, "Invalid shift id")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromShiftView(view))
}
