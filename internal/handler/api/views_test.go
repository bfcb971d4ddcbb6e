//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"pharmashift/internal/domain/schedule"
	"pharmashift/internal/domain/user"
	"pharmashift/internal/handler/api"
	resdto "pharmashift/internal/handler/dto/response"
	"pharmashift/internal/handler/middleware"
	"pharmashift/internal/pkg/errs"
	"pharmashift/internal/usecase/queries"
	"pharmashift/internal/usecase/shared"
	"pharmashift/tests/common/httptest"
	queriesmock "pharmashift/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ViewHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockInvitations *queriesmock.MockInvitationQueries
	mockShifts      *queriesmock.MockShiftQueries
	actor           shared.Actor
}

func (s *ViewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockInvitations = queriesmock.NewMockInvitationQueries(s.mockCtrl)
	s.mockShifts = queriesmock.NewMockShiftQueries(s.mockCtrl)
	s.actor = shared.Actor{ID: uuid.New(), Email: "pharmacist@example.com", Role: user.RolePharmacist.String()}

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			middleware.SetActor(c, s.actor)
		}
		c.Next()
	}

	invitations := api.NewInvitationHandler(s.mockInvitations)
	shifts := api.NewShiftHandler(s.mockShifts)
	s.router.GET("/invitations", authMiddleware, invitations.List)
	s.router.GET("/invitations/:id", authMiddleware, invitations.Get)
	s.router.GET("/shifts/:id", authMiddleware, shifts.Get)
}

func (s *ViewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestViewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ViewHandlerTestSuite))
}

func (s *ViewHandlerTestSuite) invitationView() *queries.InvitationView {
	expires := time.Date(2026, 11, 1, 12, 0, 0, 0, time.UTC)
	return &queries.InvitationView{
		ID:              uuid.New(),
		ShiftID:         uuid.New(),
		ShiftName:       "Weekend cover",
		ShiftLocation:   "Main Street Pharmacy",
		ShiftSchedule:   schedule.Schedule{{Date: "2026-11-20", StartTime: "09:00", EndTime: "17:00"}},
		PharmacistID:    &s.actor.ID,
		PharmacistEmail: s.actor.Email,
		InvitedBy:       uuid.New(),
		Status:          "pending",
		ExpiresAt:       &expires,
		CreatedAt:       time.Date(2026, 10, 29, 12, 0, 0, 0, time.UTC),
	}
}

// ================================================================================
// Invitations
// ================================================================================

func (s *ViewHandlerTestSuite) TestListInvitations() {
	s.Run("success: lists the caller's invitations", func() {
		views := []*queries.InvitationView{s.invitationView(), s.invitationView()}
		s.mockInvitations.EXPECT().ListForPharmacist(gomock.Any(), s.actor).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/invitations", nil, "bearer-token")

		var body []resdto.InvitationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(views[0].ID, body[0].ID)
		s.Equal("Weekend cover", body[0].ShiftName)
		s.Equal(views[0].ShiftSchedule, body[0].ShiftSchedule)
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockInvitations.EXPECT().ListForPharmacist(gomock.Any(), gomock.Any()).
			Return([]*queries.InvitationView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/invitations", nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 401 without an authenticated actor", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/invitations", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *ViewHandlerTestSuite) TestGetInvitation() {
	s.Run("success", func() {
		view := s.invitationView()
		s.mockInvitations.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/invitations/"+view.ID.String(), nil, "bearer-token")

		var body resdto.InvitationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("pending", body.Status)
		s.Require().NotNil(body.ExpiresAt)
		s.True(view.ExpiresAt.Equal(*body.ExpiresAt))
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/invitations/abc", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid invitation id")
	})

	s.Run("error: 403 for someone else's invitation", func() {
		s.mockInvitations.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Userf(errs.ErrForbidden, "This invitation is not for you")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/invitations/"+uuid.NewString(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not for you")
	})
}

// ================================================================================
// Shifts
// ================================================================================

func (s *ViewHandlerTestSuite) TestGetShift() {
	s.Run("success", func() {
		filledAt := time.Date(2026, 11, 2, 8, 0, 0, 0, time.UTC)
		view := &queries.ShiftView{
			ID:              uuid.New(),
			Name:            "Weekend cover",
			Location:        "Main Street Pharmacy",
			Status:          "filled",
			Schedule:        schedule.Schedule{{Date: "2026-11-20", StartTime: "09:00", EndTime: "17:00"}},
			HourlyRateCents: 6500,
			CreatedBy:       uuid.New(),
			AssignedTo:      &s.actor.ID,
			FilledAt:        &filledAt,
		}
		s.mockShifts.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/shifts/"+view.ID.String(), nil, "bearer-token")

		var body resdto.ShiftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(int64(6500), body.HourlyRateCents)
		s.Equal(&s.actor.ID, body.AssignedTo)
	})

	s.Run("error: 404 when the shift does not exist", func() {
		s.mockShifts.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Userf(errs.ErrNotFound, "Shift not found")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/shifts/"+uuid.NewString(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Shift not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/shifts/xyz", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid shift id")
	})
}
