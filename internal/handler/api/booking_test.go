//go:build unit

package api_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"pharmashift/internal/domain/cancellation"
	"pharmashift/internal/domain/money"
	"pharmashift/internal/domain/penalty"
	"pharmashift/internal/domain/schedule"
	"pharmashift/internal/domain/shift"
	"pharmashift/internal/domain/user"
	"pharmashift/internal/handler/api"
	resdto "pharmashift/internal/handler/dto/response"
	"pharmashift/internal/handler/httperr"
	"pharmashift/internal/handler/middleware"
	"pharmashift/internal/pkg/errs"
	"pharmashift/internal/usecase/commands"
	"pharmashift/internal/usecase/shared"
	"pharmashift/tests/common/httptest"
	"pharmashift/tests/common/testutil"
	commandsmock "pharmashift/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	handler      *api.BookingHandler
	actor        shared.Actor
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands)
	s.actor = shared.Actor{ID: uuid.New(), Email: "pharmacist@example.com", Role: user.RolePharmacist.String()}

	// Stands in for RequireAuth: any bearer token authenticates as s.actor
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			middleware.SetActor(c, s.actor)
		}
		c.Next()
	}

	s.router.POST("/acceptInvitation", authMiddleware, s.handler.AcceptInvitation)
	s.router.POST("/declineInvitation", authMiddleware, s.handler.DeclineInvitation)
	s.router.POST("/cancelShiftAsWorker", authMiddleware, s.handler.CancelShiftAsWorker)
	s.router.POST("/cancelShiftAsPoster", authMiddleware, s.handler.CancelShiftAsPoster)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestAcceptInvitation
// ================================================================================

func (s *BookingHandlerTestSuite) TestAcceptInvitation() {
	url := "/acceptInvitation"
	invitationID := uuid.New()
	reqBody := map[string]any{"invitationId": invitationID.String()}

	result := &commands.AcceptInvitationResult{
		ShiftID:  uuid.New(),
		Name:     "Weekend cover",
		Location: "Main Street Pharmacy",
		Status:   shift.StatusFilled,
		Schedule: schedule.Schedule{{Date: "2026-11-20", StartTime: "09:00", EndTime: "17:00"}},
	}

	s.Run("success: returns the booked shift", func() {
		s.mockCommands.EXPECT().
			AcceptInvitation(gomock.Any(), commands.AcceptInvitationInput{InvitationID: invitationID, Worker: s.actor}).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.AcceptInvitationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal(result.ShiftID, body.Shift.ID)
		s.Equal("filled", body.Shift.Status)
		s.Equal(result.Schedule, body.Shift.Schedule)
	})

	s.Run("error: 401 without an authenticated actor", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	validation := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing invitationId", mutate: testutil.Field("invitationId", nil)},
		{name: "malformed invitationId", mutate: testutil.Field("invitationId", "not-a-uuid")},
	}
	for _, tc := range validation {
		s.Run("error: 400 on "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			s.Equal(httperr.CodeBadRequest, httptest.DecodeError(s.T(), rec).Code)
		})
	}
}

// ================================================================================
// TestDeclineInvitation
// ================================================================================

func (s *BookingHandlerTestSuite) TestDeclineInvitation() {
	url := "/declineInvitation"
	invitationID := uuid.New()
	reqBody := map[string]any{"invitationId": invitationID.String()}

	s.Run("success: returns a confirmation message", func() {
		s.mockCommands.EXPECT().
			DeclineInvitation(gomock.Any(), commands.DeclineInvitationInput{InvitationID: invitationID, Worker: s.actor}).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal("Invitation declined", body.Message)
	})

	s.Run("error: 410 when the invitation has expired", func() {
		s.mockCommands.EXPECT().DeclineInvitation(gomock.Any(), gomock.Any()).
			Return(errs.Userf(errs.ErrExpired, "Invitation has expired")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusGone, "Invitation has expired")
		s.Equal(httperr.CodeExpired, httptest.DecodeError(s.T(), rec).Code)
	})
}

// ================================================================================
// TestCancelShift
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelShift() {
	shiftID := uuid.New()
	ref := "pay_123"
	charged := &commands.CancelShiftResult{
		CancellationID:   uuid.New(),
		ShiftID:          shiftID,
		HoursBeforeStart: 30,
		Penalty: penalty.Penalty{
			Tier:              penalty.TierOneToTwo,
			Total:             money.FromUnits(150),
			CounterpartyShare: money.FromUnits(80),
			PlatformShare:     money.FromUnits(70),
		},
		PaymentStatus: cancellation.PaymentCharged,
		PaymentRef:    &ref,
	}

	s.Run("success: worker cancellation reports the charged penalty", func() {
		var got commands.CancelShiftInput
		s.mockCommands.EXPECT().CancelFilledShift(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.CancelShiftInput) (*commands.CancelShiftResult, error) {
				got = in
				return charged, nil
			}).Times(1)

		reqBody := map[string]any{"shiftId": shiftID.String(), "reason": "  family emergency  "}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cancelShiftAsWorker", reqBody, "bearer-token")

		var body resdto.CancelShiftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal(charged.CancellationID, body.Cancellation.ID)
		s.InDelta(150.0, body.Cancellation.TotalPenalty, 0.001)
		s.Equal(int64(8000), body.Cancellation.CounterpartyShareCents)
		s.Equal(int64(7000), body.Cancellation.PlatformShareCents)
		s.Equal("1_2d", body.Cancellation.Tier)
		s.Equal("charged", body.Cancellation.Status)
		s.Equal(&ref, body.Cancellation.PaymentRef)

		s.Equal(shift.PartyWorker, got.Party)
		s.Equal(s.actor, got.Actor)
		s.Nil(got.CancelledAt)
		s.Require().NotNil(got.Reason)
		s.Equal("family emergency", *got.Reason)
	})

	s.Run("success: poster cancellation passes the claimed instant through", func() {
		claimed := time.Date(2026, 11, 18, 9, 0, 0, 0, time.UTC)
		waived := &commands.CancelShiftResult{
			CancellationID:   uuid.New(),
			ShiftID:          shiftID,
			HoursBeforeStart: 200,
			Penalty:          penalty.Penalty{Tier: penalty.TierFivePlusDays},
			PaymentStatus:    cancellation.PaymentWaived,
		}
		var got commands.CancelShiftInput
		s.mockCommands.EXPECT().CancelFilledShift(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.CancelShiftInput) (*commands.CancelShiftResult, error) {
				got = in
				return waived, nil
			}).Times(1)

		reqBody := map[string]any{"shiftId": shiftID.String(), "cancelledAt": claimed.Format(time.RFC3339), "reason": "   "}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cancelShiftAsPoster", reqBody, "bearer-token")

		var body resdto.CancelShiftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("waived", body.Cancellation.Status)
		s.Zero(body.Cancellation.TotalPenaltyCents)
		s.Nil(body.Cancellation.PaymentRef)
		s.Contains(body.Message, "no penalty")

		s.Equal(shift.PartyPoster, got.Party)
		s.Require().NotNil(got.CancelledAt)
		s.True(claimed.Equal(*got.CancelledAt))
		s.Nil(got.Reason, "blank reason is dropped")
	})

	s.Run("error: 400 when the reason is too long", func() {
		reqBody := map[string]any{"shiftId": shiftID.String(), "reason": strings.Repeat("a", 1001)}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cancelShiftAsWorker", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 when shiftId is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cancelShiftAsPoster", map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestErrorMapping
// ================================================================================

func (s *BookingHandlerTestSuite) TestErrorMapping() {
	reqBody := map[string]any{"invitationId": uuid.New().String()}

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"unauthorized", errs.Userf(errs.ErrUnauthorized, "Sign in required"), http.StatusUnauthorized, httperr.CodeUnauthorized, "Sign in required"},
		{"forbidden", errs.Userf(errs.ErrForbidden, "This invitation is not for you"), http.StatusForbidden, httperr.CodeForbidden, "not for you"},
		{"not found", errs.Userf(errs.ErrNotFound, "Invitation not found"), http.StatusNotFound, httperr.CodeNotFound, "Invitation not found"},
		{"validation", errs.Userf(errs.ErrValidation, "Shift has no sessions"), http.StatusBadRequest, httperr.CodeBadRequest, "no sessions"},
		{"invalid state", errs.Userf(errs.ErrInvalidState, "Invitation is no longer pending"), http.StatusBadRequest, httperr.CodeInvalidState, "no longer pending"},
		{"payment method missing", errs.Userf(errs.ErrPaymentMethodMissing, "Add a payment method first"), http.StatusBadRequest, httperr.CodePaymentMethodMissing, "payment method"},
		{"conflict", errs.Userf(errs.ErrConflict, "Shift has already been filled"), http.StatusConflict, httperr.CodeConflict, "already been filled"},
		{"expired", errs.Userf(errs.ErrExpired, "Invitation has expired"), http.StatusGone, httperr.CodeExpired, "expired"},
		{"payment failed", errs.UserWithCause(errs.ErrPaymentFailed, errs.New("card declined"), "Penalty payment failed"), http.StatusPaymentRequired, httperr.CodePaymentFailed, "Penalty payment failed"},
		{"internal", errs.Wrap(errs.ErrDatabaseOperationFailed, "update shift"), http.StatusInternalServerError, httperr.CodeInternal, "Internal server error"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().AcceptInvitation(gomock.Any(), gomock.Any()).
				Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/acceptInvitation", reqBody, "bearer-token")

			httptest.AssertErrorResponse(s.T(), rec, tc.wantStatus, tc.wantMsg)
			s.Equal(tc.wantCode, httptest.DecodeError(s.T(), rec).Code)
		})
	}

	s.Run("internal errors do not leak their cause", func() {
		s.mockCommands.EXPECT().AcceptInvitation(gomock.Any(), gomock.Any()).
			Return(nil, errs.New("pq: relation shifts does not exist")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/acceptInvitation", reqBody, "bearer-token")

		s.Equal(http.StatusInternalServerError, rec.Code)
		s.NotContains(rec.Body.String(), "relation shifts")
	})
}
