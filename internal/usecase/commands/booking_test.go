//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"pharmashift/internal/domain/application"
	"pharmashift/internal/domain/cancellation"
	"pharmashift/internal/domain/invitation"
	"pharmashift/internal/domain/penalty"
	"pharmashift/internal/domain/schedule"
	"pharmashift/internal/domain/shift"
	"pharmashift/internal/infra/lock"
	"pharmashift/internal/infra/memstore"
	"pharmashift/internal/pkg/clock"
	"pharmashift/internal/pkg/errs"
	"pharmashift/internal/pkg/metrics"
	"pharmashift/internal/usecase/commands"
	"pharmashift/internal/usecase/shared"
	"pharmashift/tests/common/builder"
	sharedmock "pharmashift/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// The default shift starts 2026-11-20 09:00 UTC.
var shiftStart = time.Date(2026, 11, 20, 9, 0, 0, 0, time.UTC)

type BookingTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memstore.Store
	clock    *clock.MockClock
	ctrl     *gomock.Controller
	gateway  *sharedmock.MockPaymentGateway
	notifier *sharedmock.MockNotifier
	metrics  *metrics.Booking
	uc       commands.BookingCommands

	poster uuid.UUID
	worker shared.Actor
}

func (s *BookingTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.clock = clock.NewMockClock(shiftStart.Add(-30 * 24 * time.Hour))
	s.ctrl = gomock.NewController(s.T())
	s.gateway = sharedmock.NewMockPaymentGateway(s.ctrl)
	s.notifier = sharedmock.NewMockNotifier(s.ctrl)
	s.metrics = metrics.NewBooking(prometheus.NewRegistry())
	s.uc = s.newUseCase(s.store, lock.NoopLocker{})

	s.poster = uuid.New()
	s.worker = shared.Actor{ID: uuid.New(), Email: "worker@example.com", Role: "pharmacist"}
}

func (s *BookingTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingSuite(t *testing.T) {
	suite.Run(t, new(BookingTestSuite))
}

func (s *BookingTestSuite) newUseCase(uow shared.UnitOfWork, locker shared.ClaimLocker) commands.BookingCommands {
	return commands.NewBookingUseCase(uow, s.gateway, s.notifier, locker, penalty.NewTieredCalculator(), s.metrics, s.clock, time.UTC)
}

func (s *BookingTestSuite) allowNotifications() {
	s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (s *BookingTestSuite) seedShift(b *builder.ShiftBuilder) *shift.Shift {
	sh := b.WithPoster(s.poster).MustBuild()
	s.Require().NoError(s.store.Direct(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Shifts().Create(ctx, sh)
	}))
	return sh
}

func (s *BookingTestSuite) seedInvitation(b *builder.InvitationBuilder) *invitation.Invitation {
	inv := b.With(func(b *builder.InvitationBuilder) { b.InvitedBy = s.poster }).MustBuild()
	s.Require().NoError(s.store.Direct(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Invitations().Create(ctx, inv)
	}))
	return inv
}

func (s *BookingTestSuite) seedApplication(shiftID uuid.UUID, pharmacist uuid.UUID, status application.Status) *application.Application {
	app := builder.NewApplicationBuilder().With(func(b *builder.ApplicationBuilder) {
		b.ShiftID = shiftID
		b.PharmacistID = pharmacist
		b.Status = status
	}).MustBuild()
	s.Require().NoError(s.store.Direct(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Applications().Create(ctx, app)
	}))
	return app
}

func (s *BookingTestSuite) invitationFor(shiftID uuid.UUID, worker shared.Actor) *invitation.Invitation {
	return s.seedInvitation(builder.NewInvitationBuilder().ForShift(shiftID).ForPharmacist(worker.ID, worker.Email))
}

func (s *BookingTestSuite) shift(id uuid.UUID) *shift.Shift {
	sh, err := s.store.CommandReads().ShiftByID(s.ctx, id)
	s.Require().NoError(err)
	return sh
}

func (s *BookingTestSuite) invitationStatus(id uuid.UUID) invitation.Status {
	inv, err := s.store.CommandReads().InvitationByID(s.ctx, id)
	s.Require().NoError(err)
	return inv.Status()
}

func (s *BookingTestSuite) accept(invID uuid.UUID, worker shared.Actor) (*commands.AcceptInvitationResult, error) {
	return s.uc.AcceptInvitation(s.ctx, commands.AcceptInvitationInput{InvitationID: invID, Worker: worker})
}

// ================================================================================
// AcceptInvitation
// ================================================================================

func (s *BookingTestSuite) TestAcceptInvitation_Success() {
	sh := s.seedShift(builder.NewShiftBuilder())
	inv := s.invitationFor(sh.ID(), s.worker)
	sibling := s.invitationFor(sh.ID(), shared.Actor{ID: uuid.New(), Email: "other@example.com"})
	pendingApp := s.seedApplication(sh.ID(), uuid.New(), application.StatusPending)

	s.notifier.EXPECT().
		Notify(gomock.Any(), s.poster, commands.TemplateInvitationAccepted, gomock.Any()).
		Return(nil).Times(1)

	res, err := s.accept(inv.ID(), s.worker)
	s.Require().NoError(err)
	s.Equal(sh.ID(), res.ShiftID)
	s.Equal(shift.StatusFilled, res.Status)
	s.Equal(sh.Schedule(), res.Schedule)

	stored := s.shift(sh.ID())
	s.Equal(shift.StatusFilled, stored.Status())
	s.True(stored.IsAssignedTo(s.worker.ID))
	s.Require().NotNil(stored.FilledAt())

	s.Equal(invitation.StatusAccepted, s.invitationStatus(inv.ID()))
	s.Equal(invitation.StatusExpired, s.invitationStatus(sibling.ID()))

	apps := s.store.Applications(sh.ID())
	s.Require().Len(apps, 1)
	s.Equal(pendingApp.ID(), apps[0].ID())
	s.Equal(application.StatusRejected, apps[0].Status())
	s.Equal(application.ReasonFilledByInvitation, *apps[0].RejectionReason())

	s.Equal(1.0, testutil.ToFloat64(s.metrics.InvitationAcceptTotal.WithLabelValues("success")))
}

func (s *BookingTestSuite) TestAcceptInvitation_MatchesByEmail() {
	s.allowNotifications()
	sh := s.seedShift(builder.NewShiftBuilder())
	inv := s.seedInvitation(builder.NewInvitationBuilder().ForShift(sh.ID()).With(func(b *builder.InvitationBuilder) {
		b.PharmacistEmail = "WORKER@example.com"
	}))

	_, err := s.accept(inv.ID(), s.worker)
	s.Require().NoError(err)
	s.True(s.shift(sh.ID()).IsAssignedTo(s.worker.ID))
}

func (s *BookingTestSuite) TestAcceptInvitation_NotificationFailureKeepsBooking() {
	sh := s.seedShift(builder.NewShiftBuilder())
	inv := s.invitationFor(sh.ID(), s.worker)
	s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp down")).Times(1)

	_, err := s.accept(inv.ID(), s.worker)
	s.Require().NoError(err)
	s.Equal(shift.StatusFilled, s.shift(sh.ID()).Status())
}

func (s *BookingTestSuite) TestAcceptInvitation_CascadeFailureKeepsBooking() {
	s.allowNotifications()
	sh := s.seedShift(builder.NewShiftBuilder())
	inv := s.invitationFor(sh.ID(), s.worker)
	s.store.FailOn("applications.reject_pending_for_shift", errors.New("timeout"))

	_, err := s.accept(inv.ID(), s.worker)
	s.Require().NoError(err)
	s.Equal(shift.StatusFilled, s.shift(sh.ID()).Status())
	s.Equal(invitation.StatusAccepted, s.invitationStatus(inv.ID()))
}

func (s *BookingTestSuite) TestAcceptInvitation_PreconditionFailures() {
	other := shared.Actor{ID: uuid.New(), Email: "someone@example.com"}

	tests := []struct {
		name    string
		setup   func() uuid.UUID
		want    error
		message string
	}{
		{
			name:  "unknown invitation",
			setup: func() uuid.UUID { return uuid.New() },
			want:  errs.ErrNotFound,
		},
		{
			name: "invitation for another pharmacist",
			setup: func() uuid.UUID {
				sh := s.seedShift(builder.NewShiftBuilder())
				return s.invitationFor(sh.ID(), other).ID()
			},
			want: errs.ErrForbidden,
		},
		{
			name: "invitation already declined",
			setup: func() uuid.UUID {
				sh := s.seedShift(builder.NewShiftBuilder())
				return s.seedInvitation(builder.NewInvitationBuilder().ForShift(sh.ID()).
					ForPharmacist(s.worker.ID, s.worker.Email).WithStatus(invitation.StatusDeclined)).ID()
			},
			want:    errs.ErrInvalidState,
			message: "invitation is already declined",
		},
		{
			name: "shift already filled",
			setup: func() uuid.UUID {
				sh := s.seedShift(builder.NewShiftBuilder().FilledBy(other.ID, s.clock.Now()))
				return s.invitationFor(sh.ID(), s.worker).ID()
			},
			want:    errs.ErrConflict,
			message: "shift is no longer available (status: filled)",
		},
		{
			name: "shift cancelled",
			setup: func() uuid.UUID {
				sh := s.seedShift(builder.NewShiftBuilder().WithStatus(shift.StatusCancelled))
				return s.invitationFor(sh.ID(), s.worker).ID()
			},
			want: errs.ErrConflict,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.accept(tt.setup(), s.worker)
			s.Require().Error(err)
			s.True(errs.Is(err, tt.want), "got %v", err)
			if tt.message != "" {
				s.Equal(tt.message, err.Error())
			}
		})
	}
}

func (s *BookingTestSuite) TestAcceptInvitation_ScheduleConflict() {
	s.seedShift(builder.NewShiftBuilder().
		WithSessions(schedule.Session{Date: "2026-11-20", StartTime: "13:00", EndTime: "21:00"}).
		FilledBy(s.worker.ID, s.clock.Now()))
	sh := s.seedShift(builder.NewShiftBuilder())
	inv := s.invitationFor(sh.ID(), s.worker)

	_, err := s.accept(inv.ID(), s.worker)
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrConflict))
	s.Contains(err.Error(), "on 2026-11-20")

	s.Equal(shift.StatusOpen, s.shift(sh.ID()).Status())
	s.Equal(invitation.StatusPending, s.invitationStatus(inv.ID()))
}

func (s *BookingTestSuite) TestAcceptInvitation_PosterCannotBookOwnShift() {
	admin := shared.Actor{ID: s.poster, Email: "admin@example.com", Role: "admin"}
	sh := s.seedShift(builder.NewShiftBuilder())
	inv := s.invitationFor(sh.ID(), admin)

	_, err := s.accept(inv.ID(), admin)
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrForbidden))

	stored := s.shift(sh.ID())
	s.Equal(shift.StatusOpen, stored.Status())
	s.Nil(stored.AssignedTo())
	s.Equal(invitation.StatusPending, s.invitationStatus(inv.ID()))
}

func (s *BookingTestSuite) TestAcceptInvitation_AdjacentSessionsDoNotConflict() {
	s.allowNotifications()
	s.seedShift(builder.NewShiftBuilder().
		WithSessions(schedule.Session{Date: "2026-11-20", StartTime: "17:00", EndTime: "21:00"}).
		FilledBy(s.worker.ID, s.clock.Now()))
	sh := s.seedShift(builder.NewShiftBuilder())
	inv := s.invitationFor(sh.ID(), s.worker)

	_, err := s.accept(inv.ID(), s.worker)
	s.NoError(err)
}

func (s *BookingTestSuite) TestAcceptInvitation_ExpiryIsPersistedAndIdempotent() {
	sh := s.seedShift(builder.NewShiftBuilder())
	inv := s.seedInvitation(builder.NewInvitationBuilder().ForShift(sh.ID()).
		ForPharmacist(s.worker.ID, s.worker.Email).ExpiringAt(s.clock.Now().Add(-time.Second)))

	_, err := s.accept(inv.ID(), s.worker)
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrExpired))
	s.Equal(invitation.StatusExpired, s.invitationStatus(inv.ID()))

	_, err = s.accept(inv.ID(), s.worker)
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrInvalidState))
	s.Equal("invitation is already expired", err.Error())
	s.Equal(invitation.StatusExpired, s.invitationStatus(inv.ID()))

	s.Equal(shift.StatusOpen, s.shift(sh.ID()).Status())
}

func (s *BookingTestSuite) TestAcceptInvitation_DeadlineIsInclusive() {
	s.allowNotifications()
	sh := s.seedShift(builder.NewShiftBuilder())
	inv := s.seedInvitation(builder.NewInvitationBuilder().ForShift(sh.ID()).
		ForPharmacist(s.worker.ID, s.worker.Email).ExpiringAt(s.clock.Now()))

	_, err := s.accept(inv.ID(), s.worker)
	s.NoError(err)
}

func (s *BookingTestSuite) TestAcceptInvitation_LockHeld() {
	locker := sharedmock.NewMockClaimLocker(s.ctrl)
	locker.EXPECT().TryLock(gomock.Any(), gomock.Any()).Return(nil, false, nil).Times(1)
	uc := s.newUseCase(s.store, locker)

	sh := s.seedShift(builder.NewShiftBuilder())
	inv := s.invitationFor(sh.ID(), s.worker)

	_, err := uc.AcceptInvitation(s.ctx, commands.AcceptInvitationInput{InvitationID: inv.ID(), Worker: s.worker})
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrConflict))
	s.Equal(shift.StatusOpen, s.shift(sh.ID()).Status())
	s.Equal(1.0, testutil.ToFloat64(s.metrics.ClaimConflictsTotal))
}

func (s *BookingTestSuite) TestAcceptInvitation_LockUnavailableFallsBackToStore() {
	s.allowNotifications()
	locker := sharedmock.NewMockClaimLocker(s.ctrl)
	locker.EXPECT().TryLock(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("dial tcp: refused")).Times(1)
	uc := s.newUseCase(s.store, locker)

	sh := s.seedShift(builder.NewShiftBuilder())
	inv := s.invitationFor(sh.ID(), s.worker)

	_, err := uc.AcceptInvitation(s.ctx, commands.AcceptInvitationInput{InvitationID: inv.ID(), Worker: s.worker})
	s.Require().NoError(err)
	s.True(s.shift(sh.ID()).IsAssignedTo(s.worker.ID))
}

// gatedUoW holds every request at the conflict check until all of them got
// there, so they all pass the preconditions before anyone claims the shift.
type gatedUoW struct {
	shared.UnitOfWork
	gate *sync.WaitGroup
}

func (g gatedUoW) CommandReads() shared.CommandReads {
	return gatedReads{CommandReads: g.UnitOfWork.CommandReads(), gate: g.gate}
}

type gatedReads struct {
	shared.CommandReads
	gate *sync.WaitGroup
}

func (r gatedReads) FilledShiftsForWorker(ctx context.Context, workerID uuid.UUID) ([]*shift.Shift, error) {
	r.gate.Done()
	r.gate.Wait()
	return r.CommandReads.FilledShiftsForWorker(ctx, workerID)
}

func (s *BookingTestSuite) TestAcceptInvitation_SimultaneousAcceptsOneWinner() {
	s.allowNotifications()
	sh := s.seedShift(builder.NewShiftBuilder())

	const racers = 8
	workers := make([]shared.Actor, racers)
	invitations := make([]*invitation.Invitation, racers)
	for i := range workers {
		workers[i] = shared.Actor{ID: uuid.New(), Email: uuid.NewString() + "@example.com"}
		invitations[i] = s.invitationFor(sh.ID(), workers[i])
	}

	gate := &sync.WaitGroup{}
	gate.Add(racers)
	uc := s.newUseCase(gatedUoW{UnitOfWork: s.store, gate: gate}, lock.NoopLocker{})

	errsByWorker := make([]error, racers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errsByWorker[i] = uc.AcceptInvitation(s.ctx, commands.AcceptInvitationInput{
				InvitationID: invitations[i].ID(),
				Worker:       workers[i],
			})
		}(i)
	}
	wg.Wait()

	winner := -1
	for i, err := range errsByWorker {
		if err == nil {
			s.Equal(-1, winner, "more than one accept succeeded")
			winner = i
			continue
		}
		s.True(errs.Is(err, errs.ErrConflict), "loser %d got %v", i, err)
	}
	s.Require().NotEqual(-1, winner)

	stored := s.shift(sh.ID())
	s.Equal(shift.StatusFilled, stored.Status())
	s.True(stored.IsAssignedTo(workers[winner].ID))
	s.Equal(invitation.StatusAccepted, s.invitationStatus(invitations[winner].ID()))
	s.Equal(float64(racers-1), testutil.ToFloat64(s.metrics.InvitationAcceptTotal.WithLabelValues("conflict")))
}

func (s *BookingTestSuite) TestAcceptInvitation_ConcurrentAcceptsNeverDoubleAssign() {
	s.allowNotifications()
	sh := s.seedShift(builder.NewShiftBuilder())

	const racers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []uuid.UUID
	)
	for i := 0; i < racers; i++ {
		worker := shared.Actor{ID: uuid.New(), Email: uuid.NewString() + "@example.com"}
		inv := s.invitationFor(sh.ID(), worker)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.accept(inv.ID(), worker); err == nil {
				mu.Lock()
				winners = append(winners, worker.ID)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Require().Len(winners, 1)
	s.True(s.shift(sh.ID()).IsAssignedTo(winners[0]))
}

// ================================================================================
// DeclineInvitation
// ================================================================================

func (s *BookingTestSuite) TestDeclineInvitation() {
	sh := s.seedShift(builder.NewShiftBuilder())
	inv := s.invitationFor(sh.ID(), s.worker)
	s.notifier.EXPECT().
		Notify(gomock.Any(), s.poster, commands.TemplateInvitationDeclined, gomock.Any()).
		Return(nil).Times(1)

	err := s.uc.DeclineInvitation(s.ctx, commands.DeclineInvitationInput{InvitationID: inv.ID(), Worker: s.worker})
	s.Require().NoError(err)
	s.Equal(invitation.StatusDeclined, s.invitationStatus(inv.ID()))
	s.Equal(shift.StatusOpen, s.shift(sh.ID()).Status())

	err = s.uc.DeclineInvitation(s.ctx, commands.DeclineInvitationInput{InvitationID: inv.ID(), Worker: s.worker})
	s.True(errs.Is(err, errs.ErrInvalidState))
}

func (s *BookingTestSuite) TestDeclineInvitation_Expired() {
	sh := s.seedShift(builder.NewShiftBuilder())
	inv := s.seedInvitation(builder.NewInvitationBuilder().ForShift(sh.ID()).
		ForPharmacist(s.worker.ID, s.worker.Email).ExpiringAt(s.clock.Now().Add(-time.Hour)))

	err := s.uc.DeclineInvitation(s.ctx, commands.DeclineInvitationInput{InvitationID: inv.ID(), Worker: s.worker})
	s.True(errs.Is(err, errs.ErrExpired))
	s.Equal(invitation.StatusExpired, s.invitationStatus(inv.ID()))
}

// ================================================================================
// CancelFilledShift
// ================================================================================

func (s *BookingTestSuite) filledShift() *shift.Shift {
	return s.seedShift(builder.NewShiftBuilder().FilledBy(s.worker.ID, s.clock.Now().Add(-time.Hour)))
}

func (s *BookingTestSuite) cancel(sh *shift.Shift, actor uuid.UUID, party shift.Party) (*commands.CancelShiftResult, error) {
	return s.uc.CancelFilledShift(s.ctx, commands.CancelShiftInput{
		ShiftID: sh.ID(),
		Actor:   shared.Actor{ID: actor},
		Party:   party,
	})
}

func (s *BookingTestSuite) TestCancelFilledShift_WaivedWithAmpleNotice() {
	sh := s.filledShift()
	accepted := s.seedApplication(sh.ID(), s.worker.ID, application.StatusAccepted)
	s.notifier.EXPECT().
		Notify(gomock.Any(), s.poster, commands.TemplateShiftCancelled, gomock.Any()).
		Return(nil).Times(1)

	res, err := s.cancel(sh, s.worker.ID, shift.PartyWorker)
	s.Require().NoError(err)
	s.Equal(cancellation.PaymentWaived, res.PaymentStatus)
	s.True(res.Penalty.Waived())
	s.Equal(penalty.TierFivePlusDays, res.Penalty.Tier)
	s.Equal(30*24, res.HoursBeforeStart)
	s.Nil(res.PaymentRef)

	stored := s.shift(sh.ID())
	s.Equal(shift.StatusCancelled, stored.Status())
	s.Nil(stored.AssignedTo())

	records := s.store.Cancellations(sh.ID())
	s.Require().Len(records, 1)
	s.Equal(s.worker.ID, records[0].BreachingParty())
	s.Equal(s.poster, records[0].Counterparty())

	apps := s.store.Applications(sh.ID())
	s.Require().Len(apps, 1)
	s.Equal(accepted.ID(), apps[0].ID())
	s.Equal(application.StatusWithdrawn, apps[0].Status())

	s.Equal(1.0, testutil.ToFloat64(s.metrics.ShiftCancellations.WithLabelValues("worker", "5d_plus")))
}

func (s *BookingTestSuite) TestCancelFilledShift_PosterChargedWithShortNotice() {
	s.clock.Set(shiftStart.Add(-60 * time.Hour))
	sh := s.filledShift()
	s.store.PutPaymentMethod(memstore.PaymentMethod{UserID: s.poster, ProviderRef: "pm_poster", IsDefault: true})

	s.gateway.EXPECT().Capture(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req shared.CaptureRequest) (string, error) {
			s.Equal(int64(10000), req.AmountCents)
			s.Equal("pm_poster", req.PaymentMethodRef)
			s.True(strings.HasPrefix(req.IdempotencyKey, "shift-cancel:"+sh.ID().String()))
			s.Equal("poster", req.Metadata["breaching_role"])
			return "ch_123", nil
		}).Times(1)
	s.notifier.EXPECT().
		Notify(gomock.Any(), s.worker.ID, commands.TemplateShiftCancelled, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, payload map[string]any) error {
			s.Equal(int64(5000), payload["compensation_share_cents"])
			return nil
		}).Times(1)

	res, err := s.cancel(sh, s.poster, shift.PartyPoster)
	s.Require().NoError(err)
	s.Equal(60, res.HoursBeforeStart)
	s.Equal(penalty.TierTwoToThree, res.Penalty.Tier)
	s.Equal(int64(10000), res.Penalty.Total.Cents())
	s.Equal(int64(5000), res.Penalty.CounterpartyShare.Cents())
	s.Equal(int64(5000), res.Penalty.PlatformShare.Cents())
	s.Equal(cancellation.PaymentCharged, res.PaymentStatus)
	s.Require().NotNil(res.PaymentRef)
	s.Equal("ch_123", *res.PaymentRef)

	s.Equal(shift.StatusCancelled, s.shift(sh.ID()).Status())
	s.Equal(10000.0, testutil.ToFloat64(s.metrics.PenaltyCentsTotal.WithLabelValues("poster")))
}

func (s *BookingTestSuite) TestCancelFilledShift_BackdatedInstantIsIgnored() {
	s.clock.Set(shiftStart.Add(-30 * time.Hour))
	sh := s.filledShift()
	s.store.PutPaymentMethod(memstore.PaymentMethod{UserID: s.worker.ID, ProviderRef: "pm_worker", IsDefault: true})
	s.gateway.EXPECT().Capture(gomock.Any(), gomock.Any()).Return("ch_1", nil).Times(1)
	s.allowNotifications()

	claimed := shiftStart.Add(-200 * time.Hour)
	res, err := s.uc.CancelFilledShift(s.ctx, commands.CancelShiftInput{
		ShiftID:     sh.ID(),
		Actor:       shared.Actor{ID: s.worker.ID},
		Party:       shift.PartyWorker,
		CancelledAt: &claimed,
	})
	s.Require().NoError(err)
	s.Equal(30, res.HoursBeforeStart)
	s.Equal(int64(15000), res.Penalty.Total.Cents())
}

func (s *BookingTestSuite) TestCancelFilledShift_AfterStartIsHarshestTier() {
	s.clock.Set(shiftStart.Add(90 * time.Minute))
	sh := s.filledShift()
	s.store.PutPaymentMethod(memstore.PaymentMethod{UserID: s.worker.ID, ProviderRef: "pm_worker", IsDefault: true})
	s.gateway.EXPECT().Capture(gomock.Any(), gomock.Any()).Return("ch_late", nil).Times(1)
	s.allowNotifications()

	res, err := s.cancel(sh, s.worker.ID, shift.PartyWorker)
	s.Require().NoError(err)
	s.Equal(-2, res.HoursBeforeStart)
	s.Equal(penalty.TierUnderOneDay, res.Penalty.Tier)
	s.Equal(int64(30000), res.Penalty.Total.Cents())
}

func (s *BookingTestSuite) TestCancelFilledShift_MissingPaymentMethod() {
	s.clock.Set(shiftStart.Add(-5 * time.Hour))
	sh := s.filledShift()

	_, err := s.cancel(sh, s.worker.ID, shift.PartyWorker)
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrPaymentMethodMissing))
	s.Contains(err.Error(), "300.00")

	s.Equal(shift.StatusFilled, s.shift(sh.ID()).Status())
	s.Empty(s.store.Cancellations(sh.ID()))
}

func (s *BookingTestSuite) TestCancelFilledShift_PaymentFailureChangesNothing() {
	s.clock.Set(shiftStart.Add(-5 * time.Hour))
	sh := s.filledShift()
	accepted := s.seedApplication(sh.ID(), s.worker.ID, application.StatusAccepted)
	s.store.PutPaymentMethod(memstore.PaymentMethod{UserID: s.worker.ID, ProviderRef: "pm_declined", IsDefault: true})
	s.gateway.EXPECT().Capture(gomock.Any(), gomock.Any()).Return("", errors.New("card_declined")).Times(1)

	_, err := s.cancel(sh, s.worker.ID, shift.PartyWorker)
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrPaymentFailed))
	s.Contains(err.Error(), "update it")
	s.NotContains(err.Error(), "card_declined")

	stored := s.shift(sh.ID())
	s.Equal(shift.StatusFilled, stored.Status())
	s.True(stored.IsAssignedTo(s.worker.ID))
	s.Empty(s.store.Cancellations(sh.ID()))
	s.Equal(accepted.Status(), s.store.Applications(sh.ID())[0].Status())
}

func (s *BookingTestSuite) TestCancelFilledShift_StoreFailureRollsBack() {
	sh := s.filledShift()
	s.store.FailOn("cancellations.create", errors.New("disk full"))

	_, err := s.cancel(sh, s.worker.ID, shift.PartyWorker)
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
	s.Equal(shift.StatusFilled, s.shift(sh.ID()).Status())
}

func (s *BookingTestSuite) TestCancelFilledShift_Authorization() {
	tests := []struct {
		name  string
		shift func() *shift.Shift
		actor func() uuid.UUID
		party shift.Party
		want  error
	}{
		{
			name:  "worker who is not assigned",
			shift: s.filledShift,
			actor: uuid.New,
			party: shift.PartyWorker,
			want:  errs.ErrForbidden,
		},
		{
			name:  "poster role taken by the worker",
			shift: s.filledShift,
			actor: func() uuid.UUID { return s.worker.ID },
			party: shift.PartyPoster,
			want:  errs.ErrForbidden,
		},
		{
			name:  "poster cancelling an open shift",
			shift: func() *shift.Shift { return s.seedShift(builder.NewShiftBuilder()) },
			actor: func() uuid.UUID { return s.poster },
			party: shift.PartyPoster,
			want:  errs.ErrInvalidState,
		},
		{
			name:  "poster cancelling a completed shift",
			shift: func() *shift.Shift { return s.seedShift(builder.NewShiftBuilder().WithStatus(shift.StatusCompleted)) },
			actor: func() uuid.UUID { return s.poster },
			party: shift.PartyPoster,
			want:  errs.ErrInvalidState,
		},
		{
			name:  "unknown shift",
			shift: func() *shift.Shift { return builder.NewShiftBuilder().MustBuild() },
			actor: func() uuid.UUID { return s.poster },
			party: shift.PartyPoster,
			want:  errs.ErrNotFound,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.cancel(tt.shift(), tt.actor(), tt.party)
			s.Require().Error(err)
			s.True(errs.Is(err, tt.want), "got %v", err)
		})
	}
}

func (s *BookingTestSuite) TestCancelFilledShift_SecondCancelIsInvalidState() {
	s.allowNotifications()
	sh := s.filledShift()

	_, err := s.cancel(sh, s.worker.ID, shift.PartyWorker)
	s.Require().NoError(err)

	_, err = s.cancel(sh, s.poster, shift.PartyPoster)
	s.True(errs.Is(err, errs.ErrInvalidState))
	s.Len(s.store.Cancellations(sh.ID()), 1)
}
