package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pharmashift/internal/domain/application"
	"pharmashift/internal/domain/cancellation"
	"pharmashift/internal/domain/invitation"
	"pharmashift/internal/domain/penalty"
	"pharmashift/internal/domain/schedule"
	"pharmashift/internal/domain/shift"
	"pharmashift/internal/pkg/clock"
	"pharmashift/internal/pkg/errs"
	"pharmashift/internal/pkg/metrics"
	"pharmashift/internal/pkg/patch"
	"pharmashift/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	TemplateInvitationAccepted = "invitation_accepted"
	TemplateInvitationDeclined = "invitation_declined"
	TemplateShiftCancelled     = "shift_cancelled"
)

type AcceptInvitationInput struct {
	InvitationID uuid.UUID
	Worker       shared.Actor
}

// AcceptInvitationResult only carries what the invited worker could already see.
type AcceptInvitationResult struct {
	ShiftID  uuid.UUID
	Name     string
	Location string
	Status   shift.Status
	Schedule schedule.Schedule
}

type DeclineInvitationInput struct {
	InvitationID uuid.UUID
	Worker       shared.Actor
}

type CancelShiftInput struct {
	ShiftID uuid.UUID
	Actor   shared.Actor
	Party   shift.Party
	// CancelledAt is the client's claimed instant; it can push the instant later, never earlier.
	CancelledAt *time.Time
	Reason      *string
}

type CancelShiftResult struct {
	CancellationID   uuid.UUID
	ShiftID          uuid.UUID
	HoursBeforeStart int
	Penalty          penalty.Penalty
	PaymentStatus    cancellation.PaymentStatus
	PaymentRef       *string
}

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

type BookingCommands interface {
	AcceptInvitation(ctx context.Context, in AcceptInvitationInput) (*AcceptInvitationResult, error)
	DeclineInvitation(ctx context.Context, in DeclineInvitationInput) error
	CancelFilledShift(ctx context.Context, in CancelShiftInput) (*CancelShiftResult, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	gateway  shared.PaymentGateway
	notifier shared.Notifier
	locker   shared.ClaimLocker
	calc     penalty.Calculator
	metrics  *metrics.Booking
	clock    clock.Clock
	loc      *time.Location
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	gateway shared.PaymentGateway,
	notifier shared.Notifier,
	locker shared.ClaimLocker,
	calc penalty.Calculator,
	m *metrics.Booking,
	clk clock.Clock,
	loc *time.Location,
) BookingCommands {
	if loc == nil {
		loc = time.UTC
	}
	return &bookingUseCaseImpl{
		uow:      uow,
		gateway:  gateway,
		notifier: notifier,
		locker:   locker,
		calc:     calc,
		metrics:  m,
		clock:    clk,
		loc:      loc,
	}
}

func (uc *bookingUseCaseImpl) AcceptInvitation(ctx context.Context, in AcceptInvitationInput) (*AcceptInvitationResult, error) {
	res, err := uc.acceptInvitation(ctx, in)
	uc.metrics.IncAccept(resultLabel(err))
	return res, err
}

func (uc *bookingUseCaseImpl) acceptInvitation(ctx context.Context, in AcceptInvitationInput) (*AcceptInvitationResult, error) {
	now := uc.clock.Now()
	reads := uc.uow.CommandReads()

	inv, err := uc.respondableInvitation(ctx, in.InvitationID, in.Worker, now)
	if err != nil {
		return nil, err
	}

	sh, err := reads.ShiftByID(ctx, inv.ShiftID())
	if err != nil {
		return nil, readErr(err, "shift not found")
	}
	// A poster booked onto their own shift could never cancel it.
	if sh.CreatedBy() == in.Worker.ID {
		return nil, errs.Userf(errs.ErrForbidden, "you cannot accept a shift you posted")
	}
	if err := sh.EnsureAssignable(); err != nil {
		if errs.Is(err, shift.ErrAlreadyAssigned) {
			return nil, errs.Userf(errs.ErrConflict, "shift is already assigned")
		}
		return nil, errs.Userf(errs.ErrConflict, "shift is no longer available (status: %s)", sh.Status())
	}

	committed, err := reads.FilledShiftsForWorker(ctx, in.Worker.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if c, found := schedule.FindConflict(sh.Schedule(), commitmentsExcluding(committed, sh.ID())); found {
		return nil, errs.Userf(errs.ErrConflict, "schedule conflict with shift %s on %s", c.ShiftID, c.Date)
	}

	release, err := uc.acquireClaim(ctx, sh.ID())
	if err != nil {
		return nil, err
	}
	defer release()

	if err := uc.claim(ctx, sh, in.Worker.ID, now); err != nil {
		return nil, err
	}

	// The shift is ours from here on; nothing below may fail the request.
	after := context.WithoutCancel(ctx)
	uc.cascadeAcceptance(after, inv, sh.ID(), now)
	uc.notify(after, sh.CreatedBy(), TemplateInvitationAccepted, map[string]any{
		"shift_id":         sh.ID().String(),
		"shift_name":       sh.Name(),
		"invitation_id":    inv.ID().String(),
		"pharmacist_id":    in.Worker.ID.String(),
		"pharmacist_email": in.Worker.Email,
	})

	return &AcceptInvitationResult{
		ShiftID:  sh.ID(),
		Name:     sh.Name(),
		Location: sh.Location(),
		Status:   sh.Status(),
		Schedule: sh.Schedule(),
	}, nil
}

func (uc *bookingUseCaseImpl) DeclineInvitation(ctx context.Context, in DeclineInvitationInput) error {
	now := uc.clock.Now()

	inv, err := uc.respondableInvitation(ctx, in.InvitationID, in.Worker, now)
	if err != nil {
		return err
	}
	if err := inv.Decline(now); err != nil {
		return errs.Userf(errs.ErrInvalidState, "invitation can no longer be declined")
	}

	var won bool
	err = uc.uow.Direct(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Invitations().SaveTransition(ctx, inv, invitation.StatusPending)
		won = ok
		return err
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !won {
		return errs.Userf(errs.ErrConflict, "invitation was answered by another request")
	}

	uc.notify(context.WithoutCancel(ctx), inv.InvitedBy(), TemplateInvitationDeclined, map[string]any{
		"shift_id":      inv.ShiftID().String(),
		"invitation_id": inv.ID().String(),
		"pharmacist_id": in.Worker.ID.String(),
	})
	return nil
}

func (uc *bookingUseCaseImpl) CancelFilledShift(ctx context.Context, in CancelShiftInput) (*CancelShiftResult, error) {
	now := uc.cancellationInstant(in.CancelledAt)
	reads := uc.uow.CommandReads()

	sh, err := reads.ShiftByID(ctx, in.ShiftID)
	if err != nil {
		return nil, readErr(err, "shift not found")
	}
	if err := sh.AuthorizeParty(in.Actor.ID, in.Party); err != nil {
		if in.Party == shift.PartyPoster {
			return nil, errs.Userf(errs.ErrForbidden, "only the employer who posted this shift can cancel it")
		}
		return nil, errs.Userf(errs.ErrForbidden, "only the pharmacist assigned to this shift can cancel it")
	}
	if sh.Status() != shift.StatusFilled {
		return nil, errs.Userf(errs.ErrInvalidState, "only filled shifts can be cancelled (status: %s)", sh.Status())
	}

	earliest, ok := sh.Schedule().EarliestStart(uc.loc)
	if !ok {
		return nil, errs.Userf(errs.ErrInvalidState, "shift schedule has no valid session")
	}
	hours := penalty.HoursBeforeStart(earliest, now)
	pen := uc.calc.Compute(hours)

	counterparty, err := sh.Counterparty(in.Party)
	if err != nil {
		return nil, errs.Userf(errs.ErrInvalidState, "shift has no counterparty to compensate")
	}

	// Look the instrument up before anything is written, so a missing card never half-cancels.
	var method *shared.PaymentMethodSnapshot
	if !pen.Waived() {
		method, err = reads.DefaultPaymentMethod(ctx, in.Actor.ID)
		if err != nil {
			if isNotFound(err) {
				return nil, errs.Userf(errs.ErrPaymentMethodMissing,
					"a cancellation fee of %s applies; add a default payment method and try again", pen.Total)
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	worker := *sh.AssignedTo()
	captureKey := cancellationCaptureKey(sh, in.Actor.ID)
	if err := sh.Cancel(now); err != nil {
		return nil, errs.Userf(errs.ErrInvalidState, "only filled shifts can be cancelled (status: %s)", sh.Status())
	}

	var (
		record      *cancellation.Cancellation
		capturedRef string
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		won, err := tx.Shifts().SaveTransition(ctx, sh, shift.StatusFilled, &worker)
		if err != nil {
			return err
		}
		if !won {
			return errs.Userf(errs.ErrConflict, "shift was changed by another request; reload and try again")
		}

		rec, err := cancellation.New(sh.ID(), in.Actor.ID, in.Party, counterparty, hours, pen, in.Reason, now)
		if err != nil {
			return err
		}

		if method != nil {
			ref, err := uc.gateway.Capture(ctx, shared.CaptureRequest{
				AmountCents:      pen.Total.Cents(),
				PaymentMethodRef: method.ProviderRef,
				IdempotencyKey:   captureKey,
				Metadata: map[string]string{
					"shift_id":                 sh.ID().String(),
					"breaching_role":           in.Party.String(),
					"hours_before_start":       fmt.Sprintf("%d", hours),
					"counterparty_share_cents": fmt.Sprintf("%d", pen.CounterpartyShare.Cents()),
					"platform_share_cents":     fmt.Sprintf("%d", pen.PlatformShare.Cents()),
				},
			})
			if err != nil {
				slog.Warn("penalty capture failed",
					"shift_id", sh.ID(),
					"breaching_party", in.Actor.ID,
					"amount_cents", pen.Total.Cents(),
					"error", err)
				return errs.UserWithCause(errs.ErrPaymentFailed, err,
					"we could not charge your payment method; please update it and try again")
			}
			capturedRef = ref
			if err := rec.AttachPaymentRef(ref); err != nil {
				return err
			}
		}

		if err := tx.Cancellations().Create(ctx, rec); err != nil {
			return err
		}
		if _, err := tx.Applications().WithdrawAccepted(ctx, sh.ID(), worker, now); err != nil {
			return err
		}
		record = rec
		return nil
	})
	if err != nil {
		if capturedRef != "" {
			slog.Error("penalty captured but cancellation was not persisted",
				"shift_id", sh.ID(),
				"payment_ref", capturedRef,
				"idempotency_key", captureKey,
				"error", err)
		}
		if _, isUser := errs.UserMessage(err); isUser {
			return nil, err
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	uc.metrics.ObserveCancellation(in.Party.String(), pen.Tier.String(), pen.Total.Cents())
	uc.notify(context.WithoutCancel(ctx), counterparty, TemplateShiftCancelled, map[string]any{
		"shift_id":                 sh.ID().String(),
		"shift_name":               sh.Name(),
		"cancelled_by":             in.Party.String(),
		"hours_before_start":       hours,
		"compensation_share_cents": pen.CounterpartyShare.Cents(),
		"reason":                   patch.Coalesce(in.Reason, ""),
	})

	return &CancelShiftResult{
		CancellationID:   record.ID(),
		ShiftID:          sh.ID(),
		HoursBeforeStart: hours,
		Penalty:          pen,
		PaymentStatus:    record.PaymentStatus(),
		PaymentRef:       record.PaymentRef(),
	}, nil
}

// respondableInvitation runs the checks shared by accept and decline, in order.
func (uc *bookingUseCaseImpl) respondableInvitation(ctx context.Context, id uuid.UUID, worker shared.Actor, now time.Time) (*invitation.Invitation, error) {
	inv, err := uc.uow.CommandReads().InvitationByID(ctx, id)
	if err != nil {
		return nil, readErr(err, "invitation not found")
	}
	if !inv.BelongsTo(worker.ID, worker.Email) {
		return nil, errs.Userf(errs.ErrForbidden, "this invitation was sent to another pharmacist")
	}
	if !inv.IsPending() {
		return nil, errs.Userf(errs.ErrInvalidState, "invitation is already %s", inv.Status())
	}
	if inv.ExpireIfOverdue(now) {
		uc.persistExpiry(context.WithoutCancel(ctx), inv)
		return nil, errs.Userf(errs.ErrExpired, "invitation has expired")
	}
	return inv, nil
}

func (uc *bookingUseCaseImpl) persistExpiry(ctx context.Context, inv *invitation.Invitation) {
	uc.bestEffort(ctx, "expire invitation", func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Invitations().SaveTransition(ctx, inv, invitation.StatusPending)
		return err
	}, "invitation_id", inv.ID())
}

func (uc *bookingUseCaseImpl) acquireClaim(ctx context.Context, shiftID uuid.UUID) (func(), error) {
	release, acquired, err := uc.locker.TryLock(ctx, claimLockKey(shiftID))
	if err != nil {
		slog.Warn("claim lock unavailable, relying on conditional update", "shift_id", shiftID, "error", err)
		return func() {}, nil
	}
	if !acquired {
		uc.metrics.IncClaimConflict()
		return nil, errs.Userf(errs.ErrConflict, "shift is being booked by another pharmacist")
	}
	return release, nil
}

// claim issues the open -> filled write first, then re-reads to confirm this worker won.
func (uc *bookingUseCaseImpl) claim(ctx context.Context, sh *shift.Shift, workerID uuid.UUID, now time.Time) error {
	if err := sh.Fill(workerID, now); err != nil {
		return errs.Userf(errs.ErrConflict, "shift is no longer available (status: %s)", sh.Status())
	}

	var won bool
	err := uc.uow.Direct(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Shifts().SaveTransition(ctx, sh, shift.StatusOpen, nil)
		won = ok
		return err
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	current, err := uc.uow.CommandReads().ShiftByID(ctx, sh.ID())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !won || current.Status() != shift.StatusFilled || !current.IsAssignedTo(workerID) {
		uc.metrics.IncClaimConflict()
		return errs.Userf(errs.ErrConflict, "shift was just filled by another pharmacist")
	}
	return nil
}

func (uc *bookingUseCaseImpl) cascadeAcceptance(ctx context.Context, inv *invitation.Invitation, shiftID uuid.UUID, now time.Time) {
	uc.bestEffort(ctx, "mark invitation accepted", func(ctx context.Context, tx shared.Tx) error {
		if err := inv.Accept(now); err != nil {
			return err
		}
		_, err := tx.Invitations().SaveTransition(ctx, inv, invitation.StatusPending)
		return err
	}, "invitation_id", inv.ID())

	uc.bestEffort(ctx, "expire competing invitations", func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Invitations().ExpirePendingForShift(ctx, shiftID, inv.ID(), now)
		return err
	}, "shift_id", shiftID)

	uc.bestEffort(ctx, "reject pending applications", func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Applications().RejectPendingForShift(ctx, shiftID, application.ReasonFilledByInvitation, now)
		return err
	}, "shift_id", shiftID)
}

func (uc *bookingUseCaseImpl) bestEffort(ctx context.Context, step string, fn func(ctx context.Context, tx shared.Tx) error, attrs ...any) {
	if err := uc.uow.Direct(ctx, fn); err != nil {
		slog.Warn("best-effort step failed", append([]any{"step", step, "error", err}, attrs...)...)
	}
}

func (uc *bookingUseCaseImpl) notify(ctx context.Context, recipient uuid.UUID, template string, payload map[string]any) {
	if err := uc.notifier.Notify(ctx, recipient, template, payload); err != nil {
		slog.Warn("notification failed", "template", template, "recipient", recipient, "error", err)
	}
}

func (uc *bookingUseCaseImpl) cancellationInstant(claimed *time.Time) time.Time {
	now := uc.clock.Now()
	if claimed != nil && claimed.After(now) {
		return *claimed
	}
	return now
}

func commitmentsExcluding(shifts []*shift.Shift, exclude uuid.UUID) []schedule.Commitment {
	out := make([]schedule.Commitment, 0, len(shifts))
	for _, s := range shifts {
		if s.ID() == exclude {
			continue
		}
		out = append(out, s.Commitment())
	}
	return out
}

func claimLockKey(shiftID uuid.UUID) string {
	return "shift-claim:" + shiftID.String()
}

// One breach of one booking maps to one key, so a retried request cannot charge twice.
func cancellationCaptureKey(sh *shift.Shift, breaching uuid.UUID) string {
	var filledAt int64
	if sh.FilledAt() != nil {
		filledAt = sh.FilledAt().UnixNano()
	}
	return fmt.Sprintf("shift-cancel:%s:%s:%d", sh.ID(), breaching, filledAt)
}

