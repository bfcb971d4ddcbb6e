package memstore

import (
	"context"
	"strings"
	"time"

	"pharmashift/internal/domain/application"
	"pharmashift/internal/domain/cancellation"
	"pharmashift/internal/domain/invitation"
	"pharmashift/internal/domain/money"
	"pharmashift/internal/domain/penalty"
	"pharmashift/internal/domain/shift"
	"pharmashift/internal/infra"
	"pharmashift/internal/usecase/shared"

	"github.com/google/uuid"
)

type shiftRepo struct{ tx *memTx }

func (r *shiftRepo) Create(_ context.Context, s *shift.Shift) error {
	return r.tx.run("shifts.create", func(ds *dataset) error {
		if _, exists := ds.shifts[s.ID()]; exists {
			return infra.WrapRepoErr("shift already exists", nil, infra.KindDuplicateKey)
		}
		ds.shifts[s.ID()] = shiftToRow(s)
		return nil
	})
}

func (r *shiftRepo) SaveTransition(_ context.Context, s *shift.Shift, from shift.Status, fromAssignee *uuid.UUID) (bool, error) {
	var won bool
	err := r.tx.run("shifts.save_transition", func(ds *dataset) error {
		row, ok := ds.shifts[s.ID()]
		if !ok {
			return infra.WrapRepoErr("shift not found", nil, infra.KindNotFound)
		}
		if row.Status != from.String() || !sameID(row.AssignedTo, fromAssignee) {
			return nil
		}
		next := shiftToRow(s)
		next.CreatedAt = row.CreatedAt
		ds.shifts[s.ID()] = next
		won = true
		return nil
	})
	return won, err
}

type invitationRepo struct{ tx *memTx }

func (r *invitationRepo) Create(_ context.Context, inv *invitation.Invitation) error {
	return r.tx.run("invitations.create", func(ds *dataset) error {
		if _, ok := ds.shifts[inv.ShiftID()]; !ok {
			return infra.WrapRepoErr("invitation references unknown shift", nil, infra.KindForeignKeyViolated)
		}
		for _, existing := range ds.invitations {
			if existing.ShiftID == inv.ShiftID() && existing.Status == invitation.StatusPending.String() &&
				sameInvitee(existing, inv) {
				return infra.WrapRepoErr("pending invitation already exists for this pharmacist", nil, infra.KindDuplicateKey)
			}
		}
		ds.invitations[inv.ID()] = invitationToRow(inv)
		return nil
	})
}

func (r *invitationRepo) SaveTransition(_ context.Context, inv *invitation.Invitation, from invitation.Status) (bool, error) {
	var won bool
	err := r.tx.run("invitations.save_transition", func(ds *dataset) error {
		row, ok := ds.invitations[inv.ID()]
		if !ok {
			return infra.WrapRepoErr("invitation not found", nil, infra.KindNotFound)
		}
		if row.Status != from.String() {
			return nil
		}
		row.Status = inv.Status().String()
		row.RespondedAt = inv.RespondedAt()
		row.UpdatedAt = inv.UpdatedAt()
		ds.invitations[inv.ID()] = row
		won = true
		return nil
	})
	return won, err
}

func (r *invitationRepo) ExpirePendingForShift(_ context.Context, shiftID, exceptID uuid.UUID, now time.Time) (int64, error) {
	var n int64
	err := r.tx.run("invitations.expire_pending_for_shift", func(ds *dataset) error {
		for id, row := range ds.invitations {
			if row.ShiftID != shiftID || id == exceptID || row.Status != invitation.StatusPending.String() {
				continue
			}
			row.Status = invitation.StatusExpired.String()
			row.UpdatedAt = now
			ds.invitations[id] = row
			n++
		}
		return nil
	})
	return n, err
}

func (r *invitationRepo) ExpireOverdue(_ context.Context, now time.Time) (int64, error) {
	var n int64
	err := r.tx.run("invitations.expire_overdue", func(ds *dataset) error {
		for id, row := range ds.invitations {
			if row.Status != invitation.StatusPending.String() || row.ExpiresAt == nil || !now.After(*row.ExpiresAt) {
				continue
			}
			row.Status = invitation.StatusExpired.String()
			row.UpdatedAt = now
			ds.invitations[id] = row
			n++
		}
		return nil
	})
	return n, err
}

type applicationRepo struct{ tx *memTx }

func (r *applicationRepo) Create(_ context.Context, app *application.Application) error {
	return r.tx.run("applications.create", func(ds *dataset) error {
		if _, ok := ds.shifts[app.ShiftID()]; !ok {
			return infra.WrapRepoErr("application references unknown shift", nil, infra.KindForeignKeyViolated)
		}
		ds.applications[app.ID()] = applicationRow{
			ID:              app.ID(),
			ShiftID:         app.ShiftID(),
			PharmacistID:    app.PharmacistID(),
			PharmacistEmail: app.PharmacistEmail(),
			Status:          app.Status().String(),
			RejectionReason: app.RejectionReason(),
			CreatedAt:       app.CreatedAt(),
			UpdatedAt:       app.UpdatedAt(),
		}
		return nil
	})
}

func (r *applicationRepo) RejectPendingForShift(_ context.Context, shiftID uuid.UUID, reason string, now time.Time) (int64, error) {
	var n int64
	err := r.tx.run("applications.reject_pending_for_shift", func(ds *dataset) error {
		for id, row := range ds.applications {
			if row.ShiftID != shiftID || row.Status != application.StatusPending.String() {
				continue
			}
			reason := reason
			row.Status = application.StatusRejected.String()
			row.RejectionReason = &reason
			row.UpdatedAt = now
			ds.applications[id] = row
			n++
		}
		return nil
	})
	return n, err
}

func (r *applicationRepo) WithdrawAccepted(_ context.Context, shiftID, pharmacistID uuid.UUID, now time.Time) (int64, error) {
	var n int64
	err := r.tx.run("applications.withdraw_accepted", func(ds *dataset) error {
		for id, row := range ds.applications {
			if row.ShiftID != shiftID || row.PharmacistID != pharmacistID || row.Status != application.StatusAccepted.String() {
				continue
			}
			row.Status = application.StatusWithdrawn.String()
			row.UpdatedAt = now
			ds.applications[id] = row
			n++
		}
		return nil
	})
	return n, err
}

type cancellationRepo struct{ tx *memTx }

func (r *cancellationRepo) Create(_ context.Context, c *cancellation.Cancellation) error {
	return r.tx.run("cancellations.create", func(ds *dataset) error {
		p := c.Penalty()
		ds.cancellations[c.ID()] = cancellationRow{
			ID:                     c.ID(),
			ShiftID:                c.ShiftID(),
			BreachingParty:         c.BreachingParty(),
			BreachingRole:          c.BreachingRole().String(),
			Counterparty:           c.Counterparty(),
			HoursBeforeStart:       c.HoursBeforeStart(),
			Tier:                   p.Tier.String(),
			PenaltyTotalCents:      p.Total.Cents(),
			CounterpartyShareCents: p.CounterpartyShare.Cents(),
			PlatformShareCents:     p.PlatformShare.Cents(),
			PaymentStatus:          c.PaymentStatus().String(),
			PaymentRef:             c.PaymentRef(),
			Reason:                 c.Reason(),
			CreatedAt:              c.CreatedAt(),
		}
		return nil
	})
}

type notificationRepo struct{ tx *memTx }

func (r *notificationRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	return r.tx.run("notifications.create_job", func(ds *dataset) error {
		ds.notifications = append(ds.notifications, NotificationJob{
			ID:      uuid.New(),
			Kind:    kind,
			Topic:   topic,
			Payload: append([]byte(nil), payload...),
			RunAt:   runAt,
		})
		return nil
	})
}

type commandReads struct{ tx *memTx }

func (r *commandReads) ShiftByID(_ context.Context, id uuid.UUID) (*shift.Shift, error) {
	var out *shift.Shift
	err := r.tx.run("reads.shift_by_id", func(ds *dataset) error {
		row, ok := ds.shifts[id]
		if !ok {
			return infra.WrapRepoErr("shift not found", nil, infra.KindNotFound)
		}
		s, err := rowToShift(row)
		out = s
		return err
	})
	return out, err
}

func (r *commandReads) InvitationByID(_ context.Context, id uuid.UUID) (*invitation.Invitation, error) {
	var out *invitation.Invitation
	err := r.tx.run("reads.invitation_by_id", func(ds *dataset) error {
		row, ok := ds.invitations[id]
		if !ok {
			return infra.WrapRepoErr("invitation not found", nil, infra.KindNotFound)
		}
		inv, err := rowToInvitation(row)
		out = inv
		return err
	})
	return out, err
}

func (r *commandReads) FilledShiftsForWorker(_ context.Context, workerID uuid.UUID) ([]*shift.Shift, error) {
	return r.filled("reads.filled_shifts_for_worker", func(row shiftRow) bool {
		return row.AssignedTo != nil && *row.AssignedTo == workerID
	})
}

func (r *commandReads) FilledShifts(_ context.Context) ([]*shift.Shift, error) {
	return r.filled("reads.filled_shifts", func(shiftRow) bool { return true })
}

func (r *commandReads) filled(op string, match func(shiftRow) bool) ([]*shift.Shift, error) {
	var out []*shift.Shift
	err := r.tx.run(op, func(ds *dataset) error {
		for _, row := range ds.shifts {
			if row.Status != shift.StatusFilled.String() || !match(row) {
				continue
			}
			s, err := rowToShift(row)
			if err != nil {
				return err
			}
			out = append(out, s)
		}
		return nil
	})
	return out, err
}

func (r *commandReads) DefaultPaymentMethod(_ context.Context, userID uuid.UUID) (*shared.PaymentMethodSnapshot, error) {
	var out *shared.PaymentMethodSnapshot
	err := r.tx.run("reads.default_payment_method", func(ds *dataset) error {
		for _, pm := range ds.paymentMethods {
			if pm.UserID == userID && pm.IsDefault {
				out = &shared.PaymentMethodSnapshot{
					ID:          pm.ID,
					UserID:      pm.UserID,
					ProviderRef: pm.ProviderRef,
					Brand:       pm.Brand,
					Last4:       pm.Last4,
				}
				return nil
			}
		}
		return infra.WrapRepoErr("default payment method not found", nil, infra.KindNotFound)
	})
	return out, err
}

func shiftToRow(s *shift.Shift) shiftRow {
	return shiftRow{
		ID:              s.ID(),
		Name:            s.Name(),
		Location:        s.Location(),
		Status:          s.Status().String(),
		AssignedTo:      s.AssignedTo(),
		Schedule:        s.Schedule(),
		HourlyRateCents: s.HourlyRate().Cents(),
		CreatedBy:       s.CreatedBy(),
		FilledAt:        s.FilledAt(),
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
	}
}

func rowToShift(r shiftRow) (*shift.Shift, error) {
	sched, err := r.sessions()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode shift schedule", err)
	}
	return shift.Reconstruct(
		r.ID, r.Name, r.Location,
		shift.Status(r.Status),
		r.AssignedTo,
		sched,
		money.FromCents(r.HourlyRateCents),
		r.CreatedBy,
		r.FilledAt,
		r.CreatedAt, r.UpdatedAt,
	)
}

func invitationToRow(inv *invitation.Invitation) invitationRow {
	return invitationRow{
		ID:              inv.ID(),
		ShiftID:         inv.ShiftID(),
		PharmacistID:    inv.PharmacistID(),
		PharmacistEmail: inv.PharmacistEmail(),
		InvitedBy:       inv.InvitedBy(),
		Status:          inv.Status().String(),
		ExpiresAt:       inv.ExpiresAt(),
		RespondedAt:     inv.RespondedAt(),
		CreatedAt:       inv.CreatedAt(),
		UpdatedAt:       inv.UpdatedAt(),
	}
}

func rowToInvitation(r invitationRow) (*invitation.Invitation, error) {
	return invitation.Reconstruct(
		r.ID, r.ShiftID,
		r.PharmacistID,
		r.PharmacistEmail,
		r.InvitedBy,
		invitation.Status(r.Status),
		r.ExpiresAt, r.RespondedAt,
		r.CreatedAt, r.UpdatedAt,
	)
}

func rowToCancellation(r cancellationRow) *cancellation.Cancellation {
	return cancellation.Reconstruct(
		r.ID, r.ShiftID, r.BreachingParty,
		shift.Party(r.BreachingRole),
		r.Counterparty,
		r.HoursBeforeStart,
		penalty.Penalty{
			Tier:              penalty.Tier(r.Tier),
			Total:             money.FromCents(r.PenaltyTotalCents),
			CounterpartyShare: money.FromCents(r.CounterpartyShareCents),
			PlatformShare:     money.FromCents(r.PlatformShareCents),
		},
		cancellation.PaymentStatus(r.PaymentStatus),
		r.PaymentRef, r.Reason,
		r.CreatedAt,
	)
}

func sameID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sameInvitee(row invitationRow, inv *invitation.Invitation) bool {
	if row.PharmacistID != nil && inv.PharmacistID() != nil {
		return *row.PharmacistID == *inv.PharmacistID()
	}
	return row.PharmacistEmail != "" && strings.EqualFold(row.PharmacistEmail, inv.PharmacistEmail())
}
