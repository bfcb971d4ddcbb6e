package queries

import (
	"context"
	"log/slog"

	"pharmashift/internal/domain/invitation"
	"pharmashift/internal/infra"
	"pharmashift/internal/pkg/clock"
	"pharmashift/internal/pkg/errs"
	"pharmashift/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=invitation.go -destination=../../../tests/mock/queries/invitation.go -package=queriesmock

type InvitationQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*InvitationView, error)
	ListForPharmacist(ctx context.Context, actor shared.Actor) ([]*InvitationView, error)
}

type InvitationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InvitationView, error)
	ListForPharmacist(ctx context.Context, pharmacistID uuid.UUID, email string) ([]*InvitationView, error)
}

type invitationQueriesImpl struct {
	store InvitationReadStore
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewInvitationQueries(store InvitationReadStore, uow shared.UnitOfWork, clk clock.Clock) InvitationQueries {
	return &invitationQueriesImpl{store: store, uow: uow, clock: clk}
}

func (q *invitationQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*InvitationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.UserWithCause(errs.ErrNotFound, err, "invitation not found")
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	inv, err := toDomain(view)
	if err != nil {
		return nil, err
	}
	if !inv.BelongsTo(actor.ID, actor.Email) && inv.InvitedBy() != actor.ID {
		return nil, errs.Userf(errs.ErrForbidden, "this invitation was sent to another pharmacist")
	}

	q.expireIfOverdue(ctx, view, inv)
	return view, nil
}

func (q *invitationQueriesImpl) ListForPharmacist(ctx context.Context, actor shared.Actor) ([]*InvitationView, error) {
	views, err := q.store.ListForPharmacist(ctx, actor.ID, actor.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	for _, view := range views {
		inv, err := toDomain(view)
		if err != nil {
			return nil, err
		}
		q.expireIfOverdue(ctx, view, inv)
	}
	return views, nil
}

// expireIfOverdue reports an overdue invitation as expired even when persisting the flip fails,
// so every read past the deadline agrees.
func (q *invitationQueriesImpl) expireIfOverdue(ctx context.Context, view *InvitationView, inv *invitation.Invitation) {
	if !inv.ExpireIfOverdue(q.clock.Now()) {
		return
	}
	view.Status = inv.Status().String()
	view.UpdatedAt = inv.UpdatedAt()

	err := q.uow.Direct(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Invitations().SaveTransition(ctx, inv, invitation.StatusPending)
		return err
	})
	if err != nil {
		slog.Warn("failed to persist lazy invitation expiry", "invitation_id", inv.ID(), "error", err)
	}
}

func toDomain(v *InvitationView) (*invitation.Invitation, error) {
	inv, err := invitation.Reconstruct(
		v.ID,
		v.ShiftID,
		v.PharmacistID,
		v.PharmacistEmail,
		v.InvitedBy,
		invitation.Status(v.Status),
		v.ExpiresAt,
		v.RespondedAt,
		v.CreatedAt,
		v.UpdatedAt,
	)
	if err != nil {
		return nil, errs.Wrap(err, "reconstruct invitation")
	}
	return inv, nil
}
