package repository

import (
	"context"
	"time"

	"pharmashift/internal/domain/invitation"
	"pharmashift/internal/infra"
	"pharmashift/internal/infra/repository/converter"
	sqlc "pharmashift/internal/infra/sqlc/generated"
	"pharmashift/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=invitation.go -destination=../../../tests/mock/repository/invitation.go -package=repositorymock

type InvitationWriteQueries interface {
	CreateInvitation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateInvitationParams) error
	TransitionInvitation(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionInvitationParams) (int64, error)
	ExpirePendingInvitationsForShift(ctx context.Context, db sqlc.DBTX, arg sqlc.ExpirePendingInvitationsForShiftParams) (int64, error)
	ExpireOverdueInvitations(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
}

type InvitationRepository struct {
	queries InvitationWriteQueries
	db      sqlc.DBTX
}

func NewInvitationRepository(queries InvitationWriteQueries, db sqlc.DBTX) *InvitationRepository {
	return &InvitationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *InvitationRepository) Create(ctx context.Context, inv *invitation.Invitation) error {
	if err := r.queries.CreateInvitation(ctx, r.db, converter.InvitationToCreateParams(inv)); err != nil {
		return infra.WrapRepoErr("failed to create invitation", err)
	}
	return nil
}

func (r *InvitationRepository) SaveTransition(ctx context.Context, inv *invitation.Invitation, from invitation.Status) (bool, error) {
	n, err := r.queries.TransitionInvitation(ctx, r.db, converter.InvitationToTransitionParams(inv, from))
	if err != nil {
		return false, infra.WrapRepoErr("failed to transition invitation", err)
	}
	return n == 1, nil
}

func (r *InvitationRepository) ExpirePendingForShift(ctx context.Context, shiftID, exceptID uuid.UUID, now time.Time) (int64, error) {
	n, err := r.queries.ExpirePendingInvitationsForShift(ctx, r.db, sqlc.ExpirePendingInvitationsForShiftParams{
		UpdatedAt: pgconv.TimeToPgtype(now),
		ShiftID:   shiftID,
		ExceptID:  exceptID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire sibling invitations", err)
	}
	return n, nil
}

func (r *InvitationRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.queries.ExpireOverdueInvitations(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire overdue invitations", err)
	}
	return n, nil
}
