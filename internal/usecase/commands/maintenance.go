package commands

import (
	"context"
	"log/slog"
	"time"

	"pharmashift/internal/domain/shift"
	"pharmashift/internal/pkg/clock"
	"pharmashift/internal/pkg/errs"
	"pharmashift/internal/pkg/metrics"
	"pharmashift/internal/usecase/shared"
)

type SweepResult struct {
	InvitationsExpired int64
	ShiftsCompleted    int64
}

//go:generate mockgen -source=maintenance.go -destination=../../../tests/mock/commands/maintenance.go -package=commandsmock

// MaintenanceCommands holds the time-driven transitions no user request triggers.
type MaintenanceCommands interface {
	Sweep(ctx context.Context) (*SweepResult, error)
}

type maintenanceUseCaseImpl struct {
	uow     shared.UnitOfWork
	metrics *metrics.Booking
	clock   clock.Clock
	loc     *time.Location
}

func NewMaintenanceUseCase(uow shared.UnitOfWork, m *metrics.Booking, clk clock.Clock, loc *time.Location) MaintenanceCommands {
	if loc == nil {
		loc = time.UTC
	}
	return &maintenanceUseCaseImpl{uow: uow, metrics: m, clock: clk, loc: loc}
}

func (uc *maintenanceUseCaseImpl) Sweep(ctx context.Context) (*SweepResult, error) {
	now := uc.clock.Now()
	res := &SweepResult{}

	err := uc.uow.Direct(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Invitations().ExpireOverdue(ctx, now)
		res.InvitationsExpired = n
		return err
	})
	if err != nil {
		return nil, errs.Wrap(err, "expire overdue invitations")
	}
	uc.metrics.AddSweeperTransitions("invitation_expired", res.InvitationsExpired)

	filled, err := uc.uow.CommandReads().FilledShifts(ctx)
	if err != nil {
		return res, errs.Wrap(err, "list filled shifts")
	}

	for _, sh := range filled {
		worker := *sh.AssignedTo()
		if err := sh.Complete(uc.loc, now); err != nil {
			continue
		}

		var won bool
		err := uc.uow.Direct(ctx, func(ctx context.Context, tx shared.Tx) error {
			ok, err := tx.Shifts().SaveTransition(ctx, sh, shift.StatusFilled, &worker)
			won = ok
			return err
		})
		if err != nil {
			slog.Warn("failed to complete shift", "shift_id", sh.ID(), "error", err)
			continue
		}
		if won {
			res.ShiftsCompleted++
		}
	}
	uc.metrics.AddSweeperTransitions("shift_completed", res.ShiftsCompleted)

	return res, nil
}
