package repository

import (
	"context"
	"time"

	"pharmashift/internal/domain/application"
	"pharmashift/internal/infra"
	"pharmashift/internal/infra/repository/converter"
	sqlc "pharmashift/internal/infra/sqlc/generated"
	"pharmashift/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=application.go -destination=../../../tests/mock/repository/application.go -package=repositorymock

type ApplicationWriteQueries interface {
	CreateApplication(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateApplicationParams) error
	RejectPendingApplicationsForShift(ctx context.Context, db sqlc.DBTX, arg sqlc.RejectPendingApplicationsForShiftParams) (int64, error)
	WithdrawAcceptedApplication(ctx context.Context, db sqlc.DBTX, arg sqlc.WithdrawAcceptedApplicationParams) (int64, error)
}

type ApplicationRepository struct {
	queries ApplicationWriteQueries
	db      sqlc.DBTX
}

func NewApplicationRepository(queries ApplicationWriteQueries, db sqlc.DBTX) *ApplicationRepository {
	return &ApplicationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *application.Application) error {
	if err := r.queries.CreateApplication(ctx, r.db, converter.ApplicationToCreateParams(app)); err != nil {
		return infra.WrapRepoErr("failed to create application", err)
	}
	return nil
}

func (r *ApplicationRepository) RejectPendingForShift(ctx context.Context, shiftID uuid.UUID, reason string, now time.Time) (int64, error) {
	n, err := r.queries.RejectPendingApplicationsForShift(ctx, r.db, sqlc.RejectPendingApplicationsForShiftParams{
		Reason:    pgconv.StringToPgtype(reason),
		UpdatedAt: pgconv.TimeToPgtype(now),
		ShiftID:   shiftID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to reject pending applications", err)
	}
	return n, nil
}

func (r *ApplicationRepository) WithdrawAccepted(ctx context.Context, shiftID, pharmacistID uuid.UUID, now time.Time) (int64, error) {
	n, err := r.queries.WithdrawAcceptedApplication(ctx, r.db, sqlc.WithdrawAcceptedApplicationParams{
		UpdatedAt:    pgconv.TimeToPgtype(now),
		ShiftID:      shiftID,
		PharmacistID: pharmacistID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to withdraw accepted application", err)
	}
	return n, nil
}
