package readstore

import (
	"context"

	"pharmashift/internal/domain/shift"
	"pharmashift/internal/infra"
	"pharmashift/internal/infra/repository/converter"
	sqlc "pharmashift/internal/infra/sqlc/generated"
	"pharmashift/internal/pkg/pgconv"
	"pharmashift/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=shift.go -destination=../../../tests/mock/readstore/shift.go -package=readstoremock

type ShiftReadQueries interface {
	GetShiftByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Shift, error)
	ListFilledShiftsByWorker(ctx context.Context, db sqlc.DBTX, assignedTo pgtype.UUID) ([]sqlc.Shift, error)
	ListFilledShifts(ctx context.Context, db sqlc.DBTX) ([]sqlc.Shift, error)
}

type ShiftReadStore struct {
	queries ShiftReadQueries
	db      sqlc.DBTX
}

func NewShiftReadStore(queries ShiftReadQueries, db sqlc.DBTX) *ShiftReadStore {
	return &ShiftReadStore{
		queries: queries,
		db:      db,
	}
}

var _ queries.ShiftReadStore = (*ShiftReadStore)(nil)

func (r *ShiftReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ShiftView, error) {
	row, err := r.get(ctx, id)
	if err != nil {
		return nil, err
	}
	sched, err := converter.ScheduleFromColumns(row.Schedule, row.ShiftDate, row.StartTime, row.EndTime)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode shift schedule", err)
	}
	return &queries.ShiftView{
		ID:              row.ID,
		Name:            row.Name,
		Location:        row.Location,
		Status:          row.Status,
		Schedule:        sched,
		HourlyRateCents: row.HourlyRateCents,
		CreatedBy:       row.CreatedBy,
		AssignedTo:      pgconv.UUIDPtrFromPgtype(row.AssignedTo),
		FilledAt:        pgconv.TimePtrFromPgtype(row.FilledAt),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

// Load returns the shift as a domain entity for command-side checks.
func (r *ShiftReadStore) Load(ctx context.Context, id uuid.UUID) (*shift.Shift, error) {
	row, err := r.get(ctx, id)
	if err != nil {
		return nil, err
	}
	s, err := converter.ShiftFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct shift", err)
	}
	return s, nil
}

func (r *ShiftReadStore) FilledForWorker(ctx context.Context, workerID uuid.UUID) ([]*shift.Shift, error) {
	rows, err := r.queries.ListFilledShiftsByWorker(ctx, r.db, pgconv.UUIDToPgtype(workerID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list worker's filled shifts", err)
	}
	shifts, err := converter.ShiftsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct shifts", err)
	}
	return shifts, nil
}

func (r *ShiftReadStore) Filled(ctx context.Context) ([]*shift.Shift, error) {
	rows, err := r.queries.ListFilledShifts(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list filled shifts", err)
	}
	shifts, err := converter.ShiftsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct shifts", err)
	}
	return shifts, nil
}

func (r *ShiftReadStore) get(ctx context.Context, id uuid.UUID) (sqlc.Shift, error) {
	row, err := r.queries.GetShiftByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.Shift{}, infra.WrapRepoErr("shift not found", err, infra.KindNotFound)
		}
		return sqlc.Shift{}, infra.WrapRepoErr("failed to get shift by id", err)
	}
	return row, nil
}
