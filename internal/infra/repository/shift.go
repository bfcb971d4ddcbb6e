package repository

import (
	"context"

	"pharmashift/internal/domain/shift"
	"pharmashift/internal/infra"
	"pharmashift/internal/infra/repository/converter"
	sqlc "pharmashift/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=shift.go -destination=../../../tests/mock/repository/shift.go -package=repositorymock

type ShiftWriteQueries interface {
	CreateShift(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateShiftParams) error
	TransitionShift(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionShiftParams) (int64, error)
}

type ShiftRepository struct {
	queries ShiftWriteQueries
	db      sqlc.DBTX
}

func NewShiftRepository(queries ShiftWriteQueries, db sqlc.DBTX) *ShiftRepository {
	return &ShiftRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ShiftRepository) Create(ctx context.Context, s *shift.Shift) error {
	params, err := converter.ShiftToCreateParams(s)
	if err != nil {
		return infra.WrapRepoErr("failed to encode shift", err)
	}

	if err := r.queries.CreateShift(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create shift", err)
	}
	return nil
}

// SaveTransition writes the shift only while the row still holds the expected
// status and assignee. Zero affected rows means another writer got there first.
func (r *ShiftRepository) SaveTransition(ctx context.Context, s *shift.Shift, from shift.Status, fromAssignee *uuid.UUID) (bool, error) {
	n, err := r.queries.TransitionShift(ctx, r.db, converter.ShiftToTransitionParams(s, from, fromAssignee))
	if err != nil {
		return false, infra.WrapRepoErr("failed to transition shift", err)
	}
	return n == 1, nil
}
