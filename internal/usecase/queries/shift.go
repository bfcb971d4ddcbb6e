package queries

import (
	"context"

	"pharmashift/internal/domain/user"
	"pharmashift/internal/infra"
	"pharmashift/internal/pkg/errs"
	"pharmashift/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=shift.go -destination=../../../tests/mock/queries/shift.go -package=queriesmock

type ShiftQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ShiftView, error)
}

type ShiftReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ShiftView, error)
}

type shiftQueriesImpl struct {
	store ShiftReadStore
}

func NewShiftQueries(store ShiftReadStore) ShiftQueries {
	return &shiftQueriesImpl{store: store}
}

// GetByID hides the assignee from everyone except the two parties and admins.
func (q *shiftQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ShiftView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.UserWithCause(errs.ErrNotFound, err, "shift not found")
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	isParty := view.CreatedBy == actor.ID || (view.AssignedTo != nil && *view.AssignedTo == actor.ID)
	if !isParty && actor.Role != user.RoleAdmin.String() {
		view.AssignedTo = nil
	}
	return view, nil
}
