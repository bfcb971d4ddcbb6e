package readstore

import (
	"context"
	"strings"

	"pharmashift/internal/domain/invitation"
	"pharmashift/internal/infra"
	"pharmashift/internal/infra/repository/converter"
	sqlc "pharmashift/internal/infra/sqlc/generated"
	"pharmashift/internal/pkg/pgconv"
	"pharmashift/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=invitation.go -destination=../../../tests/mock/readstore/invitation.go -package=readstoremock

type InvitationReadQueries interface {
	GetInvitationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ShiftInvitation, error)
	GetInvitationViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetInvitationViewByIDRow, error)
	ListInvitationViewsForPharmacist(ctx context.Context, db sqlc.DBTX, arg sqlc.ListInvitationViewsForPharmacistParams) ([]sqlc.ListInvitationViewsForPharmacistRow, error)
}

type InvitationReadStore struct {
	queries InvitationReadQueries
	db      sqlc.DBTX
}

func NewInvitationReadStore(queries InvitationReadQueries, db sqlc.DBTX) *InvitationReadStore {
	return &InvitationReadStore{
		queries: queries,
		db:      db,
	}
}

var _ queries.InvitationReadStore = (*InvitationReadStore)(nil)

func (r *InvitationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.InvitationView, error) {
	row, err := r.queries.GetInvitationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invitation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get invitation view by id", err)
	}
	return toInvitationView(sqlc.ListInvitationViewsForPharmacistRow(row))
}

func (r *InvitationReadStore) ListForPharmacist(ctx context.Context, pharmacistID uuid.UUID, email string) ([]*queries.InvitationView, error) {
	rows, err := r.queries.ListInvitationViewsForPharmacist(ctx, r.db, sqlc.ListInvitationViewsForPharmacistParams{
		PharmacistID: pgconv.UUIDToPgtype(pharmacistID),
		Email:        strings.TrimSpace(email),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invitations for pharmacist", err)
	}

	views := make([]*queries.InvitationView, 0, len(rows))
	for _, row := range rows {
		v, err := toInvitationView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// Load returns the invitation as a domain entity for command-side checks.
func (r *InvitationReadStore) Load(ctx context.Context, id uuid.UUID) (*invitation.Invitation, error) {
	row, err := r.queries.GetInvitationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invitation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get invitation by id", err)
	}
	inv, err := converter.InvitationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct invitation", err)
	}
	return inv, nil
}

func toInvitationView(row sqlc.ListInvitationViewsForPharmacistRow) (*queries.InvitationView, error) {
	sched, err := converter.ScheduleFromColumns(row.ShiftSchedule, row.ShiftDate, row.ShiftStartTime, row.ShiftEndTime)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode shift schedule", err)
	}
	return &queries.InvitationView{
		ID:              row.ID,
		ShiftID:         row.ShiftID,
		ShiftName:       row.ShiftName,
		ShiftLocation:   row.ShiftLocation,
		ShiftSchedule:   sched,
		PharmacistID:    pgconv.UUIDPtrFromPgtype(row.PharmacistID),
		PharmacistEmail: row.PharmacistEmail,
		InvitedBy:       row.InvitedBy,
		Status:          row.Status,
		ExpiresAt:       pgconv.TimePtrFromPgtype(row.ExpiresAt),
		RespondedAt:     pgconv.TimePtrFromPgtype(row.RespondedAt),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
