package memstore

import (
	"context"
	"slices"
	"strings"

	"pharmashift/internal/infra"
	"pharmashift/internal/usecase/queries"

	"github.com/google/uuid"
)

type InvitationReadStore struct {
	store *Store
}

func NewInvitationReadStore(s *Store) *InvitationReadStore {
	return &InvitationReadStore{store: s}
}

var _ queries.InvitationReadStore = (*InvitationReadStore)(nil)

func (r *InvitationReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.InvitationView, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	row, ok := r.store.ds.invitations[id]
	if !ok {
		return nil, infra.WrapRepoErr("invitation not found", nil, infra.KindNotFound)
	}
	return invitationView(r.store.ds, row), nil
}

// ListForPharmacist matches invitations addressed to the account id or, for
// email-only invites, to the account email. Newest first.
func (r *InvitationReadStore) ListForPharmacist(_ context.Context, pharmacistID uuid.UUID, email string) ([]*queries.InvitationView, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	views := make([]*queries.InvitationView, 0)
	for _, row := range r.store.ds.invitations {
		byID := row.PharmacistID != nil && *row.PharmacistID == pharmacistID
		byEmail := email != "" && strings.EqualFold(row.PharmacistEmail, strings.TrimSpace(email))
		if byID || byEmail {
			views = append(views, invitationView(r.store.ds, row))
		}
	}
	slices.SortFunc(views, func(a, b *queries.InvitationView) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return views, nil
}

func invitationView(ds *dataset, row invitationRow) *queries.InvitationView {
	v := &queries.InvitationView{
		ID:              row.ID,
		ShiftID:         row.ShiftID,
		PharmacistID:    row.PharmacistID,
		PharmacistEmail: row.PharmacistEmail,
		InvitedBy:       row.InvitedBy,
		Status:          row.Status,
		ExpiresAt:       row.ExpiresAt,
		RespondedAt:     row.RespondedAt,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	if s, ok := ds.shifts[row.ShiftID]; ok {
		v.ShiftName = s.Name
		v.ShiftLocation = s.Location
		if sched, err := s.sessions(); err == nil {
			v.ShiftSchedule = sched
		}
	}
	return v
}

type ShiftReadStore struct {
	store *Store
}

func NewShiftReadStore(s *Store) *ShiftReadStore {
	return &ShiftReadStore{store: s}
}

var _ queries.ShiftReadStore = (*ShiftReadStore)(nil)

func (r *ShiftReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ShiftView, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	row, ok := r.store.ds.shifts[id]
	if !ok {
		return nil, infra.WrapRepoErr("shift not found", nil, infra.KindNotFound)
	}
	sched, err := row.sessions()
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
		AssignedTo:      row.AssignedTo,
		FilledAt:        row.FilledAt,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}, nil
}
