package invitation

import (
	"strings"
	"time"

	"pharmashift/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotPending      = errs.New("invitation is not pending")
	ErrExpired         = errs.New("invitation has expired")
	ErrMissingInvitee  = errs.New("invitation needs a pharmacist id or email")
	ErrInvalidStatus   = errs.New("invalid invitation status")
	ErrInvalidDeadline = errs.New("expiry must be after creation")
)

type Invitation struct {
	id              uuid.UUID
	shiftID         uuid.UUID
	pharmacistID    *uuid.UUID
	pharmacistEmail string
	invitedBy       uuid.UUID
	status          Status
	expiresAt       *time.Time
	respondedAt     *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func New(shiftID uuid.UUID, pharmacistID *uuid.UUID, pharmacistEmail string, invitedBy uuid.UUID, expiresAt *time.Time, now time.Time) (*Invitation, error) {
	email := strings.TrimSpace(pharmacistEmail)
	if pharmacistID == nil && email == "" {
		return nil, ErrMissingInvitee
	}
	if expiresAt != nil && !expiresAt.After(now) {
		return nil, ErrInvalidDeadline
	}

	return &Invitation{
		id:              uuid.New(),
		shiftID:         shiftID,
		pharmacistID:    pharmacistID,
		pharmacistEmail: email,
		invitedBy:       invitedBy,
		status:          StatusPending,
		expiresAt:       expiresAt,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func Reconstruct(
	id, shiftID uuid.UUID,
	pharmacistID *uuid.UUID,
	pharmacistEmail string,
	invitedBy uuid.UUID,
	status Status,
	expiresAt, respondedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Invitation, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Invitation{
		id:              id,
		shiftID:         shiftID,
		pharmacistID:    pharmacistID,
		pharmacistEmail: pharmacistEmail,
		invitedBy:       invitedBy,
		status:          status,
		expiresAt:       expiresAt,
		respondedAt:     respondedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (i *Invitation) ID() uuid.UUID            { return i.id }
func (i *Invitation) ShiftID() uuid.UUID       { return i.shiftID }
func (i *Invitation) PharmacistID() *uuid.UUID { return i.pharmacistID }
func (i *Invitation) PharmacistEmail() string  { return i.pharmacistEmail }
func (i *Invitation) InvitedBy() uuid.UUID     { return i.invitedBy }
func (i *Invitation) Status() Status           { return i.status }
func (i *Invitation) ExpiresAt() *time.Time    { return i.expiresAt }
func (i *Invitation) RespondedAt() *time.Time  { return i.respondedAt }
func (i *Invitation) CreatedAt() time.Time     { return i.createdAt }
func (i *Invitation) UpdatedAt() time.Time     { return i.updatedAt }

// BelongsTo matches the invitee by id, or by case-insensitive email.
func (i *Invitation) BelongsTo(workerID uuid.UUID, email string) bool {
	if i.pharmacistID != nil && *i.pharmacistID == workerID {
		return true
	}
	email = strings.TrimSpace(email)
	return i.pharmacistEmail != "" && email != "" && strings.EqualFold(i.pharmacistEmail, email)
}

func (i *Invitation) IsPending() bool {
	return i.status == StatusPending
}

// IsOverdue is true for a pending invitation read after its deadline. now == expires_at is still valid.
func (i *Invitation) IsOverdue(now time.Time) bool {
	return i.status == StatusPending && i.expiresAt != nil && now.After(*i.expiresAt)
}

func (i *Invitation) Accept(now time.Time) error {
	if err := i.ensureRespondable(now); err != nil {
		return err
	}
	i.status = StatusAccepted
	i.respondedAt = &now
	i.updatedAt = now
	return nil
}

func (i *Invitation) Decline(now time.Time) error {
	if err := i.ensureRespondable(now); err != nil {
		return err
	}
	i.status = StatusDeclined
	i.respondedAt = &now
	i.updatedAt = now
	return nil
}

func (i *Invitation) Cancel(now time.Time) error {
	if !i.IsPending() {
		return ErrNotPending
	}
	i.status = StatusCancelled
	i.updatedAt = now
	return nil
}

// Expire is used both for lazy expiry past the deadline and for superseded
// invitations once the shift is filled through another one.
func (i *Invitation) Expire(now time.Time) error {
	if !i.IsPending() {
		return ErrNotPending
	}
	i.status = StatusExpired
	i.updatedAt = now
	return nil
}

// ExpireIfOverdue flips an overdue invitation and reports whether it did.
func (i *Invitation) ExpireIfOverdue(now time.Time) bool {
	if !i.IsOverdue(now) {
		return false
	}
	i.status = StatusExpired
	i.updatedAt = now
	return true
}

func (i *Invitation) ensureRespondable(now time.Time) error {
	if !i.IsPending() {
		return ErrNotPending
	}
	if i.IsOverdue(now) {
		return ErrExpired
	}
	return nil
}
