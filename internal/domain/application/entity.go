package application

import (
	"time"

	"pharmashift/internal/pkg/errs"

	"github.com/google/uuid"
)

// ReasonFilledByInvitation is recorded on applications rejected because the shift was booked by direct invitation.
const ReasonFilledByInvitation = "filled through direct invitation"

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusWithdrawn Status = "withdrawn"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusWithdrawn:
		return true
	default:
		return false
	}
}

var (
	ErrNotPending    = errs.New("application is not pending")
	ErrNotAccepted   = errs.New("application is not accepted")
	ErrInvalidStatus = errs.New("invalid application status")
)

type Application struct {
	id              uuid.UUID
	shiftID         uuid.UUID
	pharmacistID    uuid.UUID
	pharmacistEmail string
	status          Status
	rejectionReason *string
	createdAt       time.Time
	updatedAt       time.Time
}

func New(shiftID, pharmacistID uuid.UUID, pharmacistEmail string, now time.Time) *Application {
	return &Application{
		id:              uuid.New(),
		shiftID:         shiftID,
		pharmacistID:    pharmacistID,
		pharmacistEmail: pharmacistEmail,
		status:          StatusPending,
		createdAt:       now,
		updatedAt:       now,
	}
}

func Reconstruct(id, shiftID, pharmacistID uuid.UUID, pharmacistEmail string, status Status, rejectionReason *string, createdAt, updatedAt time.Time) (*Application, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Application{
		id:              id,
		shiftID:         shiftID,
		pharmacistID:    pharmacistID,
		pharmacistEmail: pharmacistEmail,
		status:          status,
		rejectionReason: rejectionReason,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (a *Application) ID() uuid.UUID            { return a.id }
func (a *Application) ShiftID() uuid.UUID       { return a.shiftID }
func (a *Application) PharmacistID() uuid.UUID  { return a.pharmacistID }
func (a *Application) PharmacistEmail() string  { return a.pharmacistEmail }
func (a *Application) Status() Status           { return a.status }
func (a *Application) RejectionReason() *string { return a.rejectionReason }
func (a *Application) CreatedAt() time.Time     { return a.createdAt }
func (a *Application) UpdatedAt() time.Time     { return a.updatedAt }

func (a *Application) Accept(now time.Time) error {
	if a.status != StatusPending {
		return ErrNotPending
	}
	a.status = StatusAccepted
	a.updatedAt = now
	return nil
}

func (a *Application) Reject(reason string, now time.Time) error {
	if a.status != StatusPending {
		return ErrNotPending
	}
	a.status = StatusRejected
	a.rejectionReason = &reason
	a.updatedAt = now
	return nil
}

// Withdraw releases an accepted application when the booking is cancelled.
func (a *Application) Withdraw(now time.Time) error {
	if a.status != StatusAccepted {
		return ErrNotAccepted
	}
	a.status = StatusWithdrawn
	a.updatedAt = now
	return nil
}
