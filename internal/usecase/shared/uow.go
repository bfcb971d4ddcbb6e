package shared

import (
	"context"
	"time"

	"pharmashift/internal/domain/application"
	"pharmashift/internal/domain/cancellation"
	"pharmashift/internal/domain/invitation"
	"pharmashift/internal/domain/shift"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Direct: Each statement commits on its own; used for the claim write and best-effort cascades
	Direct(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Shifts() ShiftRepository
	Invitations() InvitationRepository
	Applications() ApplicationRepository
	Cancellations() CancellationRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

type CommandReads interface {
	ShiftByID(ctx context.Context, id uuid.UUID) (*shift.Shift, error)
	InvitationByID(ctx context.Context, id uuid.UUID) (*invitation.Invitation, error)
	// FilledShiftsForWorker is the worker's committed schedule for conflict checks.
	FilledShiftsForWorker(ctx context.Context, workerID uuid.UUID) ([]*shift.Shift, error)
	FilledShifts(ctx context.Context) ([]*shift.Shift, error)
	DefaultPaymentMethod(ctx context.Context, userID uuid.UUID) (*PaymentMethodSnapshot, error)
}

// Every SaveTransition is conditional: it reports false when the stored row no
// longer matches the expected prior state.
type ShiftRepository interface {
	Create(ctx context.Context, s *shift.Shift) error
	SaveTransition(ctx context.Context, s *shift.Shift, from shift.Status, fromAssignee *uuid.UUID) (bool, error)
}

type InvitationRepository interface {
	Create(ctx context.Context, inv *invitation.Invitation) error
	SaveTransition(ctx context.Context, inv *invitation.Invitation, from invitation.Status) (bool, error)
	ExpirePendingForShift(ctx context.Context, shiftID, exceptID uuid.UUID, now time.Time) (int64, error)
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *application.Application) error
	RejectPendingForShift(ctx context.Context, shiftID uuid.UUID, reason string, now time.Time) (int64, error)
	WithdrawAccepted(ctx context.Context, shiftID, pharmacistID uuid.UUID, now time.Time) (int64, error)
}

type CancellationRepository interface {
	Create(ctx context.Context, c *cancellation.Cancellation) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
