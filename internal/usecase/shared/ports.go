package shared

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

type CaptureRequest struct {
	AmountCents      int64
	PaymentMethodRef string
	// IdempotencyKey makes a retried capture for the same breach return the original charge.
	IdempotencyKey string
	Metadata       map[string]string
}

type PaymentGateway interface {
	Capture(ctx context.Context, req CaptureRequest) (paymentRef string, err error)
}

// Notifier is fire-and-forget from the caller's point of view; errors are only logged.
type Notifier interface {
	Notify(ctx context.Context, recipient uuid.UUID, template string, payload map[string]any) error
}

// ClaimLocker narrows the race window between concurrent claims of the same shift.
// It is an optimization; the conditional store write decides the winner.
type ClaimLocker interface {
	TryLock(ctx context.Context, key string) (release func(), acquired bool, err error)
}
