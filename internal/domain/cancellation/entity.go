package cancellation

import (
	"time"

	"pharmashift/internal/domain/penalty"
	"pharmashift/internal/domain/shift"
	"pharmashift/internal/pkg/errs"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentWaived  PaymentStatus = "waived"
	PaymentCharged PaymentStatus = "charged"
)

func (s PaymentStatus) String() string {
	return string(s)
}

var (
	ErrSplitMismatch      = errs.New("penalty shares must add up to the total")
	ErrSameParty          = errs.New("breaching party and counterparty must differ")
	ErrInvalidParty       = errs.New("invalid breaching party")
	ErrRefOnWaived        = errs.New("waived cancellations carry no payment reference")
	ErrRefAlreadyAttached = errs.New("payment reference already attached")
	ErrEmptyRef           = errs.New("payment reference is empty")
)

// Cancellation records one breach of a filled shift. Append-only: the payment
// reference is the only field set after creation.
type Cancellation struct {
	id               uuid.UUID
	shiftID          uuid.UUID
	breachingParty   uuid.UUID
	breachingRole    shift.Party
	counterparty     uuid.UUID
	hoursBeforeStart int
	penalty          penalty.Penalty
	paymentStatus    PaymentStatus
	paymentRef       *string
	reason           *string
	createdAt        time.Time
}

func New(shiftID, breachingParty uuid.UUID, role shift.Party, counterparty uuid.UUID, hoursBeforeStart int, p penalty.Penalty, reason *string, now time.Time) (*Cancellation, error) {
	if !role.IsValid() {
		return nil, ErrInvalidParty
	}
	if breachingParty == counterparty {
		return nil, ErrSameParty
	}
	if !p.Total.Equal(p.CounterpartyShare.Add(p.PlatformShare)) {
		return nil, ErrSplitMismatch
	}

	status := PaymentCharged
	if p.Waived() {
		status = PaymentWaived
	}

	return &Cancellation{
		id:               uuid.New(),
		shiftID:          shiftID,
		breachingParty:   breachingParty,
		breachingRole:    role,
		counterparty:     counterparty,
		hoursBeforeStart: hoursBeforeStart,
		penalty:          p,
		paymentStatus:    status,
		reason:           reason,
		createdAt:        now,
	}, nil
}

func Reconstruct(
	id, shiftID, breachingParty uuid.UUID,
	role shift.Party,
	counterparty uuid.UUID,
	hoursBeforeStart int,
	p penalty.Penalty,
	status PaymentStatus,
	paymentRef, reason *string,
	createdAt time.Time,
) *Cancellation {
	return &Cancellation{
		id:               id,
		shiftID:          shiftID,
		breachingParty:   breachingParty,
		breachingRole:    role,
		counterparty:     counterparty,
		hoursBeforeStart: hoursBeforeStart,
		penalty:          p,
		paymentStatus:    status,
		paymentRef:       paymentRef,
		reason:           reason,
		createdAt:        createdAt,
	}
}

func (c *Cancellation) ID() uuid.UUID                { return c.id }
func (c *Cancellation) ShiftID() uuid.UUID           { return c.shiftID }
func (c *Cancellation) BreachingParty() uuid.UUID    { return c.breachingParty }
func (c *Cancellation) BreachingRole() shift.Party   { return c.breachingRole }
func (c *Cancellation) Counterparty() uuid.UUID      { return c.counterparty }
func (c *Cancellation) HoursBeforeStart() int        { return c.hoursBeforeStart }
func (c *Cancellation) Penalty() penalty.Penalty     { return c.penalty }
func (c *Cancellation) PaymentStatus() PaymentStatus { return c.paymentStatus }
func (c *Cancellation) PaymentRef() *string          { return c.paymentRef }
func (c *Cancellation) Reason() *string              { return c.reason }
func (c *Cancellation) CreatedAt() time.Time         { return c.createdAt }

func (c *Cancellation) AttachPaymentRef(ref string) error {
	if c.paymentStatus == PaymentWaived {
		return ErrRefOnWaived
	}
	if c.paymentRef != nil {
		return ErrRefAlreadyAttached
	}
	if ref == "" {
		return ErrEmptyRef
	}
	c.paymentRef = &ref
	return nil
}
