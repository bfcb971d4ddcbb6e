package memstore

import (
	"context"
	"sync"
	"time"

	"pharmashift/internal/domain/application"
	"pharmashift/internal/domain/cancellation"
	"pharmashift/internal/domain/schedule"
	"pharmashift/internal/usecase/shared"

	"github.com/google/uuid"
)

type shiftRow struct {
	ID              uuid.UUID
	Name            string
	Location        string
	Status          string
	AssignedTo      *uuid.UUID
	Schedule        schedule.Schedule
	// Legacy is only set on rows imported from single-date shifts.
	Legacy          schedule.Legacy
	HourlyRateCents int64
	CreatedBy       uuid.UUID
	FilledAt        *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// sessions reads the schedule the way the postgres store does: missing
// times are defaulted and an empty list falls back to the legacy date.
func (r shiftRow) sessions() (schedule.Schedule, error) {
	return schedule.Normalize(r.Schedule, r.Legacy)
}

type invitationRow struct {
	ID              uuid.UUID
	ShiftID         uuid.UUID
	PharmacistID    *uuid.UUID
	PharmacistEmail string
	InvitedBy       uuid.UUID
	Status          string
	ExpiresAt       *time.Time
	RespondedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type applicationRow struct {
	ID              uuid.UUID
	ShiftID         uuid.UUID
	PharmacistID    uuid.UUID
	PharmacistEmail string
	Status          string
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type cancellationRow struct {
	ID                     uuid.UUID
	ShiftID                uuid.UUID
	BreachingParty         uuid.UUID
	BreachingRole          string
	Counterparty           uuid.UUID
	HoursBeforeStart       int
	Tier                   string
	PenaltyTotalCents      int64
	CounterpartyShareCents int64
	PlatformShareCents     int64
	PaymentStatus          string
	PaymentRef             *string
	Reason                 *string
	CreatedAt              time.Time
}

// NotificationJob is an enqueued outbox row.
type NotificationJob struct {
	ID      uuid.UUID
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type PaymentMethod struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ProviderRef string
	Brand       string
	Last4       string
	IsDefault   bool
}

type dataset struct {
	shifts         map[uuid.UUID]shiftRow
	invitations    map[uuid.UUID]invitationRow
	applications   map[uuid.UUID]applicationRow
	cancellations  map[uuid.UUID]cancellationRow
	notifications  []NotificationJob
	paymentMethods map[uuid.UUID]PaymentMethod
}

func newDataset() *dataset {
	return &dataset{
		shifts:         map[uuid.UUID]shiftRow{},
		invitations:    map[uuid.UUID]invitationRow{},
		applications:   map[uuid.UUID]applicationRow{},
		cancellations:  map[uuid.UUID]cancellationRow{},
		paymentMethods: map[uuid.UUID]PaymentMethod{},
	}
}

// clone copies the maps; rows are values and their pointer fields are never written through.
func (d *dataset) clone() *dataset {
	c := &dataset{
		shifts:         make(map[uuid.UUID]shiftRow, len(d.shifts)),
		invitations:    make(map[uuid.UUID]invitationRow, len(d.invitations)),
		applications:   make(map[uuid.UUID]applicationRow, len(d.applications)),
		cancellations:  make(map[uuid.UUID]cancellationRow, len(d.cancellations)),
		notifications:  append([]NotificationJob(nil), d.notifications...),
		paymentMethods: make(map[uuid.UUID]PaymentMethod, len(d.paymentMethods)),
	}
	for k, v := range d.shifts {
		c.shifts[k] = v
	}
	for k, v := range d.invitations {
		c.invitations[k] = v
	}
	for k, v := range d.applications {
		c.applications[k] = v
	}
	for k, v := range d.cancellations {
		c.cancellations[k] = v
	}
	for k, v := range d.paymentMethods {
		c.paymentMethods[k] = v
	}
	return c
}

// Store is an in-process entity store. Within runs serialized against a copy
// that replaces the live data only when fn succeeds; Direct applies each call
// immediately under the store mutex.
type Store struct {
	mu       sync.Mutex
	ds       *dataset
	failures map[string]error
}

func New() *Store {
	return &Store{ds: newDataset(), failures: map[string]error{}}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.ds.clone()
	if err := fn(ctx, &memTx{store: s, ds: work}); err != nil {
		return err
	}
	s.ds = work
	return nil
}

func (s *Store) Direct(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &memTx{store: s})
}

func (s *Store) CommandReads() shared.CommandReads {
	return &commandReads{tx: &memTx{store: s}}
}

// FailOn makes the named operation return err until cleared with a nil err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

func (s *Store) PutPaymentMethod(pm PaymentMethod) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pm.ID == uuid.Nil {
		pm.ID = uuid.New()
	}
	s.ds.paymentMethods[pm.ID] = pm
}

func (s *Store) NotificationJobs() []NotificationJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]NotificationJob(nil), s.ds.notifications...)
}

// Applications returns the applications filed against a shift.
func (s *Store) Applications(shiftID uuid.UUID) []*application.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*application.Application
	for _, row := range s.ds.applications {
		if row.ShiftID != shiftID {
			continue
		}
		app, err := application.Reconstruct(row.ID, row.ShiftID, row.PharmacistID, row.PharmacistEmail,
			application.Status(row.Status), row.RejectionReason, row.CreatedAt, row.UpdatedAt)
		if err == nil {
			out = append(out, app)
		}
	}
	return out
}

// Cancellations returns the recorded cancellations for a shift.
func (s *Store) Cancellations(shiftID uuid.UUID) []*cancellation.Cancellation {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*cancellation.Cancellation
	for _, row := range s.ds.cancellations {
		if row.ShiftID == shiftID {
			out = append(out, rowToCancellation(row))
		}
	}
	return out
}

type memTx struct {
	store *Store
	// ds is set inside Within, where the store mutex is already held.
	ds *dataset
}

func (t *memTx) run(op string, fn func(ds *dataset) error) error {
	if t.ds != nil {
		if err := t.store.failures[op]; err != nil {
			return err
		}
		return fn(t.ds)
	}

	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if err := t.store.failures[op]; err != nil {
		return err
	}
	return fn(t.store.ds)
}

func (t *memTx) Shifts() shared.ShiftRepository               { return &shiftRepo{tx: t} }
func (t *memTx) Invitations() shared.InvitationRepository     { return &invitationRepo{tx: t} }
func (t *memTx) Applications() shared.ApplicationRepository   { return &applicationRepo{tx: t} }
func (t *memTx) Cancellations() shared.CancellationRepository { return &cancellationRepo{tx: t} }
func (t *memTx) Notifications() shared.NotificationRepository { return &notificationRepo{tx: t} }
func (t *memTx) Reads() shared.CommandReads                   { return &commandReads{tx: t} }
