package shift

import (
	"time"

	"pharmashift/internal/domain/money"
	"pharmashift/internal/domain/schedule"
	"pharmashift/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotOpen         = errs.New("shift is not open")
	ErrAlreadyAssigned = errs.New("shift is already assigned")
	ErrNotFilled       = errs.New("shift is not filled")
	ErrNotParty        = errs.New("actor is not a party to this shift")
	ErrInvalidParty    = errs.New("invalid party")
	ErrNotElapsed      = errs.New("shift has sessions that have not ended")
	ErrInvalidStatus   = errs.New("invalid shift status")
	ErrAssignment      = errs.New("assignee must be set if and only if the shift is filled")
)

type Shift struct {
	id         uuid.UUID
	name       string
	location   string
	status     Status
	assignedTo *uuid.UUID
	schedule   schedule.Schedule
	hourlyRate money.Money
	createdBy  uuid.UUID
	filledAt   *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

// New posts an open shift.
func New(name, location string, sched schedule.Schedule, hourlyRate money.Money, createdBy uuid.UUID, now time.Time) (*Shift, error) {
	if err := sched.Validate(); err != nil {
		return nil, err
	}

	return &Shift{
		id:         uuid.New(),
		name:       name,
		location:   location,
		status:     StatusOpen,
		schedule:   sched,
		hourlyRate: hourlyRate,
		createdBy:  createdBy,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	name, location string,
	status Status,
	assignedTo *uuid.UUID,
	sched schedule.Schedule,
	hourlyRate money.Money,
	createdBy uuid.UUID,
	filledAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Shift, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if (assignedTo != nil) != (status == StatusFilled) {
		return nil, ErrAssignment
	}

	return &Shift{
		id:         id,
		name:       name,
		location:   location,
		status:     status,
		assignedTo: assignedTo,
		schedule:   sched,
		hourlyRate: hourlyRate,
		createdBy:  createdBy,
		filledAt:   filledAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (s *Shift) ID() uuid.UUID               { return s.id }
func (s *Shift) Name() string                { return s.name }
func (s *Shift) Location() string            { return s.location }
func (s *Shift) Status() Status              { return s.status }
func (s *Shift) AssignedTo() *uuid.UUID      { return s.assignedTo }
func (s *Shift) Schedule() schedule.Schedule { return s.schedule }
func (s *Shift) HourlyRate() money.Money     { return s.hourlyRate }
func (s *Shift) CreatedBy() uuid.UUID        { return s.createdBy }
func (s *Shift) FilledAt() *time.Time        { return s.filledAt }
func (s *Shift) CreatedAt() time.Time        { return s.createdAt }
func (s *Shift) UpdatedAt() time.Time        { return s.updatedAt }

func (s *Shift) IsAssignedTo(workerID uuid.UUID) bool {
	return s.assignedTo != nil && *s.assignedTo == workerID
}

// EnsureAssignable checks both the status and the assignee, since either can
// reveal a booking that raced in.
func (s *Shift) EnsureAssignable() error {
	if s.status != StatusOpen {
		return ErrNotOpen
	}
	if s.assignedTo != nil {
		return ErrAlreadyAssigned
	}
	return nil
}

func (s *Shift) Fill(workerID uuid.UUID, now time.Time) error {
	if err := s.EnsureAssignable(); err != nil {
		return err
	}
	s.status = StatusFilled
	s.assignedTo = &workerID
	s.filledAt = &now
	s.updatedAt = now
	return nil
}

// AuthorizeParty checks the actor holds the given side of the booking.
func (s *Shift) AuthorizeParty(actorID uuid.UUID, party Party) error {
	switch party {
	case PartyWorker:
		if !s.IsAssignedTo(actorID) {
			return ErrNotParty
		}
	case PartyPoster:
		if s.createdBy != actorID {
			return ErrNotParty
		}
	default:
		return ErrInvalidParty
	}
	return nil
}

// Counterparty returns the other side of the booking. Only meaningful while filled.
func (s *Shift) Counterparty(breaching Party) (uuid.UUID, error) {
	if s.assignedTo == nil {
		return uuid.Nil, ErrNotFilled
	}
	switch breaching {
	case PartyWorker:
		return s.createdBy, nil
	case PartyPoster:
		return *s.assignedTo, nil
	default:
		return uuid.Nil, ErrInvalidParty
	}
}

func (s *Shift) Cancel(now time.Time) error {
	if s.status != StatusFilled {
		return ErrNotFilled
	}
	s.status = StatusCancelled
	s.assignedTo = nil
	s.updatedAt = now
	return nil
}

// Complete closes out a filled shift once its last session has ended.
func (s *Shift) Complete(loc *time.Location, now time.Time) error {
	if s.status != StatusFilled {
		return ErrNotFilled
	}
	end, ok := s.schedule.LatestEnd(loc)
	if !ok || now.Before(end) {
		return ErrNotElapsed
	}
	s.status = StatusCompleted
	s.assignedTo = nil
	s.updatedAt = now
	return nil
}

func (s *Shift) Commitment() schedule.Commitment {
	return schedule.Commitment{ShiftID: s.id, Schedule: s.schedule}
}
