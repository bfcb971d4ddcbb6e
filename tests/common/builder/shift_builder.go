//go:build unit || e2e

package builder

import (
	"time"

	"pharmashift/internal/domain/money"
	"pharmashift/internal/domain/schedule"
	"pharmashift/internal/domain/shift"

	"github.com/google/uuid"
)

type ShiftBuilder struct {
	ID         uuid.UUID
	Name       string
	Location   string
	Status     shift.Status
	AssignedTo *uuid.UUID
	Schedule   schedule.Schedule
	HourlyRate int64
	CreatedBy  uuid.UUID
	FilledAt   *time.Time
	CreatedAt  time.Time
}

func NewShiftBuilder() *ShiftBuilder {
	return &ShiftBuilder{
		ID:       uuid.New(),
		Name:     "Weekend cover",
		Location: "Main Street Pharmacy",
		Status:   shift.StatusOpen,
		Schedule: schedule.Schedule{
			{Date: "2026-11-20", StartTime: "09:00", EndTime: "17:00"},
		},
		HourlyRate: 6500,
		CreatedBy:  uuid.New(),
		CreatedAt:  time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ShiftBuilder) With(mutate func(*ShiftBuilder)) *ShiftBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ShiftBuilder) BuildDomain() (*shift.Shift, error) {
	return shift.Reconstruct(
		b.ID,
		b.Name,
		b.Location,
		b.Status,
		b.AssignedTo,
		b.Schedule,
		money.FromCents(b.HourlyRate),
		b.CreatedBy,
		b.FilledAt,
		b.CreatedAt,
		b.CreatedAt,
	)
}

func (b *ShiftBuilder) MustBuild() *shift.Shift {
	s, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return s
}

// Fluent builder methods
func (b *ShiftBuilder) WithSessions(sessions ...schedule.Session) *ShiftBuilder {
	b.Schedule = sessions
	return b
}

func (b *ShiftBuilder) WithPoster(id uuid.UUID) *ShiftBuilder {
	b.CreatedBy = id
	return b
}

func (b *ShiftBuilder) FilledBy(workerID uuid.UUID, at time.Time) *ShiftBuilder {
	b.Status = shift.StatusFilled
	b.AssignedTo = &workerID
	b.FilledAt = &at
	return b
}

func (b *ShiftBuilder) WithStatus(status shift.Status) *ShiftBuilder {
	b.Status = status
	return b
}
