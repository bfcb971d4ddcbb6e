//go:build unit || e2e

package builder

import (
	"time"

	"pharmashift/internal/domain/application"
	"pharmashift/internal/domain/invitation"

	"github.com/google/uuid"
)

type InvitationBuilder struct {
	ID              uuid.UUID
	ShiftID         uuid.UUID
	PharmacistID    *uuid.UUID
	PharmacistEmail string
	InvitedBy       uuid.UUID
	Status          invitation.Status
	ExpiresAt       *time.Time
	CreatedAt       time.Time
}

func NewInvitationBuilder() *InvitationBuilder {
	return &InvitationBuilder{
		ID:              uuid.New(),
		ShiftID:         uuid.New(),
		PharmacistEmail: "pharmacist@example.com",
		InvitedBy:       uuid.New(),
		Status:          invitation.StatusPending,
		CreatedAt:       time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *InvitationBuilder) With(mutate func(*InvitationBuilder)) *InvitationBuilder {
	mutate(b)
	return b
}

func (b *InvitationBuilder) BuildDomain() (*invitation.Invitation, error) {
	return invitation.Reconstruct(
		b.ID,
		b.ShiftID,
		b.PharmacistID,
		b.PharmacistEmail,
		b.InvitedBy,
		b.Status,
		b.ExpiresAt,
		nil,
		b.CreatedAt,
		b.CreatedAt,
	)
}

func (b *InvitationBuilder) MustBuild() *invitation.Invitation {
	inv, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return inv
}

func (b *InvitationBuilder) ForShift(shiftID uuid.UUID) *InvitationBuilder {
	b.ShiftID = shiftID
	return b
}

func (b *InvitationBuilder) ForPharmacist(id uuid.UUID, email string) *InvitationBuilder {
	b.PharmacistID = &id
	b.PharmacistEmail = email
	return b
}

func (b *InvitationBuilder) ExpiringAt(at time.Time) *InvitationBuilder {
	b.ExpiresAt = &at
	return b
}

func (b *InvitationBuilder) WithStatus(status invitation.Status) *InvitationBuilder {
	b.Status = status
	return b
}

type ApplicationBuilder struct {
	ShiftID         uuid.UUID
	PharmacistID    uuid.UUID
	PharmacistEmail string
	Status          application.Status
	CreatedAt       time.Time
}

func NewApplicationBuilder() *ApplicationBuilder {
	return &ApplicationBuilder{
		ShiftID:         uuid.New(),
		PharmacistID:    uuid.New(),
		PharmacistEmail: "applicant@example.com",
		Status:          application.StatusPending,
		CreatedAt:       time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ApplicationBuilder) With(mutate func(*ApplicationBuilder)) *ApplicationBuilder {
	mutate(b)
	return b
}

func (b *ApplicationBuilder) MustBuild() *application.Application {
	app, err := application.Reconstruct(uuid.New(), b.ShiftID, b.PharmacistID, b.PharmacistEmail, b.Status, nil, b.CreatedAt, b.CreatedAt)
	if err != nil {
		panic(err)
	}
	return app
}
