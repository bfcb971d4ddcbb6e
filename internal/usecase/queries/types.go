package queries

import (
	"time"

	"pharmashift/internal/domain/schedule"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type InvitationView struct {
	ID              uuid.UUID         `json:"id"`
	ShiftID         uuid.UUID         `json:"shift_id"`
	ShiftName       string            `json:"shift_name"`
	ShiftLocation   string            `json:"shift_location"`
	ShiftSchedule   schedule.Schedule `json:"shift_schedule"`
	PharmacistID    *uuid.UUID        `json:"pharmacist_id,omitempty"`
	PharmacistEmail string            `json:"pharmacist_email"`
	InvitedBy       uuid.UUID         `json:"invited_by"`
	Status          string            `json:"status"`
	ExpiresAt       *time.Time        `json:"expires_at,omitempty"`
	RespondedAt     *time.Time        `json:"responded_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type ShiftView struct {
	ID              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	Location        string            `json:"location"`
	Status          string            `json:"status"`
	Schedule        schedule.Schedule `json:"schedule"`
	HourlyRateCents int64             `json:"hourly_rate_cents"`
	CreatedBy       uuid.UUID         `json:"created_by"`
	AssignedTo      *uuid.UUID        `json:"assigned_to,omitempty"`
	FilledAt        *time.Time        `json:"filled_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
