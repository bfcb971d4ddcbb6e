package response

import (
	"time"

	"pharmashift/internal/domain/schedule"
	"pharmashift/internal/usecase/queries"

	"github.com/google/uuid"
)

type InvitationResponse struct {
	ID              uuid.UUID         `json:"id"`
	ShiftID         uuid.UUID         `json:"shiftId"`
	ShiftName       string            `json:"shiftName"`
	ShiftLocation   string            `json:"shiftLocation"`
	ShiftSchedule   schedule.Schedule `json:"shiftSchedule"`
	PharmacistID    *uuid.UUID        `json:"pharmacistId,omitempty"`
	PharmacistEmail string            `json:"pharmacistEmail,omitempty"`
	InvitedBy       uuid.UUID         `json:"invitedBy"`
	Status          string            `json:"status"`
	ExpiresAt       *time.Time        `json:"expiresAt,omitempty"`
	RespondedAt     *time.Time        `json:"respondedAt,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}

func FromInvitationView(v *queries.InvitationView) *InvitationResponse {
	return &InvitationResponse{
		ID:              v.ID,
		ShiftID:         v.ShiftID,
		ShiftName:       v.ShiftName,
		ShiftLocation:   v.ShiftLocation,
		ShiftSchedule:   v.ShiftSchedule,
		PharmacistID:    v.PharmacistID,
		PharmacistEmail: v.PharmacistEmail,
		InvitedBy:       v.InvitedBy,
		Status:          v.Status,
		ExpiresAt:       v.ExpiresAt,
		RespondedAt:     v.RespondedAt,
		CreatedAt:       v.CreatedAt,
	}
}

func FromInvitationViews(vs []*queries.InvitationView) []*InvitationResponse {
	out := make([]*InvitationResponse, len(vs))
	for i, v := range vs {
		out[i] = FromInvitationView(v)
	}
	return out
}

type ShiftResponse struct {
	ID              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	Location        string            `json:"location"`
	Status          string            `json:"status"`
	Schedule        schedule.Schedule `json:"schedule"`
	HourlyRateCents int64             `json:"hourlyRateCents"`
	CreatedBy       uuid.UUID         `json:"createdBy"`
	AssignedTo      *uuid.UUID        `json:"assignedTo,omitempty"`
	FilledAt        *time.Time        `json:"filledAt,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

func FromShiftView(v *queries.ShiftView) *ShiftResponse {
	return &ShiftResponse{
		ID:              v.ID,
		Name:            v.Name,
		Location:        v.Location,
		Status:          v.Status,
		Schedule:        v.Schedule,
		HourlyRateCents: v.HourlyRateCents,
		CreatedBy:       v.CreatedBy,
		AssignedTo:      v.AssignedTo,
		FilledAt:        v.FilledAt,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}
