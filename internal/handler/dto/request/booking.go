package request

import (
	"time"

	"pharmashift/internal/domain/shift"
	"pharmashift/internal/pkg/patch"
	"pharmashift/internal/usecase/commands"
	"pharmashift/internal/usecase/shared"

	"github.com/google/uuid"
)

type InvitationActionRequest struct {
	InvitationID uuid.UUID `json:"invitationId" binding:"required"`
}

func (r InvitationActionRequest) ToAcceptInput(actor shared.Actor) commands.AcceptInvitationInput {
	return commands.AcceptInvitationInput{InvitationID: r.InvitationID, Worker: actor}
}

func (r InvitationActionRequest) ToDeclineInput(actor shared.Actor) commands.DeclineInvitationInput {
	return commands.DeclineInvitationInput{InvitationID: r.InvitationID, Worker: actor}
}

type CancelShiftRequest struct {
	ShiftID uuid.UUID `json:"shiftId" binding:"required"`
	// CancelledAt is optional. A past value is ignored and the server clock is used instead.
	CancelledAt *time.Time `json:"cancelledAt,omitempty" example:"2026-11-18T09:00:00Z"`
	Reason      *string    `json:"reason,omitempty" binding:"omitempty,max=1000"`
}

func (r CancelShiftRequest) ToInput(actor shared.Actor, party shift.Party) commands.CancelShiftInput {
	return commands.CancelShiftInput{
		ShiftID:     r.ShiftID,
		Actor:       actor,
		Party:       party,
		CancelledAt: r.CancelledAt,
		Reason:      patch.TrimmedOrNil(r.Reason),
	}
}
