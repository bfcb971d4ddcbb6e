package response

import (
	"pharmashift/internal/domain/schedule"
	"pharmashift/internal/usecase/commands"

	"github.com/google/uuid"
)

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type AcceptedShift struct {
	ID       uuid.UUID         `json:"id"`
	Name     string            `json:"name"`
	Location string            `json:"location"`
	Status   string            `json:"status"`
	Schedule schedule.Schedule `json:"schedule"`
}

type AcceptInvitationResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Shift   AcceptedShift `json:"shift"`
}

func FromAcceptResult(res *commands.AcceptInvitationResult) *AcceptInvitationResponse {
	return &AcceptInvitationResponse{
		Success: true,
		Message: "Invitation accepted; the shift is now booked",
		Shift: AcceptedShift{
			ID:       res.ShiftID,
			Name:     res.Name,
			Location: res.Location,
			Status:   res.Status.String(),
			Schedule: res.Schedule,
		},
	}
}

// Cancellation amounts are in currency units; the *Cents fields carry the exact values.
type Cancellation struct {
	ID                     uuid.UUID `json:"id"`
	TotalPenalty           float64   `json:"totalPenalty"`
	CounterpartyShare      float64   `json:"counterpartyShare"`
	PlatformShare          float64   `json:"platformShare"`
	TotalPenaltyCents      int64     `json:"totalPenaltyCents"`
	CounterpartyShareCents int64     `json:"counterpartyShareCents"`
	PlatformShareCents     int64     `json:"platformShareCents"`
	Tier                   string    `json:"tier"`
	HoursBeforeStart       int       `json:"hoursBeforeStart"`
	Status                 string    `json:"status"`
	PaymentRef             *string   `json:"paymentRef,omitempty"`
}

type CancelShiftResponse struct {
	Success      bool         `json:"success"`
	Message      string       `json:"message"`
	Cancellation Cancellation `json:"cancellation"`
}

func FromCancelResult(res *commands.CancelShiftResult) *CancelShiftResponse {
	msg := "Shift cancelled; no penalty applied"
	if !res.Penalty.Waived() {
		msg = "Shift cancelled; a penalty of " + res.Penalty.Total.String() + " was charged"
	}
	return &CancelShiftResponse{
		Success: true,
		Message: msg,
		Cancellation: Cancellation{
			ID:                     res.CancellationID,
			TotalPenalty:           res.Penalty.Total.Units(),
			CounterpartyShare:      res.Penalty.CounterpartyShare.Units(),
			PlatformShare:          res.Penalty.PlatformShare.Units(),
			TotalPenaltyCents:      res.Penalty.Total.Cents(),
			CounterpartyShareCents: res.Penalty.CounterpartyShare.Cents(),
			PlatformShareCents:     res.Penalty.PlatformShare.Cents(),
			Tier:                   res.Penalty.Tier.String(),
			HoursBeforeStart:       res.HoursBeforeStart,
			Status:                 res.PaymentStatus.String(),
			PaymentRef:             res.PaymentRef,
		},
	}
}
