package converter

import (
	"pharmashift/internal/domain/application"
	"pharmashift/internal/domain/invitation"
	sqlc "pharmashift/internal/infra/sqlc/generated"
	"pharmashift/internal/pkg/pgconv"
)

func InvitationToCreateParams(inv *invitation.Invitation) sqlc.CreateInvitationParams {
	return sqlc.CreateInvitationParams{
		ID:              inv.ID(),
		ShiftID:         inv.ShiftID(),
		PharmacistID:    pgconv.UUIDPtrToPgtype(inv.PharmacistID()),
		PharmacistEmail: inv.PharmacistEmail(),
		InvitedBy:       inv.InvitedBy(),
		Status:          inv.Status().String(),
		ExpiresAt:       pgconv.TimePtrToPgtype(inv.ExpiresAt()),
		RespondedAt:     pgconv.TimePtrToPgtype(inv.RespondedAt()),
		CreatedAt:       pgconv.TimeToPgtype(inv.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(inv.UpdatedAt()),
	}
}

func InvitationToTransitionParams(inv *invitation.Invitation, from invitation.Status) sqlc.TransitionInvitationParams {
	return sqlc.TransitionInvitationParams{
		Status:      inv.Status().String(),
		RespondedAt: pgconv.TimePtrToPgtype(inv.RespondedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(inv.UpdatedAt()),
		ID:          inv.ID(),
		FromStatus:  from.String(),
	}
}

func InvitationFromRow(row sqlc.ShiftInvitation) (*invitation.Invitation, error) {
	return invitation.Reconstruct(
		row.ID,
		row.ShiftID,
		pgconv.UUIDPtrFromPgtype(row.PharmacistID),
		row.PharmacistEmail,
		row.InvitedBy,
		invitation.Status(row.Status),
		pgconv.TimePtrFromPgtype(row.ExpiresAt),
		pgconv.TimePtrFromPgtype(row.RespondedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func ApplicationToCreateParams(app *application.Application) sqlc.CreateApplicationParams {
	return sqlc.CreateApplicationParams{
		ID:              app.ID(),
		ShiftID:         app.ShiftID(),
		PharmacistID:    app.PharmacistID(),
		PharmacistEmail: app.PharmacistEmail(),
		Status:          app.Status().String(),
		RejectionReason: pgconv.StringPtrToPgtype(app.RejectionReason()),
		CreatedAt:       pgconv.TimeToPgtype(app.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(app.UpdatedAt()),
	}
}
