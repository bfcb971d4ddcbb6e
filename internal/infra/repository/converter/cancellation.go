package converter

import (
	"pharmashift/internal/domain/cancellation"
	"pharmashift/internal/domain/money"
	"pharmashift/internal/domain/penalty"
	"pharmashift/internal/domain/shift"
	sqlc "pharmashift/internal/infra/sqlc/generated"
	"pharmashift/internal/pkg/pgconv"
)

func CancellationToCreateParams(c *cancellation.Cancellation) sqlc.CreateCancellationParams {
	p := c.Penalty()
	return sqlc.CreateCancellationParams{
		ID:                     c.ID(),
		ShiftID:                c.ShiftID(),
		BreachingParty:         c.BreachingParty(),
		BreachingRole:          c.BreachingRole().String(),
		Counterparty:           c.Counterparty(),
		HoursBeforeStart:       int32(c.HoursBeforeStart()), // #nosec G115 -- hours fit comfortably in int32
		Tier:                   p.Tier.String(),
		PenaltyTotalCents:      p.Total.Cents(),
		CounterpartyShareCents: p.CounterpartyShare.Cents(),
		PlatformShareCents:     p.PlatformShare.Cents(),
		PaymentStatus:          c.PaymentStatus().String(),
		PaymentRef:             pgconv.StringPtrToPgtype(c.PaymentRef()),
		Reason:                 pgconv.StringPtrToPgtype(c.Reason()),
		CreatedAt:              pgconv.TimeToPgtype(c.CreatedAt()),
	}
}

func CancellationFromRow(row sqlc.ShiftCancellation) *cancellation.Cancellation {
	return cancellation.Reconstruct(
		row.ID,
		row.ShiftID,
		row.BreachingParty,
		shift.Party(row.BreachingRole),
		row.Counterparty,
		int(row.HoursBeforeStart),
		penalty.Penalty{
			Tier:              penalty.Tier(row.Tier),
			Total:             money.FromCents(row.PenaltyTotalCents),
			CounterpartyShare: money.FromCents(row.CounterpartyShareCents),
			PlatformShare:     money.FromCents(row.PlatformShareCents),
		},
		cancellation.PaymentStatus(row.PaymentStatus),
		pgconv.StringPtrFromPgtype(row.PaymentRef),
		pgconv.StringPtrFromPgtype(row.Reason),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
