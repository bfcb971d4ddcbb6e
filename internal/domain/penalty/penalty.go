package penalty

import (
	"math"
	"time"

	"pharmashift/internal/domain/money"
)

type Tier string

const (
	TierFivePlusDays Tier = "5d_plus"
	TierThreeToFive  Tier = "3_5d"
	TierTwoToThree   Tier = "2_3d"
	TierOneToTwo     Tier = "1_2d"
	TierUnderOneDay  Tier = "under_24h"
)

func (t Tier) String() string {
	return string(t)
}

// Penalty is the amount owed by the breaching party and how it is split.
type Penalty struct {
	Tier              Tier
	Total             money.Money
	CounterpartyShare money.Money
	PlatformShare     money.Money
}

func (p Penalty) Waived() bool {
	return p.Total.IsZero()
}

// Rule applies when hoursBeforeStart >= MinHours.
type Rule struct {
	MinHours     int
	Tier         Tier
	Counterparty money.Money
	Platform     money.Money
}

// DefaultRules lists tiers from most lenient to least lenient.
func DefaultRules() []Rule {
	return []Rule{
		{MinHours: 120, Tier: TierFivePlusDays},
		{MinHours: 72, Tier: TierThreeToFive, Counterparty: money.FromUnits(0), Platform: money.FromUnits(50)},
		{MinHours: 48, Tier: TierTwoToThree, Counterparty: money.FromUnits(50), Platform: money.FromUnits(50)},
		{MinHours: 24, Tier: TierOneToTwo, Counterparty: money.FromUnits(80), Platform: money.FromUnits(70)},
		{MinHours: math.MinInt, Tier: TierUnderOneDay, Counterparty: money.FromUnits(200), Platform: money.FromUnits(100)},
	}
}

// Calculator is symmetric in the breaching party; callers decide who the counterparty is.
type Calculator interface {
	Compute(hoursBeforeStart int) Penalty
}

type TieredCalculator struct {
	rules []Rule
}

func NewTieredCalculator() *TieredCalculator {
	return &TieredCalculator{rules: DefaultRules()}
}

func (c *TieredCalculator) Compute(hoursBeforeStart int) Penalty {
	for _, r := range c.rules {
		if hoursBeforeStart >= r.MinHours {
			return Penalty{
				Tier:              r.Tier,
				Total:             r.Counterparty.Add(r.Platform),
				CounterpartyShare: r.Counterparty,
				PlatformShare:     r.Platform,
			}
		}
	}
	// unreachable with DefaultRules; the last rule matches everything
	last := c.rules[len(c.rules)-1]
	return Penalty{
		Tier:              last.Tier,
		Total:             last.Counterparty.Add(last.Platform),
		CounterpartyShare: last.Counterparty,
		PlatformShare:     last.Platform,
	}
}

// HoursBeforeStart floors toward negative infinity, so a cancellation after the
// start yields a negative value.
func HoursBeforeStart(earliestStart, cancelledAt time.Time) int {
	return int(math.Floor(earliestStart.Sub(cancelledAt).Hours()))
}
