package money

import (
	"errors"
	"fmt"
)

var ErrNegativeAmount = errors.New("money cannot be negative")

// Money is an amount in minor units (cents).
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func FromCents(cents int64) Money {
	return Money{cents: cents}
}

func FromUnits(units int64) Money {
	return Money{cents: units * 100}
}

func Zero() Money {
	return Money{}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Units() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) Equal(other Money) bool {
	return m.cents == other.cents
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
