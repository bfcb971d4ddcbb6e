//go:build unit

package cancellation_test

import (
	"testing"
	"time"

	"pharmashift/internal/domain/cancellation"
	"pharmashift/internal/domain/money"
	"pharmashift/internal/domain/penalty"
	"pharmashift/internal/domain/shift"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC)

func TestNew_PaymentStatusFollowsTotal(t *testing.T) {
	calc := penalty.NewTieredCalculator()
	shiftID, worker, poster := uuid.New(), uuid.New(), uuid.New()

	waived, err := cancellation.New(shiftID, worker, shift.PartyWorker, poster, 200, calc.Compute(200), nil, now)
	require.NoError(t, err)
	assert.Equal(t, cancellation.PaymentWaived, waived.PaymentStatus())
	assert.ErrorIs(t, waived.AttachPaymentRef("pay_1"), cancellation.ErrRefOnWaived)
	assert.Nil(t, waived.PaymentRef())

	reason := "family emergency"
	charged, err := cancellation.New(shiftID, poster, shift.PartyPoster, worker, 5, calc.Compute(5), &reason, now)
	require.NoError(t, err)
	assert.Equal(t, cancellation.PaymentCharged, charged.PaymentStatus())
	assert.Equal(t, int64(30000), charged.Penalty().Total.Cents())
	assert.Equal(t, &reason, charged.Reason())
}

func TestNew_Rejections(t *testing.T) {
	shiftID, a, b := uuid.New(), uuid.New(), uuid.New()
	good := penalty.NewTieredCalculator().Compute(30)

	_, err := cancellation.New(shiftID, a, shift.PartyWorker, a, 30, good, nil, now)
	assert.ErrorIs(t, err, cancellation.ErrSameParty)

	_, err = cancellation.New(shiftID, a, shift.Party("admin"), b, 30, good, nil, now)
	assert.ErrorIs(t, err, cancellation.ErrInvalidParty)

	broken := good
	broken.PlatformShare = money.FromUnits(1)
	_, err = cancellation.New(shiftID, a, shift.PartyWorker, b, 30, broken, nil, now)
	assert.ErrorIs(t, err, cancellation.ErrSplitMismatch)
}

func TestAttachPaymentRef_OnlyOnce(t *testing.T) {
	c, err := cancellation.New(uuid.New(), uuid.New(), shift.PartyWorker, uuid.New(), 60, penalty.NewTieredCalculator().Compute(60), nil, now)
	require.NoError(t, err)

	assert.ErrorIs(t, c.AttachPaymentRef(""), cancellation.ErrEmptyRef)
	require.NoError(t, c.AttachPaymentRef("pay_123"))
	assert.ErrorIs(t, c.AttachPaymentRef("pay_456"), cancellation.ErrRefAlreadyAttached)
	require.NotNil(t, c.PaymentRef())
	assert.Equal(t, "pay_123", *c.PaymentRef())
}
