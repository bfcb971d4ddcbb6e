//go:build unit

package invitation_test

import (
	"testing"
	"time"

	"pharmashift/internal/domain/invitation"
	"pharmashift/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC)

func TestNew(t *testing.T) {
	shiftID, poster := uuid.New(), uuid.New()
	deadline := now.Add(48 * time.Hour)

	inv, err := invitation.New(shiftID, nil, "  rx@example.com ", poster, &deadline, now)
	require.NoError(t, err)
	assert.Equal(t, invitation.StatusPending, inv.Status())
	assert.Equal(t, "rx@example.com", inv.PharmacistEmail())

	_, err = invitation.New(shiftID, nil, "", poster, &deadline, now)
	assert.ErrorIs(t, err, invitation.ErrMissingInvitee)

	past := now.Add(-time.Minute)
	_, err = invitation.New(shiftID, nil, "rx@example.com", poster, &past, now)
	assert.ErrorIs(t, err, invitation.ErrInvalidDeadline)
}

func TestInvitation_BelongsTo(t *testing.T) {
	workerID := uuid.New()

	byEmail := builder.NewInvitationBuilder().MustBuild()
	assert.True(t, byEmail.BelongsTo(uuid.New(), "Pharmacist@Example.com"))
	assert.False(t, byEmail.BelongsTo(uuid.New(), "other@example.com"))
	assert.False(t, byEmail.BelongsTo(uuid.New(), ""))

	byID := builder.NewInvitationBuilder().ForPharmacist(workerID, "").MustBuild()
	assert.True(t, byID.BelongsTo(workerID, "anything@example.com"))
	assert.False(t, byID.BelongsTo(uuid.New(), ""))
}

func TestInvitation_Transitions(t *testing.T) {
	deadline := now.Add(time.Hour)

	tests := []struct {
		name    string
		status  invitation.Status
		at      time.Time
		act     func(*invitation.Invitation, time.Time) error
		errIs   error
		wantEnd invitation.Status
	}{
		{"accept pending", invitation.StatusPending, now, (*invitation.Invitation).Accept, nil, invitation.StatusAccepted},
		{"accept exactly at deadline", invitation.StatusPending, deadline, (*invitation.Invitation).Accept, nil, invitation.StatusAccepted},
		{"accept after deadline", invitation.StatusPending, deadline.Add(time.Second), (*invitation.Invitation).Accept, invitation.ErrExpired, invitation.StatusPending},
		{"accept declined", invitation.StatusDeclined, now, (*invitation.Invitation).Accept, invitation.ErrNotPending, invitation.StatusDeclined},
		{"decline pending", invitation.StatusPending, now, (*invitation.Invitation).Decline, nil, invitation.StatusDeclined},
		{"decline accepted", invitation.StatusAccepted, now, (*invitation.Invitation).Decline, invitation.ErrNotPending, invitation.StatusAccepted},
		{"expire pending", invitation.StatusPending, now, (*invitation.Invitation).Expire, nil, invitation.StatusExpired},
		{"expire accepted", invitation.StatusAccepted, now, (*invitation.Invitation).Expire, invitation.ErrNotPending, invitation.StatusAccepted},
		{"cancel pending", invitation.StatusPending, now, (*invitation.Invitation).Cancel, nil, invitation.StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := builder.NewInvitationBuilder().WithStatus(tt.status).ExpiringAt(deadline).MustBuild()

			err := tt.act(inv, tt.at)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantEnd, inv.Status())
		})
	}
}

func TestInvitation_ExpireIfOverdue(t *testing.T) {
	deadline := now.Add(time.Hour)
	inv := builder.NewInvitationBuilder().ExpiringAt(deadline).MustBuild()

	assert.False(t, inv.ExpireIfOverdue(deadline))
	assert.Equal(t, invitation.StatusPending, inv.Status())

	later := deadline.Add(time.Minute)
	for i := 0; i < 3; i++ {
		inv.ExpireIfOverdue(later)
		assert.Equal(t, invitation.StatusExpired, inv.Status())
	}

	noDeadline := builder.NewInvitationBuilder().MustBuild()
	assert.False(t, noDeadline.ExpireIfOverdue(later.Add(1000*time.Hour)))
}
