//go:build unit

package memstore

import (
	"context"
	"testing"
	"time"

	"pharmashift/internal/domain/schedule"
	"pharmashift/internal/infra"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func putRow(s *Store, row shiftRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ds.shifts[row.ID] = row
}

func TestStoredScheduleIsNormalizedOnRead(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		row  shiftRow
		want schedule.Schedule
	}{
		{
			name: "session without times",
			row:  shiftRow{Schedule: schedule.Schedule{{Date: "2026-03-01"}}},
			want: schedule.Schedule{{Date: "2026-03-01", StartTime: "09:00", EndTime: "17:00"}},
		},
		{
			name: "legacy shift-level date",
			row:  shiftRow{Legacy: schedule.Legacy{ShiftDate: "2026-03-02", EndTime: "13:00"}},
			want: schedule.Schedule{{Date: "2026-03-02", StartTime: "09:00", EndTime: "13:00"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			row := tc.row
			row.ID = uuid.New()
			row.Name = "Imported shift"
			row.Status = "open"
			row.CreatedBy = uuid.New()
			row.CreatedAt, row.UpdatedAt = now, now
			putRow(s, row)

			sh, err := s.CommandReads().ShiftByID(ctx, row.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.want, sh.Schedule())

			view, err := NewShiftReadStore(s).FindByID(ctx, row.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.want, view.Schedule)
		})
	}

	t.Run("row with no schedule is rejected", func(t *testing.T) {
		s := New()
		id := uuid.New()
		putRow(s, shiftRow{ID: id, Name: "Broken", Status: "open", CreatedBy: uuid.New(), CreatedAt: now, UpdatedAt: now})

		_, err := s.CommandReads().ShiftByID(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure), "got %v", err)
	})
}
