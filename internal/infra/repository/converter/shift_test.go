//go:build unit

package converter_test

import (
	"testing"
	"time"

	"pharmashift/internal/domain/schedule"
	"pharmashift/internal/infra/repository/converter"
	sqlc "pharmashift/internal/infra/sqlc/generated"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(v string) pgtype.Text {
	return pgtype.Text{String: v, Valid: true}
}

func TestScheduleFromColumns(t *testing.T) {
	testCases := []struct {
		name      string
		raw       []byte
		shiftDate pgtype.Text
		startTime pgtype.Text
		endTime   pgtype.Text
		want      schedule.Schedule
		wantErr   error
	}{
		{
			name: "session without times gets the default working day",
			raw:  []byte(`[{"date":"2026-03-01"}]`),
			want: schedule.Schedule{{Date: "2026-03-01", StartTime: "09:00", EndTime: "17:00"}},
		},
		{
			name:      "explicit sessions win over shift-level columns",
			raw:       []byte(`[{"date":"2026-03-02","start_time":"13:00","end_time":"18:00"}]`),
			shiftDate: text("2026-03-09"),
			want:      schedule.Schedule{{Date: "2026-03-02", StartTime: "13:00", EndTime: "18:00"}},
		},
		{
			name:      "row without session list falls back to shift-level columns",
			shiftDate: text("2026-03-05"),
			startTime: text("07:30"),
			endTime:   text("15:00"),
			want:      schedule.Schedule{{Date: "2026-03-05", StartTime: "07:30", EndTime: "15:00"}},
		},
		{
			name:      "json null falls back and defaults missing times",
			raw:       []byte(`null`),
			shiftDate: text("2026-03-06"),
			want:      schedule.Schedule{{Date: "2026-03-06", StartTime: "09:00", EndTime: "17:00"}},
		},
		{
			name:    "neither source is an error",
			raw:     []byte(`[]`),
			wantErr: schedule.ErrEmptySchedule,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := converter.ScheduleFromColumns(tc.raw, tc.shiftDate, tc.startTime, tc.endTime)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("schedule mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestShiftFromRow_NormalizesSchedule(t *testing.T) {
	loc := time.UTC
	created := time.Date(2026, 2, 1, 12, 0, 0, 0, loc)
	worker := uuid.New()

	row := sqlc.Shift{
		ID:              uuid.New(),
		Name:            "Sunday cover",
		Status:          "filled",
		AssignedTo:      pgtype.UUID{Bytes: worker, Valid: true},
		Schedule:        []byte(`[{"date":"2026-03-01"}]`),
		HourlyRateCents: 6000,
		CreatedBy:       uuid.New(),
		FilledAt:        pgtype.Timestamptz{Time: created, Valid: true},
		CreatedAt:       pgtype.Timestamptz{Time: created, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: created, Valid: true},
	}

	s, err := converter.ShiftFromRow(row)
	require.NoError(t, err)

	start, ok := s.Schedule().EarliestStart(loc)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 1, 9, 0, 0, 0, loc), start)

	commitment := []schedule.Commitment{{
		ShiftID:  uuid.New(),
		Schedule: schedule.Schedule{{Date: "2026-03-01", StartTime: "10:00", EndTime: "12:00"}},
	}}
	_, found := schedule.FindConflict(s.Schedule(), commitment)
	assert.True(t, found)

	t.Run("legacy-only row", func(t *testing.T) {
		legacy := row
		legacy.Schedule = nil
		legacy.ShiftDate = text("2026-03-04")
		legacy.StartTime = text("18:00")
		legacy.EndTime = text("22:00")

		s, err := converter.ShiftFromRow(legacy)
		require.NoError(t, err)
		assert.Equal(t, schedule.Schedule{{Date: "2026-03-04", StartTime: "18:00", EndTime: "22:00"}}, s.Schedule())
	})
}
