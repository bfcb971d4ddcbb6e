package converter

import (
	"encoding/json"

	"pharmashift/internal/domain/money"
	"pharmashift/internal/domain/schedule"
	"pharmashift/internal/domain/shift"
	sqlc "pharmashift/internal/infra/sqlc/generated"
	"pharmashift/internal/pkg/errs"
	"pharmashift/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrScheduleEncoding = errs.New("failed to encode shift schedule")

func ScheduleToJSON(s schedule.Schedule) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, errs.Mark(err, ErrScheduleEncoding)
	}
	return b, nil
}

// ScheduleFromJSON decodes the stored session list as is.
func ScheduleFromJSON(b []byte) (schedule.Schedule, error) {
	var s schedule.Schedule
	if len(b) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, errs.Mark(err, ErrScheduleEncoding)
	}
	return s, nil
}

// ScheduleFromColumns decodes the session list and normalizes it. Sessions
// without times get the default working day, and rows with no session list
// fall back to the shift-level date and times.
func ScheduleFromColumns(raw []byte, shiftDate, startTime, endTime pgtype.Text) (schedule.Schedule, error) {
	sessions, err := ScheduleFromJSON(raw)
	if err != nil {
		return nil, err
	}
	return schedule.Normalize(sessions, schedule.Legacy{
		ShiftDate: shiftDate.String,
		StartTime: startTime.String,
		EndTime:   endTime.String,
	})
}

func ShiftToCreateParams(s *shift.Shift) (sqlc.CreateShiftParams, error) {
	sched, err := ScheduleToJSON(s.Schedule())
	if err != nil {
		return sqlc.CreateShiftParams{}, err
	}
	return sqlc.CreateShiftParams{
		ID:              s.ID(),
		Name:            s.Name(),
		Location:        s.Location(),
		Status:          s.Status().String(),
		AssignedTo:      pgconv.UUIDPtrToPgtype(s.AssignedTo()),
		Schedule:        sched,
		HourlyRateCents: s.HourlyRate().Cents(),
		CreatedBy:       s.CreatedBy(),
		FilledAt:        pgconv.TimePtrToPgtype(s.FilledAt()),
		CreatedAt:       pgconv.TimeToPgtype(s.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(s.UpdatedAt()),
	}, nil
}

func ShiftToTransitionParams(s *shift.Shift, from shift.Status, fromAssignee *uuid.UUID) sqlc.TransitionShiftParams {
	return sqlc.TransitionShiftParams{
		Status:         s.Status().String(),
		AssignedTo:     pgconv.UUIDPtrToPgtype(s.AssignedTo()),
		FilledAt:       pgconv.TimePtrToPgtype(s.FilledAt()),
		UpdatedAt:      pgconv.TimeToPgtype(s.UpdatedAt()),
		ID:             s.ID(),
		FromStatus:     from.String(),
		FromAssignedTo: pgconv.UUIDPtrToPgtype(fromAssignee),
	}
}

func ShiftFromRow(row sqlc.Shift) (*shift.Shift, error) {
	sched, err := ScheduleFromColumns(row.Schedule, row.ShiftDate, row.StartTime, row.EndTime)
	if err != nil {
		return nil, err
	}
	return shift.Reconstruct(
		row.ID,
		row.Name,
		row.Location,
		shift.Status(row.Status),
		pgconv.UUIDPtrFromPgtype(row.AssignedTo),
		sched,
		money.FromCents(row.HourlyRateCents),
		row.CreatedBy,
		pgconv.TimePtrFromPgtype(row.FilledAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func ShiftsFromRows(rows []sqlc.Shift) ([]*shift.Shift, error) {
	out := make([]*shift.Shift, 0, len(rows))
	for _, row := range rows {
		s, err := ShiftFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
