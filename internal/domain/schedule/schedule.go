package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Schedule is the normalized, ordered session list of a shift.
type Schedule []Session

// Legacy carries the shift-level date/time columns used before multi-session schedules.
type Legacy struct {
	ShiftDate string
	StartTime string
	EndTime   string
}

// Normalize always yields a non-empty schedule: explicit sessions win, otherwise
// a single session is built from the legacy shift-level fields.
func Normalize(sessions []Session, legacy Legacy) (Schedule, error) {
	if len(sessions) > 0 {
		out := make(Schedule, 0, len(sessions))
		for _, s := range sessions {
			out = append(out, s.withDefaults())
		}
		return out, nil
	}

	if legacy.ShiftDate == "" {
		return nil, ErrEmptySchedule
	}

	single := Session{
		Date:      legacy.ShiftDate,
		StartTime: legacy.StartTime,
		EndTime:   legacy.EndTime,
	}
	return Schedule{single.withDefaults()}, nil
}

func (s Schedule) Validate() error {
	if len(s) == 0 {
		return ErrEmptySchedule
	}
	for _, session := range s {
		if err := session.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// EarliestStart is the chronologically first session start, regardless of list order.
func (s Schedule) EarliestStart(loc *time.Location) (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, session := range s {
		start, ok := session.StartIn(loc)
		if !ok {
			continue
		}
		if !found || start.Before(earliest) {
			earliest = start
			found = true
		}
	}
	return earliest, found
}

func (s Schedule) LatestEnd(loc *time.Location) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, session := range s {
		end, ok := session.EndIn(loc)
		if !ok {
			continue
		}
		if !found || end.After(latest) {
			latest = end
			found = true
		}
	}
	return latest, found
}

// Commitment is a schedule a worker is already bound to.
type Commitment struct {
	ShiftID  uuid.UUID
	Schedule Schedule
}

type Conflict struct {
	ShiftID uuid.UUID
	Date    string
}

// FindConflict returns the first committed session overlapping any candidate session.
func FindConflict(candidate Schedule, committed []Commitment) (Conflict, bool) {
	for _, c := range candidate {
		for _, commitment := range committed {
			for _, existing := range commitment.Schedule {
				if c.Overlaps(existing) {
					return Conflict{ShiftID: commitment.ShiftID, Date: c.Date}, true
				}
			}
		}
	}
	return Conflict{}, false
}

func HasConflict(candidate Schedule, committed []Schedule) bool {
	commitments := make([]Commitment, 0, len(committed))
	for _, s := range committed {
		commitments = append(commitments, Commitment{Schedule: s})
	}
	_, found := FindConflict(candidate, commitments)
	return found
}
