package schedule

import (
	"time"

	"pharmashift/internal/pkg/errs"
)

const (
	DefaultStartTime = "09:00"
	DefaultEndTime   = "17:00"

	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

var (
	ErrEmptySchedule  = errs.New("schedule must contain at least one session")
	ErrInvalidSession = errs.New("session must have a YYYY-MM-DD date and HH:MM times with start before end")
)

// Session is one dated block of work. Times are zero-padded 24h "HH:MM".
type Session struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (s Session) withDefaults() Session {
	if s.StartTime == "" {
		s.StartTime = DefaultStartTime
	}
	if s.EndTime == "" {
		s.EndTime = DefaultEndTime
	}
	return s
}

// WellFormed reports whether the date and both clock values parse.
func (s Session) WellFormed() bool {
	if _, err := time.Parse(dateLayout, s.Date); err != nil {
		return false
	}
	return isClock(s.StartTime) && isClock(s.EndTime)
}

func (s Session) Validate() error {
	if !s.WellFormed() || s.StartTime >= s.EndTime {
		return ErrInvalidSession
	}
	return nil
}

// Overlaps applies the half-open [start,end) test to two sessions on the same date.
// Malformed sessions never overlap anything.
func (s Session) Overlaps(other Session) bool {
	if s.Date != other.Date {
		return false
	}
	if !s.WellFormed() || !other.WellFormed() {
		return false
	}
	return s.StartTime < other.EndTime && s.EndTime > other.StartTime
}

func (s Session) StartIn(loc *time.Location) (time.Time, bool) {
	return parseIn(s.Date, s.StartTime, loc)
}

func (s Session) EndIn(loc *time.Location) (time.Time, bool) {
	return parseIn(s.Date, s.EndTime, loc)
}

func parseIn(date, clock string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	if !isClock(clock) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(dateTimeLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func isClock(v string) bool {
	if len(v) != 5 || v[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if v[i] < '0' || v[i] > '9' {
			return false
		}
	}
	hh := int(v[0]-'0')*10 + int(v[1]-'0')
	mm := int(v[3]-'0')*10 + int(v[4]-'0')
	return hh < 24 && mm < 60
}
