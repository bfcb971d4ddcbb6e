package shift

type Status string

const (
	StatusOpen      Status = "open"
	StatusFilled    Status = "filled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusClosed    Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusFilled, StatusCancelled, StatusCompleted, StatusClosed:
		return true
	default:
		return false
	}
}

// Party is the side of a booking acting on a shift.
type Party string

const (
	PartyWorker Party = "worker"
	PartyPoster Party = "poster"
)

func (p Party) String() string {
	return string(p)
}

func (p Party) IsValid() bool {
	return p == PartyWorker || p == PartyPoster
}
