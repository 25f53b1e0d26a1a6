package booking

type Status string

const (
	StatusRequested Status = "requested"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusRequested, StatusConfirmed, StatusCompleted, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the booking still holds its slot.
func (s Status) IsActive() bool {
	return s == StatusRequested || s == StatusConfirmed
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// CanTransitionTo encodes the booking state machine:
// requested -> confirmed -> completed, with cancel allowed from
// requested and confirmed. Terminal states never change.
func (s Status) CanTransitionTo(to Status) bool {
	switch s {
	case StatusRequested:
		return to == StatusConfirmed || to == StatusCanceled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCanceled
	default:
		return false
	}
}
