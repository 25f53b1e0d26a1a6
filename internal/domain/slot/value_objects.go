package slot

import (
	"errors"
	"time"
)

var ErrInvalidTimeWindow = errors.New("end time must be after start time")

type TimeWindow struct {
	start time.Time
	end   time.Time
}

func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if !end.After(start) {
		return TimeWindow{}, ErrInvalidTimeWindow
	}

	return TimeWindow{
		start: start,
		end:   end,
	}, nil
}

func (w TimeWindow) Start() time.Time {
	return w.start
}

func (w TimeWindow) End() time.Time {
	return w.end
}

func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Fits reports whether a service of the given length can run inside the window.
func (w TimeWindow) Fits(durationMinutes int) bool {
	return w.Duration() >= time.Duration(durationMinutes)*time.Minute
}
