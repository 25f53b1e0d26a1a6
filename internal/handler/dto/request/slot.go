package request

import (
	"time"
)

type CreateSlotRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type ListSlotsQuery struct {
	From *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To   *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

type SuggestAlternativesQuery struct {
	RequestedTime   time.Time `form:"requested_time" time_format:"2006-01-02T15:04:05Z07:00" binding:"required"`
	DurationMinutes int       `form:"duration_minutes" binding:"required,gt=0"`
}
