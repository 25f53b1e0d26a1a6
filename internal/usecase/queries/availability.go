package queries

import (
	"context"
	"time"

	"workshop-booking/internal/domain/slot"
	"workshop-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// AvailabilityQueries is the conflict resolver's read side: given a time
// that turned out to be unavailable, it ranks nearby open slots. Invoked
// proactively while browsing, or reactively after a lost claim race.
type AvailabilityQueries interface {
	SuggestAlternatives(ctx context.Context, workshopID uuid.UUID, requestedTime time.Time, durationMinutes int) ([]*AlternativeView, error)
}

type availabilityQueriesImpl struct {
	slots SlotViewRepo
}

func NewAvailabilityQueries(slots SlotViewRepo) AvailabilityQueries {
	return &availabilityQueriesImpl{slots: slots}
}

func (q *availabilityQueriesImpl) SuggestAlternatives(ctx context.Context, workshopID uuid.UUID, requestedTime time.Time, durationMinutes int) ([]*AlternativeView, error) {
	from := requestedTime.Add(-slot.SearchRadius)
	to := requestedTime.Add(slot.SearchRadius)

	views, err := q.slots.FindAvailableInWindow(ctx, workshopID, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to scan available slots")
	}

	candidates := make([]slot.Candidate, len(views))
	for i, v := range views {
		candidates[i] = slot.Candidate{
			ID:        v.ID,
			StartTime: v.StartTime,
			EndTime:   v.EndTime,
		}
	}

	ranked := rankedToViews(slot.RankCandidates(requestedTime, durationMinutes, candidates))
	return ranked, nil
}

func rankedToViews(alts []slot.Alternative) []*AlternativeView {
	out := make([]*AlternativeView, len(alts))
	for i, a := range alts {
		out[i] = &AlternativeView{
			SlotID:        a.SlotID,
			StartTime:     a.StartTime,
			EndTime:       a.EndTime,
			OffsetMinutes: int64(a.Offset / time.Minute),
			Reason:        a.Reason,
		}
	}
	return out
}
