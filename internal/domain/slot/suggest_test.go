//go:build unit

package slot_test

import (
	"testing"
	"time"

	"workshop-booking/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateAt(requested time.Time, offset time.Duration, length time.Duration) slot.Candidate {
	start := requested.Add(offset)
	return slot.Candidate{
		ID:        uuid.New(),
		StartTime: start,
		EndTime:   start.Add(length),
	}
}

func TestRankCandidates(t *testing.T) {
	requested := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	t.Run("orders by distance from requested time", func(t *testing.T) {
		plus10m := candidateAt(requested, 10*time.Minute, time.Hour)
		minus30m := candidateAt(requested, -30*time.Minute, time.Hour)
		plus2d := candidateAt(requested, 48*time.Hour, time.Hour)

		ranked := slot.RankCandidates(requested, 60, []slot.Candidate{plus2d, minus30m, plus10m})

		require.Len(t, ranked, 3)
		assert.Equal(t, plus10m.ID, ranked[0].SlotID)
		assert.Equal(t, minus30m.ID, ranked[1].SlotID)
		assert.Equal(t, plus2d.ID, ranked[2].SlotID)
	})

	t.Run("equal distance prefers the earlier start", func(t *testing.T) {
		earlier := candidateAt(requested, -2*time.Hour, time.Hour)
		later := candidateAt(requested, 2*time.Hour, time.Hour)

		ranked := slot.RankCandidates(requested, 60, []slot.Candidate{later, earlier})

		require.Len(t, ranked, 2)
		assert.Equal(t, earlier.ID, ranked[0].SlotID)
		assert.Equal(t, later.ID, ranked[1].SlotID)
	})

	t.Run("drops candidates shorter than the service", func(t *testing.T) {
		short := candidateAt(requested, 5*time.Minute, 30*time.Minute)
		long := candidateAt(requested, 3*time.Hour, 90*time.Minute)

		ranked := slot.RankCandidates(requested, 60, []slot.Candidate{short, long})

		require.Len(t, ranked, 1)
		assert.Equal(t, long.ID, ranked[0].SlotID)
	})

	t.Run("caps the result", func(t *testing.T) {
		candidates := make([]slot.Candidate, 0, slot.MaxAlternatives+3)
		for i := 0; i < slot.MaxAlternatives+3; i++ {
			candidates = append(candidates, candidateAt(requested, time.Duration(i+1)*time.Hour, time.Hour))
		}

		ranked := slot.RankCandidates(requested, 60, candidates)

		assert.Len(t, ranked, slot.MaxAlternatives)
	})

	t.Run("empty input yields no alternatives", func(t *testing.T) {
		assert.Empty(t, slot.RankCandidates(requested, 60, nil))
	})

	t.Run("offset is preserved with direction", func(t *testing.T) {
		minus30m := candidateAt(requested, -30*time.Minute, time.Hour)

		ranked := slot.RankCandidates(requested, 60, []slot.Candidate{minus30m})

		require.Len(t, ranked, 1)
		assert.Equal(t, -30*time.Minute, ranked[0].Offset)
	})

	t.Run("reasons scale with distance", func(t *testing.T) {
		cases := []struct {
			name   string
			offset time.Duration
			reason string
		}{
			{name: "minutes later", offset: 10 * time.Minute, reason: "nearest available"},
			{name: "minutes earlier", offset: -30 * time.Minute, reason: "last available"},
			{name: "hours later", offset: 3 * time.Hour, reason: "available in a few hours"},
			{name: "hours earlier", offset: -5 * time.Hour, reason: "available a few hours earlier"},
			{name: "days later", offset: 48 * time.Hour, reason: "available in 2 days"},
			{name: "days earlier", offset: -72 * time.Hour, reason: "available 3 days earlier"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ranked := slot.RankCandidates(requested, 60, []slot.Candidate{candidateAt(requested, tc.offset, time.Hour)})
				require.Len(t, ranked, 1)
				assert.Equal(t, tc.reason, ranked[0].Reason)
			})
		}
	})
}
