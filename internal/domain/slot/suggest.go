package slot

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// SearchRadius bounds how far from the requested time alternatives are
// collected, and MaxAlternatives caps how many are returned.
const (
	SearchRadius    = 7 * 24 * time.Hour
	MaxAlternatives = 5
)

// Candidate is an available slot considered as a replacement for an
// unavailable requested time.
type Candidate struct {
	ID        uuid.UUID
	StartTime time.Time
	EndTime   time.Time
}

// Alternative is a ranked suggestion: a candidate plus how far it sits from
// the requested time and a human-readable reason for the suggestion.
type Alternative struct {
	SlotID    uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Offset    time.Duration
	Reason    string
}

// RankCandidates filters candidates to those long enough for the service,
// orders them by distance from the requested time (nearest first, earlier
// start breaking ties) and returns at most MaxAlternatives suggestions.
func RankCandidates(requested time.Time, durationMinutes int, candidates []Candidate) []Alternative {
	minLength := time.Duration(durationMinutes) * time.Minute

	ranked := make([]Alternative, 0, len(candidates))
	for _, c := range candidates {
		if c.EndTime.Sub(c.StartTime) < minLength {
			continue
		}
		offset := c.StartTime.Sub(requested)
		ranked = append(ranked, Alternative{
			SlotID:    c.ID,
			StartTime: c.StartTime,
			EndTime:   c.EndTime,
			Offset:    offset,
			Reason:    suggestionReason(offset),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		di, dj := absDuration(ranked[i].Offset), absDuration(ranked[j].Offset)
		if di != dj {
			return di < dj
		}
		return ranked[i].StartTime.Before(ranked[j].StartTime)
	})

	if len(ranked) > MaxAlternatives {
		ranked = ranked[:MaxAlternatives]
	}
	return ranked
}

func suggestionReason(offset time.Duration) string {
	later := offset >= 0
	abs := absDuration(offset)

	switch {
	case abs < time.Hour:
		if later {
			return "nearest available"
		}
		return "last available"
	case abs < 24*time.Hour:
		if later {
			return "available in a few hours"
		}
		return "available a few hours earlier"
	case abs < SearchRadius:
		days := int(abs / (24 * time.Hour))
		if days < 1 {
			days = 1
		}
		if later {
			return fmt.Sprintf("available in %d days", days)
		}
		return fmt.Sprintf("available %d days earlier", days)
	default:
		return "alternative"
	}
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
