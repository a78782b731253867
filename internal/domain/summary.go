package domain

import (
	"sort"
	"time"
)

// Summary holds the descriptive statistics for one event collection.
type Summary struct {
	Total    int // every record in the collection
	Measured int // records carrying a magnitude

	// Min/Max/Mean are computed over present magnitudes only and are
	// meaningless when Measured is 0.
	MinMag  float64
	MaxMag  float64
	MeanMag float64

	// Strongest is the first event whose magnitude strictly exceeds all
	// earlier ones, or nil when no event qualifies. An event with magnitude
	// exactly 0 never qualifies; see the package documentation.
	Strongest *Event

	GeneratedAt time.Time
}

// Summarize scans a collection once and returns its Summary. An empty
// collection yields a zero summary; it is never an error.
func Summarize(c Collection) Summary {
	s := Summary{
		Total:       len(c.Events),
		GeneratedAt: clock.Now().UTC(),
	}

	maxMag := 0.0
	for i := range c.Events {
		mag, ok := c.Events[i].Magnitude()
		if !ok {
			continue
		}
		if s.Measured == 0 || mag < s.MinMag {
			s.MinMag = mag
		}
		if s.Measured == 0 || mag > s.MaxMag {
			s.MaxMag = mag
		}
		s.MeanMag += mag
		s.Measured++

		// Strict > seeded at 0: ties keep the earliest event, and a zero or
		// negative magnitude never becomes the strongest.
		if mag > maxMag {
			maxMag = mag
			s.Strongest = &c.Events[i]
		}
	}

	if s.Measured > 0 {
		s.MeanMag /= float64(s.Measured)
	}
	return s
}

// TopByMagnitude returns the n strongest events in descending magnitude
// order. Events without a magnitude rank as 0. The sort is stable, so equal
// magnitudes keep their catalog order. Result length is min(n, len).
func TopByMagnitude(c Collection, n int) []Event {
	ranked := make([]Event, len(c.Events))
	copy(ranked, c.Events)

	sort.SliceStable(ranked, func(i, j int) bool {
		return magOrZero(ranked[i]) > magOrZero(ranked[j])
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	if n < 0 {
		n = 0
	}
	return ranked[:n]
}

func magOrZero(e Event) float64 {
	mag, ok := e.Magnitude()
	if !ok {
		return 0
	}
	return mag
}
