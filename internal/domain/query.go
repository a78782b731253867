package domain

import "time"

// Query describes one catalog search: a bounding box, a time window, and a
// magnitude floor. Events are always requested in ascending time order.
type Query struct {
	Bounds       Bounds
	Start        time.Time
	End          time.Time
	MinMagnitude float64
}
