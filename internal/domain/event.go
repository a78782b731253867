package domain

import "time"

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Bounds is the latitude/longitude rectangle constraining a query.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLon float64 `json:"max_lon"`
}

// Properties holds the per-event attributes of a GeoJSON feature. Mag is a
// pointer because the catalog reports null for events recorded by methods
// that produce no magnitude.
type Properties struct {
	Mag   *float64 `json:"mag"`
	Place string   `json:"place"`
	Time  int64    `json:"time"` // epoch milliseconds, UTC
	Type  string   `json:"type"`
}

// Geometry holds the event coordinates in GeoJSON order:
// [longitude, latitude, depth-km].
type Geometry struct {
	Coordinates []float64 `json:"coordinates"`
}

// Event is one seismic event as returned by the FDSN event service.
type Event struct {
	ID         string     `json:"id"`
	Properties Properties `json:"properties"`
	Geometry   Geometry   `json:"geometry"`
}

// Metadata is the response header of a FeatureCollection.
type Metadata struct {
	Generated int64  `json:"generated"` // epoch milliseconds
	Title     string `json:"title"`
	Count     int    `json:"count"`
}

// Collection is one query's worth of events, in the order the server
// returned them. Consumers treat it as read-only.
type Collection struct {
	Metadata Metadata `json:"metadata"`
	Events   []Event  `json:"features"`
}

// Magnitude returns the event magnitude, or false when the catalog carries
// none for this event.
func (e Event) Magnitude() (float64, bool) {
	if e.Properties.Mag == nil {
		return 0, false
	}
	return *e.Properties.Mag, true
}

// Location returns the epicenter as (lat, lon), swapped from the raw GeoJSON
// (lon, lat, depth) order. Returns false when the feature has fewer than two
// coordinates.
func (e Event) Location() (Geo, bool) {
	c := e.Geometry.Coordinates
	if len(c) < 2 {
		return Geo{}, false
	}
	return Geo{Lat: c[1], Lon: c[0]}, true
}

// Depth returns the hypocenter depth in kilometers when present.
func (e Event) Depth() (float64, bool) {
	if len(e.Geometry.Coordinates) < 3 {
		return 0, false
	}
	return e.Geometry.Coordinates[2], true
}

// PlaceName returns the human-readable location description, substituting
// "Unknown" when the catalog has none.
func (e Event) PlaceName() string {
	if e.Properties.Place == "" {
		return "Unknown"
	}
	return e.Properties.Place
}

// Time returns the event origin time in UTC. Returns false when the catalog
// time is zero or negative, which the upstream data uses for unknown.
func (e Event) Time() (time.Time, bool) {
	if e.Properties.Time <= 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(e.Properties.Time).UTC(), true
}
