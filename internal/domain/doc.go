// Package domain models earthquake event data from the USGS earthquake
// catalog.
//
// # Data Source
//
// Events come from the USGS FDSN Event Web Service
// (https://earthquake.usgs.gov/fdsnws/event/1/) queried with format=geojson.
// The response is a GeoJSON FeatureCollection: a top-level "features" array
// where each feature carries the event attributes under "properties" and the
// coordinates under "geometry".
//
// # USGS Data Conventions
//
// Coordinate order:
//
//	geometry.coordinates is [longitude, latitude, depth-km]. Lon-first is
//	the GeoJSON convention, the opposite of the (lat, lon) order humans
//	read. [Event.Location] performs the swap.
//
// Magnitude:
//
//	properties.mag is the preferred magnitude for the event. It may be null:
//	some recording methods and very old catalog entries carry no magnitude.
//	Magnitudes can legitimately be negative for micro-earthquakes.
//
// Time:
//
//	properties.time is epoch milliseconds, UTC. A value of 0 is treated as
//	unknown rather than as 1970-01-01.
//
// Place:
//
//	properties.place is a free-text description such as "12 km NNE of
//	Penzance, United Kingdom". It may be absent; accessors substitute
//	"Unknown".
//
// # Risk Classification
//
// [RiskLevel] maps magnitude to a four-level label used in reports:
//
//	>= 6.0 critical | >= 4.5 high | >= 2.5 moderate | else low
//
// Magnitude 2.5 is roughly the felt threshold, 4.5 the damage threshold, and
// 6.0 the level at which destruction near the epicenter becomes likely.
//
// # Strongest-Event Scan
//
// [Summarize] finds the strongest event with a left-to-right scan using a
// strict greater-than comparison seeded at zero. Two consequences are kept
// on purpose: ties go to the earliest event in catalog order, and an event
// whose magnitude is exactly 0 (or negative) can never be selected even
// though it still participates in the min/max/mean statistics.
package domain
