package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func magPtr(v float64) *float64 { return &v }

func TestEvent_Magnitude(t *testing.T) {
	e := Event{Properties: Properties{Mag: magPtr(4.5)}}
	mag, ok := e.Magnitude()
	require.True(t, ok)
	assert.Equal(t, 4.5, mag)
}

func TestEvent_Magnitude_Absent(t *testing.T) {
	e := Event{}
	_, ok := e.Magnitude()
	assert.False(t, ok)
}

func TestEvent_Location_SwapsAxisOrder(t *testing.T) {
	// Raw GeoJSON order is (lon, lat, depth); Location returns (lat, lon).
	e := Event{Geometry: Geometry{Coordinates: []float64{-3.0, 55.0, 10.0}}}

	loc, ok := e.Location()
	require.True(t, ok)
	assert.Equal(t, Geo{Lat: 55.0, Lon: -3.0}, loc)
}

func TestEvent_Location_TwoCoordinates(t *testing.T) {
	e := Event{Geometry: Geometry{Coordinates: []float64{1.5, 52.0}}}

	loc, ok := e.Location()
	require.True(t, ok)
	assert.Equal(t, Geo{Lat: 52.0, Lon: 1.5}, loc)
}

func TestEvent_Location_TooFewCoordinates(t *testing.T) {
	for _, coords := range [][]float64{nil, {}, {-3.0}} {
		e := Event{Geometry: Geometry{Coordinates: coords}}
		_, ok := e.Location()
		assert.False(t, ok, "coords %v", coords)
	}
}

func TestEvent_Depth(t *testing.T) {
	e := Event{Geometry: Geometry{Coordinates: []float64{-3.0, 55.0, 12.5}}}
	d, ok := e.Depth()
	require.True(t, ok)
	assert.Equal(t, 12.5, d)

	e = Event{Geometry: Geometry{Coordinates: []float64{-3.0, 55.0}}}
	_, ok = e.Depth()
	assert.False(t, ok)
}

func TestEvent_PlaceName(t *testing.T) {
	e := Event{Properties: Properties{Place: "12 km NNE of Penzance, United Kingdom"}}
	assert.Equal(t, "12 km NNE of Penzance, United Kingdom", e.PlaceName())

	assert.Equal(t, "Unknown", Event{}.PlaceName())
}

func TestEvent_Time(t *testing.T) {
	// 2008-02-27 00:56:47.8 UTC, the Market Rasen earthquake.
	e := Event{Properties: Properties{Time: 1204073807800}}

	got, ok := e.Time()
	require.True(t, ok)
	assert.Equal(t, time.Date(2008, time.February, 27, 0, 56, 47, 800_000_000, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestEvent_Time_ZeroIsUnknown(t *testing.T) {
	_, ok := Event{}.Time()
	assert.False(t, ok)

	_, ok = Event{Properties: Properties{Time: -1}}.Time()
	assert.False(t, ok)
}
