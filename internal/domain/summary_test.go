package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(id string, mag *float64, coords ...float64) Event {
	return Event{
		ID:         id,
		Properties: Properties{Mag: mag},
		Geometry:   Geometry{Coordinates: coords},
	}
}

func TestSummarize_StrongestEvent(t *testing.T) {
	col := Collection{Events: []Event{
		event("a", magPtr(4.5), -3.0, 55.0, 10),
		event("b", magPtr(5.2), -1.0, 53.0, 5),
		event("c", magPtr(3.1), 0.5, 51.0, 8),
	}}

	s := Summarize(col)

	require.NotNil(t, s.Strongest)
	assert.Equal(t, "b", s.Strongest.ID)

	mag, ok := s.Strongest.Magnitude()
	require.True(t, ok)
	assert.Equal(t, 5.2, mag)

	loc, ok := s.Strongest.Location()
	require.True(t, ok)
	assert.Equal(t, Geo{Lat: 53.0, Lon: -1.0}, loc)
}

func TestSummarize_Statistics(t *testing.T) {
	col := Collection{Events: []Event{
		event("a", magPtr(2.0)),
		event("b", magPtr(4.0)),
		event("c", magPtr(3.0)),
	}}

	s := Summarize(col)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 3, s.Measured)
	assert.Equal(t, 2.0, s.MinMag)
	assert.Equal(t, 4.0, s.MaxMag)
	assert.InDelta(t, 3.0, s.MeanMag, 1e-9)
}

func TestSummarize_MissingMagnitudeCountedButExcluded(t *testing.T) {
	col := Collection{Events: []Event{
		event("a", magPtr(2.0)),
		event("b", nil),
		event("c", magPtr(4.0)),
	}}

	s := Summarize(col)

	assert.Equal(t, 3, s.Total, "records without magnitude still count toward the total")
	assert.Equal(t, 2, s.Measured)
	assert.Equal(t, 2.0, s.MinMag)
	assert.Equal(t, 4.0, s.MaxMag)
	assert.InDelta(t, 3.0, s.MeanMag, 1e-9)
	require.NotNil(t, s.Strongest)
	assert.Equal(t, "c", s.Strongest.ID)
}

func TestSummarize_TieKeepsFirstOccurrence(t *testing.T) {
	col := Collection{Events: []Event{
		event("first", magPtr(3.3)),
		event("second", magPtr(3.3)),
	}}

	s := Summarize(col)

	require.NotNil(t, s.Strongest)
	assert.Equal(t, "first", s.Strongest.ID)
}

func TestSummarize_ZeroMagnitudeNeverStrongest(t *testing.T) {
	// Kept source behavior: the scan is seeded at 0 with strict >, so a
	// present magnitude of exactly 0 (or below) cannot win, although it still
	// enters the statistics.
	col := Collection{Events: []Event{
		event("zero", magPtr(0)),
		event("negative", magPtr(-0.4)),
	}}

	s := Summarize(col)

	assert.Nil(t, s.Strongest)
	assert.Equal(t, 2, s.Measured)
	assert.Equal(t, -0.4, s.MinMag)
	assert.Equal(t, 0.0, s.MaxMag)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(Collection{})

	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.Measured)
	assert.Nil(t, s.Strongest)
}

func TestSummarize_GeneratedAtUsesClock(t *testing.T) {
	frozen := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	t.Cleanup(func() { SetClock(nil) })

	s := Summarize(Collection{Events: []Event{event("a", magPtr(1.0))}})

	assert.Equal(t, frozen, s.GeneratedAt)
}

func TestTopByMagnitude_Ordering(t *testing.T) {
	col := Collection{Events: []Event{
		event("a", magPtr(2.1)),
		event("b", magPtr(5.2)),
		event("c", nil), // ranks as 0
		event("d", magPtr(4.5)),
		event("e", magPtr(2.1)), // tie with "a", keeps catalog order
		event("f", magPtr(3.0)),
	}}

	got := TopByMagnitude(col, 5)

	ids := make([]string, len(got))
	for i, e := range got {
		ids[i] = e.ID
	}
	if diff := cmp.Diff([]string{"b", "d", "f", "a", "e"}, ids); diff != "" {
		t.Errorf("ranking mismatch (-want +got):\n%s", diff)
	}
}

func TestTopByMagnitude_Length(t *testing.T) {
	col := Collection{Events: []Event{
		event("a", magPtr(1.0)),
		event("b", magPtr(2.0)),
	}}

	assert.Len(t, TopByMagnitude(col, 5), 2, "n larger than the collection")
	assert.Len(t, TopByMagnitude(col, 1), 1)
	assert.Empty(t, TopByMagnitude(Collection{}, 5))
}

func TestTopByMagnitude_DoesNotMutateInput(t *testing.T) {
	col := Collection{Events: []Event{
		event("a", magPtr(1.0)),
		event("b", magPtr(2.0)),
	}}

	_ = TopByMagnitude(col, 2)

	assert.Equal(t, "a", col.Events[0].ID)
	assert.Equal(t, "b", col.Events[1].ID)
}
