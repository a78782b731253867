// Package report renders a survey summary as plain text. Output stays free
// of styling so it can be piped or redirected.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/tremorlab/quake-survey/internal/domain"
)

const (
	missing   = "N/A"
	timeStamp = "2006-01-02 15:04:05 MST"
)

// Writer formats survey results onto an output stream. It never fails on
// absent optional event fields; only I/O errors from the underlying writer
// propagate.
type Writer struct {
	out io.Writer
	q   domain.Query
}

// NewWriter creates a reporter that writes to out, labelling the report with
// the query it answers.
func NewWriter(out io.Writer, q domain.Query) *Writer {
	return &Writer{out: out, q: q}
}

// Report writes the full survey report: query header, summary statistics,
// the strongest event, and the ranked top events.
func (w *Writer) Report(s domain.Summary, top []domain.Event) error {
	if err := w.header(); err != nil {
		return err
	}

	if s.Total == 0 {
		_, err := fmt.Fprintf(w.out, "No earthquakes matched the query.\n")
		return err
	}

	if err := w.statistics(s); err != nil {
		return err
	}
	if err := w.strongest(s); err != nil {
		return err
	}
	return w.ranking(top)
}

func (w *Writer) header() error {
	b := w.q.Bounds
	_, err := fmt.Fprintf(w.out,
		"Earthquake survey %s to %s\nBounding box: latitude %.3f..%.3f, longitude %.3f..%.3f, magnitude >= %.1f\n\n",
		w.q.Start.Format("2006-01-02"), w.q.End.Format("2006-01-02"),
		b.MinLat, b.MaxLat, b.MinLon, b.MaxLon, w.q.MinMagnitude,
	)
	return err
}

func (w *Writer) statistics(s domain.Summary) error {
	if _, err := fmt.Fprintf(w.out, "Events:          %d\nWith magnitude:  %d\n", s.Total, s.Measured); err != nil {
		return err
	}
	if s.Measured == 0 {
		_, err := fmt.Fprintf(w.out, "Magnitude range: %s\nMean magnitude:  %s\n\n", missing, missing)
		return err
	}
	_, err := fmt.Fprintf(w.out,
		"Magnitude range: %.2f to %.2f\nMean magnitude:  %.2f\n\n",
		s.MinMag, s.MaxMag, s.MeanMag,
	)
	return err
}

func (w *Writer) strongest(s domain.Summary) error {
	if _, err := fmt.Fprintln(w.out, "Strongest earthquake:"); err != nil {
		return err
	}
	if s.Strongest == nil {
		_, err := fmt.Fprintf(w.out, "  none (no event with a positive magnitude)\n\n")
		return err
	}

	e := *s.Strongest
	mag, _ := e.Magnitude()

	if _, err := fmt.Fprintf(w.out, "  Magnitude: %.2f (%s)\n  Place:     %s\n",
		mag, domain.RiskLevel(mag), e.PlaceName()); err != nil {
		return err
	}

	epicenter := missing
	if loc, ok := e.Location(); ok {
		epicenter = fmt.Sprintf("%.4f, %.4f", loc.Lat, loc.Lon)
	}
	depth := missing
	if d, ok := e.Depth(); ok {
		depth = fmt.Sprintf("%.1f km", d)
	}
	when := missing
	if t, ok := e.Time(); ok {
		when = t.Format(timeStamp)
	}

	_, err := fmt.Fprintf(w.out, "  Epicenter: %s\n  Depth:     %s\n  Time:      %s\n\n",
		epicenter, depth, when)
	return err
}

func (w *Writer) ranking(top []domain.Event) error {
	if len(top) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w.out, "Top %d by magnitude:\n", len(top)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  #\tMAG\tRISK\tPLACE\tTIME")
	for i, e := range top {
		magnitude := missing
		risk := ""
		if mag, ok := e.Magnitude(); ok {
			magnitude = fmt.Sprintf("%.2f", mag)
			risk = domain.RiskLevel(mag).String()
		}
		when := missing
		if t, ok := e.Time(); ok {
			when = t.Format(timeStamp)
		}
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\t%s\n", i+1, magnitude, risk, e.PlaceName(), when)
	}
	return tw.Flush()
}
