// Package survey orchestrates one fetch-aggregate-report cycle. A Runner
// holds no state between runs; each process invocation performs exactly one.
package survey

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tremorlab/quake-survey/internal/domain"
	"github.com/tremorlab/quake-survey/internal/observability"
)

// Fetcher retrieves the event collection for a query.
type Fetcher interface {
	Fetch(ctx context.Context, q domain.Query) (domain.Collection, error)
}

// Reporter renders the aggregated results.
type Reporter interface {
	Report(s domain.Summary, top []domain.Event) error
}

// Runner wires the fetch, aggregation, and reporting stages together.
type Runner struct {
	fetcher  Fetcher
	reporter Reporter
	logger   *slog.Logger
	metrics  *observability.Metrics
	query    domain.Query
	topN     int
}

// New creates a Runner for the given query.
func New(f Fetcher, r Reporter, logger *slog.Logger, metrics *observability.Metrics, q domain.Query, topN int) *Runner {
	return &Runner{
		fetcher:  f,
		reporter: r,
		logger:   logger,
		metrics:  metrics,
		query:    q,
		topN:     topN,
	}
}

// Run executes the survey once. Fetch and parse failures abort the run;
// missing per-event fields never do — the aggregation and report substitute
// defaults instead. A query matching zero events is a successful run.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Info("survey started",
		"start", r.query.Start.Format("2006-01-02"),
		"end", r.query.End.Format("2006-01-02"),
		"min_magnitude", r.query.MinMagnitude,
	)

	col, err := r.fetcher.Fetch(ctx, r.query)
	if err != nil {
		return fmt.Errorf("survey: %w", err)
	}

	summary := domain.Summarize(col)
	top := domain.TopByMagnitude(col, r.topN)

	r.metrics.EventsFetched.Set(float64(summary.Total))
	if summary.Strongest != nil {
		if mag, ok := summary.Strongest.Magnitude(); ok {
			r.metrics.StrongestMag.Set(mag)
		}
	}

	if summary.Total == 0 {
		r.logger.Info("no events matched the query")
	} else {
		r.logger.Info("survey aggregated",
			"events", summary.Total,
			"measured", summary.Measured,
			"max_magnitude", summary.MaxMag,
		)
	}

	if err := r.reporter.Report(summary, top); err != nil {
		return fmt.Errorf("survey: write report: %w", err)
	}
	return nil
}
