// Package usgs fetches earthquake events from the USGS FDSN Event Web
// Service. One Fetch is one HTTP GET: the client does not retry, paginate,
// or cache.
package usgs

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tremorlab/quake-survey/internal/config"
	"github.com/tremorlab/quake-survey/internal/domain"
	"github.com/tremorlab/quake-survey/internal/observability"
)

// maxErrorBody bounds how much of an error response is kept for messages.
const maxErrorBody = 512

// Client queries the FDSN event service. It implements survey.Fetcher.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a catalog client with the configured endpoint and
// request timeout.
func NewClient(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		baseURL: cfg.Endpoint,
		metrics: metrics,
		logger:  logger,
	}
}

// Fetch issues one GET for all events matching the query and decodes the
// GeoJSON response. Transport failures and non-200 statuses return a
// *FetchError; undecodable bodies return a *ParseError. A decodable body
// without a features array yields an empty collection.
func (c *Client) Fetch(ctx context.Context, q domain.Query) (domain.Collection, error) {
	params := url.Values{
		"starttime":    {q.Start.Format(config.DateLayout)},
		"endtime":      {q.End.Format(config.DateLayout)},
		"minlatitude":  {formatCoord(q.Bounds.MinLat)},
		"maxlatitude":  {formatCoord(q.Bounds.MaxLat)},
		"minlongitude": {formatCoord(q.Bounds.MinLon)},
		"maxlongitude": {formatCoord(q.Bounds.MaxLon)},
		"minmagnitude": {strconv.FormatFloat(q.MinMagnitude, 'f', -1, 64)},
		"orderby":      {"time-asc"},
	}

	fullURL := c.baseURL + "?" + params.Encode()
	c.logger.Debug("fetching catalog", "url", fullURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.Collection{}, &FetchError{cause: err}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(observability.OutcomeTransportError, start)
		return domain.Collection{}, &FetchError{cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.observe(observability.OutcomeHTTPError, start)
		return domain.Collection{}, &FetchError{Status: resp.StatusCode, Body: string(body)}
	}

	var col domain.Collection
	if err := json.NewDecoder(resp.Body).Decode(&col); err != nil {
		c.observe(observability.OutcomeParseError, start)
		return domain.Collection{}, &ParseError{cause: err}
	}

	c.observe(observability.OutcomeSuccess, start)
	c.logger.Info("catalog fetched",
		"events", len(col.Events),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return col, nil
}

func (c *Client) observe(outcome string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.FetchRequests.WithLabelValues(outcome).Inc()
	c.metrics.FetchDuration.Observe(time.Since(start).Seconds())
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
