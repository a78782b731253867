package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tremorlab/quake-survey/internal/domain"
)

// Viper keys. Flags in cmd bind to the same names; environment variables use
// the QUAKE_ prefix with dashes mapped to underscores (QUAKE_MIN_LATITUDE).
const (
	KeyEndpoint       = "endpoint"
	KeyStart          = "start"
	KeyEnd            = "end"
	KeyMinLatitude    = "min-latitude"
	KeyMaxLatitude    = "max-latitude"
	KeyMinLongitude   = "min-longitude"
	KeyMaxLongitude   = "max-longitude"
	KeyMinMagnitude   = "min-magnitude"
	KeyTimeout        = "timeout"
	KeyTopN           = "top"
	KeyLogLevel       = "log-level"
	KeyLogFormat      = "log-format"
	KeyPushgatewayURL = "pushgateway-url"
)

// DateLayout is the calendar-date format accepted for the survey window.
const DateLayout = "2006-01-02"

// Defaults reproduce the original UK survey: a century of UK earthquakes of
// magnitude 1.0 and above.
const (
	DefaultEndpoint     = "https://earthquake.usgs.gov/fdsnws/event/1/query.geojson"
	DefaultStart        = "2000-01-01"
	DefaultEnd          = "2018-10-11"
	DefaultMinLatitude  = 50.008
	DefaultMaxLatitude  = 58.723
	DefaultMinLongitude = -9.756
	DefaultMaxLongitude = 1.67
	DefaultMinMagnitude = 1.0
	DefaultTimeout      = 30 * time.Second
	DefaultTopN         = 5
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
)

// Config holds all settings for one survey run.
type Config struct {
	Endpoint     string
	Start        time.Time
	End          time.Time
	Bounds       domain.Bounds
	MinMagnitude float64
	HTTPTimeout  time.Duration
	TopN         int

	LogLevel  string
	LogFormat string

	// PushgatewayURL enables pushing run metrics to a Prometheus
	// Pushgateway. Empty disables the push.
	PushgatewayURL string
}

// SetDefaults registers every default on the given viper instance. cmd calls
// this before binding flags so that flag, env, and default precedence is
// viper's standard order.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyEndpoint, DefaultEndpoint)
	v.SetDefault(KeyStart, DefaultStart)
	v.SetDefault(KeyEnd, DefaultEnd)
	v.SetDefault(KeyMinLatitude, DefaultMinLatitude)
	v.SetDefault(KeyMaxLatitude, DefaultMaxLatitude)
	v.SetDefault(KeyMinLongitude, DefaultMinLongitude)
	v.SetDefault(KeyMaxLongitude, DefaultMaxLongitude)
	v.SetDefault(KeyMinMagnitude, DefaultMinMagnitude)
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyTopN, DefaultTopN)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)
	v.SetDefault(KeyPushgatewayURL, "")
}

// EnableEnv wires QUAKE_-prefixed environment variables into v, with dashes
// in key names mapped to underscores (min-latitude -> QUAKE_MIN_LATITUDE).
func EnableEnv(v *viper.Viper) {
	v.SetEnvPrefix("QUAKE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads settings from the viper instance and validates them.
func Load(v *viper.Viper) (*Config, error) {
	start, err := time.ParseInLocation(DateLayout, v.GetString(KeyStart), time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: want YYYY-MM-DD, got %q", KeyStart, v.GetString(KeyStart))
	}
	end, err := time.ParseInLocation(DateLayout, v.GetString(KeyEnd), time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: want YYYY-MM-DD, got %q", KeyEnd, v.GetString(KeyEnd))
	}

	cfg := &Config{
		Endpoint: v.GetString(KeyEndpoint),
		Start:    start,
		End:      end,
		Bounds: domain.Bounds{
			MinLat: v.GetFloat64(KeyMinLatitude),
			MaxLat: v.GetFloat64(KeyMaxLatitude),
			MinLon: v.GetFloat64(KeyMinLongitude),
			MaxLon: v.GetFloat64(KeyMaxLongitude),
		},
		MinMagnitude:   v.GetFloat64(KeyMinMagnitude),
		HTTPTimeout:    v.GetDuration(KeyTimeout),
		TopN:           v.GetInt(KeyTopN),
		LogLevel:       v.GetString(KeyLogLevel),
		LogFormat:      v.GetString(KeyLogFormat),
		PushgatewayURL: v.GetString(KeyPushgatewayURL),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("%s is required", KeyEndpoint)
	}
	if !c.Start.Before(c.End) {
		return fmt.Errorf("%s must be before %s", KeyStart, KeyEnd)
	}
	b := c.Bounds
	if b.MinLat < -90 || b.MaxLat > 90 || b.MinLat >= b.MaxLat {
		return fmt.Errorf("invalid latitude range %g..%g", b.MinLat, b.MaxLat)
	}
	if b.MinLon < -180 || b.MaxLon > 180 || b.MinLon >= b.MaxLon {
		return fmt.Errorf("invalid longitude range %g..%g", b.MinLon, b.MaxLon)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%s must be positive", KeyTimeout)
	}
	if c.TopN <= 0 {
		return fmt.Errorf("%s must be positive", KeyTopN)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid %s %q", KeyLogLevel, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid %s %q", KeyLogFormat, c.LogFormat)
	}
	return nil
}

// Query returns the domain query this configuration describes.
func (c *Config) Query() domain.Query {
	return domain.Query{
		Bounds:       c.Bounds,
		Start:        c.Start,
		End:          c.End,
		MinMagnitude: c.MinMagnitude,
	}
}
