// Command quake-survey fetches earthquake events from the USGS catalog for a
// bounding box and time window, then reports the strongest event and summary
// statistics on stdout. Running it with no flags performs the default UK
// survey.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tremorlab/quake-survey/internal/adapter/usgs"
	"github.com/tremorlab/quake-survey/internal/config"
	"github.com/tremorlab/quake-survey/internal/observability"
	"github.com/tremorlab/quake-survey/internal/report"
	"github.com/tremorlab/quake-survey/internal/survey"
)

// Set by ldflags at build time.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)
	config.EnableEnv(v)

	cmd := &cobra.Command{
		Use:     "quake-survey",
		Short:   "Report the strongest earthquake in a region and time window",
		Version: version,
		Args:    cobra.NoArgs,
		// Errors are printed once by main.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.String(config.KeyEndpoint, config.DefaultEndpoint, "FDSN event service URL")
	flags.String(config.KeyStart, config.DefaultStart, "window start date (YYYY-MM-DD)")
	flags.String(config.KeyEnd, config.DefaultEnd, "window end date (YYYY-MM-DD)")
	flags.Float64(config.KeyMinLatitude, config.DefaultMinLatitude, "bounding box minimum latitude")
	flags.Float64(config.KeyMaxLatitude, config.DefaultMaxLatitude, "bounding box maximum latitude")
	flags.Float64(config.KeyMinLongitude, config.DefaultMinLongitude, "bounding box minimum longitude")
	flags.Float64(config.KeyMaxLongitude, config.DefaultMaxLongitude, "bounding box maximum longitude")
	flags.Float64(config.KeyMinMagnitude, config.DefaultMinMagnitude, "minimum magnitude to include")
	flags.Duration(config.KeyTimeout, config.DefaultTimeout, "HTTP request timeout")
	flags.Int(config.KeyTopN, config.DefaultTopN, "number of events in the ranking")
	flags.String(config.KeyLogLevel, config.DefaultLogLevel, "log level (debug|info|warn|error)")
	flags.String(config.KeyLogFormat, config.DefaultLogFormat, "log format (text|json)")
	flags.String(config.KeyPushgatewayURL, "", "Prometheus Pushgateway URL for run metrics (optional)")

	// Flags override environment, environment overrides defaults.
	cobra.CheckErr(v.BindPFlags(flags))

	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client := usgs.NewClient(cfg, metrics, logger)
	reporter := report.NewWriter(cmd.OutOrStdout(), cfg.Query())
	runner := survey.New(client, reporter, logger, metrics, cfg.Query(), cfg.TopN)

	err := runner.Run(cmd.Context())
	metrics.Push(cfg.PushgatewayURL, logger)
	return err
}
