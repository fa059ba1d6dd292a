package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wandb/wandb/containers/internal/cliutil"
	"github.com/wandb/wandb/containers/internal/growthmetrics"
	"github.com/wandb/wandb/containers/internal/sentry_ext"
	"github.com/wandb/wandb/containers/pkg/observability"
)

const envPrefix = "GROWTHREPORT"

// NewRootCmd creates the growthreport command.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "growthreport",
		Short: "Report how a DynamicArray grows",
		Long: heredoc.Doc(`
			Build a DynamicArray of ints, apply Reserve, Resize and PushBack
			in that order, and print every reallocation the array made.

			Flags can also be set through GROWTHREPORT_* environment variables
			or a YAML file (default $HOME/.growthreport.yaml).
		`),
		Example: heredoc.Doc(`
			# Watch the buffer double while appending
			$ growthreport --pushes 1000

			# Grow by resizing instead
			$ growthreport --initial-size 3 --resize 100 --format yaml

			# Export the growth as Prometheus metrics, failing above 64 slots
			$ GROWTHREPORT_MAX_CAPACITY=64 growthreport --pushes 100 --format openmetrics
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cliutil.BindConfig(cmd, v, envPrefix)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, v)
		},
	}

	cmd.PersistentFlags().String("config", "", "YAML config file with flag values")
	cmd.Flags().Int("initial-size", 0, "Number of elements the array is created with")
	cmd.Flags().Int("pushes", 0, "Number of PushBack calls")
	cmd.Flags().Int("resize", 0, "Resize the array to this size before pushing (0 to skip)")
	cmd.Flags().Int("reserve", 0, "Reserve this capacity before resizing (0 to skip)")
	cmd.Flags().Int("max-capacity", 0, "Largest capacity the array may allocate (0 for no limit)")
	cmd.Flags().String("format", "json", "Output format. Accepts 'json', 'yaml', or 'openmetrics'")
	cmd.Flags().String("template", "", "Template for output format. Accepts Go template format (e.g. --template='{{.finalCapacity}}')")
	cmd.Flags().String("sentry-dsn", "", "Sentry DSN for reporting allocation failures")
	cmd.Flags().BoolP("verbose", "v", false, "Log every reallocation")

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

func runRoot(cmd *cobra.Command, v *viper.Viper) error {
	settings := Settings{
		InitialSize: v.GetInt("initial-size"),
		Reserve:     v.GetInt("reserve"),
		Resize:      v.GetInt("resize"),
		Pushes:      v.GetInt("pushes"),
		MaxCapacity: v.GetInt("max-capacity"),
	}
	if err := settings.validate(); err != nil {
		return err
	}

	format := v.GetString("format")
	switch format {
	case "json", "yaml", "openmetrics":
	default:
		return fmt.Errorf("unsupported format %q", format)
	}

	runID := uuid.NewString()
	logger, sentryClient := newLogger(cmd, v, runID)
	if sentryClient != nil {
		defer sentryClient.Flush(2 * time.Second)
	}

	registry := prometheus.NewRegistry()
	metrics, err := growthmetrics.New(registry, "growthreport")
	if err != nil {
		return err
	}

	report, err := runReport(settings, metrics, logger)
	if err != nil {
		logger.CaptureError(err)
		return err
	}
	report.RunID = runID

	if format == "openmetrics" {
		return cliutil.WriteMetrics(cmd.OutOrStdout(), registry)
	}

	// HandleOutput reads the format from the flag, which may have been
	// set through the environment or the config file instead.
	if err := cmd.Flags().Set("format", format); err != nil {
		return err
	}
	return cliutil.HandleOutput(cmd, report)
}

// newLogger creates a CoreLogger that writes to stderr and, if a DSN is
// configured, reports errors to Sentry.
func newLogger(
	cmd *cobra.Command,
	v *viper.Viper,
	runID string,
) (*observability.CoreLogger, *sentry_ext.Client) {
	level := log.InfoLevel
	if v.GetBool("verbose") {
		level = log.DebugLevel
	}

	handler := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})

	params := &observability.CoreLoggerParams{
		Tags: observability.NewTags(
			"command", cmd.Name(),
			"run_id", runID,
		),
	}
	if dsn := v.GetString("sentry-dsn"); dsn != "" {
		params.Sentry = sentry_ext.New(sentry_ext.Params{
			DSN:     dsn,
			Release: Version,
		})
	}

	return observability.NewCoreLogger(slog.New(handler), params), params.Sentry
}
