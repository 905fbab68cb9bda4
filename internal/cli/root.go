/*
PURPOSE:
  Defines the root Cobra command for max-metric.
  Running it with no arguments prints the record with the highest metric.

REQUIREMENTS:
  User-specified:
  - No arguments needed: reads the fixed default log file.
  - Exit code 0 on success, including empty input.

  Implementation-discovered:
  - Flags override config file values, but only when given.
  - Needs to expose an Execute() function for main.go.
  - Color is only used when stdout is a terminal.
  - Each run logs to its own command's stderr; the package Logger is not touched.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/max-metric/main.go
  - Calls: internal/config.Load, internal/engine.Run

ERROR HANDLING:
  - Returns error to main.go for exit code handling.
  - Usage is not printed for runtime errors.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for --config.
  - Keep report logic in internal/engine.

USAGE:
  max-metric
  max-metric -i results.jsonl -m ssim --on-error skip -f json

RELATED FILES:
  - cmd/max-metric/main.go
  - internal/config/config.go

MAINTENANCE:
  - Update when adding configuration options.
*/

package cli

import (
	"log/slog"

	"github.com/daryltucker/max-metric/internal/config"
	"github.com/daryltucker/max-metric/internal/engine"
	"github.com/daryltucker/max-metric/internal/output"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	cfgFile string
	input   string
	metric  string
	onError string
	format  string
	noColor bool
	verbose bool
}

// NewRootCmd builds the max-metric command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "max-metric",
		Short: "Report the log record with the highest quality metric",
		Long: `Reads a JSON Lines log where every record carries a numeric metric
(psnr by default) and prints the record with the maximum value.
Ties keep the record that appears first in the file.`,
		Example: `  # Defaults: qf_test_log_double.txt, ranked by psnr
  max-metric

  # Another log and metric, skipping lines that cannot be parsed
  max-metric -i runs.jsonl -m ssim --on-error skip

  # Machine-readable output
  max-metric -f json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.cfgFile)
			if err != nil {
				return err
			}
			opts.apply(cmd, cfg)

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			log := output.NewLogger(cmd.ErrOrStderr(), level)

			return engine.Run(cfg, cmd.OutOrStdout(), log)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is ./max_metric.yaml)")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "JSON Lines file to scan")
	cmd.Flags().StringVarP(&opts.metric, "metric", "m", "", "numeric field to rank records by")
	cmd.Flags().StringVar(&opts.onError, "on-error", "", "what to do with unusable lines: fail or skip")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "report format: text, json or csv")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging on stderr")

	return cmd
}

// apply copies explicitly set flags over cfg.
func (o *rootOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = o.input
	}
	if flags.Changed("metric") {
		cfg.Metric = o.metric
	}
	if flags.Changed("on-error") {
		cfg.OnError = o.onError
	}
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if o.noColor || color.NoColor {
		cfg.Color = false
	}
	if o.verbose {
		cfg.Verbose = true
	}
}

// Execute executes the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
