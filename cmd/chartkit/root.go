package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ukaji3/chartkit-go/internal/config"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/output"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	cfgFile string
	verbose bool
	noColor bool

	cfg     *config.Config
	logger  *slog.Logger
	printer *output.Printer
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "chartkit",
		Short: "Lay out, render and animate bar, column, line and pie charts",
		Long: `chartkit normalizes numeric samples and turns them into chart geometry:
rectangles, polylines, wedges and label anchors.

Example usage:
  chartkit layout --values 3,1,4,1,5 --kind column --pretty
  chartkit normalize --input temps.xlsx --column High --range -32:100
  chartkit render --input shares.json --kind pie -o shares.svg
  chartkit animate --from 1,2,3 --to 3,2,1,4 --frames 12 --out-dir frames
  chartkit export --values 5,20,50 --kind pie -o shares.xlsx
  chartkit charts --input report.xlsx`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is .chartkit.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newLayoutCmd(a),
		newNormalizeCmd(a),
		newRenderCmd(a),
		newAnimateCmd(a),
		newExportCmd(a),
		newChartsCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// initConfig loads the configuration and sets up logging and output.
func (a *app) initConfig(cmd *cobra.Command) error {
	var err error

	// Load configuration
	a.cfg, err = config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	a.logger = newLogger(cmd.ErrOrStderr(), a.cfg.Logging, a.verbose)

	// Setup printer
	mode, err := output.ParseColorMode(a.cfg.Output.Color)
	if err != nil {
		return err
	}
	if a.noColor {
		mode = output.ColorNever
	}
	a.printer = output.NewPrinterWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ResolveColors(mode))

	a.logger.Debug("configuration loaded",
		"kind", a.cfg.Chart.Kind,
		"size", fmt.Sprintf("%gx%g", a.cfg.Chart.Width, a.cfg.Chart.Height),
		"easing", a.cfg.Animation.Easing,
	)

	return nil
}

// newLogger returns a text or JSON slog logger on w.
func newLogger(w io.Writer, lc config.LoggingConfig, verbose bool) *slog.Logger {
	level := lc.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
