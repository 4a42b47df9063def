package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ukaji3/chartkit-go/pkg/chartkit"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/output"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/source"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/transition"
)

// animationFrame is one JSON line of the animate command.
type animationFrame struct {
	Frame    int          `json:"frame"`
	Elapsed  float64      `json:"elapsed_ms"`
	Progress float64      `json:"progress"`
	Chart    models.Frame `json:"chart"`
}

func newAnimateCmd(a *app) *cobra.Command {
	var (
		in         inputFlags
		from       string
		to         string
		frames     int
		duration   time.Duration
		interval   time.Duration
		easing     string
		outDir     string
		format     string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Animate the transition between two datasets",
		Long: `Animate the transition from one dataset to another and write every frame.

Without --frames the transition runs in real time, sampling one frame per
interval until the duration has elapsed. With --frames it is sampled at
that many evenly spaced instants instead.

Frames are written as JSON lines, or as images when --out-dir is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if to == "" {
				return errors.New("--to is required")
			}
			if frames < 0 {
				return fmt.Errorf("invalid --frames: %d", frames)
			}

			// Datasets
			var fromDS models.Dataset
			if from != "" {
				samples, err := source.ParseValues(from)
				if err != nil {
					return fmt.Errorf("invalid --from: %w", err)
				}
				fromDS = models.Dataset{Name: "from", Samples: samples}
			} else {
				ds, err := a.dataset(&in)
				if err != nil {
					return err
				}
				fromDS = ds
			}
			toSamples, err := source.ParseValues(to)
			if err != nil {
				return fmt.Errorf("invalid --to: %w", err)
			}
			toDS := models.Dataset{Name: "to", Samples: toSamples}

			// Options
			opts, err := a.options(cmd, &in, toDS)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("easing") {
				if opts.Easing, err = transition.ParseEasing(easing); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("duration") {
				duration = a.cfg.Animation.Duration
			}
			if !cmd.Flags().Changed("interval") {
				interval = a.cfg.Animation.Interval
			}

			// Output
			emit, closeOutput, err := a.frameWriter(cmd, outDir, format, outputPath)
			if err != nil {
				return err
			}
			defer closeOutput()

			if frames > 0 {
				err = animateFrames(fromDS.Samples, toDS.Samples, opts, frames, duration, emit)
			} else {
				err = a.runTransition(cmd, fromDS.Samples, toDS.Samples, opts, duration, interval, emit)
			}
			if err != nil {
				return fmt.Errorf("animation failed: %w", err)
			}

			if outDir != "" {
				a.printer.Success("wrote frames to %s", outDir)
			}
			return nil
		},
	}

	addInputFlags(cmd, &in)
	cmd.Flags().StringVar(&from, "from", "", "comma separated starting samples (default: the --values or --input dataset)")
	cmd.Flags().StringVar(&to, "to", "", "comma separated target samples")
	cmd.Flags().IntVar(&frames, "frames", 0, "sample this many evenly spaced frames instead of running in real time")
	cmd.Flags().DurationVar(&duration, "duration", transition.DefaultDuration, "transition duration (default from config)")
	cmd.Flags().DurationVar(&interval, "interval", transition.DefaultInterval, "frame interval (default from config)")
	cmd.Flags().StringVar(&easing, "easing", "", "easing: linear, ease-in, ease-out, ease-in-out (default from config)")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "write each frame as an image into this directory")
	cmd.Flags().StringVar(&format, "format", "", "image format for --out-dir (default from config)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "JSON lines output path (default: stdout)")

	return cmd
}

// runTransition plays the transition in real time, emitting one frame per
// interval until it completes or the command is interrupted.
func (a *app) runTransition(cmd *cobra.Command, from, to []float64, opts chartkit.Options, duration, interval time.Duration, emit func(animationFrame) error) error {
	tr, err := chartkit.Transition(from, to, opts)
	if err != nil {
		return err
	}
	tr.Duration = duration

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	driver := transition.NewDriver(interval, transition.WithLogger(a.logger))
	count := 0
	err = driver.Run(ctx, tr, func(s transition.Sample) error {
		frame, err := chartkit.Layout(s.Vector, opts)
		if err != nil {
			return err
		}
		count++
		return emit(animationFrame{
			Frame:    s.Frame,
			Elapsed:  durationMillis(s.Elapsed),
			Progress: s.Progress,
			Chart:    frame,
		})
	})
	if err != nil {
		return err
	}
	a.logger.Debug("animation finished", "frames", count, "duration", duration)
	return nil
}

// animateFrames emits n evenly spaced frames of the transition.
func animateFrames(from, to []float64, opts chartkit.Options, n int, duration time.Duration, emit func(animationFrame) error) error {
	charts, err := chartkit.Animate(from, to, opts, n)
	if err != nil {
		return err
	}

	for i, chart := range charts {
		t := 1.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		err := emit(animationFrame{
			Frame:    i,
			Elapsed:  durationMillis(time.Duration(t * float64(duration))),
			Progress: opts.EasingFor()(t),
			Chart:    chart,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// frameWriter returns the sink for animation frames: image files in outDir,
// or JSON lines on outputPath (stdout when empty).
func (a *app) frameWriter(cmd *cobra.Command, outDir, format, outputPath string) (func(animationFrame) error, func(), error) {
	if outDir != "" {
		if format == "" {
			format = a.cfg.Render.Format
		}
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create %s: %w", outDir, err)
		}

		renderer := a.cfg.Renderer()
		emit := func(f animationFrame) error {
			path := filepath.Join(outDir, fmt.Sprintf("frame_%03d.%s", f.Frame, format))
			if err := renderer.WriteFile(path, f.Chart, format); err != nil {
				return err
			}
			a.logger.Debug("frame written", "path", path)
			return nil
		}
		return emit, func() {}, nil
	}

	var w io.Writer = cmd.OutOrStdout()
	closeFn := func() {}
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to write output: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	lines := output.NewJSONLines(w)
	emit := func(f animationFrame) error {
		return lines.Write(f)
	}
	return emit, closeFn, nil
}

func durationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
