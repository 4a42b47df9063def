package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ukaji3/chartkit-go/pkg/chartkit"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		in         inputFlags
		outputPath string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw a chart to an image file",
		Long: `Lay out a dataset and draw it to an image. The format is taken from
--format, from the output file extension, or from the configured
render.format when the path has no extension.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				return errors.New("--output is required")
			}
			imgFormat, err := imageFormat(a, outputPath, format)
			if err != nil {
				return err
			}

			ds, err := a.dataset(&in)
			if err != nil {
				return err
			}
			opts, err := a.options(cmd, &in, ds)
			if err != nil {
				return err
			}

			frame, err := chartkit.Build(ds.Samples, opts)
			if err != nil {
				return fmt.Errorf("layout failed: %w", err)
			}

			if err := a.cfg.Renderer().WriteFile(outputPath, *frame, imgFormat); err != nil {
				return fmt.Errorf("render failed: %w", err)
			}
			a.printer.Success("wrote %s chart to %s", frame.Kind, outputPath)
			return nil
		},
	}

	addInputFlags(cmd, &in)
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output image path")
	cmd.Flags().StringVar(&format, "format", "", "image format (default: from the output extension)")

	return cmd
}

// imageFormat picks the encoding for path: an explicit format, then the
// file extension, then the configured default.
func imageFormat(a *app, path, format string) (string, error) {
	switch {
	case format != "":
		return format, nil
	case filepath.Ext(path) == "":
		return a.cfg.Render.Format, nil
	default:
		return render.FormatFromPath(path)
	}
}
