package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/chartkit-go/pkg/chartkit"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		in         inputFlags
		outputPath string
		categories string
		name       string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a dataset and a native Excel chart to an xlsx workbook",
		Long: `Write the samples to a new workbook together with a native Excel chart of
the selected kind. A fixed --range becomes the chart's value-axis scaling.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				return errors.New("--output is required")
			}

			ds, err := a.dataset(&in)
			if err != nil {
				return err
			}
			if name != "" {
				ds.Name = name
			}
			opts, err := a.options(cmd, &in, ds)
			if err != nil {
				return err
			}

			var labels []string
			if categories != "" {
				labels = strings.Split(categories, ",")
				for i := range labels {
					labels[i] = strings.TrimSpace(labels[i])
				}
			}

			if err := chartkit.Export(outputPath, ds, opts, labels); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			a.printer.Success("wrote %d samples and a %s chart to %s", ds.Len(), opts.Kind, outputPath)
			return nil
		},
	}

	addInputFlags(cmd, &in)
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output workbook path (.xlsx)")
	cmd.Flags().StringVar(&categories, "categories", "", "comma separated category labels (default: 1..n)")
	cmd.Flags().StringVar(&name, "name", "", "series name (default: the dataset name)")

	return cmd
}
