package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/chartkit-go/pkg/chartkit"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/output"
)

func newLayoutCmd(a *app) *cobra.Command {
	var (
		in         inputFlags
		outputPath string
		pretty     bool
		table      bool
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the chart geometry for a dataset",
		Long: `Normalize a dataset, lay it out as a chart and print the resulting frame
(primitives, label anchors and decorations) as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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
			a.logger.Debug("frame built", "kind", frame.Kind,
				"primitives", len(frame.Primitives), "decorations", len(frame.Decorations))

			if table {
				a.printer.Header(fmt.Sprintf("%s (%s)", ds.Name, frame.Kind))
				return output.FrameTable(cmd.OutOrStdout(), *frame).Render()
			}

			// Serialize to JSON
			if !cmd.Flags().Changed("pretty") {
				pretty = a.cfg.Output.Pretty
			}
			jsonData, err := output.ToJSON(frame, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}

			// Write output
			return writeOutput(cmd, outputPath, jsonData)
		},
	}

	addInputFlags(cmd, &in)
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "pretty-print JSON output")
	cmd.Flags().BoolVar(&table, "table", false, "print a table instead of JSON")

	return cmd
}
