package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/output"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/source"
)

func newChartsCmd(a *app) *cobra.Command {
	var (
		input      string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "charts",
		Short: "List the native charts of an xlsx workbook",
		Long: `List every native chart in a workbook with its type, title, value-axis
scaling and series references. A chart with a fixed value axis can feed
--range-from-chart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				return errors.New("--input is required")
			}

			charts, err := source.ReadCharts(input)
			if err != nil {
				return fmt.Errorf("failed to read charts: %w", err)
			}
			a.logger.Debug("charts read", "input", input, "count", len(charts))

			if jsonOutput {
				return output.WriteJSON(cmd.OutOrStdout(), charts, true)
			}

			if len(charts) == 0 {
				a.printer.Warning("no charts found in %s", input)
				return nil
			}

			t := output.NewTable(cmd.OutOrStdout(), []string{"Part", "Type", "Kind", "Title", "Range", "Values"})
			for _, c := range charts {
				axis := "auto"
				if c.AxisRange != nil {
					axis = c.AxisRange.String()
				}
				values := ""
				if len(c.Series) > 0 {
					values = c.Series[0].Values
				}
				t.AddRow(c.Part, c.PlotType, string(c.Kind), c.Title, axis, values)
			}
			return t.Render()
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input workbook (.xlsx)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	return cmd
}
