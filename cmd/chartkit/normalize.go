package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/chartkit-go/pkg/chartkit"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/normalize"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/output"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/vector"
)

// normalized is the JSON form of the normalize command.
type normalized struct {
	Name    string           `json:"name"`
	Kind    string           `json:"kind"`
	Range   *normalize.Range `json:"range,omitempty"`
	Samples []float64        `json:"samples"`
	Vector  vector.Vector    `json:"vector"`
}

func newNormalizeCmd(a *app) *cobra.Command {
	var (
		in         inputFlags
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Print the normalized vector for a dataset",
		Long: `Print each sample with its fraction of the value range, or with its
start, end and sweep angle for pie charts.`,
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

			v, err := chartkit.Normalize(ds.Samples, opts.Kind, opts.Range)
			if err != nil {
				return fmt.Errorf("normalization failed: %w", err)
			}

			if jsonOutput {
				return output.WriteJSON(cmd.OutOrStdout(), normalized{
					Name:    ds.Name,
					Kind:    string(opts.Kind),
					Range:   opts.Range,
					Samples: ds.Samples,
					Vector:  v,
				}, true)
			}

			a.printer.Header(fmt.Sprintf("%s (%s)", ds.Name, opts.Kind))
			return output.SampleTable(cmd.OutOrStdout(), ds.Samples, v).Render()
		},
	}

	addInputFlags(cmd, &in)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	return cmd
}
