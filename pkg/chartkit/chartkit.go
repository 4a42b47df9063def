// Package chartkit turns raw numeric samples into renderer-agnostic chart
// geometry and animates transitions between datasets.
package chartkit

import (
	"fmt"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/layout"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/normalize"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/source"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/transition"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/vector"
)

// Build normalizes samples and lays out a single chart frame.
func Build(samples []float64, opts Options) (*models.Frame, error) {
	v, err := Normalize(samples, opts.Kind, opts.Range)
	if err != nil {
		return nil, err
	}

	frame, err := Layout(v, opts)
	if err != nil {
		return nil, err
	}
	return &frame, nil
}

// Normalize converts samples into the vector a chart kind consumes: a
// cumulative angle vector for pie charts, fractions otherwise.
func Normalize(samples []float64, kind models.Kind, r *normalize.Range) (vector.Vector, error) {
	if _, ok := layout.For(kind); !ok {
		return nil, NewBuildError(kind, StageNormalize, fmt.Errorf("%w: %q", ErrUnknownKind, kind))
	}

	var (
		v   vector.Vector
		err error
	)
	if kind.Angular() {
		v, err = normalize.NormalizeAngular(samples, r)
	} else {
		v, err = normalize.Normalize(samples, r)
	}
	if err != nil {
		return nil, NewBuildError(kind, StageNormalize, err)
	}
	return v, nil
}

// Layout arranges an already normalized vector into a frame and adds the
// decorations selected by opts.
func Layout(v vector.Vector, opts Options) (models.Frame, error) {
	fn, ok := layout.For(opts.Kind)
	if !ok {
		return models.Frame{}, NewBuildError(opts.Kind, StageLayout, fmt.Errorf("%w: %q", ErrUnknownKind, opts.Kind))
	}

	rect := opts.Rect()
	frame := fn(v, rect, opts.Style, opts.Formatter)

	// Decorations
	if opts.ShowGrid {
		cells := opts.GridCells
		if cells <= 0 {
			cells = DefaultGridCells
		}
		frame.Decorations = append(frame.Decorations, layout.GraphPaper(rect, cells)...)
	}
	if opts.ShouldShowAxis() {
		frame.Decorations = append(frame.Decorations, layout.Axis(rect))
	}

	return frame, nil
}

// Transition normalizes both datasets and returns the transition between
// them, using the padding and easing selected by opts. Each dataset is
// scaled by opts.Range, or by its own derived range when none is set.
func Transition(from, to []float64, opts Options) (transition.Transition, error) {
	a, err := Normalize(from, opts.Kind, opts.Range)
	if err != nil {
		return transition.Transition{}, err
	}
	b, err := Normalize(to, opts.Kind, opts.Range)
	if err != nil {
		return transition.Transition{}, err
	}

	tr := transition.New(a, b)
	tr.Easing = opts.EasingFor()
	tr.Padding = opts.PaddingFor()
	return tr, nil
}

// Animate lays out frames evenly spaced frames of the transition from one
// dataset to another. The first frame shows from and the last shows to.
func Animate(from, to []float64, opts Options, frames int) ([]models.Frame, error) {
	if frames < 0 {
		return nil, NewBuildError(opts.Kind, StageAnimate, fmt.Errorf("negative frame count %d", frames))
	}

	tr, err := Transition(from, to, opts)
	if err != nil {
		return nil, err
	}

	vectors := tr.Frames(frames)
	out := make([]models.Frame, 0, len(vectors))
	for _, v := range vectors {
		frame, err := Layout(v, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, frame)
	}
	return out, nil
}

// Export writes ds and a native Excel chart of opts.Kind to an xlsx
// workbook at path. categories may be nil.
func Export(path string, ds models.Dataset, opts Options, categories []string) error {
	if _, ok := layout.For(opts.Kind); !ok {
		return NewBuildError(opts.Kind, StageExport, fmt.Errorf("%w: %q", ErrUnknownKind, opts.Kind))
	}
	if ds.Len() == 0 {
		return NewBuildError(opts.Kind, StageExport, ErrEmptyDataset)
	}
	if opts.Range != nil {
		if err := opts.Range.Validate(); err != nil {
			return NewBuildError(opts.Kind, StageExport, err)
		}
	}

	err := source.WriteWorkbook(path, ds, opts.Kind, source.ExportOptions{
		Title:      ds.Name,
		Categories: categories,
		Range:      opts.Range,
	})
	if err != nil {
		return NewBuildError(opts.Kind, StageExport, err)
	}
	return nil
}

// DataFormatter returns a label formatter that prints the raw sample at
// each index with a fmt verb such as "%.1f°F", instead of the normalized
// value. Indexes without a sample get an empty label.
func DataFormatter(samples []float64, format string) layout.Formatter {
	if format == "" {
		format = "%g"
	}
	values := append([]float64(nil), samples...)
	return func(_ float64, index int) string {
		if index < 0 || index >= len(values) {
			return ""
		}
		return fmt.Sprintf(format, values[index])
	}
}
