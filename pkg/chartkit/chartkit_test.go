package chartkit

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/normalize"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/source"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/transition"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/vector"
)

var temps = []float64{82.4, 55.6, -14.4, 11.25, -16.75, 56.4}

func columnOptions() Options {
	opts := DefaultOptions()
	opts.Kind = models.KindColumn
	opts.Width = 100
	opts.Height = 300
	return opts
}

func TestNormalize_TemperatureRange(t *testing.T) {
	v, err := Normalize(temps, models.KindColumn, &normalize.Range{Min: -32, Max: 100})
	require.NoError(t, err)
	require.Len(t, v, len(temps))

	assert.InDelta(t, 0.8667, v[0], 1e-4)
	assert.InDelta(t, 0.1155, v[4], 1e-4)
	for i, x := range temps {
		assert.InDelta(t, (x+32)/132, v[i], 1e-12)
	}
}

func TestNormalize_PieAngles(t *testing.T) {
	v, err := Normalize([]float64{5, 20, 50, 25, 30}, models.KindPie, nil)
	require.NoError(t, err)

	want := vector.Vector{0, 13.85, 69.23, 207.69, 276.92, 360}
	if diff := cmp.Diff(want, v, cmpopts.EquateApprox(0, 0.01)); diff != "" {
		t.Errorf("pie angles mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_Column(t *testing.T) {
	opts := columnOptions()
	opts.Range = &normalize.Range{Min: -32, Max: 100}
	opts.Formatter = DataFormatter(temps, "%.1f°F")

	frame, err := Build(temps, opts)
	require.NoError(t, err)
	require.Len(t, frame.Primitives, len(temps))
	require.Len(t, frame.Labels, len(temps))

	assert.InDelta(t, 260, frame.Primitives[0].Rect.H, 1e-9)
	assert.InDelta(t, 40, frame.Primitives[0].Rect.Y, 1e-9)
	assert.Equal(t, "82.4°F", frame.Labels[0].Text)
	assert.Equal(t, "-16.8°F", frame.Labels[4].Text)

	// axis only
	require.Len(t, frame.Decorations, 1)
	assert.Equal(t, models.RoleAxis, frame.Decorations[0].Role)
}

func TestBuild_Decorations(t *testing.T) {
	opts := columnOptions()
	opts.ShowGrid = true
	opts.GridCells = 4
	noAxis := false
	opts.ShowAxis = &noAxis

	frame, err := Build([]float64{1, 2}, opts)
	require.NoError(t, err)
	assert.Len(t, frame.Decorations, 10)
	for _, d := range frame.Decorations {
		assert.Equal(t, models.RoleGrid, d.Role)
	}

	opts.Kind = models.KindPie
	opts.ShowGrid = false
	yes := true
	opts.ShowAxis = &yes
	frame, err = Build([]float64{1, 2}, opts)
	require.NoError(t, err)
	assert.Empty(t, frame.Decorations)
}

func TestBuild_Pie(t *testing.T) {
	opts := DefaultOptions()
	opts.Kind = models.KindPie
	opts.Width, opts.Height = 200, 200

	frame, err := Build([]float64{5, 20, 50, 25, 30}, opts)
	require.NoError(t, err)
	require.Len(t, frame.Primitives, 5)

	var total float64
	for i, p := range frame.Primitives {
		require.NotNil(t, p.Wedge, "primitive %d", i)
		assert.False(t, p.Wedge.Clockwise)
		assert.InDelta(t, 100, p.Wedge.Radius, 1e-9)
		assert.GreaterOrEqual(t, p.Wedge.EndAngle, p.Wedge.StartAngle)
		total += p.Wedge.Sweep()
	}
	assert.InDelta(t, 360, total, 1e-9)
	assert.Equal(t, "0.04", frame.Labels[0].Text)
}

func TestBuild_Empty(t *testing.T) {
	frame, err := Build(nil, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, frame.Primitives)
	assert.Empty(t, frame.Labels)
	assert.Equal(t, models.KindBar, frame.Kind)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		opts    func(*Options)
		want    error
		stage   Stage
	}{
		{
			name:    "degenerate range",
			samples: []float64{1, 2},
			opts:    func(o *Options) { o.Range = &normalize.Range{Min: 5, Max: 5} },
			want:    ErrDegenerateRange,
			stage:   StageNormalize,
		},
		{
			name:    "zero pie sum",
			samples: []float64{0, 0},
			opts:    func(o *Options) { o.Kind = models.KindPie },
			want:    ErrInvalidPieSum,
			stage:   StageNormalize,
		},
		{
			name:    "unknown kind",
			samples: []float64{1},
			opts:    func(o *Options) { o.Kind = "donut" },
			want:    ErrUnknownKind,
			stage:   StageNormalize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.opts(&opts)

			frame, err := Build(tt.samples, opts)
			require.Error(t, err)
			assert.Nil(t, frame)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			var buildErr *BuildError
			require.True(t, errors.As(err, &buildErr))
			assert.Equal(t, tt.stage, buildErr.Stage)
			assert.Equal(t, opts.Kind, buildErr.Kind)
		})
	}
}

func TestLayout_UnknownKind(t *testing.T) {
	opts := DefaultOptions()
	opts.Kind = "radar"
	_, err := Layout(vector.Of(0.5), opts)
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Contains(t, err.Error(), "radar chart (layout)")
}

func TestAnimate_Column(t *testing.T) {
	opts := columnOptions()
	opts.Range = &normalize.Range{Min: 0, Max: 1}
	opts.Easing = transition.Linear

	frames, err := Animate([]float64{0, 1}, []float64{1, 0, 0.5}, opts, 3)
	require.NoError(t, err)
	require.Len(t, frames, 3)

	assert.Len(t, frames[0].Primitives, 2)
	assert.Len(t, frames[2].Primitives, 3)

	mid := frames[1]
	require.Len(t, mid.Primitives, 3)
	wantH := []float64{150, 150, 75}
	for i, p := range mid.Primitives {
		assert.InDelta(t, wantH[i], p.Rect.H, 1e-9)
	}
}

func TestAnimate_PieStaysMonotone(t *testing.T) {
	opts := DefaultOptions()
	opts.Kind = models.KindPie

	frames, err := Animate([]float64{1, 1}, []float64{1, 1, 2}, opts, 9)
	require.NoError(t, err)
	require.Len(t, frames, 9)

	for i, frame := range frames {
		prev := 0.0
		for _, p := range frame.Primitives {
			assert.GreaterOrEqual(t, p.Wedge.StartAngle, prev-1e-9, "frame %d", i)
			assert.GreaterOrEqual(t, p.Wedge.EndAngle, p.Wedge.StartAngle-1e-9, "frame %d", i)
			prev = p.Wedge.EndAngle
		}
		assert.InDelta(t, 360, prev, 1e-9, "frame %d", i)
	}
}

func TestAnimate_Counts(t *testing.T) {
	frames, err := Animate([]float64{1}, []float64{2}, DefaultOptions(), 0)
	require.NoError(t, err)
	assert.Empty(t, frames)

	_, err = Animate([]float64{1}, []float64{2}, DefaultOptions(), -1)
	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, StageAnimate, buildErr.Stage)

	_, err = Animate([]float64{0}, []float64{1}, Options{Kind: models.KindPie}, 2)
	assert.ErrorIs(t, err, ErrInvalidPieSum)
}

func TestTransition_Policy(t *testing.T) {
	opts := DefaultOptions()
	tr, err := Transition([]float64{1, 2}, []float64{3}, opts)
	require.NoError(t, err)
	assert.Equal(t, vector.PadZero, tr.Padding)
	assert.Equal(t, transition.DefaultDuration, tr.Duration)

	opts.Kind = models.KindPie
	tr, err = Transition([]float64{1, 2}, []float64{3}, opts)
	require.NoError(t, err)
	assert.Equal(t, vector.PadLast, tr.Padding)

	zero := vector.PadZero
	opts.Padding = &zero
	assert.Equal(t, vector.PadZero, opts.PaddingFor())
}

func TestOptions_ShouldShowAxis(t *testing.T) {
	opts := DefaultOptions()
	assert.True(t, opts.ShouldShowAxis())

	off := false
	opts.ShowAxis = &off
	assert.False(t, opts.ShouldShowAxis())

	opts.ShowAxis = nil
	opts.Kind = models.KindPie
	assert.False(t, opts.ShouldShowAxis())
}

func TestDataFormatter(t *testing.T) {
	samples := []float64{1.5, 2}
	format := DataFormatter(samples, "")
	samples[0] = 99

	assert.Equal(t, "1.5", format(0.25, 0))
	assert.Equal(t, "2", format(1, 1))
	assert.Equal(t, "", format(0, 2))
	assert.Equal(t, "", format(0, -1))
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temps.xlsx")
	ds := models.Dataset{Name: "Temp", Samples: temps}
	opts := columnOptions()
	opts.Range = &normalize.Range{Min: -32, Max: 100}

	require.NoError(t, Export(path, ds, opts, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}))

	loaded, err := source.Load(path, source.LoadOptions{Column: "Temp"})
	require.NoError(t, err)
	assert.Equal(t, temps, loaded.Samples)

	r, info, err := source.RangeFromChart(path)
	require.NoError(t, err)
	assert.Equal(t, *opts.Range, r)
	assert.Equal(t, models.KindColumn, info.Kind)
}

func TestExport_Errors(t *testing.T) {
	dir := t.TempDir()

	err := Export(filepath.Join(dir, "a.xlsx"), models.Dataset{Name: "x"}, DefaultOptions(), nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	opts := DefaultOptions()
	opts.Range = &normalize.Range{Min: 3, Max: 1}
	err = Export(filepath.Join(dir, "b.xlsx"), models.Dataset{Samples: []float64{1}}, opts, nil)
	assert.ErrorIs(t, err, ErrDegenerateRange)

	opts = DefaultOptions()
	opts.Kind = "radar"
	err = Export(filepath.Join(dir, "c.xlsx"), models.Dataset{Samples: []float64{1}}, opts, nil)
	assert.ErrorIs(t, err, ErrUnknownKind)
}
