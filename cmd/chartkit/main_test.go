package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/normalize"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/source"
)

// execute runs the CLI with args and returns what it wrote.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// decodeFrames reads the JSON lines written by the animate command.
func decodeFrames(t *testing.T, r io.Reader) []animationFrame {
	t.Helper()
	var frames []animationFrame
	dec := json.NewDecoder(r)
	for {
		var f animationFrame
		err := dec.Decode(&f)
		if err == io.EOF {
			return frames
		}
		require.NoError(t, err)
		frames = append(frames, f)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	for _, field := range []string{"chartkit version dev", "commit:", "built:", "go version:", "platform:"} {
		assert.Contains(t, out, field)
	}

	out, _, err = execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)

	out, _, err = execute(t, "version", "--json")
	require.NoError(t, err)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "dev", info["version"])
	assert.NotEmpty(t, info["goVersion"])
}

func TestLayout_JSON(t *testing.T) {
	out, _, err := execute(t, "layout", "--values", "1,2,3", "--kind", "column", "--width", "100", "--height", "300")
	require.NoError(t, err)

	var frame models.Frame
	require.NoError(t, json.Unmarshal([]byte(out), &frame))
	assert.Equal(t, models.KindColumn, frame.Kind)
	require.Len(t, frame.Primitives, 3)
	assert.InDelta(t, 300, frame.Primitives[2].Rect.H, 1e-9)
	assert.InDelta(t, 0, frame.Primitives[0].Rect.H, 1e-9)
	require.Len(t, frame.Decorations, 1)
	assert.Equal(t, models.RoleAxis, frame.Decorations[0].Role)
}

func TestLayout_OutputFileAndLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.json")
	out, _, err := execute(t, "layout", "--values", "82.4,55.6,-14.4", "--range", "-32:100",
		"--label-format", "%.1f°F", "--grid", "--pretty", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"kind\": \"bar\"")

	var frame models.Frame
	require.NoError(t, json.Unmarshal(data, &frame))
	require.Len(t, frame.Labels, 3)
	assert.Equal(t, "82.4°F", frame.Labels[0].Text)
	// 11 horizontal + 11 vertical grid lines and the axis
	assert.Len(t, frame.Decorations, 23)
}

func TestLayout_Table(t *testing.T) {
	out, _, err := execute(t, "layout", "--values", "1,2", "--table")
	require.NoError(t, err)
	assert.Contains(t, out, "values (bar)")
	assert.Contains(t, out, "INDEX")
	assert.Contains(t, out, "rect")
}

func TestNormalize_Table(t *testing.T) {
	out, _, err := execute(t, "normalize", "--values", "82.4,-16.75", "--range", "-32:100")
	require.NoError(t, err)
	assert.Contains(t, out, "FRACTION")
	assert.Contains(t, out, "0.87")
	assert.Contains(t, out, "0.12")
}

func TestNormalize_PieJSON(t *testing.T) {
	out, _, err := execute(t, "normalize", "--values", "5,20,50,25,30", "--kind", "pie", "--json")
	require.NoError(t, err)

	var got normalized
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "pie", got.Kind)
	want := []float64{0, 13.85, 69.23, 207.69, 276.92, 360}
	require.Len(t, got.Vector, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got.Vector[i], 0.01)
	}
}

func TestInputErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no input", []string{"normalize"}, "no input"},
		{"both inputs", []string{"normalize", "--values", "1", "--input", "x.json"}, "not both"},
		{"bad values", []string{"normalize", "--values", "1,abc"}, "invalid --values"},
		{"missing file", []string{"normalize", "--input", "missing.json"}, "file not found"},
		{"degenerate range", []string{"normalize", "--values", "1,2", "--range", "5:1"}, "invalid --range"},
		{"unknown kind", []string{"layout", "--values", "1", "--kind", "radar"}, "unknown chart kind"},
		{"zero pie", []string{"layout", "--values", "0,0", "--kind", "pie"}, "pie samples sum to zero"},
		{"bad size", []string{"layout", "--values", "1", "--width=-5"}, "chart size must be positive"},
		{"range twice", []string{"layout", "--values", "1", "--range", "0:1", "--range-from-chart"}, "not both"},
		{"chart range without workbook", []string{"layout", "--values", "1", "--range-from-chart"}, "requires an --input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temps.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "Highs", "samples": [82.4, 55.6, -14.4]}`), 0o644))

	out, _, err := execute(t, "normalize", "--input", path, "--json")
	require.NoError(t, err)

	var got normalized
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Highs", got.Name)
	assert.Equal(t, []float64{82.4, 55.6, -14.4}, got.Samples)
	assert.InDelta(t, 1, got.Vector[0], 1e-12)
	assert.InDelta(t, 0, got.Vector[2], 1e-12)
}

func TestRender(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "chart.svg")
	_, errOut, err := execute(t, "render", "--values", "5,20,50", "--kind", "pie", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, "[OK] wrote pie chart to")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	// no extension falls back to the configured format
	path = filepath.Join(dir, "chart")
	_, _, err = execute(t, "render", "--values", "1,2", "-o", path)
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	_, _, err = execute(t, "render", "--values", "1,2")
	assert.ErrorContains(t, err, "--output is required")

	_, _, err = execute(t, "render", "--values", "1,2", "-o", filepath.Join(dir, "chart.docx"))
	assert.ErrorContains(t, err, "unsupported image format")
}

func TestAnimate_Frames(t *testing.T) {
	out, _, err := execute(t, "animate", "--from", "0,1", "--to", "1,0,0.5",
		"--frames", "3", "--range", "0:1", "--easing", "linear", "--kind", "column")
	require.NoError(t, err)

	frames := decodeFrames(t, strings.NewReader(out))
	require.Len(t, frames, 3)
	assert.Len(t, frames[0].Chart.Primitives, 2)
	assert.InDelta(t, 0.5, frames[1].Progress, 1e-12)
	assert.InDelta(t, 250, frames[1].Elapsed, 1e-9)
	assert.Equal(t, 1.0, frames[2].Progress)

	mid := frames[1].Chart
	require.Len(t, mid.Primitives, 3)
	wantH := []float64{150, 150, 75}
	for i, p := range mid.Primitives {
		assert.InDelta(t, wantH[i], p.Rect.H, 1e-9)
	}
}

func TestAnimate_RealTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.jsonl")
	_, _, err := execute(t, "animate", "--values", "1,1", "--to", "1,1,2", "--kind", "pie",
		"--duration", "30ms", "--interval", "5ms", "-o", path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	frames := decodeFrames(t, f)
	require.GreaterOrEqual(t, len(frames), 2)
	assert.Equal(t, 0.0, frames[0].Progress)
	assert.Len(t, frames[0].Chart.Primitives, 2)

	last := frames[len(frames)-1]
	assert.Equal(t, 1.0, last.Progress)
	assert.InDelta(t, 30, last.Elapsed, 1e-9)
	assert.Len(t, last.Chart.Primitives, 3)
	for i, frame := range frames {
		assert.Equal(t, i, frame.Frame)
	}
}

func TestAnimate_ZeroDuration(t *testing.T) {
	out, _, err := execute(t, "animate", "--from", "1,2", "--to", "2,1", "--duration", "0s")
	require.NoError(t, err)

	frames := decodeFrames(t, strings.NewReader(out))
	require.Len(t, frames, 1)
	assert.Equal(t, 1.0, frames[0].Progress)
}

func TestAnimate_Images(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	_, errOut, err := execute(t, "animate", "--from", "1,2", "--to", "2,1", "--frames", "2", "--out-dir", dir, "--format", "svg")
	require.NoError(t, err)
	assert.Contains(t, errOut, "[OK] wrote frames to")

	for _, name := range []string{"frame_000.svg", "frame_001.svg"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestAnimate_Errors(t *testing.T) {
	_, _, err := execute(t, "animate", "--from", "1,2")
	assert.ErrorContains(t, err, "--to is required")

	_, _, err = execute(t, "animate", "--from", "1", "--to", "2", "--easing", "bounce")
	assert.ErrorContains(t, err, "unknown easing")

	_, _, err = execute(t, "animate", "--from", "1", "--to", "2", "--frames", "-1")
	assert.ErrorContains(t, err, "invalid --frames")
}

func TestExportAndCharts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temps.xlsx")
	_, errOut, err := execute(t, "export", "--values", "82.4,55.6,-14.4,11.25,-16.75,56.4",
		"--kind", "column", "--range", "-32:100", "--name", "High",
		"--categories", "Mon, Tue, Wed, Thu, Fri, Sat", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, "[OK] wrote 6 samples and a column chart")

	// charts --json
	out, _, err := execute(t, "charts", "--input", path, "--json")
	require.NoError(t, err)
	var charts []source.ChartInfo
	require.NoError(t, json.Unmarshal([]byte(out), &charts))
	require.Len(t, charts, 1)
	assert.Equal(t, models.KindColumn, charts[0].Kind)
	assert.Equal(t, "High", charts[0].Title)
	require.NotNil(t, charts[0].AxisRange)
	assert.Equal(t, normalize.Range{Min: -32, Max: 100}, *charts[0].AxisRange)

	// charts table
	out, _, err = execute(t, "charts", "--input", path)
	require.NoError(t, err)
	assert.Contains(t, out, "barChart")
	assert.Contains(t, out, "-32:100")

	// samples and range from the chart
	out, _, err = execute(t, "normalize", "--input", path, "--range-from-chart", "--json")
	require.NoError(t, err)
	var got normalized
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotNil(t, got.Range)
	assert.Equal(t, normalize.Range{Min: -32, Max: 100}, *got.Range)
	assert.Equal(t, []float64{82.4, 55.6, -14.4, 11.25, -16.75, 56.4}, got.Samples)
	assert.InDelta(t, 0.8667, got.Vector[0], 1e-4)

	// header lookup in the exported sheet
	out, _, err = execute(t, "normalize", "--input", path, "--column", "High", "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "High", got.Name)
	assert.Len(t, got.Samples, 6)
}

func TestExport_Errors(t *testing.T) {
	_, _, err := execute(t, "export", "--values", "1,2")
	assert.ErrorContains(t, err, "--output is required")

	path := filepath.Join(t.TempDir(), "x.xlsx")
	_, _, err = execute(t, "export", "--values", "1,2", "--categories", "a", "-o", path)
	assert.ErrorContains(t, err, "export failed")
}

func TestCharts_NoCharts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", 1))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	out, errOut, err := execute(t, "charts", "--input", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "[WARN] no charts found")

	_, _, err = execute(t, "charts")
	assert.ErrorContains(t, err, "--input is required")

	_, _, err = execute(t, "normalize", "--input", path, "--range-from-chart")
	assert.ErrorContains(t, err, "no chart with a fixed value axis")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chartkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chart:\n  kind: line\n  show_axis: false\nlogging:\n  format: json\n"), 0o644))

	out, errOut, err := execute(t, "--config", path, "-v", "layout", "--values", "1,2,3")
	require.NoError(t, err)

	var frame models.Frame
	require.NoError(t, json.Unmarshal([]byte(out), &frame))
	assert.Equal(t, models.KindLine, frame.Kind)
	assert.Empty(t, frame.Decorations)
	assert.Contains(t, errOut, `"msg":"configuration loaded"`)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("chart:\n  kind: radar\n"), 0o644))
	_, _, err = execute(t, "--config", bad, "version")
	assert.ErrorContains(t, err, "loading config")
}
