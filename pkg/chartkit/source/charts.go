package source

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/normalize"
)

// chartKinds maps OOXML plot elements to the chart kinds they can be drawn
// as. Bar groups are refined by their barDir child.
var chartKinds = map[string]models.Kind{
	"barChart":      models.KindBar,
	"bar3DChart":    models.KindBar,
	"lineChart":     models.KindLine,
	"line3DChart":   models.KindLine,
	"pieChart":      models.KindPie,
	"pie3DChart":    models.KindPie,
	"doughnutChart": models.KindPie,
}

// SeriesRef describes one chart series by its cell references.
type SeriesRef struct {
	// Name is the cached series name.
	Name string `json:"name,omitempty"`
	// NameRef is the formula the name is read from.
	NameRef string `json:"name_ref,omitempty"`
	// Categories is the category axis reference.
	Categories string `json:"categories,omitempty"`
	// Values is the value reference, e.g. Sheet1!$B$2:$B$7.
	Values string `json:"values"`
}

// ChartInfo summarizes a native chart found in a workbook.
type ChartInfo struct {
	// Part is the chart's path inside the package.
	Part string `json:"part"`
	// PlotType is the first plot element, e.g. "barChart".
	PlotType string `json:"plot_type"`
	// Kind is the chart kind, empty when the plot type has no layout here.
	Kind models.Kind `json:"kind,omitempty"`
	// Title is the chart title text.
	Title string `json:"title,omitempty"`
	// AxisRange is the fixed value-axis range, nil when the axis auto-scales.
	AxisRange *normalize.Range `json:"axis_range,omitempty"`
	// Series are the plotted series in order.
	Series []SeriesRef `json:"series,omitempty"`
}

// ReadCharts lists the native charts of an xlsx file in part order.
func ReadCharts(path string) ([]ChartInfo, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer r.Close()

	return readCharts(&r.Reader)
}

func readCharts(r *zip.Reader) ([]ChartInfo, error) {
	var parts []*zip.File
	for _, f := range r.File {
		if strings.HasPrefix(f.Name, "xl/charts/chart") && strings.HasSuffix(f.Name, ".xml") {
			parts = append(parts, f)
		}
	}
	sort.Slice(parts, func(i, j int) bool {
		return chartNumber(parts[i].Name) < chartNumber(parts[j].Name)
	})

	charts := make([]ChartInfo, 0, len(parts))
	for _, part := range parts {
		data, err := readPart(part)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", part.Name, err)
		}
		info, err := ParseChartXML(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", part.Name, err)
		}
		info.Part = part.Name
		charts = append(charts, info)
	}
	return charts, nil
}

// chartNumber extracts N from xl/charts/chartN.xml.
func chartNumber(name string) int {
	digits := strings.TrimSuffix(strings.TrimPrefix(name, "xl/charts/chart"), ".xml")
	n, err := strconv.Atoi(digits)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return n
}

func readPart(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// RangeFromChart returns the value-axis range of the first chart in the
// workbook that fixes both its minimum and maximum.
func RangeFromChart(path string) (normalize.Range, *ChartInfo, error) {
	charts, err := ReadCharts(path)
	if err != nil {
		return normalize.Range{}, nil, err
	}
	for i := range charts {
		if charts[i].AxisRange != nil {
			return *charts[i].AxisRange, &charts[i], nil
		}
	}
	return normalize.Range{}, nil, fmt.Errorf("%s: %w", path, ErrNoAxisRange)
}

// ChartSamples reads the values of a chart's first series from f.
func ChartSamples(f *excelize.File, info ChartInfo) (models.Dataset, error) {
	if len(info.Series) == 0 || info.Series[0].Values == "" {
		return models.Dataset{}, fmt.Errorf("%s: chart has no series values", info.Part)
	}

	ser := info.Series[0]
	ds, err := LoadCells(f, "", ser.Values)
	if err != nil {
		return models.Dataset{}, err
	}
	if ser.Name != "" {
		ds.Name = ser.Name
	}
	return ds, nil
}

// ParseChartXML extracts the plot type, title, value-axis scaling and
// series references from a chart part.
func ParseChartXML(data []byte) (ChartInfo, error) {
	var (
		info     ChartInfo
		stack    []string
		axisMin  *float64
		axisMax  *float64
		inSeries = -1
	)

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return info, fmt.Errorf("invalid chart xml: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			name := t.Name.Local
			parent := top(stack)

			switch {
			case parent == "plotArea" && info.PlotType == "":
				if kind, ok := chartKinds[name]; ok {
					info.PlotType, info.Kind = name, kind
				} else if strings.HasSuffix(name, "Chart") {
					info.PlotType = name
				}
			case name == "barDir" && parent == info.PlotType:
				if attrVal(t) == "col" {
					info.Kind = models.KindColumn
				}
			case name == "ser" && parent == info.PlotType:
				info.Series = append(info.Series, SeriesRef{})
				inSeries = len(info.Series) - 1
			case (name == "min" || name == "max") && within(stack, "valAx", "scaling"):
				if v, err := strconv.ParseFloat(attrVal(t), 64); err == nil {
					if name == "min" {
						axisMin = &v
					} else {
						axisMax = &v
					}
				}
			}
			stack = append(stack, name)

		case xml.EndElement:
			if top(stack) == "ser" {
				inSeries = -1
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text == "" {
				continue
			}
			switch leaf := top(stack); {
			case leaf == "t" && within(stack, "chart", "title"):
				info.Title += text
			case inSeries >= 0 && within(stack, "ser", "tx"):
				ser := &info.Series[inSeries]
				if leaf == "f" {
					ser.NameRef = text
				} else if leaf == "v" {
					ser.Name = text
				}
			case inSeries >= 0 && leaf == "f" && within(stack, "ser", "cat"):
				info.Series[inSeries].Categories = text
			case inSeries >= 0 && leaf == "f" && within(stack, "ser", "val"):
				info.Series[inSeries].Values = text
			}
		}
	}

	if info.PlotType == "" {
		return info, fmt.Errorf("no plot area found")
	}
	if axisMin != nil && axisMax != nil {
		info.AxisRange = &normalize.Range{Min: *axisMin, Max: *axisMax}
	}
	return info, nil
}

func top(stack []string) string {
	if len(stack) == 0 {
		return ""
	}
	return stack[len(stack)-1]
}

// within reports whether parent directly contains child somewhere on the
// element stack.
func within(stack []string, parent, child string) bool {
	for i := 1; i < len(stack); i++ {
		if stack[i-1] == parent && stack[i] == child {
			return true
		}
	}
	return false
}

func attrVal(se xml.StartElement) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == "val" {
			return attr.Value
		}
	}
	return ""
}
