package models

import "strings"

// Kind is the chart type.
type Kind string

const (
	// KindBar draws horizontal bars stacked top to bottom.
	KindBar Kind = "bar"
	// KindColumn draws vertical columns left to right.
	KindColumn Kind = "column"
	// KindLine draws a single polyline.
	KindLine Kind = "line"
	// KindPie draws wedges from cumulative angles.
	KindPie Kind = "pie"
)

// kindAliases maps accepted spellings to chart kinds.
var kindAliases = map[string]Kind{
	"bar":    KindBar,
	"column": KindColumn,
	"col":    KindColumn,
	"line":   KindLine,
	"pie":    KindPie,
}

// ParseKind resolves a chart kind name, case-insensitively.
func ParseKind(s string) (Kind, bool) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	return k, ok
}

// Kinds returns all chart kinds in display order.
func Kinds() []Kind {
	return []Kind{KindBar, KindColumn, KindLine, KindPie}
}

// Angular reports whether the kind consumes a cumulative-angle vector
// instead of a fractional one.
func (k Kind) Angular() bool {
	return k == KindPie
}

// Frame is the complete set of drawables for one chart at one instant.
type Frame struct {
	// Kind is the chart type that produced the frame.
	Kind Kind `json:"kind"`
	// Bounds is the target drawing rectangle.
	Bounds Rect `json:"bounds"`
	// Primitives are the data shapes.
	Primitives []Primitive `json:"primitives"`
	// Labels are the label anchors, in data order.
	Labels []Anchor `json:"labels"`
	// Decorations are axis and grid line work (optional).
	Decorations []Primitive `json:"decorations,omitempty"`
}
