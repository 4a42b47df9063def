package models

// PrimitiveKind tags the geometry carried by a Primitive.
type PrimitiveKind string

const (
	// PrimitiveRect is a filled rectangle (bar or column).
	PrimitiveRect PrimitiveKind = "rect"
	// PrimitivePolyline is a connected sequence of points (line chart, axis, grid).
	PrimitivePolyline PrimitiveKind = "polyline"
	// PrimitiveWedge is a pie slice.
	PrimitiveWedge PrimitiveKind = "wedge"
)

// Role tags decoration primitives so renderers can style them.
type Role string

const (
	// RoleData is a shape that represents a data point (the zero value).
	RoleData Role = ""
	// RoleAxis is the X-Y axis line.
	RoleAxis Role = "axis"
	// RoleGrid is a graph paper line.
	RoleGrid Role = "grid"
)

// NoIndex marks primitives that do not represent a data point.
const NoIndex = -1

// Wedge is a circular sector swept from StartAngle to EndAngle, in degrees.
// Angles follow the screen convention: 0° points right and angles grow
// toward +Y (downward).
type Wedge struct {
	// Center is the apex of the wedge.
	Center Point `json:"center"`
	// Radius is the distance from the apex to the rim.
	Radius float64 `json:"radius"`
	// StartAngle is where the sweep begins, in degrees.
	StartAngle float64 `json:"start_angle"`
	// EndAngle is where the sweep ends, in degrees.
	EndAngle float64 `json:"end_angle"`
	// Clockwise is the arc direction passed to renderers.
	Clockwise bool `json:"clockwise"`
}

// Sweep returns the angular size of the wedge in degrees.
func (w Wedge) Sweep() float64 {
	return w.EndAngle - w.StartAngle
}

// MidAngle returns the angle bisecting the wedge.
func (w Wedge) MidAngle() float64 {
	return (w.StartAngle + w.EndAngle) / 2
}

// Primitive is a drawable shape produced by a layout.
type Primitive struct {
	// Kind selects which geometry field is set.
	Kind PrimitiveKind `json:"kind"`
	// Index is the data index the shape represents, or NoIndex.
	Index int `json:"index"`
	// Rect is set for PrimitiveRect.
	Rect *Rect `json:"rect,omitempty"`
	// Points is set for PrimitivePolyline.
	Points []Point `json:"points,omitempty"`
	// Wedge is set for PrimitiveWedge.
	Wedge *Wedge `json:"wedge,omitempty"`
	// Role is set on decorations.
	Role Role `json:"role,omitempty"`
}

// RectPrimitive wraps r as a rectangle primitive for data index i.
func RectPrimitive(i int, r Rect) Primitive {
	return Primitive{Kind: PrimitiveRect, Index: i, Rect: &r}
}

// PolylinePrimitive wraps pts as a polyline primitive for data index i.
func PolylinePrimitive(i int, pts []Point) Primitive {
	return Primitive{Kind: PrimitivePolyline, Index: i, Points: pts}
}

// WedgePrimitive wraps w as a wedge primitive for data index i.
func WedgePrimitive(i int, w Wedge) Primitive {
	return Primitive{Kind: PrimitiveWedge, Index: i, Wedge: &w}
}
