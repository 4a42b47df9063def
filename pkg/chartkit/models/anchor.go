package models

// Alignment is the text alignment inside a label box.
type Alignment string

const (
	AlignLeading  Alignment = "leading"
	AlignCenter   Alignment = "center"
	AlignTrailing Alignment = "trailing"
	AlignTop      Alignment = "top"
)

// Anchor positions the label for one data index. X and Y are the top-left
// corner of the label box.
type Anchor struct {
	// Index is the data index the label describes.
	Index int `json:"index"`
	// Text is the formatted label.
	Text string `json:"text"`
	// X is the left edge of the label box.
	X float64 `json:"x"`
	// Y is the top edge of the label box.
	Y float64 `json:"y"`
	// W is the label box width.
	W float64 `json:"w"`
	// H is the label box height.
	H float64 `json:"h"`
	// Align is how text sits inside the box.
	Align Alignment `json:"align"`
}

// Box returns the label box as a Rect.
func (a Anchor) Box() Rect {
	return Rect{X: a.X, Y: a.Y, W: a.W, H: a.H}
}

// Center returns the midpoint of the label box.
func (a Anchor) Center() Point {
	return a.Box().Center()
}
