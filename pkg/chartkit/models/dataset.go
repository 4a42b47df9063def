package models

// Dataset is a named sequence of raw samples.
type Dataset struct {
	// Name is the display name (sheet column header, file name, ...).
	Name string `json:"name"`
	// Samples are the raw values in input order.
	Samples []float64 `json:"samples"`
	// Source describes where the samples came from (optional).
	Source string `json:"source,omitempty"`
}

// Len returns the number of samples.
func (d Dataset) Len() int {
	return len(d.Samples)
}
