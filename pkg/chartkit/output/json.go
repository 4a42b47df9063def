// Package output formats chart data for the terminal: JSON documents,
// aligned tables and colored status lines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// ToJSON encodes v as JSON, indented when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return data, nil
}

// WriteJSON writes v to w as one JSON document followed by a newline.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	data, err := ToJSON(v, pretty)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// JSONLines writes one compact JSON document per line.
type JSONLines struct {
	enc *json.Encoder
}

// NewJSONLines returns a JSONLines writer on w.
func NewJSONLines(w io.Writer) *JSONLines {
	return &JSONLines{enc: json.NewEncoder(w)}
}

// Write encodes v on its own line.
func (j *JSONLines) Write(v any) error {
	if err := j.enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON line: %w", err)
	}
	return nil
}
