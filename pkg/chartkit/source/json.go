package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

// LoadJSON reads samples from a JSON file holding either a bare array of
// numbers or a dataset object {"name": ..., "samples": [...]}. A bare array
// is named after the file.
func LoadJSON(path string) (models.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	ds, err := ParseJSON(data)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	if ds.Name == "" {
		ds.Name = baseName(path)
	}
	ds.Source = path
	return ds, nil
}

// ParseJSON decodes a dataset from JSON bytes.
func ParseJSON(data []byte) (models.Dataset, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return models.Dataset{}, fmt.Errorf("empty JSON input")
	}

	var ds models.Dataset
	if data[0] == '[' {
		if err := json.Unmarshal(data, &ds.Samples); err != nil {
			return models.Dataset{}, fmt.Errorf("failed to decode samples: %w", err)
		}
		return ds, nil
	}

	if err := json.Unmarshal(data, &ds); err != nil {
		return models.Dataset{}, fmt.Errorf("failed to decode dataset: %w", err)
	}
	if ds.Samples == nil {
		ds.Samples = []float64{}
	}
	return ds, nil
}
