package chartkit

import (
	"errors"
	"fmt"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/normalize"
)

// ErrDegenerateRange indicates an explicit range with Max <= Min.
var ErrDegenerateRange = normalize.ErrDegenerateRange

// ErrInvalidPieSum indicates pie samples that sum to zero with no explicit range.
var ErrInvalidPieSum = normalize.ErrInvalidPieSum

// ErrEmptyDataset indicates an operation that needs at least one sample.
var ErrEmptyDataset = errors.New("empty dataset")

// ErrUnknownKind indicates an unrecognized chart kind.
var ErrUnknownKind = errors.New("unknown chart kind")

// Stage names the step of chart construction that failed.
type Stage string

const (
	StageNormalize Stage = "normalize"
	StageLayout    Stage = "layout"
	StageAnimate   Stage = "animate"
	StageExport    Stage = "export"
)

// BuildError represents an error while building a chart.
type BuildError struct {
	Kind  models.Kind
	Stage Stage
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s chart (%s): %v", e.Kind, e.Stage, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// NewBuildError creates a new BuildError.
func NewBuildError(kind models.Kind, stage Stage, err error) *BuildError {
	return &BuildError{
		Kind:  kind,
		Stage: stage,
		Err:   err,
	}
}
