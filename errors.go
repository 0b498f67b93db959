package track

import (
	"errors"
	"fmt"
)

// Sentinel errors for the track package.
var (
	// ErrEmptyInput is returned when a point list holds no points.
	ErrEmptyInput = errors.New("track: empty input")

	// ErrTooFewPoints is returned when a curve with fewer than two anchors
	// is handed to a stage that needs at least one segment.
	ErrTooFewPoints = errors.New("track: curve needs at least 2 anchors")

	// ErrLengthMismatch is returned when paired curves have differing
	// anchor counts.
	ErrLengthMismatch = errors.New("track: anchor count mismatch")

	// ErrDegenerateSegment is returned when no tangent direction can be
	// derived because the anchors coincide.
	ErrDegenerateSegment = errors.New("track: degenerate segment")

	// ErrSamplingOutOfRange is returned when a sampled distance lies
	// outside [0, length].
	ErrSamplingOutOfRange = errors.New("track: sampling out of range")

	// ErrInvalidSpacing is returned for a non-positive placement spacing.
	ErrInvalidSpacing = errors.New("track: spacing must be positive")
)

// LengthMismatchError reports the anchor counts of two curves that were
// expected to pair up 1:1.
type LengthMismatchError struct {
	Left, Right int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("track: anchor count mismatch: left has %d, right has %d", e.Left, e.Right)
}

func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }

// SamplingError reports a distance that fell outside the sampled range.
type SamplingError struct {
	Distance float64
	Length   float64
}

func (e *SamplingError) Error() string {
	return fmt.Sprintf("track: distance %.6g outside [0, %.6g]", e.Distance, e.Length)
}

func (e *SamplingError) Unwrap() error { return ErrSamplingOutOfRange }

// Stage names used in StageError.
const (
	StageBuild      = "build"
	StageCenterline = "centerline"
	StageOffset     = "offset"
	StageSample     = "sample"
	StagePlace      = "place"
)

// StageError names the pipeline stage that failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return "track: " + e.Stage + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error { return e.Err }

func stageErr(stage string, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}
