package engine

import "fmt"

// ErrorKind classifies a cross-snapshot validation failure.
type ErrorKind string

const (
	// ErrDifferentDrives means the model or serial differs between the
	// two snapshots.
	ErrDifferentDrives ErrorKind = "different_drives"
	// ErrOutOfOrder means the second snapshot is not strictly later
	// than the first.
	ErrOutOfOrder ErrorKind = "out_of_order"
	// ErrMixedFormats means the snapshots come from different report
	// families.
	ErrMixedFormats ErrorKind = "mixed_formats"
	// ErrCounterRegression means the write counter decreased, which
	// indicates mismatched or reset snapshots.
	ErrCounterRegression ErrorKind = "counter_regression"
	// ErrMissingCapacity means no capacity was detected and none was
	// configured, so capacity-relative metrics are undefined.
	ErrMissingCapacity ErrorKind = "missing_capacity"
)

// ValidationError is the terminal failure of a snapshot-pair analysis.
// Detail carries the offending values verbatim for the caller to
// surface.
type ValidationError struct {
	Kind   ErrorKind
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}
