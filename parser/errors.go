package parser

import "fmt"

// ErrorKind classifies a parse failure.
type ErrorKind string

const (
	// ErrUnknownFormat means neither drive family's markers were found.
	ErrUnknownFormat ErrorKind = "unknown_format"
	// ErrMissingField means a mandatory field could not be extracted.
	ErrMissingField ErrorKind = "missing_field"
	// ErrMissingTimestamp means the report's local-time line was absent
	// or unparsable.
	ErrMissingTimestamp ErrorKind = "missing_timestamp"
)

// ParseError is the terminal failure of a single snapshot parse.
type ParseError struct {
	Kind  ErrorKind
	Field string // set for ErrMissingField
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrUnknownFormat:
		return "unrecognized report format: no NVMe or SATA markers found"
	case ErrMissingField:
		return fmt.Sprintf("missing mandatory field %q", e.Field)
	case ErrMissingTimestamp:
		return "missing or unparsable local-time line"
	}
	return string(e.Kind)
}
