package compare

import "fmt"

// MismatchKind classifies a MismatchError.
type MismatchKind int

const (
	MissingColumn MismatchKind = iota + 1
	DuplicateKey
	MissingRow
	FieldMismatch
)

func (k MismatchKind) String() string {
	switch k {
	case MissingColumn:
		return "missing column"
	case DuplicateKey:
		return "duplicate key"
	case MissingRow:
		return "missing row"
	case FieldMismatch:
		return "field mismatch"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// MismatchError describes the first difference found between two files.
type MismatchError struct {
	Kind MismatchKind
	// File is where the violation was found; Other is the file it was
	// compared against.
	File  string
	Other string
	// Key is the initialization centroids of the offending row.
	Key   string
	Field string
	Want  string
	Got   string
}

func (e *MismatchError) Error() string {
	switch e.Kind {
	case MissingColumn:
		return fmt.Sprintf("cannot find %q in the first line of the output csv at %q", e.Field, e.File)
	case DuplicateKey:
		return fmt.Sprintf("the initialization centroids %q appear more than once in the csv at %q", e.Key, e.File)
	case MissingRow:
		return fmt.Sprintf("the solution for the centroids %q is given in the csv at %q but not in the csv at %q", e.Key, e.File, e.Other)
	case FieldMismatch:
		return fmt.Sprintf("both %q values for the initialization centroids %q are different: %q != %q", e.Field, e.Key, e.Want, e.Got)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.File)
	}
}

// ParseError reports a field that could not be parsed.
type ParseError struct {
	File   string
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: column %q: %v", e.File, e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
