package ot

import (
	"errors"
	"fmt"
)

// Kinds of failures. Every error returned by this module wraps exactly one of
// these, so clients test with errors.Is.
var (
	// Container level.
	ErrNotAFont             = errors.New("not a font")
	ErrUnsupportedContainer = errors.New("unsupported container")
	ErrTruncatedInput       = errors.New("truncated input")

	// Directory level.
	ErrTableOutOfBounds = errors.New("table out of bounds")
	ErrDuplicateTag     = errors.New("duplicate tag")

	// Table level.
	ErrUnsupportedNameFormat = errors.New("unsupported name format")
	ErrHeadMagicMismatch     = errors.New("head magic mismatch")
	ErrMissingTable          = errors.New("missing table")
)

// ErrorSeverity represents the severity level of a font parsing error.
type ErrorSeverity int

const (
	// SeverityCritical indicates a severe error that makes the font (or a table) unusable.
	SeverityCritical ErrorSeverity = iota
	// SeverityMajor indicates a significant error that may affect functionality but doesn't prevent usage.
	SeverityMajor
	// SeverityMinor indicates a minor issue that can be safely ignored in most cases.
	SeverityMinor
)

// String returns a human-readable representation of the error severity.
func (s ErrorSeverity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	default:
		return "UNKNOWN"
	}
}

// FontError represents an error encountered while decoding a font.
// It locates the problem (table, section, offset) and wraps one of the
// error kinds above.
type FontError struct {
	Kind     error         // one of the Err… kinds of this package
	Table    Tag           // The table where the error occurred; 0 for the container
	Section  string        // Specific section within the table (e.g., "Header", "NameRecord")
	Issue    string        // Human-readable description of the issue
	Severity ErrorSeverity // Severity level of the error
	Offset   uint32        // Byte offset where the error occurred (0 if unknown)
}

// Error implements the error interface.
// The message is a single line: kind, location, issue.
func (e *FontError) Error() string {
	where := e.Section
	if e.Table != 0 {
		where = fmt.Sprintf("'%s'/%s", e.Table, e.Section)
	}
	if e.Offset > 0 {
		return fmt.Sprintf("%v: %s at offset %d: %s", e.Kind, where, e.Offset, e.Issue)
	}
	return fmt.Sprintf("%v: %s: %s", e.Kind, where, e.Issue)
}

// Unwrap returns the error kind.
func (e *FontError) Unwrap() error {
	return e.Kind
}

// NewFontError creates a critical error of a given kind for a table.
// Decoders of individual tables use it to report in the same format as the
// directory parser.
func NewFontError(kind error, table Tag, section, issue string, offset uint32) *FontError {
	return &FontError{
		Kind:     kind,
		Table:    table,
		Section:  section,
		Issue:    issue,
		Severity: SeverityCritical,
		Offset:   offset,
	}
}

// FontWarning represents a non-fatal diagnostic, e.g. a misaligned table or
// a checksum mismatch.
type FontWarning struct {
	Table  Tag    // The table where the warning occurred
	Issue  string // Human-readable description of the warning
	Offset uint32 // Byte offset where the warning occurred (0 if unknown)
}

// String returns a human-readable representation of the warning.
func (w FontWarning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("[WARNING] %s at offset %d: %s", w.Table, w.Offset, w.Issue)
	}
	return fmt.Sprintf("[WARNING] %s: %s", w.Table, w.Issue)
}

// errorCollector accumulates warnings while parsing, and produces errors in
// a uniform way.
type errorCollector struct {
	errors   []*FontError
	warnings []FontWarning
}

// addError records a parsing error and returns it.
func (ec *errorCollector) addError(kind error, table Tag, section string, issue string, offset uint32) error {
	err := NewFontError(kind, table, section, issue, offset)
	ec.errors = append(ec.errors, err)
	return err
}

// addWarning records a parsing warning.
func (ec *errorCollector) addWarning(table Tag, issue string, offset uint32) {
	tracer().Infof("font %s: %s", table, issue)
	ec.warnings = append(ec.warnings, FontWarning{
		Table:  table,
		Issue:  issue,
		Offset: offset,
	})
}
