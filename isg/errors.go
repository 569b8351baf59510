package isg

import (
	"errors"
	"fmt"
)

// Structural failures: the header block could not be located at all.
var (
	ErrMissingBeginOfHead = errors.New("isg: missing line starting with `begin_of_head`")
	ErrMissingEndOfHead   = errors.New("isg: missing line starting with `end_of_head`")
)

// UnknownFieldError reports a header label that is not part of ISG 2.0.
type UnknownFieldError struct {
	Line  int
	Label string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("isg: unknown header field %q (line %d)", e.Label, e.Line)
}

// MissingFieldError reports a mandatory header field whose line is
// absent, or whose value is the `---` placeholder where a value is
// required.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("isg: missing header field %q", e.Field)
}

// DuplicateFieldError reports a header field that appears twice.
type DuplicateFieldError struct {
	Line  int
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("isg: duplicated header field %q (line %d)", e.Field, e.Line)
}

// MissingSeparatorError reports a header line without a `:` or `=`
// separator.
type MissingSeparatorError struct {
	Line int
}

func (e *MissingSeparatorError) Error() string {
	return fmt.Sprintf("isg: missing separator (line %d)", e.Line)
}

// InvalidEnumValueError reports an enum-valued header field whose value
// matches none of the declared literal spellings.
type InvalidEnumValueError struct {
	Field string
	Raw   string
	Line  int
}

func (e *InvalidEnumValueError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("isg: invalid value %q for %q", e.Raw, e.Field)
	}
	return fmt.Sprintf("isg: invalid value %q for header field %q (line %d)", e.Raw, e.Field, e.Line)
}

// MalformedNumberError reports a numeric token that could not be parsed
// as a finite number of the expected form. Field names the header field
// or "data" for body tokens.
type MalformedNumberError struct {
	Field string
	Raw   string
	Line  int
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("isg: malformed number %q in %s (line %d)", e.Raw, e.Field, e.Line)
}

// UnsupportedVersionError reports an `ISG format` value other than
// "2.0".
type UnsupportedVersionError struct {
	Raw string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("isg: unsupported ISG format %q (only 2.0 is supported)", e.Raw)
}

// BoundsFieldMismatchError reports a bounds field carrying a value that
// belongs to a different (data format, coord type) combination than the
// one the header declares, or, from [Document.Validate], a bounds block
// whose variant disagrees with the declared combination.
type BoundsFieldMismatchError struct {
	Field  string
	Line   int
	Format DataFormat
	Coord  CoordType
}

func (e *BoundsFieldMismatchError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("isg: data bounds do not match data format %q and coord type %q", e.Format, e.Coord)
	}
	return fmt.Sprintf("isg: bounds field %q does not belong to data format %q with coord type %q (line %d)",
		e.Field, e.Format, e.Coord, e.Line)
}

// InconsistentBoundsError reports a grid axis whose max does not equal
// min + delta*(n-1) within tolerance.
type InconsistentBoundsError struct {
	Axis     string
	Expected float64
	Actual   float64
}

func (e *InconsistentBoundsError) Error() string {
	return fmt.Sprintf("isg: inconsistent bounds on %s: expected max %v, got %v", e.Axis, e.Expected, e.Actual)
}

// DataCountMismatchError reports a data section whose size disagrees
// with the header counts. What names the quantity being counted.
type DataCountMismatchError struct {
	What     string
	Expected int
	Actual   int
}

func (e *DataCountMismatchError) Error() string {
	return fmt.Sprintf("isg: expected %d %s, got %d", e.Expected, e.What, e.Actual)
}

// MalformedDataLineError reports a data line with an unexpected token
// count for the declared layout.
type MalformedDataLineError struct {
	Line   int
	Tokens int
}

func (e *MalformedDataLineError) Error() string {
	return fmt.Sprintf("isg: malformed data line with %d tokens (line %d)", e.Tokens, e.Line)
}

// ValidationError reports a structural problem found by
// [Document.Validate] on a programmatically built document.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("isg: %s: %s", e.Field, e.Message)
	}
	return "isg: " + e.Message
}
