package document

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("malformed document")
	// ErrMissingSection is matched by every *MissingSectionError.
	ErrMissingSection = errors.New("missing section")
	// ErrMissingField is matched by every *MissingFieldError.
	ErrMissingField = errors.New("missing field")
	// ErrShape is matched by every *ShapeError.
	ErrShape = errors.New("unexpected data shape")

	errEmptyDocument = errors.New("document is empty")
)

// ParseError reports input that could not be decoded into a document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
	}

	return fmt.Sprintf("parse document: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// MissingSectionError reports a pattern source key absent from the document.
type MissingSectionError struct {
	Pattern string
	Section string
}

func (e *MissingSectionError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("pattern %s: section %q not found in document", e.Pattern, e.Section)
	}

	return fmt.Sprintf("section %q not found in document", e.Section)
}

func (e *MissingSectionError) Is(target error) bool { return target == ErrMissingSection }

// MissingFieldError reports a record lacking a field its pattern expects.
// Pattern is filled in by the renderer when the error is raised below it.
type MissingFieldError struct {
	Pattern string
	Field   string
}

func (e *MissingFieldError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("pattern %s: record has no field %q", e.Pattern, e.Field)
	}

	return fmt.Sprintf("record has no field %q", e.Field)
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// ShapeError reports a section or element whose YAML type does not fit the pattern.
type ShapeError struct {
	Pattern string
	Want    string
	Got     any
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("pattern %s: expected a %s, got %T", e.Pattern, e.Want, e.Got)
}

func (e *ShapeError) Is(target error) bool { return target == ErrShape }
