package datacraft

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml/token"
)

var (
	ErrNoMoreRecords         = errors.New("no more records")
	ErrUnknownField          = errors.New("unknown field")
	ErrUnknownType           = errors.New("unknown type")
	ErrUnknownCaster         = errors.New("unknown caster")
	ErrCircularReference     = errors.New("circular reference")
	ErrDuplicateRegistration = errors.New("duplicate registration")
)

// SpecError is returned for any invalid spec or configuration, at parse or resolution time.
type SpecError struct {
	Message string
	err     error
}

func NewSpecError(msg string) error {
	return &SpecError{Message: msg}
}

// NewSpecErrorf creates a SpecError using fmt.Errorf formatting, so "%w" wraps other errors.
func NewSpecErrorf(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	return &SpecError{
		Message: err.Error(),
		err:     err,
	}
}

func (e *SpecError) Error() string {
	return e.Message
}

func (e *SpecError) Unwrap() error {
	return e.err
}

type TokenPosition = token.Position

// ParseError is returned when a YAML spec document has an invalid structure.
type ParseError struct {
	ErrorMessage string
	Path         string
	Position     *TokenPosition
}

func NewParseError(msg string, path string, position *TokenPosition) ParseError {
	return ParseError{
		ErrorMessage: msg,
		Path:         path,
		Position:     position,
	}
}

func (e ParseError) Error() string {
	if e.Position != nil {
		return fmt.Sprintf("%s (line %d, column %d): %s", e.Path, e.Position.Line, e.Position.Column, e.ErrorMessage)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.ErrorMessage)
}
