// Package errz defines the structured error taxonomy for Ram. Every error
// carries the offending source line and its 1-based number when known, and
// renders as:
//
//	Line <n>: '<text>'
//	     <detail>
package errz

import (
	"errors"
	"fmt"
)

// Kind represents the category of an error.
type Kind int

const (
	// Syntax indicates a generic malformed construct.
	Syntax Kind = iota
	// Keyword indicates an unrecognized or misplaced keyword.
	Keyword
	// Operator indicates an unrecognized or misplaced operator token.
	Operator
	// Name indicates a reference to an undefined variable or function.
	Name
	// Block indicates malformed block construction, such as an unterminated
	// or never-opened brace level.
	Block
	// File indicates that a source file could not be read.
	File
	// General is the catch-all wrapper for any unanticipated failure.
	General
)

// String returns the string representation of the error kind.
func (k Kind) String() string {
	switch k {
	case Syntax:
		return "syntax error"
	case Keyword:
		return "keyword error"
	case Operator:
		return "operator error"
	case Name:
		return "name error"
	case Block:
		return "block error"
	case File:
		return "file error"
	case General:
		return "error"
	default:
		return "error"
	}
}

// Error is a structured Ram error. Line is 0 until a source line has been
// attached; parsing attaches the innermost line that detected the problem
// and outer layers leave existing context untouched.
type Error struct {
	Kind     Kind
	Line     int
	LineText string
	Detail   string
	Cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	detail := e.Detail
	if detail == "" && e.Cause != nil {
		detail = e.Cause.Error()
	}
	if e.Line == 0 {
		if detail == "" {
			return e.Kind.String()
		}
		return fmt.Sprintf("%s: %s", e.Kind.String(), detail)
	}
	if detail == "" {
		return fmt.Sprintf("Line %d: '%s'", e.Line, e.LineText)
	}
	return fmt.Sprintf("Line %d: '%s' \n     %s", e.Line, e.LineText, detail)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// HasLine reports whether the error already carries source line context.
func (e *Error) HasLine() bool {
	return e.Line != 0
}

// NewSyntax returns a Syntax error with the given detail message.
func NewSyntax(detail string) *Error {
	return &Error{Kind: Syntax, Detail: detail}
}

// NewKeyword returns a Keyword error naming the offending word.
func NewKeyword(word string) *Error {
	return &Error{Kind: Keyword, Detail: fmt.Sprintf("Keyword '%s' invalid.", word)}
}

// NewOperator returns an Operator error naming the offending token.
func NewOperator(tok string) *Error {
	return &Error{Kind: Operator, Detail: fmt.Sprintf("Operator '%s' invalid.", tok)}
}

// NewName returns a Name error for an undefined variable or function.
func NewName(name string) *Error {
	return &Error{Kind: Name, Detail: fmt.Sprintf("Variable '%s' not defined.", name)}
}

// NewBlock returns a Block error with the given detail message.
func NewBlock(detail string) *Error {
	return &Error{Kind: Block, Detail: detail}
}

// NewFile returns a File error for an unreadable source path.
func NewFile(path string, cause error) *Error {
	return &Error{
		Kind:   File,
		Detail: fmt.Sprintf("File '%s' could not be read.", path),
		Cause:  cause,
	}
}

// NewGeneral wraps an arbitrary error as a General error. Errors already in
// the taxonomy are returned unchanged.
func NewGeneral(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: General, Cause: err}
}

// WithLine attaches source line context to err if it does not already carry
// one, so that the innermost line number and text are preserved. Non-taxonomy
// errors are wrapped as General first.
func WithLine(err error, text string, number int) error {
	if err == nil {
		return nil
	}
	e := NewGeneral(err)
	if e.HasLine() {
		return e
	}
	e.Line = number
	e.LineText = text
	return e
}

// IsKind reports whether err is a taxonomy error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
