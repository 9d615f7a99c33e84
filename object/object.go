// Package object defines the runtime values produced by evaluating Ram code
// and the variable environment they live in.
package object

import (
	"strconv"
	"strings"

	"github.com/ramlang/ram/ast"
)

// Type describes the type of an object as a string.
type Type string

const (
	NUMBER   Type = "NUMBER"
	TEXT     Type = "TEXT"
	BOOL     Type = "BOOL"
	FUNCTION Type = "FUNCTION"
	EMPTY    Type = "EMPTY"
)

// Object is the interface all Ram runtime values implement.
type Object interface {
	// Type returns the type of this object.
	Type() Type

	// Inspect returns a string representation of the object for display.
	Inspect() string
}

// Number is a numeric value. All Ram arithmetic runs on float64, including
// variables declared "integer".
type Number struct {
	Value float64
}

func (n *Number) Type() Type { return NUMBER }

func (n *Number) Inspect() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// Text is a text value.
type Text struct {
	Value string
}

func (t *Text) Type() Type { return TEXT }

func (t *Text) Inspect() string { return t.Value }

// Bool is a boolean value.
type Bool struct {
	Value bool
}

func (b *Bool) Type() Type { return BOOL }

func (b *Bool) Inspect() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Function is a user-defined function value bound in the environment by a
// "new function" block.
type Function struct {
	Name        string
	Params      []string
	Body        []ast.Statement
	ReturnValue ast.Expression
}

func (f *Function) Type() Type { return FUNCTION }

func (f *Function) Inspect() string {
	return "function " + f.Name + "(" + strings.Join(f.Params, ", ") + ")"
}

// Empty is the absent value, produced by calls to functions that do not
// send anything back.
type Empty struct{}

func (e *Empty) Type() Type { return EMPTY }

func (e *Empty) Inspect() string { return "" }
