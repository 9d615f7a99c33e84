package ast

import (
	"bytes"
	"strings"
)

// Ident is an expression node that refers to a variable by name.
type Ident struct {
	Name string
}

func (x *Ident) exprNode() {}

func (x *Ident) String() string { return x.Name }

// Number is an expression node that holds a numeric literal. Ram numbers
// evaluate as floating point values.
type Number struct {
	Literal string // the literal text (e.g. "42", "3.14")
	Value   float64
}

func (x *Number) exprNode() {}

func (x *Number) String() string { return x.Literal }

// Text is an expression node that holds a quoted text literal.
type Text struct {
	Value string
}

func (x *Text) exprNode() {}

func (x *Text) String() string { return `"` + x.Value + `"` }

// Bool is an expression node that holds a boolean literal.
type Bool struct {
	Value bool
}

func (x *Bool) exprNode() {}

func (x *Bool) String() string {
	if x.Value {
		return "true"
	}
	return "false"
}

// Prefix is an operator expression where the operator precedes the operand.
// The only prefix operator in Ram is "not".
type Prefix struct {
	Op string
	X  Expression
}

func (x *Prefix) exprNode() {}

func (x *Prefix) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.Op)
	out.WriteString(" ")
	out.WriteString(x.X.String())
	out.WriteString(")")
	return out.String()
}

// Infix is an operator expression where the operator is between the operands.
// Operators bind strictly left to right; only parentheses group tighter.
type Infix struct {
	X  Expression // left operand
	Op string     // operator: "+", "-", "*", "/", "or", "and", "is"
	Y  Expression // right operand
}

func (x *Infix) exprNode() {}

func (x *Infix) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.X.String())
	out.WriteString(" " + x.Op + " ")
	out.WriteString(x.Y.String())
	out.WriteString(")")
	return out.String()
}

// Call is an expression node that invokes a function by name with a list of
// argument expressions.
type Call struct {
	Name string
	Args []Expression
}

func (x *Call) exprNode() {}

func (x *Call) String() string {
	args := make([]string, 0, len(x.Args))
	for _, a := range x.Args {
		args = append(args, a.String())
	}
	return x.Name + "(" + strings.Join(args, ", ") + ")"
}

// Empty is the sentinel expression for an absent value, such as the return
// expression of a function without a "send back" line.
type Empty struct{}

func (x *Empty) exprNode() {}

func (x *Empty) String() string { return "" }
