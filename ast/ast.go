// Package ast defines the abstract syntax tree representation of Ram code.
package ast

import (
	"bytes"
	"strings"
)

// Node represents a portion of the syntax tree.
type Node interface {
	// String returns a human friendly representation of the Node. This should
	// be similar to the original source code, but not necessarily identical.
	String() string
}

// Statement represents a statement node. Statements cause side effects but
// do not evaluate to a value.
type Statement interface {
	Node
	stmtNode()

	// LineNumber returns the 1-based source line the statement started on.
	LineNumber() int
}

// Expression represents an expression node. Expressions evaluate to a value
// and may be embedded within other expressions.
type Expression interface {
	Node
	exprNode()
}

// Program is the ordered sequence of top-level statements produced by a
// complete parse, handed to the evaluator.
type Program struct {
	Statements []Statement
}

func (p *Program) String() string {
	var out bytes.Buffer
	for i, s := range p.Statements {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(s.String())
	}
	return out.String()
}

// indent prefixes every line of s with four spaces, used when rendering
// block statement bodies.
func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n")
}

func writeBody(out *bytes.Buffer, body []Statement) {
	for _, s := range body {
		out.WriteString("\n")
		out.WriteString(indent(s.String()))
	}
}
