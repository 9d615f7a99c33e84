package ast

import (
	"bytes"
	"strings"
)

// Display is a statement that prints the value of an expression.
type Display struct {
	Line  int
	Value Expression
}

func (s *Display) stmtNode() {}

func (s *Display) LineNumber() int { return s.Line }

func (s *Display) String() string { return "display " + s.Value.String() }

// Assign is a statement that binds a variable to the value of an expression.
// Reset distinguishes "reset" (rebinding an existing variable) from "set".
type Assign struct {
	Line    int
	Name    string
	VarType string // declared type keyword: "integer" or "text"
	Value   Expression
	Reset   bool
}

func (s *Assign) stmtNode() {}

func (s *Assign) LineNumber() int { return s.Line }

func (s *Assign) String() string {
	var out bytes.Buffer
	if s.Reset {
		out.WriteString("reset ")
	} else {
		out.WriteString("set ")
	}
	out.WriteString(s.VarType + " ")
	out.WriteString(s.Name)
	out.WriteString(" to ")
	out.WriteString(s.Value.String())
	return out.String()
}

// ExprStatement is a statement that evaluates an expression for its side
// effects, discarding the result. Produced by "call" lines.
type ExprStatement struct {
	Line  int
	Value Expression
}

func (s *ExprStatement) stmtNode() {}

func (s *ExprStatement) LineNumber() int { return s.Line }

func (s *ExprStatement) String() string { return "call " + s.Value.String() }

// Return is a statement that ends the enclosing function, yielding the value
// of an expression. Produced by "send back" lines.
type Return struct {
	Line  int
	Value Expression
}

func (s *Return) stmtNode() {}

func (s *Return) LineNumber() int { return s.Line }

func (s *Return) String() string { return "send back " + s.Value.String() }

// Loop is a statement that runs its body once for every value of the loop
// variable from Start to Stop, inclusive.
type Loop struct {
	Line  int
	Var   string
	Start Expression
	Stop  Expression
	Body  []Statement
}

func (s *Loop) stmtNode() {}

func (s *Loop) LineNumber() int { return s.Line }

func (s *Loop) String() string {
	var out bytes.Buffer
	out.WriteString("loop with ")
	out.WriteString(s.Var)
	out.WriteString(" from ")
	out.WriteString(s.Start.String())
	out.WriteString(" to ")
	out.WriteString(s.Stop.String())
	out.WriteString(" {")
	writeBody(&out, s.Body)
	out.WriteString("\n}")
	return out.String()
}

// Function is a statement that defines a named function. ReturnValue is the
// Empty expression when the body has no trailing "send back" line.
type Function struct {
	Line        int
	Name        string
	Params      []string
	Body        []Statement
	ReturnValue Expression
}

func (s *Function) stmtNode() {}

func (s *Function) LineNumber() int { return s.Line }

func (s *Function) String() string {
	var out bytes.Buffer
	out.WriteString("new function ")
	out.WriteString(s.Name)
	out.WriteString(" takes (")
	out.WriteString(strings.Join(s.Params, ", "))
	out.WriteString(") {")
	writeBody(&out, s.Body)
	if _, empty := s.ReturnValue.(*Empty); !empty {
		out.WriteString("\n")
		out.WriteString(indent("send back " + s.ReturnValue.String()))
	}
	out.WriteString("\n}")
	return out.String()
}

// Branch is one condition/body pair of an If statement.
type Branch struct {
	Cond Expression
	Body []Statement
}

// If is a conditional statement. An "else if" chain is represented as a
// right-nested If: the continuation appears as the sole statement of Else.
type If struct {
	Line     int
	Branches []Branch
	Else     []Statement
}

func (s *If) stmtNode() {}

func (s *If) LineNumber() int { return s.Line }

func (s *If) String() string {
	var out bytes.Buffer
	for i, br := range s.Branches {
		if i > 0 {
			out.WriteString(" else ")
		}
		out.WriteString("if ")
		out.WriteString(br.Cond.String())
		out.WriteString(" {")
		writeBody(&out, br.Body)
		out.WriteString("\n}")
	}
	if len(s.Else) > 0 {
		// A chain continuation renders as "} else if ...", a flat else
		// branch as "} else { ... }".
		if cont, ok := chainContinuation(s.Else); ok {
			out.WriteString(" else ")
			out.WriteString(cont.String())
		} else {
			out.WriteString(" else {")
			writeBody(&out, s.Else)
			out.WriteString("\n}")
		}
	}
	return out.String()
}

// chainContinuation reports whether stmts is a nested else-if continuation.
func chainContinuation(stmts []Statement) (*If, bool) {
	if len(stmts) != 1 {
		return nil, false
	}
	next, ok := stmts[0].(*If)
	return next, ok
}
