// Package evaluator executes a parsed Ram program against an environment.
//
// Evaluation is tree-walking and synchronous: statements run in document
// order, loops iterate inclusively from their start to their stop value,
// and a "send back" inside a function unwinds to the enclosing call.
package evaluator

import (
	"fmt"
	"io"
	"os"

	"github.com/ramlang/ram/ast"
	"github.com/ramlang/ram/errz"
	"github.com/ramlang/ram/object"
)

// Option is a configuration function for an Evaluator.
type Option func(*Evaluator)

// WithOutput directs display statement output to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(e *Evaluator) {
		e.out = w
	}
}

// Evaluator walks statement trees and evaluates them.
type Evaluator struct {
	out io.Writer

	// line tracks the current statement's source line for error context.
	line int
	text string
}

// New returns an Evaluator with the given options applied.
func New(options ...Option) *Evaluator {
	e := &Evaluator{out: os.Stdout}
	for _, opt := range options {
		opt(e)
	}
	return e
}

// Eval executes every statement of the program in order against env. Any
// failure is terminal and is reported as a structured error carrying the
// statement that raised it.
func (e *Evaluator) Eval(program *ast.Program, env *object.Environment) error {
	_, err := e.evalStatements(program.Statements, env)
	if err != nil {
		return errz.NewGeneral(err)
	}
	return nil
}

// evalStatements runs a statement sequence. A non-nil object reports a
// return signal unwinding toward the enclosing function call.
func (e *Evaluator) evalStatements(stmts []ast.Statement, env *object.Environment) (object.Object, error) {
	for _, stmt := range stmts {
		ret, err := e.evalStatement(stmt, env)
		if err != nil {
			return nil, err
		}
		if ret != nil {
			return ret, nil
		}
	}
	return nil, nil
}

func (e *Evaluator) evalStatement(stmt ast.Statement, env *object.Environment) (object.Object, error) {
	e.line = stmt.LineNumber()
	e.text = stmt.String()
	switch stmt := stmt.(type) {
	case *ast.Display:
		return nil, e.evalDisplay(stmt, env)
	case *ast.Assign:
		return nil, e.evalAssign(stmt, env)
	case *ast.ExprStatement:
		_, err := e.evalExpression(stmt.Value, env)
		return nil, err
	case *ast.Return:
		value, err := e.evalExpression(stmt.Value, env)
		if err != nil {
			return nil, err
		}
		return value, nil
	case *ast.Loop:
		return e.evalLoop(stmt, env)
	case *ast.Function:
		env.Set(stmt.Name, &object.Function{
			Name:        stmt.Name,
			Params:      stmt.Params,
			Body:        stmt.Body,
			ReturnValue: stmt.ReturnValue,
		})
		return nil, nil
	case *ast.If:
		return e.evalIf(stmt, env)
	default:
		return nil, e.errorf("Statement cannot be evaluated.")
	}
}

func (e *Evaluator) evalDisplay(stmt *ast.Display, env *object.Environment) error {
	value, err := e.evalExpression(stmt.Value, env)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, value.Inspect())
	return nil
}

func (e *Evaluator) evalAssign(stmt *ast.Assign, env *object.Environment) error {
	value, err := e.evalExpression(stmt.Value, env)
	if err != nil {
		return err
	}
	switch stmt.VarType {
	case "integer":
		if value.Type() != object.NUMBER {
			return e.errorf("Cannot assign %s value to integer variable '%s'.",
				value.Type(), stmt.Name)
		}
	case "text":
		if value.Type() != object.TEXT {
			return e.errorf("Cannot assign %s value to text variable '%s'.",
				value.Type(), stmt.Name)
		}
	}
	if stmt.Reset {
		if !env.Assign(stmt.Name, value) {
			return e.withLine(errz.NewName(stmt.Name))
		}
		return nil
	}
	env.Set(stmt.Name, value)
	return nil
}

func (e *Evaluator) evalLoop(stmt *ast.Loop, env *object.Environment) (object.Object, error) {
	start, err := e.evalNumber(stmt.Start, env, "Loop bounds must be numbers.")
	if err != nil {
		return nil, err
	}
	stop, err := e.evalNumber(stmt.Stop, env, "Loop bounds must be numbers.")
	if err != nil {
		return nil, err
	}
	// Bounds are inclusive: "from 0 to 4" runs five times.
	for v := start; v <= stop; v++ {
		env.Set(stmt.Var, &object.Number{Value: v})
		ret, err := e.evalStatements(stmt.Body, env)
		if err != nil {
			return nil, err
		}
		if ret != nil {
			return ret, nil
		}
	}
	return nil, nil
}

func (e *Evaluator) evalIf(stmt *ast.If, env *object.Environment) (object.Object, error) {
	for _, branch := range stmt.Branches {
		cond, err := e.evalExpression(branch.Cond, env)
		if err != nil {
			return nil, err
		}
		b, ok := cond.(*object.Bool)
		if !ok {
			return nil, e.errorf("Condition must be true or false.")
		}
		if b.Value {
			return e.evalStatements(branch.Body, env)
		}
	}
	return e.evalStatements(stmt.Else, env)
}

func (e *Evaluator) evalNumber(expr ast.Expression, env *object.Environment, detail string) (float64, error) {
	value, err := e.evalExpression(expr, env)
	if err != nil {
		return 0, err
	}
	n, ok := value.(*object.Number)
	if !ok {
		return 0, e.errorf("%s", detail)
	}
	return n.Value, nil
}

// errorf builds a general evaluation error carrying the current statement.
func (e *Evaluator) errorf(format string, args ...interface{}) error {
	return e.withLine(errz.NewGeneral(fmt.Errorf(format, args...)))
}

// withLine attaches the current statement's line context to err unless the
// error already carries one.
func (e *Evaluator) withLine(err error) error {
	return errz.WithLine(err, e.text, e.line)
}
