package evaluator

import (
	"github.com/ramlang/ram/ast"
	"github.com/ramlang/ram/errz"
	"github.com/ramlang/ram/object"
)

func (e *Evaluator) evalExpression(expr ast.Expression, env *object.Environment) (object.Object, error) {
	switch expr := expr.(type) {
	case *ast.Number:
		return &object.Number{Value: expr.Value}, nil
	case *ast.Text:
		return &object.Text{Value: expr.Value}, nil
	case *ast.Bool:
		return &object.Bool{Value: expr.Value}, nil
	case *ast.Empty:
		return &object.Empty{}, nil
	case *ast.Ident:
		value, ok := env.Get(expr.Name)
		if !ok {
			return nil, e.withLine(errz.NewName(expr.Name))
		}
		return value, nil
	case *ast.Prefix:
		return e.evalPrefix(expr, env)
	case *ast.Infix:
		return e.evalInfix(expr, env)
	case *ast.Call:
		return e.evalCall(expr, env)
	default:
		return nil, e.errorf("Expression cannot be evaluated.")
	}
}

func (e *Evaluator) evalPrefix(expr *ast.Prefix, env *object.Environment) (object.Object, error) {
	operand, err := e.evalExpression(expr.X, env)
	if err != nil {
		return nil, err
	}
	b, ok := operand.(*object.Bool)
	if !ok {
		return nil, e.errorf("Operator 'not' requires a true or false value.")
	}
	return &object.Bool{Value: !b.Value}, nil
}

func (e *Evaluator) evalInfix(expr *ast.Infix, env *object.Environment) (object.Object, error) {
	left, err := e.evalExpression(expr.X, env)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpression(expr.Y, env)
	if err != nil {
		return nil, err
	}
	switch expr.Op {
	case "is":
		return &object.Bool{Value: equals(left, right)}, nil
	case "and", "or":
		return e.evalLogical(expr.Op, left, right)
	default:
		return e.evalArithmetic(expr.Op, left, right)
	}
}

// equals compares two values: values of different types are never equal.
func equals(left, right object.Object) bool {
	switch left := left.(type) {
	case *object.Number:
		r, ok := right.(*object.Number)
		return ok && left.Value == r.Value
	case *object.Text:
		r, ok := right.(*object.Text)
		return ok && left.Value == r.Value
	case *object.Bool:
		r, ok := right.(*object.Bool)
		return ok && left.Value == r.Value
	case *object.Empty:
		_, ok := right.(*object.Empty)
		return ok
	default:
		return false
	}
}

func (e *Evaluator) evalLogical(op string, left, right object.Object) (object.Object, error) {
	l, lok := left.(*object.Bool)
	r, rok := right.(*object.Bool)
	if !lok || !rok {
		return nil, e.errorf("Operator '%s' requires true or false values.", op)
	}
	if op == "and" {
		return &object.Bool{Value: l.Value && r.Value}, nil
	}
	return &object.Bool{Value: l.Value || r.Value}, nil
}

func (e *Evaluator) evalArithmetic(op string, left, right object.Object) (object.Object, error) {
	if l, ok := left.(*object.Text); ok {
		if r, ok := right.(*object.Text); ok && op == "+" {
			return &object.Text{Value: l.Value + r.Value}, nil
		}
	}
	l, lok := left.(*object.Number)
	r, rok := right.(*object.Number)
	if !lok || !rok {
		return nil, e.errorf("Cannot apply '%s' to %s and %s.",
			op, left.Type(), right.Type())
	}
	switch op {
	case "+":
		return &object.Number{Value: l.Value + r.Value}, nil
	case "-":
		return &object.Number{Value: l.Value - r.Value}, nil
	case "*":
		return &object.Number{Value: l.Value * r.Value}, nil
	case "/":
		if r.Value == 0 {
			return nil, e.errorf("Division by zero.")
		}
		return &object.Number{Value: l.Value / r.Value}, nil
	default:
		return nil, e.withLine(errz.NewOperator(op))
	}
}

func (e *Evaluator) evalCall(expr *ast.Call, env *object.Environment) (object.Object, error) {
	value, ok := env.Get(expr.Name)
	if !ok {
		return nil, e.withLine(errz.NewName(expr.Name))
	}
	fn, ok := value.(*object.Function)
	if !ok {
		return nil, e.errorf("'%s' is not a function.", expr.Name)
	}
	if len(expr.Args) != len(fn.Params) {
		return nil, e.errorf("Function '%s' takes %d arguments but got %d.",
			fn.Name, len(fn.Params), len(expr.Args))
	}
	args := make([]object.Object, 0, len(expr.Args))
	for _, arg := range expr.Args {
		value, err := e.evalExpression(arg, env)
		if err != nil {
			return nil, err
		}
		args = append(args, value)
	}
	inner := object.NewEnclosedEnvironment(env)
	for i, param := range fn.Params {
		inner.Set(param, args[i])
	}
	ret, err := e.evalStatements(fn.Body, inner)
	if err != nil {
		return nil, err
	}
	if ret != nil {
		return ret, nil
	}
	return e.evalExpression(fn.ReturnValue, inner)
}
