package parser

import (
	"strconv"

	"github.com/ramlang/ram/ast"
	"github.com/ramlang/ram/errz"
	"github.com/ramlang/ram/token"
)

// parseExpression parses a complete token sequence into an expression tree.
// Operators bind strictly left to right in a single pass; there is no
// arithmetic precedence beyond grouping parentheses. An empty sequence is
// an error here, so callers with optional expressions must check first.
func parseExpression(toks []token.Token) (ast.Expression, error) {
	p := &exprParser{toks: toks}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.toks) {
		return nil, errz.NewOperator(p.toks[p.pos].Literal)
	}
	return expr, nil
}

type exprParser struct {
	toks []token.Token
	pos  int
}

// parseExpr parses operand (operator operand)* with left folding, stopping
// at the end of the sequence or at any token that is not a binary operator
// (the caller decides whether the leftover token is legal).
func (p *exprParser) parseExpr() (ast.Expression, error) {
	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	for p.pos < len(p.toks) {
		op := p.toks[p.pos]
		if !token.IsBinaryOperator(op.Type) {
			break
		}
		p.pos++
		right, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		left = &ast.Infix{X: left, Op: op.Literal, Y: right}
	}
	return left, nil
}

func (p *exprParser) parseOperand() (ast.Expression, error) {
	if p.pos >= len(p.toks) {
		return nil, errz.NewSyntax("Expression is incomplete.")
	}
	t := p.toks[p.pos]
	switch t.Type {
	case token.NUMBER:
		p.pos++
		value, err := strconv.ParseFloat(t.Literal, 64)
		if err != nil {
			return nil, errz.NewSyntax("Number '" + t.Literal + "' invalid.")
		}
		return &ast.Number{Literal: t.Literal, Value: value}, nil
	case token.STRING:
		p.pos++
		return &ast.Text{Value: t.Literal}, nil
	case token.TRUE:
		p.pos++
		return &ast.Bool{Value: true}, nil
	case token.FALSE:
		p.pos++
		return &ast.Bool{Value: false}, nil
	case token.NOT:
		p.pos++
		x, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		return &ast.Prefix{Op: "not", X: x}, nil
	case token.IDENT:
		p.pos++
		// A name followed immediately by a parenthesized group is a call.
		if p.pos < len(p.toks) && p.toks[p.pos].Type == token.LPAREN {
			return p.parseCallArgs(t.Literal)
		}
		return &ast.Ident{Name: t.Literal}, nil
	case token.LPAREN:
		p.pos++
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectRparen(); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		// An operator or stray keyword where an operand was expected.
		return nil, errz.NewOperator(t.Literal)
	}
}

// parseCallArgs parses the comma-separated argument group of a call
// expression, with the cursor on the opening parenthesis.
func (p *exprParser) parseCallArgs(name string) (ast.Expression, error) {
	p.pos++ // consume '('
	call := &ast.Call{Name: name}
	if p.pos < len(p.toks) && p.toks[p.pos].Type == token.RPAREN {
		p.pos++
		return call, nil
	}
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		if p.pos >= len(p.toks) {
			return nil, errz.NewSyntax("Parentheses are unbalanced.")
		}
		switch p.toks[p.pos].Type {
		case token.COMMA:
			p.pos++
		case token.RPAREN:
			p.pos++
			return call, nil
		default:
			return nil, errz.NewOperator(p.toks[p.pos].Literal)
		}
	}
}

func (p *exprParser) expectRparen() error {
	if p.pos >= len(p.toks) {
		return errz.NewSyntax("Parentheses are unbalanced.")
	}
	if p.toks[p.pos].Type != token.RPAREN {
		return errz.NewOperator(p.toks[p.pos].Literal)
	}
	p.pos++
	return nil
}
