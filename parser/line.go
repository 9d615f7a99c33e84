package parser

import (
	"strings"

	"github.com/ramlang/ram/ast"
	"github.com/ramlang/ram/errz"
	"github.com/ramlang/ram/lexer"
	"github.com/ramlang/ram/token"
)

// sourceLine is a classified statement line: its leading keyword plus the
// tokenized remainder of the line.
type sourceLine struct {
	raw     Line
	keyword token.Type
	rest    []token.Token
}

// classify determines the statement keyword of a line and tokenizes
// everything after it. The keyword must be one of the five statement
// keywords; block openers never reach this point because the nester routes
// any line containing a brace elsewhere.
func classify(ln Line) (*sourceLine, error) {
	words := strings.Fields(ln.Text)
	if len(words) < 2 {
		// Only a keyword was detected and nothing else.
		return nil, errz.WithLine(
			errz.NewSyntax("Statement cannot be parsed."), ln.Text, ln.Number)
	}
	keyword := token.LookupWord(words[0])
	switch keyword {
	case token.SET, token.RESET, token.SEND, token.DISPLAY, token.CALL:
	default:
		return nil, errz.WithLine(errz.NewKeyword(words[0]), ln.Text, ln.Number)
	}
	remainder := strings.TrimSpace(ln.Text[len(words[0]):])
	rest, err := lexer.Tokenize(remainder)
	if err != nil {
		return nil, errz.WithLine(err, ln.Text, ln.Number)
	}
	return &sourceLine{raw: ln, keyword: keyword, rest: rest}, nil
}

// parseStatement turns a classified line into its statement node.
func parseStatement(sl *sourceLine) (ast.Statement, error) {
	var stmt ast.Statement
	var err error
	switch sl.keyword {
	case token.SET:
		stmt, err = parseAssign(sl, false)
	case token.RESET:
		stmt, err = parseAssign(sl, true)
	case token.DISPLAY:
		stmt, err = parseDisplay(sl)
	case token.SEND:
		stmt, err = parseReturn(sl)
	case token.CALL:
		stmt, err = parseCallStatement(sl)
	default:
		err = errz.NewKeyword(string(sl.keyword))
	}
	if err != nil {
		return nil, errz.WithLine(err, sl.raw.Text, sl.raw.Number)
	}
	return stmt, nil
}

// parseAssign parses "set <type> <name> to <expr>" and its "reset" form.
func parseAssign(sl *sourceLine, reset bool) (ast.Statement, error) {
	toks := sl.rest
	if len(toks) < 4 {
		return nil, errz.NewSyntax("Assignment cannot be parsed.")
	}
	if !token.IsVarType(toks[0].Type) {
		return nil, errz.NewKeyword(toks[0].Literal)
	}
	if toks[1].Type != token.IDENT {
		return nil, errz.NewKeyword(toks[1].Literal)
	}
	if toks[2].Type != token.TO {
		return nil, errz.NewKeyword(toks[2].Literal)
	}
	value, err := parseExpression(toks[3:])
	if err != nil {
		return nil, err
	}
	return &ast.Assign{
		Line:    sl.raw.Number,
		Name:    toks[1].Literal,
		VarType: toks[0].Literal,
		Value:   value,
		Reset:   reset,
	}, nil
}

func parseDisplay(sl *sourceLine) (ast.Statement, error) {
	value, err := parseExpression(sl.rest)
	if err != nil {
		return nil, err
	}
	return &ast.Display{Line: sl.raw.Number, Value: value}, nil
}

// parseReturn parses "send back <expr>".
func parseReturn(sl *sourceLine) (ast.Statement, error) {
	toks := sl.rest
	if len(toks) == 0 || toks[0].Type != token.BACK {
		word := "send"
		if len(toks) > 0 {
			word = toks[0].Literal
		}
		return nil, errz.NewKeyword(word)
	}
	value, err := parseExpression(toks[1:])
	if err != nil {
		return nil, err
	}
	return &ast.Return{Line: sl.raw.Number, Value: value}, nil
}

func parseCallStatement(sl *sourceLine) (ast.Statement, error) {
	value, err := parseExpression(sl.rest)
	if err != nil {
		return nil, err
	}
	return &ast.ExprStatement{Line: sl.raw.Number, Value: value}, nil
}
