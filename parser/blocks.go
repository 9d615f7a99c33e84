package parser

import (
	"strings"

	"github.com/ramlang/ram/ast"
	"github.com/ramlang/ram/errz"
	"github.com/ramlang/ram/lexer"
	"github.com/ramlang/ram/token"
)

// parseBlock classifies a nested block by the first word of its header (the
// opener text before the '{') and parses it into the matching statement.
func parseBlock(b *blockNode) (ast.Statement, error) {
	stmt, err := parseBlockInner(b)
	if err != nil {
		return nil, errz.WithLine(err, b.opener.Text, b.opener.Number)
	}
	return stmt, nil
}

func parseBlockInner(b *blockNode) (ast.Statement, error) {
	brace := strings.Index(b.opener.Text, "{")
	header := strings.TrimSpace(b.opener.Text[:brace])
	toks, err := lexer.Tokenize(header)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, errz.NewBlock("Block header is missing.")
	}
	switch toks[0].Type {
	case token.LOOP:
		return parseLoopBlock(b, toks)
	case token.NEW:
		return parseFunctionBlock(b, toks)
	case token.IF:
		return parseIfBlock(b, toks)
	default:
		return nil, errz.NewKeyword(toks[0].Literal)
	}
}

// parseBody parses block body nodes in document order. Marker nodes are
// only legal inside conditional chains, which never route through here.
func parseBody(children []node) ([]ast.Statement, error) {
	body := make([]ast.Statement, 0, len(children))
	for _, child := range children {
		stmt, err := parseNode(child)
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	return body, nil
}

// parseLoopBlock parses "loop with <var> from <expr> to <expr> { ... }".
func parseLoopBlock(b *blockNode, toks []token.Token) (ast.Statement, error) {
	if len(toks) < 4 {
		return nil, errz.NewSyntax("Loop header cannot be parsed.")
	}
	if toks[1].Type != token.WITH {
		return nil, errz.NewKeyword(toks[1].Literal)
	}
	if toks[2].Type != token.IDENT {
		return nil, errz.NewKeyword(toks[2].Literal)
	}
	if toks[3].Type != token.FROM {
		return nil, errz.NewKeyword(toks[3].Literal)
	}
	startToks, stopToks, ok := splitOnTo(toks[4:])
	if !ok {
		return nil, errz.NewSyntax("Loop header cannot be parsed.")
	}
	start, err := parseExpression(startToks)
	if err != nil {
		return nil, err
	}
	stop, err := parseExpression(stopToks)
	if err != nil {
		return nil, err
	}
	body, err := parseBody(b.children)
	if err != nil {
		return nil, err
	}
	return &ast.Loop{
		Line:  b.opener.Number,
		Var:   toks[2].Literal,
		Start: start,
		Stop:  stop,
		Body:  body,
	}, nil
}

// splitOnTo splits a token sequence at the first "to" outside parentheses,
// so that loop bounds like "f(1, 2) to x" divide correctly.
func splitOnTo(toks []token.Token) ([]token.Token, []token.Token, bool) {
	depth := 0
	for i, t := range toks {
		switch t.Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
		case token.TO:
			if depth == 0 {
				return toks[:i], toks[i+1:], true
			}
		}
	}
	return nil, nil, false
}

// parseFunctionBlock parses "new function <name> takes (<params>) { ... }".
// A trailing "send back <expr>" line becomes the function's return
// expression and is removed from the body.
func parseFunctionBlock(b *blockNode, toks []token.Token) (ast.Statement, error) {
	if len(toks) < 6 {
		return nil, errz.NewSyntax("Function header cannot be parsed.")
	}
	if toks[1].Type != token.FUNCTION {
		return nil, errz.NewKeyword(toks[1].Literal)
	}
	if toks[2].Type != token.IDENT {
		return nil, errz.NewKeyword(toks[2].Literal)
	}
	if toks[3].Type != token.TAKES {
		return nil, errz.NewKeyword(toks[3].Literal)
	}
	params, err := parseParams(toks[4:])
	if err != nil {
		return nil, err
	}
	body, err := parseBody(b.children)
	if err != nil {
		return nil, err
	}
	var returnValue ast.Expression = &ast.Empty{}
	if len(body) > 0 {
		if ret, ok := body[len(body)-1].(*ast.Return); ok {
			returnValue = ret.Value
			body = body[:len(body)-1]
		}
	}
	return &ast.Function{
		Line:        b.opener.Number,
		Name:        toks[2].Literal,
		Params:      params,
		Body:        body,
		ReturnValue: returnValue,
	}, nil
}

// parseParams parses a parenthesized, comma-separated parameter name list
// occupying the remainder of a function header.
func parseParams(toks []token.Token) ([]string, error) {
	if len(toks) < 2 || toks[0].Type != token.LPAREN {
		return nil, errz.NewSyntax("Function header cannot be parsed.")
	}
	params := []string{}
	i := 1
	if toks[i].Type == token.RPAREN {
		i++
	} else {
		for {
			if i >= len(toks) || toks[i].Type != token.IDENT {
				return nil, errz.NewSyntax("Function header cannot be parsed.")
			}
			params = append(params, toks[i].Literal)
			i++
			if i >= len(toks) {
				return nil, errz.NewSyntax("Function header cannot be parsed.")
			}
			if toks[i].Type == token.COMMA {
				i++
				continue
			}
			if toks[i].Type == token.RPAREN {
				i++
				break
			}
			return nil, errz.NewSyntax("Function header cannot be parsed.")
		}
	}
	if i != len(toks) {
		return nil, errz.NewSyntax("Function header cannot be parsed.")
	}
	return params, nil
}

// parseIfBlock parses "if <expr> { ... }" along with any "else if"/"else"
// continuations recorded as sibling markers at this nesting level. A chain
// of else-if markers is reconstructed into right-nested If statements.
func parseIfBlock(b *blockNode, toks []token.Token) (ast.Statement, error) {
	if len(toks) < 2 {
		return nil, errz.NewSyntax("Condition is missing.")
	}
	// "is" is an ordinary infix operator, so a two-operand header such as
	// "(var1) is (0)" parses directly into an equality condition.
	cond, err := parseExpression(toks[1:])
	if err != nil {
		return nil, err
	}

	// The then-branch runs up to the first sibling marker.
	var marker *markerNode
	markerIndex := -1
	for i, child := range b.children {
		if m, ok := child.(*markerNode); ok {
			marker = m
			markerIndex = i
			break
		}
	}
	thenNodes := b.children
	if marker != nil {
		thenNodes = b.children[:markerIndex]
	}
	thenBody, err := parseBody(thenNodes)
	if err != nil {
		return nil, err
	}
	stmt := &ast.If{
		Line:     b.opener.Number,
		Branches: []ast.Branch{{Cond: cond, Body: thenBody}},
	}
	if marker == nil {
		return stmt, nil
	}

	words := strings.Fields(marker.line.Text)
	if !strings.HasPrefix(marker.line.Text, "}") {
		return nil, errz.WithLine(
			errz.NewBlock("Block body must span multiple lines."),
			marker.line.Text, marker.line.Number)
	}
	if len(words) < 2 || words[0] != "}" {
		return nil, errz.WithLine(
			errz.NewBlock("Block cannot be parsed."),
			marker.line.Text, marker.line.Number)
	}
	if words[1] != "else" {
		return nil, errz.WithLine(
			errz.NewKeyword(words[1]), marker.line.Text, marker.line.Number)
	}
	rest := b.children[markerIndex+1:]

	if len(words) >= 3 && words[2] == "if" {
		// Chain continuation: everything after "} else " re-parses as a
		// fresh if block sharing this level's closer.
		idx := strings.Index(marker.line.Text, "else")
		opener := Line{
			Text:   strings.TrimSpace(marker.line.Text[idx+len("else"):]),
			Number: marker.line.Number,
		}
		next, err := parseBlock(&blockNode{
			opener:   opener,
			children: rest,
			closer:   b.closer,
		})
		if err != nil {
			return nil, err
		}
		stmt.Else = []ast.Statement{next}
		return stmt, nil
	}

	// Plain else: the remaining siblings form the else body. A second
	// marker at this level would mean a branch after the final else.
	for _, child := range rest {
		if m, ok := child.(*markerNode); ok {
			return nil, errz.WithLine(
				errz.NewBlock("Branch follows the final else."),
				m.line.Text, m.line.Number)
		}
	}
	elseBody, err := parseBody(rest)
	if err != nil {
		return nil, err
	}
	stmt.Else = elseBody
	return stmt, nil
}
