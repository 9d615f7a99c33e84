// Package parser turns Ram source text into the abstract syntax tree (AST)
// consumed by the evaluator.
//
// Parsing runs in three phases. Each physical line is classified by its
// leading keyword and its expression portion is tokenized. The flat line
// stream is then nested into brace-delimited blocks. Finally the nested
// structure is walked top-down, producing typed statement nodes, with
// "else if" chains reconstructed as right-nested If statements.
package parser

import (
	"os"
	"strings"

	"github.com/ramlang/ram/ast"
	"github.com/ramlang/ram/errz"
)

// Line is one trimmed physical source line paired with its 1-based line
// number as it appeared in the original input.
type Line struct {
	Text   string
	Number int
}

// SplitSource splits raw source text into Lines, dropping blank lines and
// comment lines (lines whose first non-space character is '%'). Line numbers
// refer to the original input, so dropped lines leave gaps.
func SplitSource(input string) []Line {
	var lines []Line
	for i, raw := range strings.Split(input, "\n") {
		text := strings.TrimSpace(raw)
		if text == "" || strings.HasPrefix(text, "%") {
			continue
		}
		lines = append(lines, Line{Text: text, Number: i + 1})
	}
	return lines
}

// Parse parses raw Ram source text into a Program. Any failure is reported
// as a single structured error carrying the innermost offending line; there
// is no partial-success mode.
func Parse(input string) (*ast.Program, error) {
	return ParseLines(SplitSource(input))
}

// ParseFile reads and parses the Ram source file at path.
func ParseFile(path string) (*ast.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errz.NewFile(path, err)
	}
	return Parse(string(data))
}

// ParseLines parses an already-materialized ordered list of source lines.
func ParseLines(lines []Line) (*ast.Program, error) {
	program, err := parseLines(lines)
	if err != nil {
		// Taxonomy errors pass through unchanged; anything unanticipated is
		// wrapped as a general error so callers never see a bare failure.
		return nil, errz.NewGeneral(err)
	}
	return program, nil
}

func parseLines(lines []Line) (*ast.Program, error) {
	n := &nester{lines: lines}
	children, _, closer, err := n.nest(0)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		return nil, errz.WithLine(
			errz.NewBlock("Block was never opened."), closer.Text, closer.Number)
	}
	statements := make([]ast.Statement, 0, len(children))
	for _, child := range children {
		stmt, err := parseNode(child)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return &ast.Program{Statements: statements}, nil
}

// parseNode parses one nested tree node into a statement.
func parseNode(n node) (ast.Statement, error) {
	switch n := n.(type) {
	case *lineNode:
		return parseStatement(n.line)
	case *blockNode:
		return parseBlock(n)
	case *markerNode:
		// A marker opening with "}" is a stray chain continuation; anything
		// else is a block opened and closed on one line.
		detail := "Block was never opened."
		if !strings.HasPrefix(n.line.Text, "}") {
			detail = "Block body must span multiple lines."
		}
		return nil, errz.WithLine(errz.NewBlock(detail), n.line.Text, n.line.Number)
	default:
		return nil, errz.NewBlock("Block cannot be parsed.")
	}
}
