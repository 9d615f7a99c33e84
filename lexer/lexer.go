// Package lexer splits Ram expression substrings into flat token sequences.
//
// The lexer operates on one expression at a time, not on whole files: Ram
// statements are line-oriented and the parser hands the lexer the expression
// portion of each line. Quoted text spans are kept as single atomic tokens
// and are never split on internal whitespace.
package lexer

import (
	"strings"
	"unicode"

	"github.com/ramlang/ram/errz"
	"github.com/ramlang/ram/token"
)

// Tokenize splits an expression substring into an ordered token sequence.
// An empty or blank input produces an empty sequence, which callers must
// treat as "no expression" rather than an error.
func Tokenize(input string) ([]token.Token, error) {
	l := &lexer{input: []rune(input)}
	var toks []token.Token
	for {
		tok, ok, err := l.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

type lexer struct {
	input []rune
	pos   int
}

// next returns the next token, or ok=false at end of input.
func (l *lexer) next() (token.Token, bool, error) {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return token.Token{}, false, nil
	}
	ch := l.input[l.pos]
	switch {
	case ch == '"':
		tok, err := l.readString()
		return tok, true, err
	case ch == '(':
		l.pos++
		return token.Token{Type: token.LPAREN, Literal: "("}, true, nil
	case ch == ')':
		l.pos++
		return token.Token{Type: token.RPAREN, Literal: ")"}, true, nil
	case ch == ',':
		l.pos++
		return token.Token{Type: token.COMMA, Literal: ","}, true, nil
	case ch == '+':
		l.pos++
		return token.Token{Type: token.PLUS, Literal: "+"}, true, nil
	case ch == '-':
		l.pos++
		return token.Token{Type: token.MINUS, Literal: "-"}, true, nil
	case ch == '*':
		l.pos++
		return token.Token{Type: token.ASTERISK, Literal: "*"}, true, nil
	case ch == '/':
		l.pos++
		return token.Token{Type: token.SLASH, Literal: "/"}, true, nil
	case unicode.IsDigit(ch):
		tok, err := l.readNumber()
		return tok, true, err
	case isIdentStart(ch):
		word := l.readWord()
		return token.Token{Type: token.LookupWord(word), Literal: word}, true, nil
	default:
		return token.Token{}, false, errz.NewOperator(string(ch))
	}
}

func (l *lexer) skipWhitespace() {
	for l.pos < len(l.input) && unicode.IsSpace(l.input[l.pos]) {
		l.pos++
	}
}

// readString consumes a quoted span, returning its contents without the
// surrounding quotes.
func (l *lexer) readString() (token.Token, error) {
	start := l.pos
	l.pos++ // opening quote
	var sb strings.Builder
	for l.pos < len(l.input) {
		if l.input[l.pos] == '"' {
			l.pos++
			return token.Token{Type: token.STRING, Literal: sb.String()}, nil
		}
		sb.WriteRune(l.input[l.pos])
		l.pos++
	}
	return token.Token{}, errz.NewSyntax(
		"Text literal " + string(l.input[start:]) + " is missing a closing quote.")
}

func (l *lexer) readNumber() (token.Token, error) {
	start := l.pos
	sawDot := false
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == '.' && !sawDot {
			sawDot = true
			l.pos++
			continue
		}
		if !unicode.IsDigit(ch) {
			break
		}
		l.pos++
	}
	lit := string(l.input[start:l.pos])
	// A letter glued to a number is never valid: "10x" is not two tokens.
	if l.pos < len(l.input) && isIdentStart(l.input[l.pos]) {
		word := l.readWord()
		return token.Token{}, errz.NewSyntax("Number '" + lit + word + "' invalid.")
	}
	return token.Token{Type: token.NUMBER, Literal: lit}, nil
}

func (l *lexer) readWord() string {
	start := l.pos
	for l.pos < len(l.input) && isIdentPart(l.input[l.pos]) {
		l.pos++
	}
	return string(l.input[start:l.pos])
}

func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isIdentPart(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}
