package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ramlang/ram/errz"
	"github.com/ramlang/ram/token"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []token.Token
	}{
		{
			input: "10 + 5",
			want: []token.Token{
				{Type: token.NUMBER, Literal: "10"},
				{Type: token.PLUS, Literal: "+"},
				{Type: token.NUMBER, Literal: "5"},
			},
		},
		{
			input: "10 * x + 5",
			want: []token.Token{
				{Type: token.NUMBER, Literal: "10"},
				{Type: token.ASTERISK, Literal: "*"},
				{Type: token.IDENT, Literal: "x"},
				{Type: token.PLUS, Literal: "+"},
				{Type: token.NUMBER, Literal: "5"},
			},
		},
		{
			input: "true or false",
			want: []token.Token{
				{Type: token.TRUE, Literal: "true"},
				{Type: token.OR, Literal: "or"},
				{Type: token.FALSE, Literal: "false"},
			},
		},
		{
			input: "(var1) is (0)",
			want: []token.Token{
				{Type: token.LPAREN, Literal: "("},
				{Type: token.IDENT, Literal: "var1"},
				{Type: token.RPAREN, Literal: ")"},
				{Type: token.IS, Literal: "is"},
				{Type: token.LPAREN, Literal: "("},
				{Type: token.NUMBER, Literal: "0"},
				{Type: token.RPAREN, Literal: ")"},
			},
		},
		{
			input: "add(a, b)",
			want: []token.Token{
				{Type: token.IDENT, Literal: "add"},
				{Type: token.LPAREN, Literal: "("},
				{Type: token.IDENT, Literal: "a"},
				{Type: token.COMMA, Literal: ","},
				{Type: token.IDENT, Literal: "b"},
				{Type: token.RPAREN, Literal: ")"},
			},
		},
		{
			input: "not done and ready",
			want: []token.Token{
				{Type: token.NOT, Literal: "not"},
				{Type: token.IDENT, Literal: "done"},
				{Type: token.AND, Literal: "and"},
				{Type: token.IDENT, Literal: "ready"},
			},
		},
		{
			input: "3.14 / 2",
			want: []token.Token{
				{Type: token.NUMBER, Literal: "3.14"},
				{Type: token.SLASH, Literal: "/"},
				{Type: token.NUMBER, Literal: "2"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Tokenize(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTokenizeQuotedText(t *testing.T) {
	// Quoted spans are atomic: internal whitespace is never split on.
	toks, err := Tokenize(`"Hello World!" + name`)
	require.NoError(t, err)
	require.Equal(t, []token.Token{
		{Type: token.STRING, Literal: "Hello World!"},
		{Type: token.PLUS, Literal: "+"},
		{Type: token.IDENT, Literal: "name"},
	}, toks)
}

func TestTokenizeEmpty(t *testing.T) {
	// An empty input is an empty sequence, not an error.
	for _, input := range []string{"", "   ", "\t"} {
		toks, err := Tokenize(input)
		require.NoError(t, err)
		require.Empty(t, toks)
	}
}

func TestTokenizeUnterminatedText(t *testing.T) {
	_, err := Tokenize(`"oops`)
	require.Error(t, err)
	require.True(t, errz.IsKind(err, errz.Syntax))
}

func TestTokenizeIllegalCharacter(t *testing.T) {
	_, err := Tokenize("a @ b")
	require.Error(t, err)
	require.True(t, errz.IsKind(err, errz.Operator))
	require.Contains(t, err.Error(), "'@'")
}

func TestTokenizeGluedNumber(t *testing.T) {
	_, err := Tokenize("10x")
	require.Error(t, err)
	require.True(t, errz.IsKind(err, errz.Syntax))
}

func TestTokenizeKeywordLookup(t *testing.T) {
	toks, err := Tokenize("integer var1 to 10")
	require.NoError(t, err)
	require.Equal(t, []token.Token{
		{Type: token.INTEGER, Literal: "integer"},
		{Type: token.IDENT, Literal: "var1"},
		{Type: token.TO, Literal: "to"},
		{Type: token.NUMBER, Literal: "10"},
	}, toks)
}
