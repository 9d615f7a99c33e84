// Package token defines the keywords, operators, and token types used when
// lexing Ram source code.
package token

// Type describes the type of a token as a string.
type Type string

// Token represents one token lexed from an expression substring. Tokens do
// not carry positions; line context is attached by the parser, which knows
// which source line owns the expression.
type Token struct {
	Type    Type
	Literal string
}

// Token types
const (
	IDENT  Type = "IDENT"
	NUMBER Type = "NUMBER"
	STRING Type = "STRING"

	TRUE  Type = "TRUE"
	FALSE Type = "FALSE"

	// Operators
	PLUS     Type = "+"
	MINUS    Type = "-"
	ASTERISK Type = "*"
	SLASH    Type = "/"
	NOT      Type = "NOT"
	OR       Type = "OR"
	AND      Type = "AND"
	IS       Type = "IS"

	// Brackets and separators
	LPAREN Type = "("
	RPAREN Type = ")"
	COMMA  Type = ","

	// Statement keywords
	SET     Type = "SET"
	RESET   Type = "RESET"
	SEND    Type = "SEND"
	DISPLAY Type = "DISPLAY"
	CALL    Type = "CALL"

	// Block keywords
	LOOP Type = "LOOP"
	NEW  Type = "NEW"
	IF   Type = "IF"
	ELSE Type = "ELSE"

	// Header keywords
	WITH     Type = "WITH"
	FROM     Type = "FROM"
	TO       Type = "TO"
	FUNCTION Type = "FUNCTION"
	TAKES    Type = "TAKES"
	BACK     Type = "BACK"

	// Variable type keywords
	INTEGER Type = "INTEGER"
	TEXT    Type = "TEXT"
)

// Reserved keywords
var keywords = map[string]Type{
	"and":      AND,
	"back":     BACK,
	"call":     CALL,
	"display":  DISPLAY,
	"else":     ELSE,
	"false":    FALSE,
	"from":     FROM,
	"function": FUNCTION,
	"if":       IF,
	"integer":  INTEGER,
	"is":       IS,
	"loop":     LOOP,
	"new":      NEW,
	"not":      NOT,
	"or":       OR,
	"reset":    RESET,
	"send":     SEND,
	"set":      SET,
	"takes":    TAKES,
	"text":     TEXT,
	"to":       TO,
	"true":     TRUE,
	"with":     WITH,
}

// binaryOperators is the closed set of infix operator token types.
var binaryOperators = map[Type]bool{
	PLUS:     true,
	MINUS:    true,
	ASTERISK: true,
	SLASH:    true,
	OR:       true,
	AND:      true,
	IS:       true,
}

// varTypes is the closed set of declarable variable type keywords.
var varTypes = map[Type]bool{
	INTEGER: true,
	TEXT:    true,
}

// LookupWord returns the keyword type for a word, or IDENT if the word is
// not a reserved keyword.
func LookupWord(word string) Type {
	if tok, ok := keywords[word]; ok {
		return tok
	}
	return IDENT
}

// IsBinaryOperator reports whether t is an infix operator. The only prefix
// operator in the language is NOT.
func IsBinaryOperator(t Type) bool {
	return binaryOperators[t]
}

// IsVarType reports whether t names a declarable variable type.
func IsVarType(t Type) bool {
	return varTypes[t]
}
