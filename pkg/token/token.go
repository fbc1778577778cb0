// Package token contains the tokens that the lexer produces and that the
// parser consumes, plus the single error type both stages raise.
package token

import "fmt"

// Kind identifies which of the three token variants a Token carries.
type Kind int

const (
	// Reserved kinds: fixed keywords and punctuation.
	IntType Kind = iota
	Void
	Return
	OpenParen
	CloseParen
	OpenBrace
	CloseBrace
	Semicolon
	Negate
	Decrement
	Complement

	// Identifier and Integer carry a payload in Literal; every other
	// Kind above is a Reserved kind and carries its own printed form.
	Identifier
	Integer
)

// spelling holds the printed form of every Reserved kind, used both for
// emitting tokens and for comparing against expected spellings in the parser.
var spelling = map[Kind]string{
	IntType:    "int",
	Void:       "void",
	Return:     "return",
	OpenParen:  "(",
	CloseParen: ")",
	OpenBrace:  "{",
	CloseBrace: "}",
	Semicolon:  ";",
	Negate:     "-",
	Decrement:  "--",
	Complement: "~",
}

// keywords maps an identifier-shaped buffer to the Reserved kind it names,
// for the three keywords recognized by the lexer.
var keywords = map[string]Kind{
	"int":    IntType,
	"void":   Void,
	"return": Return,
}

// LookupKeyword reports whether ident names one of the reserved keywords,
// returning its Kind if so.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// Token is a tagged value: Kind says which variant it is, and Literal
// carries the payload for Identifier and Integer (and, for debugging, the
// printed spelling of a Reserved token).
type Token struct {
	Kind    Kind
	Literal string
}

// Reserved builds a Token for one of the fixed keyword/punctuation kinds.
func Reserved(k Kind) Token {
	return Token{Kind: k, Literal: spelling[k]}
}

// String renders the token the way the parser's error messages quote it:
// by its printed form (keyword spelling, punctuation, or literal payload).
func (t Token) String() string {
	switch t.Kind {
	case Identifier, Integer:
		return t.Literal
	default:
		return spelling[t.Kind]
	}
}

// SyntaxError is raised by the lexer and the parser; its message is part
// of the external contract (asserted verbatim by callers and tests).
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string { return e.Message }

// NewSyntaxError builds a SyntaxError with a message formatted like fmt.Errorf.
func NewSyntaxError(format string, args ...any) error {
	return &SyntaxError{Message: fmt.Sprintf(format, args...)}
}
