package lexer_test

import (
	"strings"
	"testing"

	"ccx.dev/ccx/pkg/lexer"
	"ccx.dev/ccx/pkg/token"
)

func TestTokenize(t *testing.T) {
	test := func(source string, expected []token.Token) {
		tokens, err := lexer.Tokenize(strings.NewReader(source))
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if len(tokens) != len(expected) {
			t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
		}
		for i, tok := range tokens {
			if tok != expected[i] {
				t.Fatalf("token %d: expected %+v, got %+v", i, expected[i], tok)
			}
		}
	}

	t.Run("return 42", func(t *testing.T) {
		test("int main(void) { return 42; }", []token.Token{
			token.Reserved(token.IntType),
			{Kind: token.Identifier, Literal: "main"},
			token.Reserved(token.OpenParen),
			token.Reserved(token.Void),
			token.Reserved(token.CloseParen),
			token.Reserved(token.OpenBrace),
			token.Reserved(token.Return),
			{Kind: token.Integer, Literal: "42"},
			token.Reserved(token.Semicolon),
			token.Reserved(token.CloseBrace),
		})
	})

	t.Run("nested unary, hyphen state disambiguates -2 from --", func(t *testing.T) {
		test("~(-2)", []token.Token{
			token.Reserved(token.Complement),
			token.Reserved(token.OpenParen),
			token.Reserved(token.Negate),
			{Kind: token.Integer, Literal: "2"},
			token.Reserved(token.CloseParen),
		})
	})

	t.Run("double hyphen tokenizes as Decrement", func(t *testing.T) {
		test("--~0", []token.Token{
			token.Reserved(token.Decrement),
			token.Reserved(token.Complement),
			{Kind: token.Integer, Literal: "0"},
		})
	})

	t.Run("whitespace between tokens is skipped", func(t *testing.T) {
		test("  int\tmain (void)\n{return\n0;}", []token.Token{
			token.Reserved(token.IntType),
			{Kind: token.Identifier, Literal: "main"},
			token.Reserved(token.OpenParen),
			token.Reserved(token.Void),
			token.Reserved(token.CloseParen),
			token.Reserved(token.OpenBrace),
			token.Reserved(token.Return),
			{Kind: token.Integer, Literal: "0"},
			token.Reserved(token.Semicolon),
			token.Reserved(token.CloseBrace),
		})
	})
}

func TestTokenizeErrors(t *testing.T) {
	test := func(source string, wantMessage string) {
		_, err := lexer.Tokenize(strings.NewReader(source))
		if err == nil {
			t.Fatalf("expected an error, got none")
		}
		if err.Error() != wantMessage {
			t.Fatalf("expected message %q, got %q", wantMessage, err.Error())
		}
	}

	t.Run("identifier can't begin with a digit", func(t *testing.T) {
		test("2foo;", `Identifiers can't begin with a digit: 2foo`)
	})

	t.Run("unrecognized character", func(t *testing.T) {
		test("int main(void) { return 1 @ 2; }", "Unexpected character: @")
	})
}
