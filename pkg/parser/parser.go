// Package parser implements a strict recursive-descent parser over a flat
// token sequence, producing an ast.Program. The first failure aborts the
// whole parse; there is no error recovery.
package parser

import (
	"ccx.dev/ccx/pkg/ast"
	"ccx.dev/ccx/pkg/token"
)

// Parser walks tokens with a single cursor index.
type Parser struct {
	tokens  []token.Token
	current int
}

// New builds a Parser over the given token sequence.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse runs the "program" production and checks the cursor lands exactly
// at end of stream.
func (p *Parser) Parse() (ast.Program, error) {
	fn, err := p.parseFunction()
	if err != nil {
		return ast.Program{}, err
	}

	if p.current != len(p.tokens) {
		return ast.Program{}, token.NewSyntaxError("Unexpected token found: %s", p.tokens[p.current])
	}

	return ast.Program{Fn: fn}, nil
}

// expect consumes one token and fails if it isn't there or doesn't match.
func (p *Parser) expect(want token.Kind) error {
	if p.current >= len(p.tokens) {
		return token.NewSyntaxError("Missing %q", token.Reserved(want))
	}

	actual := p.tokens[p.current]
	p.current++
	if actual.String() != token.Reserved(want).String() {
		return token.NewSyntaxError("Expected %q but got %q", token.Reserved(want), actual)
	}
	return nil
}

// parseFunction parses: "int" IDENT "(" "void" ")" "{" statement "}"
func (p *Parser) parseFunction() (ast.Function, error) {
	if err := p.expect(token.IntType); err != nil {
		return ast.Function{}, err
	}

	if p.current >= len(p.tokens) {
		return ast.Function{}, token.NewSyntaxError("Missing function name")
	}
	name := p.tokens[p.current]
	p.current++
	if name.Kind != token.Identifier {
		return ast.Function{}, token.NewSyntaxError("Invalid function name: %s", name)
	}

	if err := p.expect(token.OpenParen); err != nil {
		return ast.Function{}, err
	}
	if err := p.expect(token.Void); err != nil {
		return ast.Function{}, err
	}
	if err := p.expect(token.CloseParen); err != nil {
		return ast.Function{}, err
	}
	if err := p.expect(token.OpenBrace); err != nil {
		return ast.Function{}, err
	}

	stmt, err := p.parseStatement()
	if err != nil {
		return ast.Function{}, err
	}

	if err := p.expect(token.CloseBrace); err != nil {
		return ast.Function{}, err
	}

	return ast.Function{Name: name.Literal, Body: stmt}, nil
}

// parseStatement parses: "return" exp ";"
func (p *Parser) parseStatement() (ast.Statement, error) {
	if err := p.expect(token.Return); err != nil {
		return nil, err
	}

	exp, err := p.parseExp()
	if err != nil {
		return nil, err
	}

	if err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	return ast.Return{Exp: exp}, nil
}

// parseExp parses: INT | "~" exp | "-" exp | "(" exp ")"
func (p *Parser) parseExp() (ast.Exp, error) {
	if p.current >= len(p.tokens) {
		return nil, token.NewSyntaxError("Invalid expression")
	}

	tok := p.tokens[p.current]
	p.current++

	switch tok.Kind {
	case token.Integer:
		return ast.Constant{Digits: tok.Literal}, nil

	case token.Complement:
		inner, err := p.parseExp()
		if err != nil {
			return nil, err
		}
		return ast.Unary{Op: ast.OpComplement, Inner: inner}, nil

	case token.Negate:
		inner, err := p.parseExp()
		if err != nil {
			return nil, err
		}
		return ast.Unary{Op: ast.OpNegate, Inner: inner}, nil

	case token.OpenParen:
		inner, err := p.parseExp()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.CloseParen); err != nil {
			return nil, err
		}
		return inner, nil

	default:
		// Identifier, Decrement, and any Reserved kind not handled above
		// are all errors at expression position.
		return nil, token.NewSyntaxError("Invalid expression: %s", tok)
	}
}
