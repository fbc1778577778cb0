package tac

import (
	"fmt"

	"ccx.dev/ccx/pkg/ast"
)

// Generator walks an ast.Program and linearizes it into a tac.Program.
// State is two pieces, scoped to a single function: the accumulated
// instruction list and a monotonic counter used to mint temporaries named
// "<fnName>.<n>".
type Generator struct {
	fnName  string
	counter int
	body    []Instruction
}

// NewGenerator builds a Generator with empty per-function state.
func NewGenerator() *Generator {
	return &Generator{}
}

// Convert lowers an entire ast.Program to its tac.Program counterpart.
func Convert(program ast.Program) Program {
	gen := NewGenerator()
	return Program{Fn: gen.convertFunction(program.Fn)}
}

func (g *Generator) convertFunction(fn ast.Function) Function {
	g.fnName = fn.Name
	g.counter = 0
	g.body = nil

	g.convertStatement(fn.Body)

	return Function{Name: fn.Name, Body: g.body}
}

func (g *Generator) convertStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case ast.Return:
		val := g.convertExp(s.Exp)
		g.body = append(g.body, Return{Val: val})
	default:
		panic(fmt.Sprintf("tac: unknown Statement %T", stmt))
	}
}

// convertExp returns the Val an expression evaluates to, emitting a Unary
// instruction (and minting a fresh temporary) for every nested operator
// along the way. The recursion order is exactly the post-order
// linearization the TAC invariant requires.
func (g *Generator) convertExp(exp ast.Exp) Val {
	switch e := exp.(type) {
	case ast.Constant:
		return Constant{Digits: e.Digits}

	case ast.Unary:
		src := g.convertExp(e.Inner)
		dst := Var{Name: g.newTemp()}
		g.body = append(g.body, Unary{Op: convertUnaryOp(e.Op), Src: src, Dst: dst})
		return dst

	default:
		panic(fmt.Sprintf("tac: unknown Exp %T", exp))
	}
}

func convertUnaryOp(op ast.UnaryOp) UnaryOp {
	if op == ast.OpComplement {
		return OpComplement
	}
	return OpNegate
}

func (g *Generator) newTemp() string {
	name := fmt.Sprintf("%s.%d", g.fnName, g.counter)
	g.counter++
	return name
}
