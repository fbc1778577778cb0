// Package tac defines the three-address intermediate representation that
// sits between the AST and assembly generation: every sub-expression gets
// linearized into an instruction whose result is named.
package tac

import "fmt"

// Val is one of Constant or Var.
type Val interface {
	fmt.Stringer
	isVal()
}

// Constant carries a literal digit string through unchanged.
type Constant struct {
	Digits string
}

func (Constant) isVal() {}
func (c Constant) String() string { return fmt.Sprintf("Constant(%s)", c.Digits) }

// Var names a temporary minted during lowering.
type Var struct {
	Name string
}

func (Var) isVal() {}
func (v Var) String() string { return fmt.Sprintf("Var(%s)", v.Name) }

// UnaryOp is one of Complement or Negate, mapped 1:1 from ast.UnaryOp.
type UnaryOp int

const (
	OpComplement UnaryOp = iota
	OpNegate
)

func (op UnaryOp) String() string {
	if op == OpComplement {
		return "Complement"
	}
	return "Negate"
}

// Instruction is one of Return or Unary.
type Instruction interface {
	fmt.Stringer
	isInstruction()
}

// Return terminates the function; at most one appears, always last.
type Return struct {
	Val Val
}

func (Return) isInstruction() {}
func (r Return) String() string { return fmt.Sprintf("Return(%s)", r.Val) }

// Unary computes Op(Src) into Dst, a freshly minted Var.
type Unary struct {
	Op  UnaryOp
	Src Val
	Dst Val // always a Var
}

func (Unary) isInstruction() {}
func (u Unary) String() string {
	return fmt.Sprintf("Unary(%s, %s, %s)", u.Op, u.Src, u.Dst)
}

// Function holds a name and its linear instruction list.
type Function struct {
	Name string
	Body []Instruction
}

func (f Function) String() string {
	s := fmt.Sprintf("Function(\n  name=%q,\n  body=[\n", f.Name)
	for _, instr := range f.Body {
		s += fmt.Sprintf("    %s,\n", instr)
	}
	return s + "  ]\n)"
}

// Program wraps the single Function this subset allows.
type Program struct {
	Fn Function
}

func (p Program) String() string {
	return fmt.Sprintf("Program(\n  %s\n)", p.Fn)
}
