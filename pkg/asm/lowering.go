package asm

import (
	"fmt"

	"ccx.dev/ccx/pkg/tac"
)

// Lowerer takes a tac.Program and produces its symbolic asm.Program
// counterpart (pass 1 of the assembly generator: Pseudo operands still
// stand in for stack slots the next pass, ReplacePseudoRegisters, assigns).
type Lowerer struct{ program tac.Program }

// NewLowerer builds a Lowerer over the given TAC program.
func NewLowerer(p tac.Program) Lowerer {
	return Lowerer{program: p}
}

// Lower walks the TAC function body instruction by instruction, expanding
// each into its symbolic assembly expansion.
func (l Lowerer) Lower() Program {
	var body []Instruction
	for _, instr := range l.program.Fn.Body {
		body = append(body, lowerInstruction(instr)...)
	}
	return Program{Fn: FunctionDef{Name: l.program.Fn.Name, Body: body}}
}

func lowerInstruction(instr tac.Instruction) []Instruction {
	switch i := instr.(type) {
	case tac.Return:
		return []Instruction{
			Mov{Src: lowerOperand(i.Val), Dst: Reg{Register: AX}},
			Ret{},
		}

	case tac.Unary:
		dst := lowerOperand(i.Dst)
		return []Instruction{
			Mov{Src: lowerOperand(i.Src), Dst: dst},
			Unary{Op: lowerUnaryOp(i.Op), Dst: dst},
		}

	default:
		panic(fmt.Sprintf("asm: unknown Instruction %T", instr))
	}
}

func lowerOperand(v tac.Val) Operand {
	switch val := v.(type) {
	case tac.Constant:
		return Imm{Digits: val.Digits}
	case tac.Var:
		return Pseudo{Name: val.Name}
	default:
		panic(fmt.Sprintf("asm: unknown Operand %T", v))
	}
}

func lowerUnaryOp(op tac.UnaryOp) UnaryOp {
	if op == tac.OpComplement {
		return Not
	}
	return Neg
}
