// Package emit renders an asm.Program as GNU-assembler-syntax text, the
// final stage of the pipeline. Each instruction is translated to its
// textual form case by case, and the emitter owns the function's
// prologue/epilogue framing: every function body needs its stack frame
// set up and torn down around the instruction stream, not just the
// instructions themselves.
package emit

import (
	"fmt"
	"strings"

	"ccx.dev/ccx/pkg/asm"
)

// Program renders the full .s file text for program.
func Program(program asm.Program) string {
	fn := program.Fn

	var body strings.Builder
	for _, instr := range fn.Body {
		body.WriteString(renderInstruction(instr))
	}

	var out strings.Builder
	fmt.Fprintf(&out, "\t.globl %s\n", fn.Name)
	fmt.Fprintf(&out, "%s:\n", fn.Name)
	out.WriteString("\tpushq %rbp\n")
	out.WriteString("\tmovq %rsp, %rbp\n")
	out.WriteString(body.String())
	out.WriteString("\t.section .note.GNU-stack,\"\",@progbits\n")
	return out.String()
}

func renderInstruction(instr asm.Instruction) string {
	switch i := instr.(type) {
	case asm.Mov:
		return fmt.Sprintf("\tmovl %s, %s\n", renderOperand(i.Src), renderOperand(i.Dst))

	case asm.Unary:
		return fmt.Sprintf("\t%s %s\n", renderUnaryOp(i.Op), renderOperand(i.Dst))

	case asm.AllocateStack:
		return fmt.Sprintf("\tsubq $%d, %%rsp\n", i.Bytes)

	case asm.Ret:
		return "\tmovq %rbp, %rsp\n\tpopq %rbp\n\tret\n"

	default:
		panic(fmt.Sprintf("emit: unknown Instruction %T", instr))
	}
}

func renderUnaryOp(op asm.UnaryOp) string {
	if op == asm.Not {
		return "notl"
	}
	return "negl"
}

func renderOperand(op asm.Operand) string {
	switch o := op.(type) {
	case asm.Imm:
		return fmt.Sprintf("$%s", o.Digits)

	case asm.Reg:
		if o.Register == asm.AX {
			return "%eax"
		}
		return "%r10d"

	case asm.Stack:
		return fmt.Sprintf("%d(%%rbp)", o.Offset)

	case asm.Pseudo:
		panic(fmt.Sprintf("emit: pseudo-register %q reached the emitter", o.Name))

	default:
		panic(fmt.Sprintf("emit: unknown Operand %T", op))
	}
}
