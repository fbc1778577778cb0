package asm

import "fmt"

// ReplacePseudoRegisters is pass 2 of the assembly generator. It walks the
// lowered function body, assigning each distinct Pseudo name the next
// 4-byte stack slot in order of first sighting, rewriting every
// occurrence to Stack(offset), then prepends the AllocateStack prologue
// instruction the rewritten slots require.
func ReplacePseudoRegisters(program Program) Program {
	r := &replacer{offsets: map[string]int{}}

	body := make([]Instruction, 0, len(program.Fn.Body)+1)
	for _, instr := range program.Fn.Body {
		body = append(body, r.rewriteInstruction(instr))
	}

	if r.stackOffset != 0 {
		body = append([]Instruction{AllocateStack{Bytes: -r.stackOffset}}, body...)
	}

	return Program{Fn: FunctionDef{Name: program.Fn.Name, Body: body}}
}

// replacer holds the pseudo-name -> stack-offset map and the running
// offset counter, scoped to one function's rewrite pass.
type replacer struct {
	offsets     map[string]int
	stackOffset int
}

func (r *replacer) rewriteInstruction(instr Instruction) Instruction {
	switch i := instr.(type) {
	case Mov:
		return Mov{Src: r.rewriteOperand(i.Src), Dst: r.rewriteOperand(i.Dst)}
	case Unary:
		return Unary{Op: i.Op, Dst: r.rewriteOperand(i.Dst)}
	case AllocateStack, Ret:
		return instr
	default:
		panic(fmt.Sprintf("asm: unknown Instruction %T", instr))
	}
}

func (r *replacer) rewriteOperand(op Operand) Operand {
	switch o := op.(type) {
	case Pseudo:
		return Stack{Offset: r.slotFor(o.Name)}
	case Imm, Reg, Stack:
		return op
	default:
		panic(fmt.Sprintf("asm: unknown Operand %T", op))
	}
}

func (r *replacer) slotFor(name string) int {
	if offset, ok := r.offsets[name]; ok {
		return offset
	}
	r.stackOffset -= 4
	r.offsets[name] = r.stackOffset
	return r.stackOffset
}
