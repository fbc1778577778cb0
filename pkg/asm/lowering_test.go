package asm_test

import (
	"testing"

	"ccx.dev/ccx/pkg/asm"
	"ccx.dev/ccx/pkg/tac"
)

func TestLower(t *testing.T) {
	t.Run("return of a constant", func(t *testing.T) {
		program := tac.Program{Fn: tac.Function{
			Name: "main",
			Body: []tac.Instruction{tac.Return{Val: tac.Constant{Digits: "42"}}},
		}}

		got := asm.NewLowerer(program).Lower()
		want := []asm.Instruction{
			asm.Mov{Src: asm.Imm{Digits: "42"}, Dst: asm.Reg{Register: asm.AX}},
			asm.Ret{},
		}
		assertInstructions(t, got.Fn.Body, want)
	})

	t.Run("unary expands to a Mov into a pseudo then a Unary in place", func(t *testing.T) {
		program := tac.Program{Fn: tac.Function{
			Name: "main",
			Body: []tac.Instruction{
				tac.Unary{Op: tac.OpNegate, Src: tac.Constant{Digits: "2"}, Dst: tac.Var{Name: "main.0"}},
				tac.Return{Val: tac.Var{Name: "main.0"}},
			},
		}}

		got := asm.NewLowerer(program).Lower()
		want := []asm.Instruction{
			asm.Mov{Src: asm.Imm{Digits: "2"}, Dst: asm.Pseudo{Name: "main.0"}},
			asm.Unary{Op: asm.Neg, Dst: asm.Pseudo{Name: "main.0"}},
			asm.Mov{Src: asm.Pseudo{Name: "main.0"}, Dst: asm.Reg{Register: asm.AX}},
			asm.Ret{},
		}
		assertInstructions(t, got.Fn.Body, want)
	})
}

func assertInstructions(t *testing.T, got, want []asm.Instruction) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d instructions, got %d: %v", len(want), len(got), got)
	}
	for i := range got {
		if got[i].String() != want[i].String() {
			t.Fatalf("instruction %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
