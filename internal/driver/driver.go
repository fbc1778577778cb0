// Package driver wires the five pipeline stages together behind a
// stage-selector, and owns the two I/O boundaries (reading the source,
// writing the .s file) that every other package is free of.
package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ccx.dev/ccx/pkg/asm"
	"ccx.dev/ccx/pkg/emit"
	"ccx.dev/ccx/pkg/lexer"
	"ccx.dev/ccx/pkg/parser"
	"ccx.dev/ccx/pkg/tac"
	"ccx.dev/ccx/pkg/token"
)

// Stage selects which pipeline phase to stop after.
type Stage int

const (
	Lex Stage = iota
	Parse
	Tacky
	Codegen
)

// ParseStage validates a CLI-provided stage number.
func ParseStage(n int) (Stage, error) {
	if n < int(Lex) || n > int(Codegen) {
		return 0, fmt.Errorf("unknown stage %d: must be 0 (Lex), 1 (Parse), 2 (Tacky), or 3 (Codegen)", n)
	}
	return Stage(n), nil
}

// Compile runs the pipeline against the source file at path up through
// stage. For stages 0-2 it returns a human-readable dump of that stage's
// output; for stage 3 it writes the assembly file next to the source and
// returns the path it wrote.
func Compile(stage Stage, path string) (string, error) {
	source, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer source.Close()

	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return "", err
	}
	if stage == Lex {
		return dumpTokens(tokens), nil
	}

	program, err := parser.New(tokens).Parse()
	if err != nil {
		return "", err
	}
	if stage == Parse {
		return program.String(), nil
	}

	tacProgram := tac.Convert(program)
	if stage == Tacky {
		return tacProgram.String(), nil
	}

	asmProgram := asm.NewLowerer(tacProgram).Lower()
	asmProgram = asm.ReplacePseudoRegisters(asmProgram)

	outPath := asmPath(path)
	if err := os.WriteFile(outPath, []byte(emit.Program(asmProgram)), 0o644); err != nil {
		return "", err
	}
	return outPath, nil
}

func dumpTokens(tokens []token.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		fmt.Fprintf(&b, "Token: %s\n", t)
	}
	return b.String()
}

// asmPath replaces the source file's extension with ".s".
func asmPath(path string) string {
	if ext := filepath.Ext(path); ext != "" {
		return strings.TrimSuffix(path, ext) + ".s"
	}
	return path + ".s"
}
