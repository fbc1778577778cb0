package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/teris-io/cli"

	"ccx.dev/ccx/internal/driver"
	"ccx.dev/ccx/pkg/token"
)

var Description = strings.ReplaceAll(`
The ccxc compiler translates programs written in a small C subset into GNU-assembler
(x86-64) text. It runs in stages: lexing, parsing, TAC generation and assembly codegen,
stopping early and dumping the intermediate result whenever a stage short of the last
is requested.
`, "\n", " ")

var Ccxc = cli.New(Description).
	WithArg(cli.NewArg("source", "The C source file to be compiled")).
	WithArg(cli.NewArg("stage", "Pipeline stage to stop after: 0=Lex, 1=Parse, 2=Tacky, 3=Codegen")).
	WithAction(Handler)

func Handler(args []string, options map[string]string) int {
	if len(args) < 2 {
		fmt.Printf("ERROR: Not enough arguments provided, use --help\n")
		return -1
	}

	n, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Printf("ERROR: Invalid stage %q: must be an integer\n", args[1])
		return -1
	}

	stage, err := driver.ParseStage(n)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return -1
	}

	out, err := driver.Compile(stage, args[0])
	if err != nil {
		var syntaxErr *token.SyntaxError
		if errors.As(err, &syntaxErr) {
			fmt.Printf("ERROR: Unable to complete compilation: %s\n", err)
		} else {
			fmt.Printf("ERROR: %s\n", err)
		}
		return -1
	}

	if stage == driver.Codegen {
		fmt.Printf("Wrote %s\n", out)
	} else {
		fmt.Print(out)
	}

	return 0
}

func main() { os.Exit(Ccxc.Run(os.Args, os.Stdout)) }
