// SPDX-License-Identifier: Apache-2.0

// Command sysyc is the compiler driver: lexer+parser → KIR builder →
// RISC-V backend, wired into a single main().
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	serr "sysyc/internal/errors"
	"sysyc/internal/kir"
	"sysyc/internal/parser"
	"sysyc/internal/riscv"
)

const (
	exitOK       = 0
	exitParse    = 1
	exitSemantic = 2
)

func main() {
	koopa := flag.Bool("koopa", false, "emit KIR text instead of assembly")
	riscvMode := flag.Bool("riscv", false, "emit RISC-V assembly (default)")
	perf := flag.Bool("perf", false, "same as -riscv, retained for test-harness compatibility")
	output := flag.String("o", "", "output file (defaults to stdout)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: sysyc [-koopa|-riscv|-perf] -o <output> <input.sy>")
		os.Exit(exitParse)
	}
	path := flag.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		color.Red("sysyc: failed to read %s: %s", path, err)
		os.Exit(exitParse)
	}

	unit, parseErrs, scanErrs := parser.ParseSource(path, string(source))
	reporter := serr.NewReporter(path, string(source))

	if len(scanErrs) > 0 || len(parseErrs) > 0 {
		for _, e := range scanErrs {
			color.Red("lex error: %d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
		}
		for _, e := range parseErrs {
			color.Red("parse error: %d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
		}
		os.Exit(exitParse)
	}

	builder := kir.NewBuilder()
	prog, compileErrs := builder.Build(unit)
	if len(compileErrs) > 0 {
		for _, e := range compileErrs {
			fmt.Fprint(os.Stderr, reporter.Format(e))
		}
		os.Exit(exitSemantic)
	}

	var rendered string
	switch {
	case *koopa:
		rendered = kir.Print(prog)
	case *riscvMode, *perf, true:
		rendered = riscv.Gen(prog)
	}

	if *output == "" {
		fmt.Print(rendered)
		os.Exit(exitOK)
	}
	if err := os.WriteFile(*output, []byte(rendered), 0o644); err != nil {
		color.Red("sysyc: failed to write %s: %s", *output, err)
		os.Exit(exitSemantic)
	}
	os.Exit(exitOK)
}
