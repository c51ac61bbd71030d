// SPDX-License-Identifier: Apache-2.0

// Package repl implements a line-oriented REPL over the compiler's front
// half: each snippet is lexed, parsed and lowered to KIR, with the KIR text
// printed back at the prompt.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	serr "sysyc/internal/errors"
	"sysyc/internal/kir"
	"sysyc/internal/parser"
)

const prompt = "sysyc> "

// Start reads snippets from in, one per line, until EOF. A blank line is
// skipped; anything else is compiled through ParseSource and kir.Builder and
// printed as KIR text, or reported as a diagnostic on failure.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		unit, parseErrs, scanErrs := parser.ParseSource("<repl>", line)
		if len(scanErrs) > 0 || len(parseErrs) > 0 {
			for _, e := range scanErrs {
				color.Red("lex error: %d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
			}
			for _, e := range parseErrs {
				color.Red("parse error: %d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
			}
			continue
		}

		builder := kir.NewBuilder()
		prog, errs := builder.Build(unit)
		if len(errs) > 0 {
			reporter := serr.NewReporter("<repl>", line)
			for _, e := range errs {
				fmt.Fprint(out, reporter.Format(e))
			}
			continue
		}

		fmt.Fprint(out, kir.Print(prog))
	}
}
