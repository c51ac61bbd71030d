// SPDX-License-Identifier: Apache-2.0

// Command sysyc-repl is an interactive front-end to the compiler's lexer,
// parser and KIR builder, for inspecting how a snippet lowers without
// writing it to a file.
package main

import (
	"os"

	"sysyc/repl"
)

func main() {
	repl.Start(os.Stdin, os.Stdout)
}
