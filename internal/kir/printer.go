package kir

import (
	"fmt"
	"strings"
)

// Print renders a Program into its line-oriented textual form.
func Print(p *Program) string {
	var b strings.Builder
	for _, fn := range p.Funcs {
		printFunc(&b, fn)
		b.WriteByte('\n')
	}
	for _, g := range p.Globals {
		printGlobal(&b, g)
	}
	return b.String()
}

func printFunc(b *strings.Builder, fn *Function) {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = fmt.Sprintf("%s: %s", p.Name, p.Type)
	}
	fmt.Fprintf(b, "fun @%s(%s): %s {\n", fn.Name, strings.Join(params, ", "), fn.ReturnType)
	for _, bb := range fn.Blocks {
		fmt.Fprintf(b, "%s:\n", bb.Label)
		for _, inst := range bb.Instructions {
			fmt.Fprintf(b, "  %s\n", inst)
		}
		if bb.Term != nil {
			fmt.Fprintf(b, "  %s\n", bb.Term)
		}
	}
	b.WriteString("}\n")
}

func printGlobal(b *strings.Builder, g *Global) {
	if g.IsZeroInit {
		fmt.Fprintf(b, "global @%s = alloc i32, zeroinit\n", g.Name)
		return
	}
	fmt.Fprintf(b, "global @%s = alloc i32, %d\n", g.Name, g.Init)
}
