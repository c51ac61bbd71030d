// Package kirtext implements a reader that parses the KIR textual form that
// internal/kir.Print emits back into typed *kir.Program nodes, built on a
// participle stateful lexer and grammar.
package kirtext

import "github.com/alecthomas/participle/v2/lexer"

// Lexer tokenizes KIR text. Keywords ("fun", "alloc", "load", opcode names,
// …) are lexically indistinguishable from identifiers — the grammar
// disambiguates them via literal-string match against Ident tokens, not via
// separate keyword rules.
var Lexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Int", `-?[0-9]+`, nil},
		{"Punct", `[%@:,(){}=]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
