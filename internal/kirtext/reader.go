package kirtext

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	"sysyc/internal/kir"
)

// Parse reads KIR text and returns the equivalent typed Program.
// UseLookahead(5) is needed because InstDecl's Load/Call/Binary alternatives
// all share the "%Ident =" prefix and only diverge at the keyword that
// follows it.
func Parse(path, source string) (*kir.Program, error) {
	parser, err := participle.Build[File](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(5),
	)
	if err != nil {
		return nil, fmt.Errorf("kirtext: failed to build parser: %w", err)
	}

	file, err := parser.ParseString(path, source)
	if err != nil {
		reportParseError(source, err)
		return nil, err
	}
	return file.ToProgram()
}

// ParseFile reads path from disk and parses it as KIR text.
func ParseFile(path string) (*kir.Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("kirtext: failed to read file: %w", err)
	}
	return Parse(path, string(source))
}

func reportParseError(src string, err error) {
	pe, ok := err.(participle.Error)
	if !ok {
		color.Red("kirtext: unexpected error: %s", err)
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		color.Red("kirtext: syntax error at unknown location: %s", err)
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(pos.Column-1, 0)) + "^"

	color.Red("kirtext: syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column)
	fmt.Println(line)
	color.HiRed(caret)
	fmt.Printf("→ %s\n", pe.Message())
}
