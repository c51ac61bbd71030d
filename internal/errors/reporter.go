package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"sysyc/internal/token"
)

// CompileError is a structured, position-tagged compile error. Lowering
// errors abort the compile; internal-invariant violations are
// compiler bugs and are reported distinctly so callers can choose a
// different exit code.
type CompileError struct {
	Code     string
	Message  string
	Position token.Position
	Internal bool
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: %d:%d: %s", e.Code, e.Position.Line, e.Position.Column, e.Message)
}

func New(code, message string, pos token.Position) *CompileError {
	return &CompileError{Code: code, Message: message, Position: pos}
}

func Internal(message string, pos token.Position) *CompileError {
	return &CompileError{Code: ErrInternalInvariant, Message: message, Position: pos, Internal: true}
}

// Reporter renders a CompileError as a caret-pointing, color-highlighted
// terminal diagnostic: an "error[CODE]: message" line, a "--> file:line:col"
// location line, and the offending source line with a caret under the
// column.
type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{filename: filename, lines: strings.Split(source, "\n")}
}

func (r *Reporter) Format(err *CompileError) string {
	var b strings.Builder

	kind := "error"
	if err.Internal {
		kind = "internal error"
	}
	b.WriteString(color.RedString("%s[%s]: %s\n", kind, err.Code, err.Message))
	b.WriteString(fmt.Sprintf("  --> %s:%d:%d\n", r.filename, err.Position.Line, err.Position.Column))

	line := err.Position.Line - 1
	if line >= 0 && line < len(r.lines) {
		b.WriteString(fmt.Sprintf("   | %s\n", r.lines[line]))
		caret := strings.Repeat(" ", max(0, err.Position.Column-1))
		b.WriteString("   | " + color.HiRedString(caret+"^") + "\n")
	}
	return b.String()
}
