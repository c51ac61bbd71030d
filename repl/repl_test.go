package repl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"sysyc/repl"
)

func TestStartPrintsKIRForValidSnippet(t *testing.T) {
	in := strings.NewReader("int main() { return 0; }\n")
	var out bytes.Buffer

	repl.Start(in, &out)

	assert.Contains(t, out.String(), "fun @main()")
	assert.Contains(t, out.String(), "ret 0")
}

func TestStartReportsParseErrors(t *testing.T) {
	in := strings.NewReader("int main( { return 0; }\n")
	var out bytes.Buffer

	repl.Start(in, &out)

	assert.NotContains(t, out.String(), "fun @main")
}

func TestStartSkipsBlankLines(t *testing.T) {
	in := strings.NewReader("\n\nint main() { return 1; }\n")
	var out bytes.Buffer

	repl.Start(in, &out)

	assert.Contains(t, out.String(), "ret 1")
}
