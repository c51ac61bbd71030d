package lsp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sysyc/internal/lsp"
)

const sampleSource = `
int n = 5;

int add(int a, int b) {
  return a + b;
}

int main() {
  int result = add(n, 1);
  return result;
}
`

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewHandler()
	uri := "file:///tmp/sample.sy"
	ctx := noopContext()

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: sampleSource},
	})
	require.NoError(t, err)

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.NotNil(t, tokens)
	require.NotEmpty(t, tokens.Data)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.NotEmpty(t, decoded)

	tokenTypes := make(map[string]int)
	for _, token := range decoded {
		tokenTypes[token.Type]++
	}

	require.Greater(t, tokenTypes["function"], 0, "should have function tokens for add/main")
	require.Greater(t, tokenTypes["variable"], 0, "should have variable tokens for n/result/a/b")
	require.Greater(t, tokenTypes["parameter"], 0, "should have parameter tokens for a/b")

	t.Logf("Generated %d semantic tokens with types: %v", len(decoded), tokenTypes)
}

func TestTextDocumentDidOpenReportsParseErrors(t *testing.T) {
	handler := lsp.NewHandler()
	uri := "file:///tmp/broken.sy"
	ctx := noopContext()

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: "int main() { return"},
	})
	require.NoError(t, err, "malformed input must not crash the handler")
}

// noopContext builds a glsp.Context whose Notify is a harmless no-op, since
// the zero-value Context's Notify field is nil and would panic when the
// handler publishes diagnostics.
func noopContext() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {},
	}
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line,
			Char:      char,
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}
