package lsp

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"

	deadlock "github.com/sasha-s/go-deadlock"
	"github.com/segmentio/ksuid"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sysyc/internal/ast"
	"sysyc/internal/parser"
)

// SemanticTokenTypes is the LSP-advertised set of semantic token kinds this
// server reports.
var SemanticTokenTypes = []string{
	"namespace",
	"type",
	"function",
	"variable",
	"parameter",
	"keyword",
	"number",
	"operator",
}

// SemanticTokenModifiers is the advertised set of token modifier bits.
var SemanticTokenModifiers = []string{
	"declaration",
	"readonly",
}

// docSession tracks one open document: its text, its last-parsed AST, and a
// ksuid session id stamped at open time (included in log lines so a
// multi-document session's diagnostics can be told apart in a shared log).
type docSession struct {
	id      ksuid.KSUID
	content string
	unit    *ast.CompUnit
}

// Handler implements a diagnostics-only language server: it re-parses a
// document on every open/change, republishes parse/lex diagnostics, and
// serves semantic tokens for the AST it gets back on request. No hover, no
// go-to-definition — a compiler frontend's LSP surface stops at "does this
// parse".
type Handler struct {
	mu   deadlock.RWMutex
	docs map[string]*docSession
}

func NewHandler() *Handler {
	return &Handler{docs: make(map[string]*docSession)}
}

func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("sysyc-lsp: initialize")
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("sysyc-lsp: initialized")
	return nil
}

func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Println("sysyc-lsp: shutdown")
	return nil
}

func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	diagnostics, err := h.refresh(params.TextDocument.URI, params.TextDocument.Text)
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}
	publishDiagnostics(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change, ok := params.ContentChanges[len(params.ContentChanges)-1].(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		return nil
	}
	diagnostics, err := h.refresh(params.TextDocument.URI, change.Text)
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}
	publishDiagnostics(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}
	h.mu.Lock()
	delete(h.docs, path)
	h.mu.Unlock()
	return nil
}

func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.RLock()
	doc := h.docs[path]
	h.mu.RUnlock()

	var unit *ast.CompUnit
	if doc != nil {
		unit = doc.unit
	}
	tokens := collectSemanticTokens(unit)
	var data []uint32
	var prevLine, prevStart uint32
	for _, tok := range tokens {
		deltaLine := tok.Line - prevLine
		deltaStart := tok.StartChar
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevStart
		}
		data = append(data, deltaLine, deltaStart, tok.Length, uint32(tok.TokenType), uint32(tok.TokenModifiers))
		prevLine, prevStart = tok.Line, tok.StartChar
	}
	return &protocol.SemanticTokens{Data: data}, nil
}

// refresh reparses the document's current text, updates the cached AST and
// returns the diagnostics to publish (nil when there are none;
// publishDiagnostics sends that as an empty list, which clears prior errors).
func (h *Handler) refresh(uri protocol.DocumentUri, text string) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", uri, err)
	}

	unit, parseErrs, scanErrs := parser.ParseSource(path, text)
	diagnostics := append(ConvertScanErrors(scanErrs), ConvertParseErrors(parseErrs)...)

	h.mu.Lock()
	doc, ok := h.docs[path]
	if !ok {
		doc = &docSession{id: ksuid.New()}
		h.docs[path] = doc
	}
	doc.content = text
	doc.unit = unit
	h.mu.Unlock()

	log.Printf("sysyc-lsp: [%s] reparsed %s (%d diagnostics)", doc.id, path, len(diagnostics))
	return diagnostics, nil
}

func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}
	path := u.Path
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

func publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	if raw, err := json.Marshal(diagnostics); err == nil {
		log.Println("sysyc-lsp: publishing diagnostics:", string(raw))
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}
