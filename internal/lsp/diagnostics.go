package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sysyc/internal/lexer"
	"sysyc/internal/parser"
)

// ConvertParseErrors transforms parser errors into LSP diagnostics for IDE
// display.
func ConvertParseErrors(parseErrors []parser.ParseError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic
	for _, e := range parseErrors {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    spanFrom(e.Position.Line, e.Position.Column, 6),
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("sysyc-parser"),
			Message:  e.Message,
		})
	}
	return diagnostics
}

// ConvertScanErrors transforms lexer errors into LSP diagnostics.
func ConvertScanErrors(scanErrors []lexer.ScanError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic
	for _, e := range scanErrors {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    spanFrom(e.Position.Line, e.Position.Column, 1),
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("sysyc-lexer"),
			Message:  e.Message,
		})
	}
	return diagnostics
}

func spanFrom(line, col, width int) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: uint32(line - 1), Character: uint32(col - 1)},
		End:   protocol.Position{Line: uint32(line - 1), Character: uint32(col - 1 + width)},
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity { return &s }
func ptrString(s string) *string                                            { return &s }
func ptrBool(b bool) *bool                                                  { return &b }
func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
