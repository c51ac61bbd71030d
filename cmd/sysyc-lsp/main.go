// SPDX-License-Identifier: Apache-2.0

// Command sysyc-lsp is a diagnostics-only language server: it reports
// lex/parse errors and semantic tokens over stdio, nothing more.
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"sysyc/internal/lsp"
)

const lsName = "sysyc"

var version = "0.1.0"

func main() {
	commonlog.Configure(1, nil)

	h := lsp.NewHandler()
	handler := protocol.Handler{
		Initialize:                     h.Initialize,
		Initialized:                    h.Initialized,
		Shutdown:                       h.Shutdown,
		TextDocumentDidOpen:            h.TextDocumentDidOpen,
		TextDocumentDidClose:           h.TextDocumentDidClose,
		TextDocumentDidChange:          h.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: h.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)
	log.Printf("starting %s %s", lsName, version)
	if err := s.RunStdio(); err != nil {
		log.Println("sysyc-lsp: server error:", err)
		os.Exit(1)
	}
}
