// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"sumi/internal/lsp"
)

const lsName = "sumi" // Name identifier for the language server

var handler protocol.Handler // Protocol handler instance (wired up below)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	// Create a new instance of the SumiHandler (the language-specific handler)
	sumiHandler := lsp.NewSumiHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     sumiHandler.Initialize,
		Initialized:                    sumiHandler.Initialized,
		Shutdown:                       sumiHandler.Shutdown,
		SetTrace:                       sumiHandler.SetTrace,
		TextDocumentDidOpen:            sumiHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           sumiHandler.TextDocumentDidClose,
		TextDocumentDidChange:          sumiHandler.TextDocumentDidChange,
		TextDocumentCompletion:         sumiHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: sumiHandler.TextDocumentSemanticTokensFull,
	}

	// Create a new GLSP server instance
	// Parameters:
	// - handler: the protocol handler struct
	// - name: the language server name (shown to clients)
	// - debug: whether to enable internal GLSP debug logs
	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting sumi LSP server...")

	// Start the server over standard input/output (used by most editors for LSP)
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting sumi LSP server:", err)
		os.Exit(1)
	}
}
