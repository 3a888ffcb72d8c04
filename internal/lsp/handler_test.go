package lsp_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sumi/internal/ast"
	"sumi/internal/errors"
	"sumi/internal/lsp"
	"sumi/internal/parser"
)

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewSumiHandler()

	absPath, err := filepath.Abs(filepath.Join("../../examples", "arith.sm"))
	require.NoError(t, err, "Failed to get absolute path")

	uri := "file://" + filepath.ToSlash(absPath)

	ctx := &glsp.Context{}
	params := &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{
			URI: uri,
		},
	}

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, params)
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")
	require.NotEmpty(t, tokens.Data, "Returned token data should not be empty")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.Len(t, decoded, 16, "Unexpected token count")

	assertToken(t, &decoded[0], 5, 1, 3, "function", []string{"declaration"})
	assertToken(t, &decoded[1], 5, 5, 1, "parameter", nil)
	assertToken(t, &decoded[2], 5, 8, 1, "parameter", nil)
	assertToken(t, &decoded[3], 6, 12, 1, "variable", nil)
	assertToken(t, &decoded[4], 6, 16, 1, "variable", nil)
	assertToken(t, &decoded[5], 9, 1, 4, "function", []string{"declaration"})
	assertToken(t, &decoded[6], 10, 5, 1, "variable", nil)
	assertToken(t, &decoded[7], 10, 9, 1, "number", nil)
	assertToken(t, &decoded[8], 11, 5, 1, "variable", nil)
	assertToken(t, &decoded[9], 11, 9, 1, "number", nil)
	assertToken(t, &decoded[10], 11, 13, 1, "number", nil)
	assertToken(t, &decoded[11], 11, 17, 1, "number", nil)
	assertToken(t, &decoded[12], 12, 12, 3, "function", nil)
	assertToken(t, &decoded[13], 12, 16, 1, "variable", nil)
	assertToken(t, &decoded[14], 12, 19, 1, "variable", nil)
	assertToken(t, &decoded[15], 12, 24, 1, "number", nil)
}

func TestDidOpenPublishesSemanticDiagnostics(t *testing.T) {
	handler := lsp.NewSumiHandler()
	uri, _ := tempDocumentURI(t, "dup.sm")

	ctx, published := captureNotifications()
	source := "f() { return 1; }\n\nf() { return 2; }\n"

	err := handler.TextDocumentDidOpen(ctx, didOpenParams(uri, source))
	require.NoError(t, err)

	diagnostics := publishedDiagnostics(t, *published)
	require.Len(t, diagnostics, 1)
	require.Equal(t, protocol.DiagnosticSeverityError, *diagnostics[0].Severity)
	require.Equal(t, "sumi-semantic", *diagnostics[0].Source)
	require.Contains(t, diagnostics[0].Message, "duplicate declaration")
	require.Equal(t, uint32(2), diagnostics[0].Range.Start.Line)
	require.Equal(t, uint32(0), diagnostics[0].Range.Start.Character)
}

func TestDidOpenPublishesParseDiagnostics(t *testing.T) {
	handler := lsp.NewSumiHandler()
	uri, _ := tempDocumentURI(t, "broken.sm")

	ctx, published := captureNotifications()

	err := handler.TextDocumentDidOpen(ctx, didOpenParams(uri, "main( {\n"))
	require.NoError(t, err)

	diagnostics := publishedDiagnostics(t, *published)
	require.NotEmpty(t, diagnostics)
	require.Equal(t, "sumi-parser", *diagnostics[0].Source)
	require.Equal(t, protocol.DiagnosticSeverityError, *diagnostics[0].Severity)
}

func TestDidChangeRecomputesDiagnostics(t *testing.T) {
	handler := lsp.NewSumiHandler()
	uri, _ := tempDocumentURI(t, "live.sm")

	ctx, published := captureNotifications()

	err := handler.TextDocumentDidOpen(ctx, didOpenParams(uri, "main() { return 1; }\n"))
	require.NoError(t, err)
	require.Empty(t, publishedDiagnostics(t, *published), "clean document should publish no diagnostics")

	*published = nil
	changeParams := &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: "main() { return x; }\n"},
		},
	}

	err = handler.TextDocumentDidChange(ctx, changeParams)
	require.NoError(t, err)

	diagnostics := publishedDiagnostics(t, *published)
	require.Len(t, diagnostics, 1)
	require.Equal(t, protocol.DiagnosticSeverityWarning, *diagnostics[0].Severity)
	require.Contains(t, diagnostics[0].Message, "read before any assignment")
}

func TestCompletionOffersFunctionNames(t *testing.T) {
	handler := lsp.NewSumiHandler()
	uri, _ := tempDocumentURI(t, "complete.sm")

	ctx, _ := captureNotifications()
	source := "add(a, b) { return a + b; }\n\nmain() { return add(1, 2); }\n"

	err := handler.TextDocumentDidOpen(ctx, didOpenParams(uri, source))
	require.NoError(t, err)

	result, err := handler.TextDocumentCompletion(ctx, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		},
	})
	require.NoError(t, err)

	list, ok := result.(*protocol.CompletionList)
	require.True(t, ok, "completion should return a CompletionList")

	var labels []string
	for _, item := range list.Items {
		labels = append(labels, item.Label)
	}
	require.ElementsMatch(t, []string{"add", "main"}, labels)
}

func TestDidCloseDropsDocumentState(t *testing.T) {
	handler := lsp.NewSumiHandler()
	uri, _ := tempDocumentURI(t, "closed.sm")

	ctx, _ := captureNotifications()

	err := handler.TextDocumentDidOpen(ctx, didOpenParams(uri, "main() { return 1; }\n"))
	require.NoError(t, err)

	err = handler.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	result, err := handler.TextDocumentCompletion(ctx, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		},
	})
	require.NoError(t, err)

	list, ok := result.(*protocol.CompletionList)
	require.True(t, ok)
	require.Empty(t, list.Items, "closed documents should not offer completions")
}

func TestConvertParseErrors(t *testing.T) {
	diagnostics := lsp.ConvertParseErrors([]parser.ParseError{
		{Message: "unexpected token", Position: ast.Position{Line: 2, Column: 3}},
	})

	require.Len(t, diagnostics, 1)
	require.Equal(t, "unexpected token", diagnostics[0].Message)
	require.Equal(t, "sumi-parser", *diagnostics[0].Source)
	require.Equal(t, protocol.DiagnosticSeverityError, *diagnostics[0].Severity)
	require.Equal(t, uint32(1), diagnostics[0].Range.Start.Line)
	require.Equal(t, uint32(2), diagnostics[0].Range.Start.Character)
	require.Equal(t, uint32(8), diagnostics[0].Range.End.Character)
}

func TestConvertSemanticErrors(t *testing.T) {
	diagnostics := lsp.ConvertSemanticErrors([]errors.CompilerError{
		{
			Level:    errors.Warning,
			Code:     "W0002",
			Message:  "variable 'x' is read before any assignment",
			Position: ast.Position{Line: 1, Column: 5},
			Length:   3,
		},
		{
			Level:    errors.Error,
			Code:     "E0001",
			Message:  "duplicate declaration: f",
			Position: ast.Position{Line: 4, Column: 1},
		},
	})

	require.Len(t, diagnostics, 2)

	require.Equal(t, protocol.DiagnosticSeverityWarning, *diagnostics[0].Severity)
	require.Equal(t, "sumi-semantic", *diagnostics[0].Source)
	require.Equal(t, uint32(0), diagnostics[0].Range.Start.Line)
	require.Equal(t, uint32(4), diagnostics[0].Range.Start.Character)
	require.Equal(t, uint32(7), diagnostics[0].Range.End.Character)

	require.Equal(t, protocol.DiagnosticSeverityError, *diagnostics[1].Severity)
	require.Equal(t, uint32(3), diagnostics[1].Range.Start.Line)
	require.Equal(t, uint32(1), diagnostics[1].Range.End.Character, "zero-length findings span one character")
}

// ============================================================================
// Helpers
// ============================================================================

type notification struct {
	method string
	params any
}

func captureNotifications() (*glsp.Context, *[]notification) {
	captured := &[]notification{}
	ctx := &glsp.Context{
		Notify: func(method string, params any) {
			*captured = append(*captured, notification{method: method, params: params})
		},
	}
	return ctx, captured
}

func publishedDiagnostics(t *testing.T, captured []notification) []protocol.Diagnostic {
	t.Helper()

	require.NotEmpty(t, captured, "expected a published diagnostics notification")
	last := captured[len(captured)-1]
	require.Equal(t, protocol.ServerTextDocumentPublishDiagnostics, last.method)

	params, ok := last.params.(*protocol.PublishDiagnosticsParams)
	require.True(t, ok, "notification params should be PublishDiagnosticsParams")
	return params.Diagnostics
}

func tempDocumentURI(t *testing.T, name string) (string, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	return "file://" + filepath.ToSlash(path), path
}

func didOpenParams(uri, source string) *protocol.DidOpenTextDocumentParams {
	return &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        uri,
			LanguageID: "sumi",
			Version:    1,
			Text:       source,
		},
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
			Line:      line + 1, // LSP uses 0-based indexing
			Char:      char + 1, // LSP uses 0-based indexing
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	t.Helper()

	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}
