package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sumi/internal/ast"
	"sumi/internal/errors"
	"sumi/internal/parser"
)

// ConvertParseErrors transforms parser errors into LSP diagnostics for IDE display.
// These provide immediate feedback about syntax issues like missing semicolons,
// unbalanced braces, and other parsing problems.
func ConvertParseErrors(parseErrors []parser.ParseError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, parseErr := range parseErrors {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    rangeAt(parseErr.Position, 6), // Rough span for visibility
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("sumi-parser"),
			Message:  parseErr.Message,
		})
	}

	return diagnostics
}

// ConvertSemanticErrors transforms analyzer findings into LSP diagnostics.
// Warnings keep their level so editors render them distinctly from errors.
func ConvertSemanticErrors(compilerErrors []errors.CompilerError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, compilerErr := range compilerErrors {
		severity := protocol.DiagnosticSeverityError
		if compilerErr.Level == errors.Warning {
			severity = protocol.DiagnosticSeverityWarning
		}

		length := compilerErr.Length
		if length <= 0 {
			length = 1
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    rangeAt(compilerErr.Position, length),
			Severity: ptrSeverity(severity),
			Source:   ptrString("sumi-semantic"),
			Message:  compilerErr.Message,
		})
	}

	return diagnostics
}

// rangeAt converts a 1-based source position into a 0-based LSP range
// covering length characters. Positions from synthesized errors may be
// zero-valued; those clamp to the start of the document.
func rangeAt(pos ast.Position, length int) protocol.Range {
	line := pos.Line - 1
	if line < 0 {
		line = 0
	}
	column := pos.Column - 1
	if column < 0 {
		column = 0
	}

	return protocol.Range{
		Start: protocol.Position{Line: uint32(line), Character: uint32(column)},
		End:   protocol.Position{Line: uint32(line), Character: uint32(column + length)},
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
