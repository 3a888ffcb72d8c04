package parser

import (
	"github.com/alecthomas/participle/v2"

	"sumi/grammar"
	"sumi/internal/ast"
)

// ParseSource parses sumi source text into the workspace AST. Syntax
// problems come back as ParseError values so callers can surface every
// diagnostic with its position.
func ParseSource(path string, source string) (*ast.Program, []ParseError) {
	program, err := grammar.ParseSource(path, source)
	if err != nil {
		return nil, convertError(err)
	}

	c := &converter{}
	return c.convertProgram(program), c.errors
}

func convertError(err error) []ParseError {
	pe, ok := err.(participle.Error)
	if !ok {
		return []ParseError{{Message: err.Error()}}
	}

	pos := pe.Position()
	return []ParseError{{
		Message: pe.Message(),
		Position: ast.Position{
			Filename: pos.Filename,
			Offset:   pos.Offset,
			Line:     pos.Line,
			Column:   pos.Column,
		},
	}}
}
