package parser

import "sumi/internal/ast"

// ParseError is a syntax problem with the position it was detected at.
type ParseError struct {
	Message  string
	Position ast.Position
}
