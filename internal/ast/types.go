package ast

type NodeType int

// regenerate nodetype_string.go with `go generate ./internal/ast`
//
//go:generate stringer -type=NodeType
const (
	// High-level constructs
	PROGRAM NodeType = iota
	FUNCTION
	IDENT

	// Statements
	BLOCK_STMT
	IF_STMT
	RETURN_STMT
	EXPR_STMT

	// Expressions
	NUMBER_LIT
	IDENT_EXPR
	CALL_EXPR
	BINARY_EXPR
)
