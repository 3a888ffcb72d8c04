package lsp

import (
	"strconv"

	"sumi/internal/ast"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask
}

func collectSemanticTokens(program *ast.Program) []SemanticToken {
	var tokens []SemanticToken

	if program == nil {
		return tokens
	}

	for _, item := range program.Items {
		if fn, ok := item.(*ast.Function); ok {
			tokens = append(tokens, walkFunction(fn)...)
		}
	}

	return tokens
}

func walkFunction(fn *ast.Function) []SemanticToken {
	var tokens []SemanticToken

	if fn == nil {
		return tokens
	}

	// Function name
	if fn.Name.Value != "" {
		tokens = append(tokens, makeToken(fn.Name.Pos, fn.Name.EndPos, fn.Name.Value, "function", 1)...)
	}

	// Parameters
	for _, param := range fn.Params {
		if ident, ok := param.(*ast.IdentExpr); ok {
			tokens = append(tokens, makeToken(ident.Pos, ident.EndPos, ident.Name, "parameter", 0)...)
		}
	}

	// Function body
	if fn.Body != nil {
		tokens = append(tokens, walkStatement(fn.Body)...)
	}

	return tokens
}

func walkStatement(stmt ast.Stmt) []SemanticToken {
	var tokens []SemanticToken

	if stmt == nil {
		return tokens
	}

	switch v := stmt.(type) {
	case *ast.BlockStmt:
		for _, inner := range v.Stmts {
			tokens = append(tokens, walkStatement(inner)...)
		}
	case *ast.IfStmt:
		tokens = append(tokens, walkExpression(v.Cond)...)
		tokens = append(tokens, walkStatement(v.Then)...)
		if v.Else != nil {
			tokens = append(tokens, walkStatement(v.Else)...)
		}
	case *ast.ReturnStmt:
		tokens = append(tokens, walkExpression(v.Value)...)
	case *ast.ExprStmt:
		tokens = append(tokens, walkExpression(v.Expr)...)
	}

	return tokens
}

func walkExpression(expr ast.Expr) []SemanticToken {
	var tokens []SemanticToken

	if expr == nil {
		return tokens
	}

	switch v := expr.(type) {
	case *ast.IdentExpr:
		// Variable references
		tokens = append(tokens, makeToken(v.Pos, v.EndPos, v.Name, "variable", 0)...)
	case *ast.NumberLit:
		tokens = append(tokens, makeToken(v.Pos, v.EndPos, strconv.FormatInt(v.Value, 10), "number", 0)...)
	case *ast.CallExpr:
		// The node position starts at the callee name, so the name's
		// own length bounds the token.
		tokens = append(tokens, makeToken(v.Pos, v.Pos, v.Name, "function", 0)...)
		for _, arg := range v.Args {
			tokens = append(tokens, walkExpression(arg)...)
		}
	case *ast.BinaryExpr:
		// Left and right expressions; operators carry no token
		tokens = append(tokens, walkExpression(v.Left)...)
		tokens = append(tokens, walkExpression(v.Right)...)
	}

	return tokens
}

// makeToken creates a semantic token for a given position and text
func makeToken(pos, endPos ast.Position, value, tokenType string, declModifier int) []SemanticToken {
	if value == "" {
		return nil
	}

	length := endPos.Column - pos.Column
	if length <= 0 {
		length = len(value)
	}

	return []SemanticToken{{
		Line:           uint32(pos.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(pos.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(length),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declModifier << indexOf("declaration", SemanticTokenModifiers),
	}}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0 // Default to first token type if not found
}
