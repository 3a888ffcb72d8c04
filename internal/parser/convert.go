package parser

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"

	"sumi/grammar"
	"sumi/internal/ast"
)

// converter rebuilds the grammar tree as the workspace AST. Grammar
// nodes mirror token structure; the AST collapses the precedence tiers
// into BinaryExpr chains the later passes can walk uniformly.
type converter struct {
	errors []ParseError
}

func (c *converter) errorAt(pos lexer.Position, message string) {
	c.errors = append(c.errors, ParseError{
		Message:  message,
		Position: position(pos),
	})
}

func position(pos lexer.Position) ast.Position {
	return ast.Position{
		Filename: pos.Filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}

func (c *converter) convertProgram(program *grammar.Program) *ast.Program {
	out := &ast.Program{
		Pos:    position(program.Pos),
		EndPos: position(program.EndPos),
	}
	for _, fn := range program.Functions {
		out.Items = append(out.Items, c.convertFunction(fn))
	}
	return out
}

func (c *converter) convertFunction(fn *grammar.Function) *ast.Function {
	out := &ast.Function{
		Pos:    position(fn.Pos),
		EndPos: position(fn.EndPos),
		Name: ast.Ident{
			Pos:    position(fn.Name.Pos),
			EndPos: position(fn.Name.EndPos),
			Value:  fn.Name.Value,
		},
		Body: c.convertBlock(fn.Body),
	}
	for _, p := range fn.Params {
		out.Params = append(out.Params, &ast.IdentExpr{
			Pos:    position(p.Pos),
			EndPos: position(p.EndPos),
			Name:   p.Value,
		})
	}
	return out
}

func (c *converter) convertBlock(block *grammar.Block) *ast.BlockStmt {
	out := &ast.BlockStmt{
		Pos:    position(block.Pos),
		EndPos: position(block.EndPos),
	}
	for _, stmt := range block.Statements {
		out.Stmts = append(out.Stmts, c.convertStatement(stmt))
	}
	return out
}

func (c *converter) convertStatement(stmt *grammar.Statement) ast.Stmt {
	switch {
	case stmt.ReturnStmt != nil:
		return &ast.ReturnStmt{
			Pos:    position(stmt.ReturnStmt.Pos),
			EndPos: position(stmt.ReturnStmt.EndPos),
			Value:  c.convertExpr(stmt.ReturnStmt.Expr),
		}
	case stmt.IfStmt != nil:
		out := &ast.IfStmt{
			Pos:    position(stmt.IfStmt.Pos),
			EndPos: position(stmt.IfStmt.EndPos),
			Cond:   c.convertExpr(stmt.IfStmt.Cond),
			Then:   c.convertStatement(stmt.IfStmt.Then),
		}
		if stmt.IfStmt.Else != nil {
			out.Else = c.convertStatement(stmt.IfStmt.Else)
		}
		return out
	case stmt.Block != nil:
		return c.convertBlock(stmt.Block)
	default:
		return &ast.ExprStmt{
			Pos:    position(stmt.ExprStmt.Pos),
			EndPos: position(stmt.ExprStmt.EndPos),
			Expr:   c.convertExpr(stmt.ExprStmt.Expr),
		}
	}
}

// convertExpr handles the assignment tier. "=" nests to the right, so
// a = b = 3 assigns 3 to b and the result to a.
func (c *converter) convertExpr(expr *grammar.Expr) ast.Expr {
	left := c.convertAdd(expr.Left)
	if expr.Right == nil {
		return left
	}

	right := c.convertExpr(expr.Right)
	return &ast.BinaryExpr{
		Pos:    left.NodePos(),
		EndPos: right.NodeEndPos(),
		Op:     "=",
		Left:   left,
		Right:  right,
	}
}

func (c *converter) convertAdd(expr *grammar.AddExpr) ast.Expr {
	out := c.convertMul(expr.Left)
	for _, op := range expr.Ops {
		right := c.convertMul(op.Right)
		out = &ast.BinaryExpr{
			Pos:    out.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     op.Operator,
			Left:   out,
			Right:  right,
		}
	}
	return out
}

func (c *converter) convertMul(expr *grammar.MulExpr) ast.Expr {
	out := c.convertPrimary(expr.Left)
	for _, op := range expr.Ops {
		right := c.convertPrimary(op.Right)
		out = &ast.BinaryExpr{
			Pos:    out.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     op.Operator,
			Left:   out,
			Right:  right,
		}
	}
	return out
}

func (c *converter) convertPrimary(primary *grammar.Primary) ast.Expr {
	switch {
	case primary.Number != nil:
		value, err := strconv.ParseInt(primary.Number.Value, 0, 64)
		if err != nil {
			c.errorAt(primary.Number.Pos, fmt.Sprintf("integer literal %s out of range", primary.Number.Value))
		}
		return &ast.NumberLit{
			Pos:    position(primary.Number.Pos),
			EndPos: position(primary.Number.EndPos),
			Value:  value,
		}
	case primary.Call != nil:
		out := &ast.CallExpr{
			Pos:    position(primary.Call.Pos),
			EndPos: position(primary.Call.EndPos),
			Name:   primary.Call.Name.Value,
		}
		for _, arg := range primary.Call.Args {
			out.Args = append(out.Args, c.convertExpr(arg))
		}
		return out
	case primary.Ident != nil:
		return &ast.IdentExpr{
			Pos:    position(primary.Ident.Pos),
			EndPos: position(primary.Ident.EndPos),
			Name:   primary.Ident.Value,
		}
	default:
		return c.convertExpr(primary.Parens)
	}
}
