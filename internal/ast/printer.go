package ast

import (
	"fmt"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder

	for i, item := range p.Items {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(item.String())
	}

	return b.String()
}

func (f *Function) String() string {
	params := make([]string, len(f.Params))
	for i, param := range f.Params {
		params[i] = param.String()
	}

	return fmt.Sprintf("%s(%s) %s", f.Name.Value, strings.Join(params, ", "), f.Body.String())
}

func (i *Ident) String() string {
	return i.Value
}

func (b *BlockStmt) String() string {
	var sb strings.Builder

	sb.WriteString("{\n")
	for _, stmt := range b.Stmts {
		sb.WriteString("  " + strings.ReplaceAll(stmt.String(), "\n", "\n  ") + "\n")
	}
	sb.WriteString("}")

	return sb.String()
}

func (i *IfStmt) String() string {
	if i.Else != nil {
		return fmt.Sprintf("if (%s) %s else %s", i.Cond.String(), i.Then.String(), i.Else.String())
	}
	return fmt.Sprintf("if (%s) %s", i.Cond.String(), i.Then.String())
}

func (r *ReturnStmt) String() string {
	return fmt.Sprintf("return %s;", r.Value.String())
}

func (e *ExprStmt) String() string {
	return e.Expr.String() + ";"
}

func (n *NumberLit) String() string {
	return fmt.Sprintf("%d", n.Value)
}

func (i *IdentExpr) String() string {
	return i.Name
}

func (c *CallExpr) String() string {
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = arg.String()
	}

	return fmt.Sprintf("%s(%s)", c.Name, strings.Join(args, ", "))
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}
