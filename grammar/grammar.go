package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

type PosIdent struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Value  string `@Ident`
}

type Program struct {
	Pos       lexer.Position
	EndPos    lexer.Position
	Functions []*Function `@@*`
}

type Function struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   PosIdent    `@@ "("`
	Params []*PosIdent `[ @@ { "," @@ } ] ")"`
	Body   *Block      `@@`
}

type Block struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Statements []*Statement `"{" @@* "}"`
}

type Statement struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	ReturnStmt *ReturnStmt `  @@`
	IfStmt     *IfStmt     `| @@`
	Block      *Block      `| @@`
	ExprStmt   *ExprStmt   `| @@`
}

type ReturnStmt struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Expr   *Expr `"return" @@ ";"`
}

type IfStmt struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Cond   *Expr      `"if" "(" @@ ")"`
	Then   *Statement `@@`
	Else   *Statement `[ "else" @@ ]`
}

type ExprStmt struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Expr   *Expr `@@ ";"`
}

type Expr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Left   *AddExpr `@@`
	Right  *Expr    `[ "=" @@ ]`
}

type AddExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Left   *MulExpr `@@`
	Ops    []*AddOp `{ @@ }`
}

type AddOp struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Operator string   `@("+" | "-")`
	Right    *MulExpr `@@`
}

type MulExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Left   *Primary `@@`
	Ops    []*MulOp `{ @@ }`
}

type MulOp struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Operator string   `@("*" | "/")`
	Right    *Primary `@@`
}

type Primary struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Number *NumberLit `  @@`
	Call   *CallExpr  `| @@`
	Ident  *PosIdent  `| @@`
	Parens *Expr      `| "(" @@ ")"`
}

type NumberLit struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Value  string `@Integer`
}

type CallExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   PosIdent `@@`
	Args   []*Expr  `"(" [ @@ { "," @@ } ] ")"`
}
