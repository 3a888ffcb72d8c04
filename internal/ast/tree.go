package ast

// Program represents one sumi source file: its top-level items in source
// order. Lowering requires every item to be a function definition.
// Example: "main() { return 0; }\nadd(a, b) { return a + b; }"
type Program struct {
	Pos    Position
	EndPos Position
	Items  []Node
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents a declaration-side name such as a function name
// Example: "main", "fib"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// Function represents a top-level function definition. Parameters are
// expressions structurally; binding them requires each to be an IdentExpr.
// Example: "add(a, b) { return a + b; }"
type Function struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Params []Expr
	Body   *BlockStmt
}

// BlockStmt represents a braced statement sequence
// Example: "{ x = 1; return x; }"
type BlockStmt struct {
	Pos    Position
	EndPos Position
	Stmts  []Stmt
}

// IfStmt represents a conditional with an optional else branch
// Example: "if (x) return 1; else return 2;"
type IfStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   Stmt
	Else   Stmt // nil when there is no else branch
}

// ReturnStmt represents a return with its value expression
// Example: "return a + b;"
type ReturnStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// ExprStmt represents an expression evaluated for its side effects only
// Example: "count(x);"
type ExprStmt struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}

// NumberLit represents an integer literal
// Example: "42", "0x2a"
type NumberLit struct {
	Pos    Position
	EndPos Position
	Value  int64
}

// IdentExpr represents a variable reference inside an expression
// Example: "x"
type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

// CallExpr represents a function call
// Example: "add(1, 2)"
type CallExpr struct {
	Pos    Position
	EndPos Position
	Name   string
	Args   []Expr
}

// BinaryExpr represents a binary operation, assignment included
// Example: "a + b", "x = 3"
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}
