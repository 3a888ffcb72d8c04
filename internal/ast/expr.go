package ast

type Expr interface {
	Node
	isExpr()
}

func (*NumberLit) isExpr() {}

func (*IdentExpr) isExpr() {}

func (*CallExpr) isExpr() {}

func (*BinaryExpr) isExpr() {}
