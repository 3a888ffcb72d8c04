package ast

type Stmt interface {
	Node
	isStmt()
}

func (*BlockStmt) isStmt() {}

func (*IfStmt) isStmt() {}

func (*ReturnStmt) isStmt() {}

func (*ExprStmt) isStmt() {}
