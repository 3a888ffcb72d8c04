package semantic

import (
	"sumi/internal/abi"
	"sumi/internal/ast"
	"sumi/internal/errors"
)

func (a *Analyzer) analyzeBlock(scope *functionScope, block *ast.BlockStmt) {
	for _, stmt := range block.Stmts {
		a.analyzeStmt(scope, stmt)
	}
}

func (a *Analyzer) analyzeStmt(scope *functionScope, stmt ast.Stmt) {
	switch node := stmt.(type) {
	case *ast.BlockStmt:
		a.analyzeBlock(scope, node)
	case *ast.IfStmt:
		a.analyzeExpr(scope, node.Cond)
		a.analyzeStmt(scope, node.Then)
		if node.Else != nil {
			a.analyzeStmt(scope, node.Else)
		}
	case *ast.ReturnStmt:
		a.analyzeExpr(scope, node.Value)
	case *ast.ExprStmt:
		if !hasEffect(node.Expr) {
			a.addCompilerError(errors.NoEffect(node.NodePos()))
		}
		a.analyzeExpr(scope, node.Expr)
	}
}

func (a *Analyzer) analyzeExpr(scope *functionScope, expr ast.Expr) {
	switch node := expr.(type) {
	case *ast.NumberLit:
		// literals need no checking
	case *ast.IdentExpr:
		a.checkRead(scope, node)
	case *ast.CallExpr:
		a.checkCall(scope, node)
	case *ast.BinaryExpr:
		if node.Op == "=" {
			a.checkAssign(scope, node)
			return
		}
		a.analyzeExpr(scope, node.Left)
		a.analyzeExpr(scope, node.Right)
	}
}

func (a *Analyzer) checkAssign(scope *functionScope, node *ast.BinaryExpr) {
	// The right side evaluates first, so reads there are checked before
	// the target counts as assigned. x = x + 1 with a fresh x still warns.
	a.analyzeExpr(scope, node.Right)

	target, ok := node.Left.(*ast.IdentExpr)
	if !ok {
		a.addCompilerError(errors.InvalidAssignment("cannot assign to this expression", node.Left.NodePos()))
		a.analyzeExpr(scope, node.Left)
		return
	}

	if scope.symbols.LookupLocal(target.Name) == nil {
		scope.symbols.Define(target.Name, SymbolVariable, target, target.NodePos())
	}
	scope.assigned[target.Name] = true
}

func (a *Analyzer) checkRead(scope *functionScope, node *ast.IdentExpr) {
	if scope.assigned[node.Name] || scope.warned[node.Name] {
		return
	}

	scope.warned[node.Name] = true
	a.addCompilerError(errors.UnassignedVariable(node.Name, node.NodePos(), scope.assignedNames()))
}

func (a *Analyzer) checkCall(scope *functionScope, node *ast.CallExpr) {
	if len(node.Args) > abi.MaxCallArgs {
		a.addCompilerError(errors.TooManyArguments(node.Name, len(node.Args), abi.MaxCallArgs, node.NodePos()))
	}

	// Calls to names with no local definition resolve at link time, so
	// only locally defined functions get their arity checked.
	if fn, ok := a.localFunctions[node.Name]; ok && len(fn.Params) != len(node.Args) {
		a.addCompilerError(errors.InvalidArguments(node.Name, len(fn.Params), len(node.Args), node.NodePos()))
	}

	for _, arg := range node.Args {
		a.analyzeExpr(scope, arg)
	}
}

// hasEffect reports whether evaluating the expression does anything beyond
// producing a value. Assignments write a slot and calls may do anything.
func hasEffect(expr ast.Expr) bool {
	switch node := expr.(type) {
	case *ast.CallExpr:
		return true
	case *ast.BinaryExpr:
		if node.Op == "=" {
			return true
		}
		return hasEffect(node.Left) || hasEffect(node.Right)
	default:
		return false
	}
}
