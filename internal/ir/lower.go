package ir

import (
	"fmt"

	"sumi/internal/abi"
	"sumi/internal/ast"
)

// frameBase is the register that always holds the frame base pointer.
// The allocator starts at 1, so it is never handed out.
const frameBase = 0

// Lowerer turns a checked AST into per-function instruction lists.
// Label ids live here rather than in the per-function context: the
// backend emits every function into one flat label namespace, so ids
// must never collide across functions.
type Lowerer struct {
	nextLabel int
}

func NewLowerer() *Lowerer {
	return &Lowerer{}
}

// fnContext is the state that resets for every function: the frame
// layout, the register counter, and the code being emitted.
type fnContext struct {
	offsets   map[string]int
	nextReg   int
	stackSize int
	code      []Instr
}

func newFnContext() *fnContext {
	return &fnContext{
		offsets: make(map[string]int),
		nextReg: 1,
	}
}

func (c *fnContext) emit(instr Instr) {
	c.code = append(c.code, instr)
}

func (c *fnContext) freshReg() int {
	r := c.nextReg
	c.nextReg++
	return r
}

func (l *Lowerer) freshLabel() int {
	id := l.nextLabel
	l.nextLabel++
	return id
}

// Lower produces one Function record per top-level definition, in
// source order. Earlier stages reject anything that is not a function
// definition; one slipping through is fatal.
func (l *Lowerer) Lower(program *ast.Program) []*Function {
	var funcs []*Function
	for _, item := range program.Items {
		fn, ok := item.(*ast.Function)
		if !ok {
			panic("parse error.")
		}
		funcs = append(funcs, l.lowerFunction(fn))
	}
	return funcs
}

func (l *Lowerer) lowerFunction(fn *ast.Function) *Function {
	c := newFnContext()
	l.bindParams(c, fn.Params)
	l.lowerStmt(c, fn.Body)

	return &Function{
		Name:      fn.Name.Value,
		Code:      c.code,
		StackSize: c.stackSize,
	}
}

// bindParams records each parameter's frame slot and emits the marker
// telling the backend to spill the incoming argument registers.
// Parameter offsets are taken after the stack grows, so the first
// parameter sits at 8 while the first lazily bound local sits at 0.
func (l *Lowerer) bindParams(c *fnContext, params []ast.Expr) {
	if len(params) == 0 {
		return
	}

	c.emit(Instr{Op: SaveArgs, Lhs: len(params)})
	for _, param := range params {
		ident, ok := param.(*ast.IdentExpr)
		if !ok {
			panic("bad parameter")
		}
		c.stackSize += abi.WordSize
		c.offsets[ident.Name] = c.stackSize
	}
}

func (l *Lowerer) lowerStmt(c *fnContext, stmt ast.Stmt) {
	switch node := stmt.(type) {
	case *ast.IfStmt:
		l.lowerIf(c, node)
	case *ast.ReturnStmt:
		r := l.lowerExpr(c, node.Value)
		c.emit(Instr{Op: Return, Lhs: r})
		c.emit(Instr{Op: Kill, Lhs: r})
	case *ast.ExprStmt:
		r := l.lowerExpr(c, node.Expr)
		c.emit(Instr{Op: Kill, Lhs: r})
	case *ast.BlockStmt:
		for _, s := range node.Stmts {
			l.lowerStmt(c, s)
		}
	default:
		panic(fmt.Sprintf("unknown node: %s", node))
	}
}

func (l *Lowerer) lowerIf(c *fnContext, node *ast.IfStmt) {
	cond := l.lowerExpr(c, node.Cond)
	x := l.freshLabel()
	c.emit(Instr{Op: Unless, Lhs: cond, Rhs: x})
	c.emit(Instr{Op: Kill, Lhs: cond})

	l.lowerStmt(c, node.Then)

	if node.Else == nil {
		c.emit(Instr{Op: Label, Lhs: x})
		return
	}

	y := l.freshLabel()
	c.emit(Instr{Op: Jmp, Lhs: y})
	c.emit(Instr{Op: Label, Lhs: x})
	l.lowerStmt(c, node.Else)
	c.emit(Instr{Op: Label, Lhs: y})
}

// lowerExpr appends the instructions for an expression and returns the
// register holding its result.
func (l *Lowerer) lowerExpr(c *fnContext, expr ast.Expr) int {
	switch node := expr.(type) {
	case *ast.NumberLit:
		r := c.freshReg()
		c.emit(Instr{Op: Imm, Lhs: r, Rhs: int(node.Value)})
		return r
	case *ast.IdentExpr:
		r := l.lowerLval(c, node)
		c.emit(Instr{Op: Load, Lhs: r, Rhs: r})
		return r
	case *ast.CallExpr:
		return l.lowerCall(c, node)
	case *ast.BinaryExpr:
		if node.Op == "=" {
			return l.lowerAssign(c, node)
		}
		return l.lowerBinOp(c, node)
	default:
		panic(fmt.Sprintf("unknown node: %s", node))
	}
}

// lowerLval computes an identifier's address into a fresh register.
// An unseen name claims the slot at the current stack size before the
// stack grows, so the first local sits at offset 0.
func (l *Lowerer) lowerLval(c *fnContext, expr ast.Expr) int {
	ident, ok := expr.(*ast.IdentExpr)
	if !ok {
		panic("not an lvalue")
	}

	if _, seen := c.offsets[ident.Name]; !seen {
		c.offsets[ident.Name] = c.stackSize
		c.stackSize += abi.WordSize
	}

	r := c.freshReg()
	c.emit(Instr{Op: Mov, Lhs: r, Rhs: frameBase})
	c.emit(Instr{Op: SubImm, Lhs: r, Rhs: c.offsets[ident.Name]})
	return r
}

func (l *Lowerer) lowerCall(c *fnContext, call *ast.CallExpr) int {
	if len(call.Args) > abi.MaxCallArgs {
		panic(fmt.Sprintf("too many arguments in call to %s", call.Name))
	}

	// Arguments lower left to right so their side effects run in
	// source order. Their registers die once passed; the result
	// register stays live for the caller.
	args := make([]int, 0, len(call.Args))
	for _, arg := range call.Args {
		args = append(args, l.lowerExpr(c, arg))
	}

	r := c.freshReg()
	c.emit(Instr{Op: Call, Lhs: r, Call: &CallInfo{Name: call.Name, Args: args}})
	for _, arg := range args {
		c.emit(Instr{Op: Kill, Lhs: arg})
	}
	return r
}

// lowerAssign stores the right-hand value through the target's
// address. The value register dies here; the address register is the
// expression's result.
func (l *Lowerer) lowerAssign(c *fnContext, node *ast.BinaryExpr) int {
	rhs := l.lowerExpr(c, node.Right)
	lhs := l.lowerLval(c, node.Left)
	c.emit(Instr{Op: Store, Lhs: lhs, Rhs: rhs})
	c.emit(Instr{Op: Kill, Lhs: rhs})
	return lhs
}

func (l *Lowerer) lowerBinOp(c *fnContext, node *ast.BinaryExpr) int {
	var op Op
	switch node.Op {
	case "+":
		op = Add
	case "-":
		op = Sub
	case "*":
		op = Mul
	case "/":
		op = Div
	default:
		panic(fmt.Sprintf("unknown node: %s", node))
	}

	lhs := l.lowerExpr(c, node.Left)
	rhs := l.lowerExpr(c, node.Right)
	c.emit(Instr{Op: op, Lhs: lhs, Rhs: rhs})
	c.emit(Instr{Op: Kill, Lhs: rhs})
	return lhs
}
