package semantic

import (
	"sumi/internal/ast"
	"sumi/internal/errors"
)

type Analyzer struct {
	program        *ast.Program
	errors         []errors.CompilerError   // All errors with suggestions and proper formatting
	symbols        *SymbolTable             // Program-level names, one child table per function body
	localFunctions map[string]*ast.Function // Functions defined in this program
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		errors:         make([]errors.CompilerError, 0),
		localFunctions: make(map[string]*ast.Function),
	}
}

// SemanticError provides backward compatibility with tests
type SemanticError struct {
	Message  string
	Position ast.Position
}

func (a *Analyzer) Analyze(program *ast.Program) []SemanticError {
	a.program = program
	a.errors = make([]errors.CompilerError, 0)
	a.localFunctions = make(map[string]*ast.Function) // Reset for each analysis
	a.symbols = NewSymbolTable(nil)                   // Root scope for program-level declarations

	a.analyzeProgram(program)

	// Convert errors to SemanticError format for test compatibility
	compatibilityErrors := make([]SemanticError, len(a.errors))
	for i, err := range a.errors {
		compatibilityErrors[i] = SemanticError{
			Message:  err.Message,
			Position: err.Position,
		}
	}
	return compatibilityErrors
}

// GetErrors returns all errors with suggestions and proper formatting
func (a *Analyzer) GetErrors() []errors.CompilerError {
	return a.errors
}

func (a *Analyzer) analyzeProgram(program *ast.Program) {
	// Two-pass analysis prevents forward reference errors: every function
	// name must be known before call sites in earlier functions can be
	// checked for arity.
	for _, item := range program.Items {
		fn, ok := item.(*ast.Function)
		if !ok {
			a.addError("only function definitions are allowed at the top level", item.NodePos())
			continue
		}

		if a.symbols.LookupLocal(fn.Name.Value) != nil {
			a.addCompilerError(errors.DuplicateDeclaration(fn.Name.Value, fn.NodePos()))
			continue
		}
		a.symbols.Define(fn.Name.Value, SymbolFunction, fn, fn.NodePos())
		a.localFunctions[fn.Name.Value] = fn
	}

	for _, item := range program.Items {
		if fn, ok := item.(*ast.Function); ok {
			a.analyzeFunction(fn)
		}
	}
}

// functionScope tracks the flat variable namespace of one function body.
// Nested blocks do not open scopes: every name lives in the same frame,
// exactly as the lowering pass will lay it out.
type functionScope struct {
	fn       *ast.Function
	symbols  *SymbolTable
	assigned map[string]bool // names that have been written, params included
	warned   map[string]bool // names already reported as read-before-assign
}

func (s *functionScope) assignedNames() []string {
	names := make([]string, 0, len(s.assigned))
	for name := range s.assigned {
		names = append(names, name)
	}
	return names
}

func (a *Analyzer) analyzeFunction(fn *ast.Function) {
	scope := &functionScope{
		fn:       fn,
		symbols:  NewSymbolTable(a.symbols),
		assigned: make(map[string]bool),
		warned:   make(map[string]bool),
	}

	for _, param := range fn.Params {
		ident, ok := param.(*ast.IdentExpr)
		if !ok {
			a.addCompilerError(errors.InvalidParameter(fn.Name.Value, param.NodePos()))
			continue
		}

		if scope.symbols.LookupLocal(ident.Name) != nil {
			a.addCompilerError(errors.DuplicateDeclaration(ident.Name, ident.NodePos()))
			continue
		}
		scope.symbols.Define(ident.Name, SymbolParameter, ident, ident.NodePos())
		scope.assigned[ident.Name] = true
	}

	a.analyzeBlock(scope, fn.Body)
}

func (a *Analyzer) addError(message string, pos ast.Position) {
	a.errors = append(a.errors, errors.CompilerError{
		Level:    errors.Error,
		Message:  message,
		Position: pos,
		Length:   1,
	})
}

func (a *Analyzer) addCompilerError(err errors.CompilerError) {
	a.errors = append(a.errors, err)
}
