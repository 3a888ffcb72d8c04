package errors

// Error codes for the sumi compiler
// These codes are used in error messages and documentation
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// E0001-E0099: Semantic analysis errors
// E0100-E0199: Parser errors
// E0200-E0299: Lowering errors
// W0001-W0099: Warning codes

const (
	// Currently used semantic analysis errors (E0001-E0005)

	// E0001: Duplicate declaration errors
	ErrorDuplicateDeclaration = "E0001"

	// E0002: Function call argument errors
	ErrorInvalidArguments = "E0002"

	// E0003: Argument register exhaustion errors
	ErrorTooManyArguments = "E0003"

	// E0004: Assignment validation errors
	ErrorInvalidAssignment = "E0004"

	// E0005: Parameter validation errors
	ErrorInvalidParameter = "E0005"

	// Warning codes

	// W0001: Statement without effect warning
	WarningNoEffect = "W0001"

	// W0002: Variable read before assignment warning
	WarningUnassignedVariable = "W0002"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorDuplicateDeclaration:
		return "Duplicate declaration found"
	case ErrorInvalidArguments:
		return "Function call has the wrong number of arguments"
	case ErrorTooManyArguments:
		return "Function call passes more arguments than registers exist for"
	case ErrorInvalidAssignment:
		return "Assignment target is not assignable"
	case ErrorInvalidParameter:
		return "Function parameter is not a plain identifier"
	case WarningNoEffect:
		return "Statement computes a value that is never used"
	case WarningUnassignedVariable:
		return "Variable is read before any assignment"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than an error
func IsWarning(code string) bool {
	return len(code) > 0 && code[0] == 'W'
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0001" && code < "E0100":
		return "Semantic Analysis"
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0200" && code < "E0300":
		return "Lowering"
	case len(code) > 0 && code[0] == 'W':
		return "Warning"
	default:
		return "Unknown"
	}
}
