package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"sumi/internal/ast"
)

func TestErrorReporter(t *testing.T) {
	source := `main() {
    x = donate(1, 2, 3, 4, 5, 6, 7);
    return x;
}`

	reporter := NewErrorReporter("test.sm", source)

	err := TooManyArguments("donate", 7, 6, ast.Position{Line: 2, Column: 9})
	formatted := reporter.FormatError(err)

	// Should contain error level and code
	assert.Contains(t, formatted, "error["+ErrorTooManyArguments+"]")
	assert.Contains(t, formatted, "donate")
	assert.Contains(t, formatted, "limit is 6")

	// Should contain location
	assert.Contains(t, formatted, "test.sm:2:9")

	// Should contain the note about registers
	assert.Contains(t, formatted, "only 6 exist")
}

func TestDuplicateDeclarationError(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 5}

	err := DuplicateDeclaration("main", pos)
	assert.Equal(t, ErrorDuplicateDeclaration, err.Code)
	assert.Contains(t, err.Message, "main")
	assert.Equal(t, len("main"), err.Length)
	assert.True(t, len(err.Suggestions) >= 1)
}

func TestInvalidArgumentsError(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 5}

	err := InvalidArguments("add", 2, 3, pos)
	assert.Equal(t, ErrorInvalidArguments, err.Code)
	assert.Contains(t, err.Message, "expects 2 arguments, got 3")
	assert.Contains(t, err.Suggestions[0].Message, "exactly 2 argument")
}

func TestUnassignedVariableWarning(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 5}

	// Test with a similar assigned name
	err := UnassignedVariable("balace", pos, []string{"balance", "total"})
	assert.Equal(t, WarningUnassignedVariable, err.Code)
	assert.Equal(t, Warning, err.Level)
	assert.Contains(t, err.Message, "balace")
	assert.Len(t, err.Suggestions, 1)
	assert.Contains(t, err.Suggestions[0].Message, "did you mean 'balance'")

	// Test without similar names
	err = UnassignedVariable("xyz", pos, []string{"balance"})
	assert.Len(t, err.Suggestions, 1)
	assert.Contains(t, err.Suggestions[0].Message, "assign the variable")
}

func TestNoEffectWarning(t *testing.T) {
	err := NoEffect(ast.Position{Line: 3, Column: 5})
	assert.Equal(t, WarningNoEffect, err.Code)
	assert.Equal(t, Warning, err.Level)
	assert.Contains(t, err.Message, "no effect")
}

func TestWarningFormatting(t *testing.T) {
	source := `1 + 2;`
	reporter := NewErrorReporter("test.sm", source)

	err := NoEffect(ast.Position{Line: 1, Column: 1})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "warning[W0001]")
	assert.Contains(t, formatted, "no effect")
}

func TestErrorMarkerCreation(t *testing.T) {
	source := `variable = value;`
	reporter := NewErrorReporter("test.sm", source)

	marker := reporter.createMarker(5, 8, Error)

	// Should have correct spacing and marker length
	spaces := strings.Count(marker, " ")
	assert.Equal(t, 4, spaces) // column 5 means 4 spaces before
	carets := strings.Count(marker, "^")
	assert.Equal(t, 8, carets) // 8 character length
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("hello", "hello"))
	assert.Equal(t, 1, levenshteinDistance("hello", "hallo"))
	assert.Equal(t, 1, levenshteinDistance("hello", "helo"))
	assert.Equal(t, 5, levenshteinDistance("hello", ""))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
}

func TestSimilarNameFinding(t *testing.T) {
	candidates := []string{"balance", "amount", "total", "balanceOf", "xyz"}

	// Should find similar names
	similar := findSimilarNames("balace", candidates)
	assert.Contains(t, similar, "balance")
	assert.NotContains(t, similar, "xyz") // too different

	// Should not find similar names if none are close enough
	similar = findSimilarNames("verydifferent", candidates)
	assert.Empty(t, similar)
}

func TestErrorLevels(t *testing.T) {
	source := `test`
	reporter := NewErrorReporter("test.sm", source)
	pos := ast.Position{Line: 1, Column: 1}

	errorErr := CompilerError{Level: Error, Message: "test error", Position: pos}
	warningErr := CompilerError{Level: Warning, Message: "test warning", Position: pos}

	errorFormatted := reporter.FormatError(errorErr)
	warningFormatted := reporter.FormatError(warningErr)

	assert.Contains(t, errorFormatted, "error:")
	assert.Contains(t, warningFormatted, "warning:")
}

func TestIsWarning(t *testing.T) {
	assert.True(t, IsWarning(WarningNoEffect))
	assert.True(t, IsWarning(WarningUnassignedVariable))
	assert.False(t, IsWarning(ErrorDuplicateDeclaration))
	assert.False(t, IsWarning(ErrorTooManyArguments))
}

func TestErrorCategories(t *testing.T) {
	assert.Equal(t, "Semantic Analysis", GetErrorCategory(ErrorDuplicateDeclaration))
	assert.Equal(t, "Warning", GetErrorCategory(WarningNoEffect))
	assert.Equal(t, "Unknown", GetErrorCategory("X9999"))
}
