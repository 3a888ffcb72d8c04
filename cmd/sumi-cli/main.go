// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"sumi/internal/ast"
	"sumi/internal/errors"
	"sumi/internal/ir"
	"sumi/internal/parser"
	"sumi/internal/semantic"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: sumi <file.sm>")
		os.Exit(1)
	}

	startTime := time.Now()
	path := os.Args[1]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	program, parseErrors := parser.ParseSource(path, string(source))

	// Report parser errors
	for _, parseErr := range parseErrors {
		fmt.Print(FormatParseError(path, parseErr, string(source)))
	}

	// Run semantic analysis if parsing succeeded
	hasErrors := len(parseErrors) > 0
	if program != nil {
		errorReporter := errors.NewErrorReporter(path, string(source))

		analyzer := semantic.NewAnalyzer()
		analyzer.Analyze(program)

		// Report findings; warnings print but do not block lowering
		for _, compilerErr := range analyzer.GetErrors() {
			fmt.Print(errorReporter.FormatError(compilerErr))
			if compilerErr.Level == errors.Error {
				hasErrors = true
			}
		}
	}

	// Calculate processing time
	duration := time.Since(startTime)
	formattedDuration := formatDuration(duration)

	// Only lower and print the instruction listing if no errors
	if !hasErrors {
		funcs := ir.NewLowerer().Lower(program)
		ir.Dump(os.Stdout, funcs)
		color.Green("Successfully lowered %s in %s", path, formattedDuration)
	} else {
		color.Red("Compilation failed after %s", formattedDuration)
		os.Exit(1)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}

func FormatParseError(path string, err parser.ParseError, source string) string {
	return formatError(path, err.Message, err.Position, 1, source)
}

func formatError(path, message string, pos ast.Position, length int, source string) string {
	lines := strings.Split(source, "\n")

	var lineContent string
	if pos.Line-1 < len(lines) && pos.Line-1 >= 0 {
		lineContent = lines[pos.Line-1]
	}

	// Prepare the underline
	marker := strings.Repeat(" ", max(0, pos.Column-1)) +
		strings.Repeat("^", max(1, length))

	// Color setup
	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	// Compute width for line number column
	lineNumberWidth := len(fmt.Sprintf("%d", pos.Line))
	if lineNumberWidth < 3 {
		lineNumberWidth = 3 // minimum width for visual alignment
	}
	indent := strings.Repeat(" ", lineNumberWidth)

	return fmt.Sprintf(
		"%s: %s\n%s┌─ %s:%d:%d\n%s│\n%3d│%s\n%s│%s\n\n",
		red("error"),
		message,
		indent,
		path, pos.Line, pos.Column,
		indent,
		pos.Line, lineContent,
		indent,
		bold(marker),
	)
}
