// SPDX-License-Identifier: Apache-2.0

// Package repl implements an interactive shell that lowers one line of
// statements at a time inside a synthetic main function.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"sumi/internal/errors"
	"sumi/internal/ir"
	"sumi/internal/parser"
	"sumi/internal/semantic"
)

const PROMPT = ">> "

// Start reads statement lines from in until EOF, lowering each one and
// writing the resulting instruction listing to out. One lowerer serves
// the whole session, so label ids stay unique across lines.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	lowerer := ir.NewLowerer()

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		evalLine(out, lowerer, line)
	}
}

func evalLine(out io.Writer, lowerer *ir.Lowerer, line string) {
	source := fmt.Sprintf("main() { %s }", line)

	program, parseErrors := parser.ParseSource("repl", source)
	if len(parseErrors) > 0 {
		for _, parseErr := range parseErrors {
			fmt.Fprintf(out, "parse error: %s\n", parseErr.Message)
		}
		return
	}

	reporter := errors.NewErrorReporter("repl", source)
	analyzer := semantic.NewAnalyzer()
	analyzer.Analyze(program)

	blocked := false
	for _, compilerErr := range analyzer.GetErrors() {
		fmt.Fprint(out, reporter.FormatError(compilerErr))
		if compilerErr.Level == errors.Error {
			blocked = true
		}
	}
	if blocked {
		return
	}

	ir.Dump(out, lowerer.Lower(program))
}
