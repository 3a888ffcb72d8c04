package ir

import (
	"fmt"
	"io"
	"strings"
)

// Printer provides pretty-printing for lowered functions
type Printer struct {
	output strings.Builder
}

// NewPrinter creates a new IR printer
func NewPrinter() *Printer {
	return &Printer{}
}

// Print returns the string representation of the lowered functions
func Print(funcs []*Function) string {
	p := NewPrinter()
	p.printFunctions(funcs)
	return p.output.String()
}

// Dump writes the rendering of funcs to w
func Dump(w io.Writer, funcs []*Function) {
	fmt.Fprint(w, Print(funcs))
}

func (p *Printer) printFunctions(funcs []*Function) {
	for _, fn := range funcs {
		p.output.WriteString(fmt.Sprintf("%s():\n", fn.Name))
		for _, instr := range fn.Code {
			p.output.WriteString("  " + instr.String() + "\n")
		}
	}
}
