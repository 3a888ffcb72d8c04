package ir

import (
	"fmt"
	"strings"
)

// CallInfo carries the payload of a Call instruction: the callee and
// the registers its arguments were lowered into.
type CallInfo struct {
	Name string
	Args []int
}

// Instr is one lowered instruction. Operand meaning depends on the
// opcode; see OperandKind. Call is set only when Op is Call.
// Instructions are immutable once emitted.
type Instr struct {
	Op   Op
	Lhs  int
	Rhs  int
	Call *CallInfo
}

// Function is one lowered function: the instruction list in emission
// order plus the frame bytes its parameters and locals occupy.
type Function struct {
	Name      string
	Code      []Instr
	StackSize int
}

// String renders the instruction in the fixed textual form tooling
// expects. The call form keeps its historical leading separators.
func (i Instr) String() string {
	info := OpInfo(i.Op)

	switch info.Kind {
	case OperandNoarg:
		return info.Mnemonic
	case OperandReg:
		return fmt.Sprintf("%s r%d", info.Mnemonic, i.Lhs)
	case OperandImm:
		return fmt.Sprintf("%s %d", info.Mnemonic, i.Lhs)
	case OperandJmp, OperandLabel:
		return fmt.Sprintf(".L%d=>", i.Lhs)
	case OperandRegReg:
		return fmt.Sprintf("%s r%d, r%d", info.Mnemonic, i.Lhs, i.Rhs)
	case OperandRegImm:
		return fmt.Sprintf("%s r%d, %d", info.Mnemonic, i.Lhs, i.Rhs)
	case OperandRegLabel:
		return fmt.Sprintf("%s r%d, .L%d", info.Mnemonic, i.Lhs, i.Rhs)
	case OperandCall:
		var sb strings.Builder
		fmt.Fprintf(&sb, ", r%d = %s(", i.Lhs, i.Call.Name)
		for _, arg := range i.Call.Args {
			fmt.Fprintf(&sb, ", r%d", arg)
		}
		sb.WriteString(")")
		return sb.String()
	default:
		panic("invalid instruction")
	}
}
