package ir

// Op identifies an instruction. The set is closed: lowering emits
// nothing outside it and later stages may rely on that.
type Op int

const (
	Add Op = iota
	Sub
	Mul
	Div
	Imm
	SubImm
	Mov
	Label
	Jmp
	Unless
	Call
	Return
	Load
	Store
	Kill
	SaveArgs
	Nop
)

// OperandKind describes which operand fields an instruction uses and
// how they render.
type OperandKind int

const (
	OperandNoarg    OperandKind = iota // no operands
	OperandReg                         // Lhs is a register
	OperandImm                         // Lhs is an immediate
	OperandJmp                         // Lhs is a target label id
	OperandLabel                       // Lhs is the label id being defined
	OperandRegReg                      // Lhs and Rhs are registers
	OperandRegImm                      // Lhs is a register, Rhs an immediate
	OperandRegLabel                    // Lhs is a register, Rhs a label id
	OperandCall                        // Lhs is the result register, Call holds the rest
)

// Info is the display metadata of an opcode: its mnemonic and operand
// shape. Label and Jmp render through their own forms and carry no
// mnemonic.
type Info struct {
	Mnemonic string
	Kind     OperandKind
}

// OpInfo returns the metadata for op. The opcode set is closed, so a
// miss can only mean a corrupted instruction.
func OpInfo(op Op) Info {
	switch op {
	case Add:
		return Info{"ADD", OperandRegReg}
	case Sub:
		return Info{"SUB", OperandRegReg}
	case Mul:
		return Info{"MUL", OperandRegReg}
	case Div:
		return Info{"DIV", OperandRegReg}
	case Imm:
		return Info{"MOV", OperandRegImm}
	case SubImm:
		return Info{"SUB", OperandRegImm}
	case Mov:
		return Info{"MOV", OperandRegReg}
	case Label:
		return Info{"", OperandLabel}
	case Jmp:
		return Info{"", OperandJmp}
	case Unless:
		return Info{"UNLESS", OperandRegLabel}
	case Call:
		return Info{"CALL", OperandCall}
	case Return:
		return Info{"RET", OperandReg}
	case Load:
		return Info{"LOAD", OperandRegReg}
	case Store:
		return Info{"STORE", OperandRegReg}
	case Kill:
		return Info{"KILL", OperandReg}
	case SaveArgs:
		return Info{"SAVE_ARGS", OperandImm}
	case Nop:
		return Info{"NOP", OperandNoarg}
	default:
		panic("invalid instruction")
	}
}

// OpsForMnemonic returns every opcode that renders with the given
// mnemonic. MOV and SUB each cover two opcodes; the operand shape
// tells those apart.
func OpsForMnemonic(mnemonic string) []Op {
	if mnemonic == "" {
		return nil
	}

	var ops []Op
	for op := Add; op <= Nop; op++ {
		if OpInfo(op).Mnemonic == mnemonic {
			ops = append(ops, op)
		}
	}
	return ops
}
