package ir

import "testing"

// ============================================================================
// Opcode Metadata
// ============================================================================

func TestOpInfoTable(t *testing.T) {
	tests := []struct {
		op       Op
		mnemonic string
		kind     OperandKind
	}{
		{Add, "ADD", OperandRegReg},
		{Sub, "SUB", OperandRegReg},
		{Mul, "MUL", OperandRegReg},
		{Div, "DIV", OperandRegReg},
		{Imm, "MOV", OperandRegImm},
		{SubImm, "SUB", OperandRegImm},
		{Mov, "MOV", OperandRegReg},
		{Label, "", OperandLabel},
		{Jmp, "", OperandJmp},
		{Unless, "UNLESS", OperandRegLabel},
		{Call, "CALL", OperandCall},
		{Return, "RET", OperandReg},
		{Load, "LOAD", OperandRegReg},
		{Store, "STORE", OperandRegReg},
		{Kill, "KILL", OperandReg},
		{SaveArgs, "SAVE_ARGS", OperandImm},
		{Nop, "NOP", OperandNoarg},
	}

	for _, tt := range tests {
		info := OpInfo(tt.op)
		if info.Mnemonic != tt.mnemonic {
			t.Errorf("OpInfo(%d).Mnemonic = %q, want %q", tt.op, info.Mnemonic, tt.mnemonic)
		}
		if info.Kind != tt.kind {
			t.Errorf("OpInfo(%d).Kind = %d, want %d", tt.op, info.Kind, tt.kind)
		}
	}
}

func TestOpInfoPanicsOnUnknownOpcode(t *testing.T) {
	expectPanic(t, "invalid instruction", func() {
		OpInfo(Op(99))
	})
}

// ============================================================================
// Mnemonic Lookup
// ============================================================================

func TestOpsForSharedMnemonics(t *testing.T) {
	// MOV and SUB each cover two opcodes; the operand shape tells them
	// apart.
	mov := OpsForMnemonic("MOV")
	if len(mov) != 2 || mov[0] != Imm || mov[1] != Mov {
		t.Errorf("OpsForMnemonic(MOV) = %v, want [Imm Mov]", mov)
	}

	sub := OpsForMnemonic("SUB")
	if len(sub) != 2 || sub[0] != Sub || sub[1] != SubImm {
		t.Errorf("OpsForMnemonic(SUB) = %v, want [Sub SubImm]", sub)
	}
}

func TestOpsForMnemonicRoundTrip(t *testing.T) {
	for op := Add; op <= Nop; op++ {
		mnemonic := OpInfo(op).Mnemonic
		if mnemonic == "" {
			continue
		}

		family := OpsForMnemonic(mnemonic)
		found := false
		for _, member := range family {
			if member == op {
				found = true
			}
			if OpInfo(member).Mnemonic != mnemonic {
				t.Errorf("family for %q contains opcode %d with mnemonic %q", mnemonic, member, OpInfo(member).Mnemonic)
			}
		}
		if !found {
			t.Errorf("OpsForMnemonic(%q) = %v does not contain opcode %d", mnemonic, family, op)
		}
	}
}

func TestOpsForMnemonicUnknown(t *testing.T) {
	if ops := OpsForMnemonic(""); ops != nil {
		t.Errorf("OpsForMnemonic(\"\") = %v, want nil", ops)
	}
	if ops := OpsForMnemonic("BOGUS"); len(ops) != 0 {
		t.Errorf("OpsForMnemonic(BOGUS) = %v, want empty", ops)
	}
}
