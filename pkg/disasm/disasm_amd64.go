package disasm

import (
	"golang.org/x/arch/x86/x86asm"
)

const maxInstructionLen = 15

// Decode decodes the instruction at the start of mem, which was read from
// address pc, and returns its GNU syntax text and its length.
func Decode(mem []byte, pc uint64) (string, int, error) {
	if len(mem) == 0 {
		return "", 0, ErrShort
	}
	inst, err := x86asm.Decode(mem, 64)
	if err != nil {
		if err == x86asm.ErrTruncated {
			return "", 0, ErrShort
		}
		return "?", 1, err
	}
	return x86asm.GNUSyntax(inst, pc, nil), inst.Len, nil
}
