package disasm

import (
	"golang.org/x/arch/arm64/arm64asm"
)

const maxInstructionLen = 4

// Decode decodes the instruction at the start of mem, which was read from
// address pc, and returns its GNU syntax text and its length.
func Decode(mem []byte, pc uint64) (string, int, error) {
	if len(mem) < 4 {
		return "", 0, ErrShort
	}
	inst, err := arm64asm.Decode(mem)
	if err != nil {
		return "?", 4, err
	}
	return arm64asm.GNUSyntax(inst), 4, nil
}
