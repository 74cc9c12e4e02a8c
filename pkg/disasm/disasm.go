// Package disasm renders the machine instruction found at a frame's program
// counter. Only the architecture framewalk was built for is supported and no
// symbol lookup is performed: branch targets are printed as addresses.
package disasm

import "errors"

// ErrShort is returned when mem does not hold a whole instruction.
var ErrShort = errors.New("truncated instruction")

// MaxInstructionLen is the number of bytes that must be read at pc to be
// sure that Decode sees a whole instruction.
const MaxInstructionLen = maxInstructionLen
