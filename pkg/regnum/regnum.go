// Package regnum defines the register numbering used by the frame walker.
//
// Each supported architecture has a dense table of register ids starting at
// zero. The general purpose registers keep their DWARF numbers so that a
// dump produced by the walker can be matched against unwind tables produced
// by other tools; registers that have no DWARF number are appended after
// them. The table for the architecture being built is exported through
// Count, PC, SP, FP and ToName.
package regnum

// ID identifies a register within the table of one architecture.
type ID uint8
