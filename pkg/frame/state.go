package frame

import "github.com/go-delve/framewalk/pkg/regnum"

// State is the register file of a thread, indexed by regnum.ID.
//
// States are copied by value from frame to frame; the walker never modifies
// one in place.
type State struct {
	regs [regnum.Count]uint64
}

// NewState returns a State holding regs.
func NewState(regs [regnum.Count]uint64) State {
	return State{regs: regs}
}

// Reg returns the value of register id, zero for ids outside of the table.
func (st State) Reg(id regnum.ID) uint64 {
	if int(id) >= regnum.Count {
		return 0
	}
	return st.regs[id]
}

// WithReg returns a copy of st where register id is set to v.
func (st State) WithReg(id regnum.ID, v uint64) State {
	if int(id) < regnum.Count {
		st.regs[id] = v
	}
	return st
}

// Regs returns a copy of the whole register file.
func (st State) Regs() [regnum.Count]uint64 {
	return st.regs
}

// PC returns the program counter.
func (st State) PC() uint64 { return st.regs[regnum.PC] }

// SP returns the stack pointer.
func (st State) SP() uint64 { return st.regs[regnum.SP] }

// FP returns the frame pointer.
func (st State) FP() uint64 { return st.regs[regnum.FP] }
