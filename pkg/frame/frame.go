package frame

import "github.com/go-delve/framewalk/pkg/regnum"

// Frame is the register state of one level of the call stack together with
// the set of registers whose value is known to be correct for it.
type Frame struct {
	State State
	Valid RegisterSet
}

// Reg returns the value of register id, or ErrNotSupported if it is not
// valid in f.
func (f *Frame) Reg(id regnum.ID) (uint64, error) {
	if !f.Valid.IsSet(id) {
		return 0, ErrNotSupported
	}
	return f.State.Reg(id), nil
}
