package frame

import (
	"encoding/binary"

	"github.com/go-delve/framewalk/pkg/regnum"
	"github.com/go-delve/framewalk/pkg/task"
)

const ptrSize = 8

// FramePointerReader walks the frame pointer chain.
//
// On both amd64 and arm64 a function that maintains a frame pointer saves
// its caller's frame pointer at [fp] and its return address at [fp+8]:
//
//	   (high address)
//	+-----------------+
//	|      .....      |
//	|  ReturnAddress  |
//	|   Caller's FP   |
//	+-----------------+ <---- FP
//	|      .....      |
//	   (low address)
//
// The frames it produces only have PC, SP and FP valid.
type FramePointerReader struct {
	buf [2 * ptrSize]byte
}

// ReadNext implements Reader.
func (r *FramePointerReader) ReadNext(t task.Task, cur, prev *Frame, next *Frame) error {
	fp := cur.State.FP()
	if fp == 0 {
		return ErrNoFrame
	}
	if fp%ptrSize != 0 {
		return ErrBadFrame
	}
	// The stack grows down, callers live at higher addresses.
	if prev != nil && fp <= prev.State.FP() {
		return ErrBadFrame
	}
	n, err := t.ReadMemory(r.buf[:], fp)
	if err != nil || n != len(r.buf) {
		return ErrBadFrame
	}
	savedFP := binary.LittleEndian.Uint64(r.buf[:ptrSize])
	ret := binary.LittleEndian.Uint64(r.buf[ptrSize:])
	if ret == 0 {
		return ErrNoFrame
	}
	if savedFP != 0 && savedFP <= fp {
		return ErrBadFrame
	}

	*next = Frame{}
	next.State.regs[regnum.PC] = ret
	next.State.regs[regnum.FP] = savedFP
	next.State.regs[regnum.SP] = fp + 2*ptrSize
	next.Valid.Set(regnum.PC)
	next.Valid.Set(regnum.FP)
	next.Valid.Set(regnum.SP)
	return nil
}
