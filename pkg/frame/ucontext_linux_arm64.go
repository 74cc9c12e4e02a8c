package frame

import "github.com/go-delve/framewalk/pkg/regnum"

// SignalStack is equivalent to stack_t.
type SignalStack struct {
	Sp    uint64
	Flags int32
	_     [4]byte
	Size  uint64
}

// SignalContext is equivalent to the kernel's struct sigcontext, the machine
// context saved when a signal is delivered. The extension records that
// follow it are not described.
type SignalContext struct {
	FaultAddress uint64
	Regs         [31]uint64
	Sp           uint64
	Pc           uint64
	Pstate       uint64
}

// UContext is equivalent to ucontext_t on linux/arm64, up to the machine
// context. The signal mask is padded to 1024 bits and the machine context is
// 16 byte aligned.
type UContext struct {
	Flags    uint64
	Link     uint64
	Stack    SignalStack
	Sigmask  uint64
	_        [120]byte
	_        [8]byte
	MContext SignalContext
}

func stateFromSignalContext(uc *UContext) (State, error) {
	if uc == nil {
		return State{}, ErrInvalid
	}
	mc := &uc.MContext
	var st State
	copy(st.regs[regnum.ARM64_X0:regnum.ARM64_SP], mc.Regs[:])
	st.regs[regnum.ARM64_SP] = mc.Sp
	st.regs[regnum.ARM64_PC] = mc.Pc
	st.regs[regnum.ARM64_Pstate] = mc.Pstate
	return st, nil
}
