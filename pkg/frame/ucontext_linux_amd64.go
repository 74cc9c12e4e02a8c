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
// context saved when a signal is delivered.
type SignalContext struct {
	R8      uint64
	R9      uint64
	R10     uint64
	R11     uint64
	R12     uint64
	R13     uint64
	R14     uint64
	R15     uint64
	Rdi     uint64
	Rsi     uint64
	Rbp     uint64
	Rbx     uint64
	Rdx     uint64
	Rax     uint64
	Rcx     uint64
	Rsp     uint64
	Rip     uint64
	Eflags  uint64
	Cs      uint16
	Gs      uint16
	Fs      uint16
	Ss      uint16
	Err     uint64
	Trapno  uint64
	Oldmask uint64
	Cr2     uint64
	// Address of the saved floating point state, not followed.
	Fpstate  uint64
	Reserved [8]uint64
}

// UContext is equivalent to ucontext_t on linux/amd64, up to the machine
// context.
type UContext struct {
	Flags    uint64
	Link     uint64
	Stack    SignalStack
	MContext SignalContext
}

func stateFromSignalContext(uc *UContext) (State, error) {
	if uc == nil {
		return State{}, ErrInvalid
	}
	mc := &uc.MContext
	var st State
	st.regs[regnum.AMD64_Rax] = mc.Rax
	st.regs[regnum.AMD64_Rdx] = mc.Rdx
	st.regs[regnum.AMD64_Rcx] = mc.Rcx
	st.regs[regnum.AMD64_Rbx] = mc.Rbx
	st.regs[regnum.AMD64_Rsi] = mc.Rsi
	st.regs[regnum.AMD64_Rdi] = mc.Rdi
	st.regs[regnum.AMD64_Rbp] = mc.Rbp
	st.regs[regnum.AMD64_Rsp] = mc.Rsp
	st.regs[regnum.AMD64_R8] = mc.R8
	st.regs[regnum.AMD64_R9] = mc.R9
	st.regs[regnum.AMD64_R10] = mc.R10
	st.regs[regnum.AMD64_R11] = mc.R11
	st.regs[regnum.AMD64_R12] = mc.R12
	st.regs[regnum.AMD64_R13] = mc.R13
	st.regs[regnum.AMD64_R14] = mc.R14
	st.regs[regnum.AMD64_R15] = mc.R15
	st.regs[regnum.AMD64_Rip] = mc.Rip
	st.regs[regnum.AMD64_Rflags] = mc.Eflags
	st.regs[regnum.AMD64_Cs] = uint64(mc.Cs)
	st.regs[regnum.AMD64_Fs] = uint64(mc.Fs)
	st.regs[regnum.AMD64_Gs] = uint64(mc.Gs)
	return st, nil
}
