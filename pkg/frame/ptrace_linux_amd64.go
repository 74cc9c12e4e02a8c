package frame

import (
	sys "golang.org/x/sys/unix"

	"github.com/go-delve/framewalk/pkg/regnum"
)

// stateFromThread fetches the registers of thread tid. The thread must be
// in a ptrace-stop and the call must come from the tracing OS thread.
func stateFromThread(tid int) (State, error) {
	var regs sys.PtraceRegs
	if err := sys.PtraceGetRegs(tid, &regs); err != nil {
		return State{}, result(ptraceError(err))
	}
	return StateFromPtraceRegs(&regs), nil
}

// StateFromPtraceRegs converts the general purpose registers returned by
// PTRACE_GETREGS.
func StateFromPtraceRegs(regs *sys.PtraceRegs) State {
	var st State
	st.regs[regnum.AMD64_Rax] = regs.Rax
	st.regs[regnum.AMD64_Rdx] = regs.Rdx
	st.regs[regnum.AMD64_Rcx] = regs.Rcx
	st.regs[regnum.AMD64_Rbx] = regs.Rbx
	st.regs[regnum.AMD64_Rsi] = regs.Rsi
	st.regs[regnum.AMD64_Rdi] = regs.Rdi
	st.regs[regnum.AMD64_Rbp] = regs.Rbp
	st.regs[regnum.AMD64_Rsp] = regs.Rsp
	st.regs[regnum.AMD64_R8] = regs.R8
	st.regs[regnum.AMD64_R9] = regs.R9
	st.regs[regnum.AMD64_R10] = regs.R10
	st.regs[regnum.AMD64_R11] = regs.R11
	st.regs[regnum.AMD64_R12] = regs.R12
	st.regs[regnum.AMD64_R13] = regs.R13
	st.regs[regnum.AMD64_R14] = regs.R14
	st.regs[regnum.AMD64_R15] = regs.R15
	st.regs[regnum.AMD64_Rip] = regs.Rip
	st.regs[regnum.AMD64_Rflags] = regs.Eflags
	st.regs[regnum.AMD64_Cs] = regs.Cs
	st.regs[regnum.AMD64_Fs] = regs.Fs
	st.regs[regnum.AMD64_Gs] = regs.Gs
	return st
}
