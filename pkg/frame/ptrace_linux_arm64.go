package frame

import (
	sys "golang.org/x/sys/unix"

	"github.com/go-delve/framewalk/pkg/regnum"
)

// stateFromThread fetches the registers of thread tid. The thread must be
// in a ptrace-stop and the call must come from the tracing OS thread.
func stateFromThread(tid int) (State, error) {
	var regs sys.PtraceRegsArm64
	if err := sys.PtraceGetRegsArm64(tid, &regs); err != nil {
		return State{}, result(ptraceError(err))
	}
	return StateFromPtraceRegs(&regs), nil
}

// StateFromPtraceRegs converts the general purpose registers returned by
// PTRACE_GETREGSET with NT_PRSTATUS.
func StateFromPtraceRegs(regs *sys.PtraceRegsArm64) State {
	var st State
	copy(st.regs[regnum.ARM64_X0:regnum.ARM64_SP], regs.Regs[:])
	st.regs[regnum.ARM64_SP] = regs.Sp
	st.regs[regnum.ARM64_PC] = regs.Pc
	st.regs[regnum.ARM64_Pstate] = regs.Pstate
	return st
}
