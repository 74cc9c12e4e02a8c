package regnum

import "fmt"

// The first 17 ids follow the mapping between hardware registers and DWARF
// registers specified in the System V ABI AMD64 Architecture Processor
// Supplement v. 1.0 page 61, figure 3.36
// https://gitlab.com/x86-psABIs/x86-64-ABI/-/tree/master

const (
	AMD64_Rax    ID = 0
	AMD64_Rdx    ID = 1
	AMD64_Rcx    ID = 2
	AMD64_Rbx    ID = 3
	AMD64_Rsi    ID = 4
	AMD64_Rdi    ID = 5
	AMD64_Rbp    ID = 6
	AMD64_Rsp    ID = 7
	AMD64_R8     ID = 8
	AMD64_R9     ID = 9
	AMD64_R10    ID = 10
	AMD64_R11    ID = 11
	AMD64_R12    ID = 12
	AMD64_R13    ID = 13
	AMD64_R14    ID = 14
	AMD64_R15    ID = 15
	AMD64_Rip    ID = 16
	AMD64_Rflags ID = 17
	AMD64_Cs     ID = 18
	AMD64_Fs     ID = 19
	AMD64_Gs     ID = 20

	// AMD64Count is the number of registers tracked on amd64.
	AMD64Count = 21
)

var amd64Names = [AMD64Count]string{
	AMD64_Rax:    "rax",
	AMD64_Rdx:    "rdx",
	AMD64_Rcx:    "rcx",
	AMD64_Rbx:    "rbx",
	AMD64_Rsi:    "rsi",
	AMD64_Rdi:    "rdi",
	AMD64_Rbp:    "rbp",
	AMD64_Rsp:    "rsp",
	AMD64_R8:     "r8",
	AMD64_R9:     "r9",
	AMD64_R10:    "r10",
	AMD64_R11:    "r11",
	AMD64_R12:    "r12",
	AMD64_R13:    "r13",
	AMD64_R14:    "r14",
	AMD64_R15:    "r15",
	AMD64_Rip:    "rip",
	AMD64_Rflags: "rflags",
	AMD64_Cs:     "cs",
	AMD64_Fs:     "fs",
	AMD64_Gs:     "gs",
}

// AMD64NameToID maps lower case register names to their id. "eflags" and
// "pc", "sp", "fp" are accepted as aliases.
var AMD64NameToID = func() map[string]ID {
	r := make(map[string]ID, AMD64Count+4)
	for id, name := range amd64Names {
		r[name] = ID(id)
	}
	r["eflags"] = AMD64_Rflags
	r["pc"] = AMD64_Rip
	r["sp"] = AMD64_Rsp
	r["fp"] = AMD64_Rbp
	return r
}()

// AMD64ToName returns the name of register id.
func AMD64ToName(id ID) string {
	if int(id) < len(amd64Names) {
		return amd64Names[id]
	}
	return fmt.Sprintf("unknown%d", id)
}
