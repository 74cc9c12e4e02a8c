package regnum

import "fmt"

// Ids 0 through 32 follow the mapping between hardware registers and DWARF
// registers specified in the DWARF for the ARM® Architecture page 7,
// Table 1
// http://infocenter.arm.com/help/topic/com.arm.doc.ihi0040b/IHI0040B_aadwarf.pdf

const (
	ARM64_X0     ID = 0  // X1 through X28 follow
	ARM64_BP     ID = 29 // also X29
	ARM64_LR     ID = 30 // also X30
	ARM64_SP     ID = 31
	ARM64_PC     ID = 32
	ARM64_Pstate ID = 33

	// ARM64Count is the number of registers tracked on arm64.
	ARM64Count = 34
)

var arm64Names = func() (names [ARM64Count]string) {
	for i := ARM64_X0; i < ARM64_BP; i++ {
		names[i] = fmt.Sprintf("x%d", i)
	}
	names[ARM64_BP] = "fp"
	names[ARM64_LR] = "lr"
	names[ARM64_SP] = "sp"
	names[ARM64_PC] = "pc"
	names[ARM64_Pstate] = "pstate"
	return names
}()

// ARM64NameToID maps lower case register names to their id. "x29" and
// "x30" are accepted as aliases of fp and lr.
var ARM64NameToID = func() map[string]ID {
	r := make(map[string]ID, ARM64Count+2)
	for id, name := range arm64Names {
		r[name] = ID(id)
	}
	r["x29"] = ARM64_BP
	r["x30"] = ARM64_LR
	r["cpsr"] = ARM64_Pstate
	return r
}()

// ARM64ToName returns the name of register id.
func ARM64ToName(id ID) string {
	if int(id) < len(arm64Names) {
		return arm64Names[id]
	}
	return fmt.Sprintf("unknown%d", id)
}
