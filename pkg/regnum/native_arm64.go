package regnum

// Register table of the arm64 build.
const (
	Count = ARM64Count
	PC    = ARM64_PC
	SP    = ARM64_SP
	FP    = ARM64_BP
)

// ToName returns the name of register id in the table of this build.
func ToName(id ID) string {
	return ARM64ToName(id)
}

// FromName returns the id of the register called name, case sensitive.
func FromName(name string) (ID, bool) {
	id, ok := ARM64NameToID[name]
	return id, ok
}
