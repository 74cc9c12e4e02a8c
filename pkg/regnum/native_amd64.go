package regnum

// Register table of the amd64 build.
const (
	Count = AMD64Count
	PC    = AMD64_Rip
	SP    = AMD64_Rsp
	FP    = AMD64_Rbp
)

// ToName returns the name of register id in the table of this build.
func ToName(id ID) string {
	return AMD64ToName(id)
}

// FromName returns the id of the register called name, case sensitive.
func FromName(name string) (ID, bool) {
	id, ok := AMD64NameToID[name]
	return id, ok
}
