// Package task provides references to the address space of a target
// process and reads from its memory.
package task

// MemoryReader is like io.ReaderAt, but the offset is a uint64 so that it
// can address all of 64-bit memory.
type MemoryReader interface {
	// ReadMemory is just like io.ReaderAt.ReadAt.
	ReadMemory(buf []byte, addr uint64) (n int, err error)
}

// Task is a counted reference to the address space of a process.
//
// Every Retain must be paired with exactly one Release. Releasing the last
// reference frees the operating system resources backing the task, after
// which ReadMemory must not be called.
type Task interface {
	MemoryReader
	Retain()
	Release()
}
