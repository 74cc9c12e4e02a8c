package task

import (
	"fmt"
	"os"
	"sync/atomic"

	sys "golang.org/x/sys/unix"
)

// Process is a Task backed by a process id. The process is pinned by a
// pidfd, when the kernel supports them, for as long as a reference is held.
type Process struct {
	pid  int
	fd   int
	refs atomic.Int32
}

// Open returns a task for process pid holding one reference, owned by the
// caller.
func Open(pid int) (*Process, error) {
	fd, err := sys.PidfdOpen(pid, 0)
	switch err {
	case nil:
	case sys.ENOSYS:
		fd = -1
	default:
		return nil, fmt.Errorf("could not open process %d: %w", pid, err)
	}
	p := &Process{pid: pid, fd: fd}
	p.refs.Store(1)
	return p, nil
}

// Self returns a task for the calling process.
func Self() (*Process, error) {
	return Open(os.Getpid())
}

// Pid returns the process id of p.
func (p *Process) Pid() int {
	return p.pid
}

// Refs returns the number of references currently held on p.
func (p *Process) Refs() int {
	return int(p.refs.Load())
}

// Retain acquires one more reference on p.
func (p *Process) Retain() {
	p.refs.Add(1)
}

// Release drops one reference on p, closing the pidfd with the last one.
func (p *Process) Release() {
	switch n := p.refs.Add(-1); {
	case n == 0:
		if p.fd >= 0 {
			sys.Close(p.fd)
			p.fd = -1
		}
	case n < 0:
		panic(fmt.Sprintf("task: process %d released more times than retained", p.pid))
	}
}

// ReadMemory reads len(buf) bytes at addr through process_vm_readv. A short
// count is returned without an error when the range crosses into unmapped
// memory.
func (p *Process) ReadMemory(buf []byte, addr uint64) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	local := [1]sys.Iovec{{Base: &buf[0]}}
	local[0].SetLen(len(buf))
	remote := [1]sys.RemoteIovec{{Base: uintptr(addr), Len: len(buf)}}
	n, err := sys.ProcessVMReadv(p.pid, local[:], remote[:], 0)
	if err != nil {
		return 0, err
	}
	return n, nil
}
