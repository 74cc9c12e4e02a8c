//go:build !linux

package task

import (
	"errors"
	"os"
)

var errUnsupported = errors.New("process tasks are only supported on linux")

// Process is a Task backed by a process id.
type Process struct {
	pid int
}

// Open returns a task for process pid.
func Open(pid int) (*Process, error) {
	return nil, errUnsupported
}

// Self returns a task for the calling process.
func Self() (*Process, error) {
	return Open(os.Getpid())
}

func (p *Process) Pid() int  { return p.pid }
func (p *Process) Refs() int { return 0 }
func (p *Process) Retain()   {}
func (p *Process) Release()  {}

func (p *Process) ReadMemory(buf []byte, addr uint64) (int, error) {
	return 0, errUnsupported
}
