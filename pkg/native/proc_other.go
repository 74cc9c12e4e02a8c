//go:build !linux

package native

import (
	"errors"
	"fmt"

	"github.com/go-delve/framewalk/pkg/task"
)

var errUnsupported = errors.New("native process control is only supported on linux")

// Fault describes the signal that stopped a thread.
type Fault struct {
	TID    int
	Signal int
}

func (f Fault) String() string {
	return fmt.Sprintf("thread %d received signal %d", f.TID, f.Signal)
}

// Process is a process traced with ptrace.
type Process struct{}

func Launch(cmd []string, wd string) (*Process, error) { return nil, errUnsupported }
func Attach(pid int) (*Process, error)                 { return nil, errUnsupported }

func (p *Process) Do(fn func())                       { fn() }
func (p *Process) Pid() int                           { return 0 }
func (p *Process) Task() *task.Process                { return nil }
func (p *Process) Threads() []int                     { return nil }
func (p *Process) ContinueUntilFault() (Fault, error) { return Fault{}, errUnsupported }
func (p *Process) Detach() error                      { return errUnsupported }
func (p *Process) Kill() error                        { return errUnsupported }
