//go:build linux

package native

import (
	"errors"
	"fmt"
	"runtime"
	"sort"

	sys "golang.org/x/sys/unix"

	"github.com/go-delve/framewalk/pkg/logflags"
	"github.com/go-delve/framewalk/pkg/task"
)

var errDetached = errors.New("process detached")

// Fault describes the signal that stopped a thread.
type Fault struct {
	TID    int
	Signal sys.Signal
}

func (f Fault) String() string {
	return fmt.Sprintf("thread %d received %s", f.TID, sys.SignalName(f.Signal))
}

// Process is a process traced with ptrace.
//
// All ptrace requests have to come from the OS thread that attached to the
// target: Process runs them on a dedicated, locked, goroutine. Callers that
// need to issue their own ptrace requests, for example to read the
// registers of a stopped thread, must do so from a function passed to Do.
type Process struct {
	pid     int
	threads map[int]bool // tid -> stopped
	child   bool
	task    *task.Process
	log     logflags.Logger

	ptraceChan     chan func()
	ptraceDoneChan chan interface{}

	exited, detached bool
}

func newProcess(pid int) *Process {
	p := &Process{
		pid:            pid,
		threads:        make(map[int]bool),
		log:            logflags.NativeLogger(),
		ptraceChan:     make(chan func()),
		ptraceDoneChan: make(chan interface{}),
	}
	go p.handlePtraceFuncs()
	return p
}

func (p *Process) handlePtraceFuncs() {
	// We must ensure here that we are running on the same thread during
	// while invoking the ptrace(2) syscall. This is due to the fact that ptrace(2) expects
	// all commands after PTRACE_ATTACH to come from the same thread.
	runtime.LockOSThread()

	for fn := range p.ptraceChan {
		fn()
		p.ptraceDoneChan <- nil
	}
}

// Do runs fn on the tracing OS thread.
func (p *Process) Do(fn func()) {
	p.ptraceChan <- fn
	<-p.ptraceDoneChan
}

// Pid returns the process id of the target.
func (p *Process) Pid() int {
	return p.pid
}

// Task returns the address space of the target. The reference belongs to
// p: callers that keep it past Detach or Kill must Retain it.
func (p *Process) Task() *task.Process {
	return p.task
}

// Threads returns the ids of the threads of the target that are known to
// be stopped, in ascending order.
func (p *Process) Threads() []int {
	r := make([]int, 0, len(p.threads))
	for tid, stopped := range p.threads {
		if stopped {
			r = append(r, tid)
		}
	}
	sort.Ints(r)
	return r
}

func (p *Process) postExit() {
	p.exited = true
	close(p.ptraceChan)
	close(p.ptraceDoneChan)
	if p.task != nil {
		p.task.Release()
		p.task = nil
	}
}
