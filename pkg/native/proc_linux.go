package native

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	sys "golang.org/x/sys/unix"

	"github.com/go-delve/framewalk/pkg/task"
)

const ptraceOptions = sys.PTRACE_O_TRACECLONE

// Launch starts cmd under ptrace and returns once it has stopped after the
// execve. The process stays stopped until ContinueUntilFault is called.
func Launch(cmd []string, wd string) (*Process, error) {
	if len(cmd) == 0 {
		return nil, fmt.Errorf("no command to launch")
	}
	var (
		process *exec.Cmd
		err     error
	)
	p := newProcess(0)
	p.Do(func() {
		process = exec.Command(cmd[0])
		process.Args = cmd
		process.Stdin = os.Stdin
		process.Stdout = os.Stdout
		process.Stderr = os.Stderr
		process.SysProcAttr = &syscall.SysProcAttr{Ptrace: true, Setpgid: true}
		if wd != "" {
			process.Dir = wd
		}
		err = process.Start()
	})
	if err != nil {
		p.postExit()
		return nil, err
	}
	p.pid = process.Process.Pid
	p.child = true
	if _, _, err = p.wait(p.pid, 0); err != nil {
		p.Kill()
		return nil, fmt.Errorf("waiting for target execve failed: %w", err)
	}
	if err = p.initialize(); err != nil {
		p.Kill()
		return nil, err
	}
	return p, nil
}

// Attach stops every thread of process pid with PTRACE_ATTACH.
func Attach(pid int) (*Process, error) {
	p := newProcess(pid)
	if err := p.initialize(); err != nil {
		p.detach()
		p.postExit()
		return nil, err
	}
	return p, nil
}

func (p *Process) initialize() (err error) {
	p.task, err = task.Open(p.pid)
	if err != nil {
		return err
	}
	if p.child {
		p.Do(func() { err = syscall.PtraceSetOptions(p.pid, ptraceOptions) })
		if err != nil {
			return fmt.Errorf("could not set options for process %d: %w", p.pid, err)
		}
		p.threads[p.pid] = true
		return nil
	}
	return p.updateThreadList()
}

// updateThreadList attaches to the threads listed in /proc/pid/task until
// no new thread shows up.
func (p *Process) updateThreadList() error {
	for {
		tids, _ := filepath.Glob(fmt.Sprintf("/proc/%d/task/*", p.pid))
		if len(tids) == 0 {
			return fmt.Errorf("could not list threads of process %d", p.pid)
		}
		added := false
		for _, tidpath := range tids {
			tid, err := strconv.Atoi(filepath.Base(tidpath))
			if err != nil {
				return err
			}
			if _, ok := p.threads[tid]; ok {
				continue
			}
			if err := p.addThread(tid); err != nil {
				return err
			}
			added = true
		}
		if !added {
			return nil
		}
	}
}

func (p *Process) addThread(tid int) error {
	var err error
	p.Do(func() { err = sys.PtraceAttach(tid) })
	if err != nil {
		return fmt.Errorf("could not attach to thread %d: %w", tid, err)
	}
	p.threads[tid] = false
	_, status, err := p.wait(tid, 0)
	if err != nil {
		return err
	}
	if status != nil && status.Exited() {
		delete(p.threads, tid)
		return nil
	}
	p.threads[tid] = true
	p.Do(func() { err = syscall.PtraceSetOptions(tid, ptraceOptions) })
	if err != nil && err != syscall.ESRCH {
		return fmt.Errorf("could not set options for thread %d: %w", tid, err)
	}
	p.log.Debugf("attached to thread %d", tid)
	return nil
}

func (p *Process) wait(pid, options int) (int, *sys.WaitStatus, error) {
	var s sys.WaitStatus
	wpid, err := sys.Wait4(pid, &s, sys.WALL|options, nil)
	return wpid, &s, err
}

// ContinueUntilFault resumes every thread of the target and waits until
// one of them receives a signal that would terminate the process. The
// faulting thread and every other thread are stopped when it returns.
// Signals that are not fatal are delivered to the target.
func (p *Process) ContinueUntilFault() (Fault, error) {
	if p.exited {
		return Fault{}, ErrProcessExited{Pid: p.pid}
	}
	if p.detached {
		return Fault{}, errDetached
	}
	for tid := range p.threads {
		if err := p.resume(tid, 0); err != nil {
			return Fault{}, err
		}
	}
	for {
		wpid, status, err := p.wait(-1, 0)
		if err != nil {
			return Fault{}, fmt.Errorf("wait failed: %w", err)
		}
		if _, ok := p.threads[wpid]; !ok {
			// A clone that has not been reported yet.
			p.threads[wpid] = true
		}
		switch {
		case status.Exited() || status.Signaled():
			delete(p.threads, wpid)
			if wpid == p.pid {
				code := status.ExitStatus()
				if status.Signaled() {
					code = -int(status.Signal())
				}
				p.postExit()
				return Fault{}, ErrProcessExited{Pid: wpid, Status: code}
			}
			continue
		case !status.Stopped():
			continue
		}

		p.threads[wpid] = true
		sig := status.StopSignal()
		switch {
		case sig == sys.SIGTRAP && status.TrapCause() == sys.PTRACE_EVENT_CLONE:
			var msg uint
			p.Do(func() { msg, err = sys.PtraceGetEventMsg(wpid) })
			if err == nil {
				p.log.Debugf("thread %d created thread %d", wpid, msg)
				if _, ok := p.threads[int(msg)]; !ok {
					p.threads[int(msg)] = false
				}
			}
			err = p.resume(wpid, 0)
		case sig == sys.SIGSTOP:
			// The initial stop of a new thread, or our own stop request.
			err = p.resume(wpid, 0)
		case isFatal(sig) && (sig != sys.SIGTRAP || status.TrapCause() == 0):
			// A SIGTRAP with a non zero cause is a ptrace event stop.
			f := Fault{TID: wpid, Signal: sig}
			p.log.Debugf("%v", f)
			if err := p.stopOthers(wpid); err != nil {
				return f, err
			}
			return f, nil
		default:
			err = p.resume(wpid, int(sig))
		}
		if err != nil && err != sys.ESRCH {
			return Fault{}, err
		}
	}
}

func (p *Process) resume(tid, sig int) (err error) {
	p.Do(func() { err = sys.PtraceCont(tid, sig) })
	if err == nil {
		p.threads[tid] = false
	}
	return err
}

// stopOthers stops every thread except tid with SIGSTOP.
func (p *Process) stopOthers(tid int) error {
	for other, stopped := range p.threads {
		if other == tid || stopped {
			continue
		}
		if err := sys.Tgkill(p.pid, other, sys.SIGSTOP); err != nil {
			if err == sys.ESRCH {
				delete(p.threads, other)
				continue
			}
			return fmt.Errorf("could not stop thread %d: %w", other, err)
		}
		for {
			_, status, err := p.wait(other, 0)
			if err != nil {
				if err == sys.ECHILD {
					delete(p.threads, other)
					break
				}
				return err
			}
			if status.Exited() || status.Signaled() {
				delete(p.threads, other)
				break
			}
			if status.Stopped() {
				// Any other signal that arrived meanwhile is dropped: the
				// target will not be resumed after the report.
				p.threads[other] = true
				if status.StopSignal() == sys.SIGSTOP {
					break
				}
				p.Do(func() { err = sys.PtraceCont(other, 0) })
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func isFatal(sig sys.Signal) bool {
	switch sig {
	case sys.SIGSEGV, sys.SIGBUS, sys.SIGILL, sys.SIGFPE, sys.SIGABRT, sys.SIGTRAP, sys.SIGSYS:
		return true
	}
	return false
}

func (p *Process) detach() error {
	var firstErr error
	for tid := range p.threads {
		var err error
		p.Do(func() { err = sys.PtraceDetach(tid) })
		if err != nil && err != sys.ESRCH && firstErr == nil {
			firstErr = fmt.Errorf("could not detach thread %d: %w", tid, err)
		}
	}
	p.detached = true
	return firstErr
}

// Detach lets the target run again and releases it.
func (p *Process) Detach() error {
	if p.exited {
		return nil
	}
	err := p.detach()
	// For some reason the process will sometimes enter stopped state after a
	// detach, this doesn't happen immediately either.
	time.Sleep(50 * time.Millisecond)
	if status(p.pid) == 'T' {
		_ = sys.Kill(p.pid, sys.SIGCONT)
	}
	p.postExit()
	return err
}

// Kill terminates the target.
func (p *Process) Kill() error {
	if p.exited {
		return nil
	}
	if p.pid == 0 {
		p.postExit()
		return nil
	}
	err := sys.Kill(p.pid, sys.SIGKILL)
	if err != nil && err != sys.ESRCH {
		return fmt.Errorf("could not kill process %d: %w", p.pid, err)
	}
	// The exit of the thread group leader is only reported once every other
	// traced thread has been reaped.
	for {
		wpid, status, err := p.wait(-1, 0)
		if err != nil {
			break
		}
		if !status.Exited() && !status.Signaled() {
			continue
		}
		delete(p.threads, wpid)
		if wpid == p.pid {
			break
		}
	}
	p.postExit()
	return nil
}

// status returns the state letter of process pid from /proc/pid/stat.
func status(pid int) rune {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/stat", pid))
	if err != nil {
		return 0
	}
	// The command name is parenthesized and may contain spaces.
	for i := len(data) - 1; i >= 0; i-- {
		if data[i] == ')' {
			if i+2 < len(data) {
				return rune(data[i+2])
			}
			break
		}
	}
	return 0
}
