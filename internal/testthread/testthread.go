// Package testthread provides an OS thread parked at a known point, so that
// tests have a live and stable stack to walk.
package testthread

import (
	"runtime"
	"sync"
)

// Thread is a goroutine locked to its own OS thread, blocked until Stop is
// called.
type Thread struct {
	// TID is the kernel id of the thread.
	TID int

	mu    sync.Mutex
	cond  *sync.Cond
	ready bool
	stop  bool
	done  chan struct{}
}

// Spawn starts a thread and returns once it is running.
func Spawn() *Thread {
	th := &Thread{done: make(chan struct{})}
	th.cond = sync.NewCond(&th.mu)

	th.mu.Lock()
	go th.run()
	for !th.ready {
		th.cond.Wait()
	}
	th.mu.Unlock()
	return th
}

func (th *Thread) run() {
	// The thread exits with the goroutine since it is never unlocked.
	runtime.LockOSThread()
	defer close(th.done)

	th.mu.Lock()
	th.TID = gettid()
	th.ready = true
	th.cond.Broadcast()
	for !th.stop {
		th.cond.Wait()
	}
	th.mu.Unlock()
}

// Stop asks the thread to exit and waits for it.
func (th *Thread) Stop() {
	th.mu.Lock()
	th.stop = true
	th.cond.Broadcast()
	th.mu.Unlock()
	<-th.done
}
