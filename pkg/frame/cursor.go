package frame

import (
	"github.com/go-delve/framewalk/pkg/regnum"
	"github.com/go-delve/framewalk/pkg/task"
)

// Cursor iterates over the frames of one thread's stack.
//
// A Cursor is initialized with one of Init, InitWithSignalContext or
// InitWithThread and must be closed with Close afterwards, even when the
// initialization failed: every initializer acquires a reference on the task
// before doing anything else. The zero value is an uninitialized cursor.
//
// A Cursor is not safe for concurrent use.
type Cursor struct {
	depth int
	task  task.Task

	frame Frame // current frame
	prev  Frame // valid only when depth >= 2

	// Reader discovers caller frames. A nil Reader walks the frame pointer
	// chain.
	Reader Reader
	fpr    FramePointerReader
}

// Init initializes c with the register dump st of a thread of t.
func (c *Cursor) Init(t task.Task, st State) error {
	return c.init(t, func() (State, error) { return st, nil })
}

// InitWithSignalContext initializes c with the context delivered to a
// signal handler running on a thread of t.
func (c *Cursor) InitWithSignalContext(t task.Task, uc *UContext) error {
	return c.init(t, func() (State, error) { return stateFromSignalContext(uc) })
}

// InitWithThread initializes c with the registers of thread tid of t.
//
// The thread must be stopped, otherwise the registers read could be torn.
// On linux this means tid is in a ptrace-stop and the call is made from the
// OS thread that traces it.
func (c *Cursor) InitWithThread(t task.Task, tid int) error {
	return c.init(t, func() (State, error) { return stateFromThread(tid) })
}

func (c *Cursor) init(t task.Task, source func() (State, error)) error {
	c.depth = 0
	c.task = t
	if t != nil {
		t.Retain()
	}
	// The initial frame is assumed to be complete.
	c.frame = Frame{}
	c.frame.Valid.SetAll()
	c.prev = Frame{}

	if t == nil {
		return ErrInvalid
	}
	st, err := source()
	if err != nil {
		return err
	}
	c.frame.State = st
	return nil
}

// Next moves c to the caller of the current frame.
//
// The first call only makes the initial frame current. Next returns
// ErrNoFrame once the outermost frame has been reached and ErrBadFrame if
// the frame chain is corrupted; in both cases the cursor is left on the last
// good frame.
func (c *Cursor) Next() error {
	if c.task == nil {
		return ErrInvalid
	}
	if c.depth == 0 {
		c.depth = 1
		return nil
	}

	var prev *Frame
	if c.depth >= 2 {
		prev = &c.prev
	}
	r := c.Reader
	if r == nil {
		r = &c.fpr
	}
	var next Frame
	if err := r.ReadNext(c.task, &c.frame, prev, &next); err != nil {
		return err
	}

	c.prev = c.frame
	c.frame = next
	c.depth++
	return nil
}

// Depth returns the number of frames returned so far: zero before the first
// call to Next.
func (c *Cursor) Depth() int {
	return c.depth
}

// Frame returns the current frame.
func (c *Cursor) Frame() Frame {
	return c.frame
}

// Previous returns the frame called by the current one. The second return
// value is false while there is no such frame.
func (c *Cursor) Previous() (Frame, bool) {
	if c.depth < 2 {
		return Frame{}, false
	}
	return c.prev, true
}

// Reg returns the value of register id in the current frame. It returns
// ErrNotSupported if the register could not be recovered for this frame.
func (c *Cursor) Reg(id regnum.ID) (uint64, error) {
	return c.frame.Reg(id)
}

// RegName returns the name of register id.
func (c *Cursor) RegName(id regnum.ID) string {
	return regnum.ToName(id)
}

// RegCount returns the number of registers of the target architecture.
func (c *Cursor) RegCount() int {
	return regnum.Count
}

// Close releases the task reference acquired by the initializer.
func (c *Cursor) Close() {
	if c.task == nil {
		return
	}
	c.task.Release()
	c.task = nil
}
