// Package backtrace collects the frames of a thread's stack from a
// frame.Cursor and prints them.
package backtrace

import (
	"github.com/go-delve/framewalk/pkg/frame"
	"github.com/go-delve/framewalk/pkg/logflags"
	"github.com/go-delve/framewalk/pkg/regnum"
)

// Status describes how a walk ended.
type Status uint8

const (
	// Complete means the outermost frame was reached.
	Complete Status = iota
	// Truncated means the frame chain was corrupted past the last frame
	// collected. The frames collected are valid.
	Truncated
	// Aborted means the walk failed for a reason unrelated to the stack
	// contents, such as an internal error.
	Aborted
	// DepthExceeded means more frames exist than the maximum depth allows.
	DepthExceeded
)

func (s Status) String() string {
	switch s {
	case Complete:
		return "complete"
	case Truncated:
		return "truncated"
	case Aborted:
		return "aborted"
	case DepthExceeded:
		return "depth exceeded"
	}
	return "unknown"
}

// Register is the value of a register recovered for a frame.
type Register struct {
	ID    regnum.ID
	Name  string
	Value uint64
}

// Frame is one level of a backtrace. Regs only holds the registers that
// are valid for the frame, in register number order.
type Frame struct {
	Depth int
	PC    uint64
	Regs  []Register
}

// Backtrace is the result of a walk.
type Backtrace struct {
	TID    int
	Frames []Frame
	Status Status
	// Err is the error that ended the walk, nil unless Status is Truncated
	// or Aborted.
	Err error
}

// Collect walks c, which must have been initialized and not yet advanced,
// until the outermost frame, an error or maxDepth frames. A maxDepth of
// zero or less means no limit.
func Collect(c *frame.Cursor, maxDepth int) *Backtrace {
	log := logflags.WalkLogger()
	bt := &Backtrace{}
	for {
		err := c.Next()
		if err != nil {
			switch frame.Code(err) {
			case frame.ErrNoFrame:
				bt.Status = Complete
			case frame.ErrBadFrame:
				bt.Status = Truncated
				bt.Err = err
			default:
				bt.Status = Aborted
				bt.Err = err
			}
			break
		}
		// One frame past the limit is read to tell a stack of exactly
		// maxDepth frames from a deeper one.
		if maxDepth > 0 && c.Depth() > maxDepth {
			bt.Status = DepthExceeded
			break
		}
		f := c.Frame()
		bt.Frames = append(bt.Frames, snapshot(c.Depth(), &f))
		log.Debugf("frame %d pc=%#x sp=%#x fp=%#x", c.Depth()-1, f.State.PC(), f.State.SP(), f.State.FP())
	}
	log.WithField("frames", len(bt.Frames)).Debugf("walk %s", bt.Status)
	if bt.Err != nil {
		log.WithError(bt.Err).Debugf("walk stopped early")
	}
	return bt
}

func snapshot(depth int, f *frame.Frame) Frame {
	r := Frame{Depth: depth - 1, PC: f.State.PC()}
	r.Regs = make([]Register, 0, f.Valid.Len())
	for i := 0; i < regnum.Count; i++ {
		id := regnum.ID(i)
		v, err := f.Reg(id)
		if err != nil {
			continue
		}
		r.Regs = append(r.Regs, Register{ID: id, Name: regnum.ToName(id), Value: v})
	}
	return r
}
