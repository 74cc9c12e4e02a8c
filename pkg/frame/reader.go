package frame

import "github.com/go-delve/framewalk/pkg/task"

// Reader discovers the caller of a frame.
//
// ReadNext reads the memory of t to find the frame that called cur and
// stores it in next. prev is the frame that cur called, nil when cur is the
// innermost frame of the walk; readers use it to check the direction of the
// stack and to bound cycles. ReadNext returns ErrNoFrame at the natural end
// of the chain and ErrBadFrame when the chain is structurally invalid.
type Reader interface {
	ReadNext(t task.Task, cur, prev *Frame, next *Frame) error
}
