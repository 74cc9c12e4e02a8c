package native

import "fmt"

// ErrProcessExited is returned when the target exits while it is being
// waited on.
type ErrProcessExited struct {
	Pid    int
	Status int
}

func (pe ErrProcessExited) Error() string {
	return fmt.Sprintf("process %d has exited with status %d", pe.Pid, pe.Status)
}
