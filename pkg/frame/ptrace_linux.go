package frame

import sys "golang.org/x/sys/unix"

// ptraceError maps the failure of a register fetch to an Error.
func ptraceError(err error) Error {
	switch err {
	case nil:
		return Success
	case sys.ESRCH, sys.EINVAL:
		return ErrInvalid
	case sys.EPERM, sys.EIO, sys.ENOSYS:
		return ErrNotSupported
	default:
		return ErrInternal
	}
}
