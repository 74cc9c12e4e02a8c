//go:build !linux

package frame

// UContext is the context delivered to a signal handler. Only linux
// contexts are understood.
type UContext struct{}

func stateFromSignalContext(uc *UContext) (State, error) {
	if uc == nil {
		return State{}, ErrInvalid
	}
	return State{}, ErrNotSupported
}
