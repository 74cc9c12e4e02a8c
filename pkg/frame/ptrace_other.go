//go:build !linux

package frame

func stateFromThread(tid int) (State, error) {
	return State{}, ErrNotSupported
}
