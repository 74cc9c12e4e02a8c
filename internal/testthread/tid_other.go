//go:build !linux

package testthread

func gettid() int {
	return -1
}
