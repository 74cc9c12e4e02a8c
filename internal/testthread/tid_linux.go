package testthread

import sys "golang.org/x/sys/unix"

func gettid() int {
	return sys.Gettid()
}
