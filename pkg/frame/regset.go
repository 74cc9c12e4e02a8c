package frame

import "github.com/go-delve/framewalk/pkg/regnum"

const regsetWords = (regnum.Count + 63) / 64

// RegisterSet is a fixed size set of register ids. Its capacity is the
// number of registers of the architecture being built.
type RegisterSet struct {
	bits [regsetWords]uint64
}

// SetAll marks every register of the architecture as a member of s.
func (s *RegisterSet) SetAll() {
	for i := range s.bits {
		s.bits[i] = ^uint64(0)
	}
	if rem := regnum.Count % 64; rem != 0 {
		s.bits[regsetWords-1] = 1<<rem - 1
	}
}

// Clear removes every register from s.
func (s *RegisterSet) Clear() {
	s.bits = [regsetWords]uint64{}
}

// Set adds id to s. Ids outside of the register table are ignored.
func (s *RegisterSet) Set(id regnum.ID) {
	if int(id) >= regnum.Count {
		return
	}
	s.bits[id/64] |= 1 << (id % 64)
}

// IsSet reports whether id is a member of s.
func (s RegisterSet) IsSet(id regnum.ID) bool {
	if int(id) >= regnum.Count {
		return false
	}
	return s.bits[id/64]&(1<<(id%64)) != 0
}

// Len returns the number of registers in s.
func (s RegisterSet) Len() int {
	n := 0
	for _, w := range s.bits {
		for ; w != 0; w &= w - 1 {
			n++
		}
	}
	return n
}
