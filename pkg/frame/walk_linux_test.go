package frame

import (
	"encoding/binary"
	"os"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	sys "golang.org/x/sys/unix"

	"github.com/go-delve/framewalk/pkg/task"
)

// mapStack maps two pages of memory; the second one is inaccessible.
func mapStack(t *testing.T) ([]byte, uint64) {
	t.Helper()
	pageSize := os.Getpagesize()
	m, err := sys.Mmap(-1, 0, 2*pageSize, sys.PROT_READ|sys.PROT_WRITE, sys.MAP_PRIVATE|sys.MAP_ANON)
	require.NoError(t, err)
	t.Cleanup(func() { sys.Munmap(m) })
	require.NoError(t, sys.Mprotect(m[pageSize:], sys.PROT_NONE))
	return m[:pageSize], uint64(uintptr(unsafe.Pointer(&m[0])))
}

func putRecord(mem []byte, base, fp, callerFP, ret uint64) {
	binary.LittleEndian.PutUint64(mem[fp-base:], callerFP)
	binary.LittleEndian.PutUint64(mem[fp-base+8:], ret)
}

func TestWalkSelf(t *testing.T) {
	mem, base := mapStack(t)
	putRecord(mem, base, base+0x40, base+0x100, 0x401100)
	putRecord(mem, base, base+0x100, base+0x180, 0x401200)
	putRecord(mem, base, base+0x180, 0, 0x401300)

	self, err := task.Self()
	require.NoError(t, err)
	defer self.Release()

	var c Cursor
	require.NoError(t, c.Init(self, testState(0x401000, base+0x40)))
	defer c.Close()
	require.Equal(t, 2, self.Refs())

	var pcs []uint64
	for err = c.Next(); err == nil; err = c.Next() {
		pcs = append(pcs, c.Frame().State.PC())
	}
	require.Equal(t, ErrNoFrame, err)
	require.Equal(t, []uint64{0x401000, 0x401100, 0x401200, 0x401300}, pcs)
}

func TestWalkSelfIntoUnmappedMemory(t *testing.T) {
	mem, base := mapStack(t)
	guard := base + uint64(len(mem))
	putRecord(mem, base, base+0x40, base+0x100, 0x401100)
	putRecord(mem, base, base+0x100, guard, 0x401200)

	self, err := task.Self()
	require.NoError(t, err)
	defer self.Release()

	var c Cursor
	require.NoError(t, c.Init(self, testState(0x401000, base+0x40)))
	require.NoError(t, c.Next())
	require.NoError(t, c.Next())
	require.NoError(t, c.Next())
	require.Equal(t, guard, c.Frame().State.FP())

	requireUnchanged(t, &c, ErrBadFrame)
	require.Equal(t, 3, c.Depth())

	c.Close()
	require.Equal(t, 1, self.Refs())
}
