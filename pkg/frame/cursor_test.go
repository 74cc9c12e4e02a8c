package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-delve/framewalk/pkg/regnum"
	"github.com/go-delve/framewalk/pkg/task"
)

const (
	fp0 = 0x7ffe0000
	fp1 = fp0 + 0x100
	fp2 = fp0 + 0x280
)

// threeFrameTask returns a task holding a chain of frame records rooted at
// fp0 and ending with a zero frame pointer at fp2.
func threeFrameTask() *wordTask {
	w := newWordTask()
	w.link(fp0, fp1, 0x401100)
	w.link(fp1, fp2, 0x401200)
	w.link(fp2, 0, 0x401300)
	return w
}

func TestFirstFrame(t *testing.T) {
	w := threeFrameTask()
	st := testState(0x401000, fp0)

	var c Cursor
	require.NoError(t, c.Init(w, st))
	defer c.Close()
	require.Equal(t, 0, c.Depth())

	require.NoError(t, c.Next())
	require.Equal(t, 1, c.Depth())
	for id := regnum.ID(0); int(id) < c.RegCount(); id++ {
		v, err := c.Reg(id)
		require.NoError(t, err, "register %s", c.RegName(id))
		require.Equal(t, st.Reg(id), v)
	}
	_, ok := c.Previous()
	require.False(t, ok)

	// Snapshots returned by value expose the register accessors directly.
	require.EqualValues(t, 0x401000, c.Frame().State.PC())
	require.EqualValues(t, fp0, c.Frame().State.FP())
	require.Equal(t, st.SP(), c.Frame().State.SP())
	require.Equal(t, st.Regs(), c.Frame().State.Regs())
}

func TestWalkToEnd(t *testing.T) {
	w := threeFrameTask()

	var c Cursor
	require.NoError(t, c.Init(w, testState(0x401000, fp0)))
	defer c.Close()

	var pcs []uint64
	var err error
	for err = c.Next(); err == nil; err = c.Next() {
		pc, rerr := c.Reg(regnum.PC)
		require.NoError(t, rerr)
		pcs = append(pcs, pc)
	}
	require.Equal(t, ErrNoFrame, err)
	require.Equal(t, []uint64{0x401000, 0x401100, 0x401200, 0x401300}, pcs)
	require.Equal(t, 4, c.Depth())

	// The cursor stays on the outermost frame.
	last := c.Frame()
	require.Equal(t, ErrNoFrame, c.Next())
	require.Equal(t, last, c.Frame())
	require.Equal(t, 4, c.Depth())
}

func TestCallerFrameRegisters(t *testing.T) {
	w := threeFrameTask()

	var c Cursor
	require.NoError(t, c.Init(w, testState(0x401000, fp0)))
	defer c.Close()
	require.NoError(t, c.Next())
	require.NoError(t, c.Next())

	f := c.Frame()
	require.Equal(t, 3, f.Valid.Len())
	pc, err := c.Reg(regnum.PC)
	require.NoError(t, err)
	require.EqualValues(t, 0x401100, pc)
	fp, err := c.Reg(regnum.FP)
	require.NoError(t, err)
	require.EqualValues(t, fp1, fp)
	sp, err := c.Reg(regnum.SP)
	require.NoError(t, err)
	require.EqualValues(t, fp0+16, sp)

	// A register that was not recovered is reported as unsupported no
	// matter what value is stored for it.
	id := otherReg()
	c.frame.State = c.frame.State.WithReg(id, 0x1234)
	_, err = c.Reg(id)
	require.Equal(t, ErrNotSupported, err)

	prev, ok := c.Previous()
	require.True(t, ok)
	require.EqualValues(t, fp0, prev.State.FP())
	require.Equal(t, regnum.Count, prev.Valid.Len())
}

func TestValidityIsPerFrame(t *testing.T) {
	w := threeFrameTask()

	var c Cursor
	require.NoError(t, c.Init(w, testState(0x401000, fp0)))
	defer c.Close()
	require.NoError(t, c.Next())
	require.Equal(t, regnum.Count, c.frame.Valid.Len())
	require.NoError(t, c.Next())
	require.Equal(t, 3, c.frame.Valid.Len())
	require.NoError(t, c.Next())
	require.Equal(t, 3, c.frame.Valid.Len())
}

func requireUnchanged(t *testing.T, c *Cursor, err error) {
	t.Helper()
	depth, frame, prev := c.depth, c.frame, c.prev
	require.Equal(t, err, c.Next())
	require.Equal(t, depth, c.depth)
	require.Equal(t, frame, c.frame)
	require.Equal(t, prev, c.prev)
}

func TestCorruptedChain(t *testing.T) {
	tests := []struct {
		name  string
		setup func(w *wordTask)
	}{
		{"unmapped", func(w *wordTask) {
			w.link(fp1, fp2+0x1000, 0x401200)
		}},
		{"misaligned", func(w *wordTask) {
			w.link(fp1, fp2+3, 0x401200)
		}},
		{"backwards", func(w *wordTask) {
			w.link(fp1, fp0-0x100, 0x401200)
			w.link(fp0-0x100, fp2, 0x401250)
		}},
		{"cycle", func(w *wordTask) {
			w.link(fp1, fp1, 0x401200)
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := threeFrameTask()
			tc.setup(w)

			var c Cursor
			require.NoError(t, c.Init(w, testState(0x401000, fp0)))
			defer c.Close()
			require.NoError(t, c.Next())
			for {
				depth, frame, prev := c.depth, c.frame, c.prev
				err := c.Next()
				if err == nil {
					continue
				}
				require.Equal(t, ErrBadFrame, err)
				require.Equal(t, depth, c.depth)
				require.Equal(t, frame, c.frame)
				require.Equal(t, prev, c.prev)
				break
			}
			requireUnchanged(t, &c, ErrBadFrame)
		})
	}
}

func TestNextWithoutInit(t *testing.T) {
	var c Cursor
	require.Equal(t, ErrInvalid, c.Next())
	c.Close()
}

func TestInitNilTask(t *testing.T) {
	var c Cursor
	require.Equal(t, ErrInvalid, c.Init(nil, State{}))
	require.Equal(t, ErrInvalid, c.Next())
	c.Close()
}

func TestTaskReferences(t *testing.T) {
	tests := []struct {
		name string
		init func(c *Cursor, w *wordTask) error
		ok   bool
	}{
		{"state", func(c *Cursor, w *wordTask) error {
			return c.Init(w, testState(0x401000, fp0))
		}, true},
		{"nil signal context", func(c *Cursor, w *wordTask) error {
			return c.InitWithSignalContext(w, nil)
		}, false},
		{"signal context", func(c *Cursor, w *wordTask) error {
			return c.InitWithSignalContext(w, &UContext{})
		}, signalContextSupported},
		{"missing thread", func(c *Cursor, w *wordTask) error {
			return c.InitWithThread(w, -1)
		}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := threeFrameTask()
			var c Cursor
			err := tc.init(&c, w)
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.IsType(t, Error(0), err)
			}
			require.Equal(t, 1, w.refs)
			c.Close()
			require.Equal(t, 0, w.refs)
			c.Close()
			require.Equal(t, 0, w.refs, "a second Close must not release again")
		})
	}
}

// sequenceReader hands out the frames in frames and records the prev
// argument it was called with.
type sequenceReader struct {
	frames   []Frame
	gotPrev  []bool
	terminal error
}

func (r *sequenceReader) ReadNext(_ task.Task, cur, prev *Frame, next *Frame) error {
	r.gotPrev = append(r.gotPrev, prev != nil)
	if len(r.frames) == 0 {
		return r.terminal
	}
	*next = r.frames[0]
	r.frames = r.frames[1:]
	return nil
}

func TestCustomReader(t *testing.T) {
	var f1, f2 Frame
	f1.State = testState(0x500000, fp1)
	f1.Valid.Set(regnum.PC)
	f2.State = testState(0x600000, fp2)
	f2.Valid.SetAll()
	r := &sequenceReader{frames: []Frame{f1, f2}, terminal: ErrInternal}

	c := Cursor{Reader: r}
	require.NoError(t, c.Init(newWordTask(), testState(0x401000, fp0)))
	defer c.Close()

	require.NoError(t, c.Next())
	require.NoError(t, c.Next())
	require.Equal(t, f1, c.Frame())
	require.NoError(t, c.Next())
	require.Equal(t, f2, c.Frame())
	prev, ok := c.Previous()
	require.True(t, ok)
	require.Equal(t, f1, prev)
	require.Equal(t, ErrInternal, c.Next())
	require.Equal(t, 3, c.Depth())
	assert.Equal(t, []bool{false, true, true}, r.gotPrev)
}
