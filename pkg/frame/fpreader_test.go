package frame

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFramePointerReader(t *testing.T) {
	w := threeFrameTask()
	var r FramePointerReader

	cur := Frame{State: testState(0x401000, fp0)}
	cur.Valid.SetAll()

	var next Frame
	require.NoError(t, r.ReadNext(w, &cur, nil, &next))
	require.EqualValues(t, 0x401100, next.State.PC())
	require.EqualValues(t, fp1, next.State.FP())
	require.EqualValues(t, fp0+16, next.State.SP())

	// The frame pointer of the current frame must be above the one of the
	// frame it called.
	prev := next
	require.Equal(t, ErrBadFrame, r.ReadNext(w, &cur, &prev, &next))

	zero := Frame{State: testState(0x401000, 0)}
	require.Equal(t, ErrNoFrame, r.ReadNext(w, &zero, nil, &next))

	w.link(fp2+0x100, fp2+0x200, 0)
	end := Frame{State: testState(0x401000, fp2+0x100)}
	require.Equal(t, ErrNoFrame, r.ReadNext(w, &end, nil, &next), "a zero return address ends the chain")
}
