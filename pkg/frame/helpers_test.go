package frame

import (
	"encoding/binary"
	"errors"

	"github.com/go-delve/framewalk/pkg/regnum"
)

var errUnmapped = errors.New("unmapped")

// wordTask is a task whose memory is a sparse set of 64-bit words.
type wordTask struct {
	words map[uint64]uint64
	refs  int
}

func newWordTask() *wordTask {
	return &wordTask{words: map[uint64]uint64{}}
}

func (w *wordTask) ReadMemory(buf []byte, addr uint64) (int, error) {
	n := 0
	for ; n+8 <= len(buf); n += 8 {
		v, ok := w.words[addr+uint64(n)]
		if !ok {
			return n, errUnmapped
		}
		binary.LittleEndian.PutUint64(buf[n:], v)
	}
	return n, nil
}

func (w *wordTask) Retain()  { w.refs++ }
func (w *wordTask) Release() { w.refs-- }

// link writes a frame record at fp.
func (w *wordTask) link(fp, callerFP, ret uint64) {
	w.words[fp] = callerFP
	w.words[fp+8] = ret
}

// testState returns a state where every register holds a distinct value and
// PC and FP are set as given.
func testState(pc, fp uint64) State {
	var regs [regnum.Count]uint64
	for i := range regs {
		regs[i] = 0x1000 + uint64(i)
	}
	regs[regnum.PC] = pc
	regs[regnum.FP] = fp
	regs[regnum.SP] = fp - 0x40
	return NewState(regs)
}

// otherReg returns a register that is neither PC, SP nor FP.
func otherReg() regnum.ID {
	for id := regnum.ID(0); ; id++ {
		if id != regnum.PC && id != regnum.SP && id != regnum.FP {
			return id
		}
	}
}
