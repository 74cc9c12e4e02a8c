package frame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-delve/framewalk/pkg/regnum"
)

const regnumPC = regnum.AMD64_Rip

func testUContext() *UContext {
	uc := &UContext{Flags: 7}
	uc.Stack.Sp = 0x7ff000000000
	uc.Stack.Size = 0x2000
	mc := &uc.MContext
	mc.Rax, mc.Rbx, mc.Rcx, mc.Rdx = 1, 2, 3, 4
	mc.Rsi, mc.Rdi = 5, 6
	mc.R8, mc.R15 = 8, 15
	mc.Rbp = fp0
	mc.Rsp = fp0 - 0x20
	mc.Rip = 0x401000
	mc.Eflags = 0x246
	mc.Cs = 0x33
	mc.Trapno = 14
	mc.Cr2 = 0xdead
	return uc
}

func checkSignalState(t *testing.T, c *Cursor) {
	t.Helper()
	want := map[regnum.ID]uint64{
		regnum.AMD64_Rax:    1,
		regnum.AMD64_Rbx:    2,
		regnum.AMD64_Rcx:    3,
		regnum.AMD64_Rdx:    4,
		regnum.AMD64_Rsi:    5,
		regnum.AMD64_Rdi:    6,
		regnum.AMD64_R8:     8,
		regnum.AMD64_R15:    15,
		regnum.AMD64_Rbp:    fp0,
		regnum.AMD64_Rsp:    fp0 - 0x20,
		regnum.AMD64_Rip:    0x401000,
		regnum.AMD64_Rflags: 0x246,
		regnum.AMD64_Cs:     0x33,
	}
	for id, v := range want {
		got, err := c.Reg(id)
		require.NoError(t, err)
		require.Equal(t, v, got, "register %s", c.RegName(id))
	}
}
