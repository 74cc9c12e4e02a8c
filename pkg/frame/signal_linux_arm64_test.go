package frame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-delve/framewalk/pkg/regnum"
)

const regnumPC = regnum.ARM64_PC

func testUContext() *UContext {
	uc := &UContext{Flags: 7, Sigmask: 0x4000}
	uc.Stack.Sp = 0xffff00000000
	uc.Stack.Size = 0x2000
	mc := &uc.MContext
	mc.FaultAddress = 0xdead
	for i := range mc.Regs {
		mc.Regs[i] = uint64(i) + 100
	}
	mc.Regs[regnum.ARM64_BP] = fp0
	mc.Sp = fp0 - 0x20
	mc.Pc = 0x401000
	mc.Pstate = 0x60000000
	return uc
}

func checkSignalState(t *testing.T, c *Cursor) {
	t.Helper()
	for id := regnum.ARM64_X0; id < regnum.ARM64_BP; id++ {
		got, err := c.Reg(id)
		require.NoError(t, err)
		require.Equal(t, uint64(id)+100, got, "register %s", c.RegName(id))
	}
	want := map[regnum.ID]uint64{
		regnum.ARM64_BP:     fp0,
		regnum.ARM64_LR:     130,
		regnum.ARM64_SP:     fp0 - 0x20,
		regnum.ARM64_PC:     0x401000,
		regnum.ARM64_Pstate: 0x60000000,
	}
	for id, v := range want {
		got, err := c.Reg(id)
		require.NoError(t, err)
		require.Equal(t, v, got, "register %s", c.RegName(id))
	}
}
