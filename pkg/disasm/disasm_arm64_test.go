package disasm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-delve/framewalk/pkg/disasm"
)

func TestDecodeARM64(t *testing.T) {
	// nop, ret
	for mem, want := range map[[4]byte]string{
		{0x1f, 0x20, 0x03, 0xd5}: "nop",
		{0xc0, 0x03, 0x5f, 0xd6}: "ret",
	} {
		text, size, err := disasm.Decode(mem[:], 0x401000)
		require.NoError(t, err)
		require.Equal(t, want, text)
		require.Equal(t, 4, size)
	}
}

func TestDecodeARM64Truncated(t *testing.T) {
	_, _, err := disasm.Decode([]byte{0x1f, 0x20}, 0x401000)
	require.ErrorIs(t, err, disasm.ErrShort)
}
