package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-delve/framewalk/pkg/regnum"
)

func TestRegisterSet(t *testing.T) {
	var s RegisterSet
	for id := regnum.ID(0); int(id) < regnum.Count; id++ {
		assert.False(t, s.IsSet(id))
	}
	assert.Zero(t, s.Len())

	s.SetAll()
	for id := regnum.ID(0); int(id) < regnum.Count; id++ {
		assert.True(t, s.IsSet(id), "register %s", regnum.ToName(id))
	}
	assert.Equal(t, regnum.Count, s.Len())
	assert.False(t, s.IsSet(regnum.Count), "ids past the table are never members")

	s.Clear()
	assert.Zero(t, s.Len())

	s.Set(regnum.PC)
	s.Set(regnum.Count + 3)
	assert.True(t, s.IsSet(regnum.PC))
	assert.False(t, s.IsSet(regnum.SP))
	assert.Equal(t, 1, s.Len())
}
