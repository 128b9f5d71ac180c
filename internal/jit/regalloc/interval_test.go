package regalloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLiveInterval_unassigned(t *testing.T) {
	li := NewLiveInterval(VReg(3))
	require.Equal(t, VReg(3), li.VReg())
	require.False(t, li.HasFixedReg())
}

func TestLiveInterval_assign(t *testing.T) {
	li := NewLiveInterval(VReg(7))
	li.Assign(RealReg(5))
	require.True(t, li.HasFixedReg())
	require.Equal(t, RealReg(5), li.AssignedReg())

	li.Unassign()
	require.False(t, li.HasFixedReg())
}

func TestLiveInterval_SetName_doesNotAffectVReg(t *testing.T) {
	li := NewLiveInterval(VReg(1))
	li.SetName("x")
	require.Equal(t, "x", li.VarInfo().Name)
	require.Equal(t, VReg(1), li.VarInfo().VReg)
}
