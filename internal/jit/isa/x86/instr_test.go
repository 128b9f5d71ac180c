package x86

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jatogo/lir/internal/jit/regalloc"
)

func TestInstruction_addImmReg_usesAndDefs(t *testing.T) {
	dest := regalloc.NewVirtualRegister(3)
	i := NewTwoOperand(OpAddImmReg, NewImmOperand(0x10), NewRegOperand(dest))

	require.Empty(t, i.Uses())
	require.Equal(t, []regalloc.VReg{3}, i.Defs())
}

func TestInstruction_movRegReg_usesAndDefs(t *testing.T) {
	src := regalloc.NewVirtualRegister(7)
	dest := regalloc.NewVirtualRegister(8)
	i := NewTwoOperand(OpMovRegReg, NewRegOperand(src), NewRegOperand(dest))

	require.Equal(t, []regalloc.VReg{7}, i.Uses())
	require.Equal(t, []regalloc.VReg{8}, i.Defs())
}

func TestInstruction_memIndexReg_usesBaseAndIndex(t *testing.T) {
	base := regalloc.NewVirtualRegister(1)
	index := regalloc.NewVirtualRegister(2)
	dest := regalloc.NewVirtualRegister(3)
	i := NewTwoOperand(OpMovMemIndexReg, NewMemIndexOperand(base, index, 0), NewRegOperand(dest))

	require.ElementsMatch(t, []regalloc.VReg{1, 2}, i.Uses())
	require.Equal(t, []regalloc.VReg{3}, i.Defs())
}

func TestInstruction_nullary_noUsesOrDefs(t *testing.T) {
	i := NewNullary(OpNop)
	require.Empty(t, i.Uses())
	require.Empty(t, i.Defs())
}

func TestInstruction_phi_usesSourcesDefsDest(t *testing.T) {
	s1 := regalloc.NewVirtualRegister(1)
	s2 := regalloc.NewVirtualRegister(2)
	dest := regalloc.NewVirtualRegister(3)
	i := NewPhi([]Operand{NewRegOperand(s1), NewRegOperand(s2)}, NewRegOperand(dest))

	require.Equal(t, []regalloc.VReg{1, 2}, i.Uses())
	require.Equal(t, []regalloc.VReg{3}, i.Defs())
}

func TestInstruction_icCall_usesReceiver(t *testing.T) {
	recv := regalloc.NewVirtualRegister(2)
	i := NewICCall(recv, 0x1)
	require.Equal(t, []regalloc.VReg{2}, i.Uses())
	require.Empty(t, i.Defs())
}
