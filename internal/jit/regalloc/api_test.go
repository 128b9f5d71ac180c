package regalloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeInstr and fakeBlock satisfy Instr/Block with a plain slice-backed
// iterator, the way a real CFG would wrap its own node type without this
// package depending on it.
type fakeInstr struct {
	uses, defs []VReg
}

func (f *fakeInstr) Uses() []VReg { return f.uses }
func (f *fakeInstr) Defs() []VReg { return f.defs }

type fakeBlock struct {
	id     uint64
	instrs []Instr
	pos    int
}

func (b *fakeBlock) ID() uint64 { return b.id }

func (b *fakeBlock) InstrIteratorBegin() Instr {
	b.pos = 0
	return b.next()
}

func (b *fakeBlock) InstrIteratorNext() Instr {
	return b.next()
}

func (b *fakeBlock) next() Instr {
	if b.pos >= len(b.instrs) {
		return nil
	}
	i := b.instrs[b.pos]
	b.pos++
	return i
}

type fakeFunction struct {
	blocks []Block
	pos    int
}

func (f *fakeFunction) BlockIteratorBegin() Block {
	f.pos = 0
	return f.next()
}

func (f *fakeFunction) BlockIteratorNext() Block {
	return f.next()
}

func (f *fakeFunction) next() Block {
	if f.pos >= len(f.blocks) {
		return nil
	}
	b := f.blocks[f.pos]
	f.pos++
	return b
}

func TestFunctionBlockInstr_roundTripThroughNaiveAssign(t *testing.T) {
	def1 := &fakeInstr{defs: []VReg{1}}
	use1 := &fakeInstr{uses: []VReg{1}, defs: []VReg{2}}
	block := &fakeBlock{id: 0, instrs: []Instr{def1, use1}}
	fn := &fakeFunction{blocks: []Block{block}}

	var order []VReg
	intervals := map[VReg]*LiveInterval{
		1: NewLiveInterval(1),
		2: NewLiveInterval(2),
	}

	for b := fn.BlockIteratorBegin(); b != nil; b = fn.BlockIteratorNext() {
		for i := b.InstrIteratorBegin(); i != nil; i = b.InstrIteratorNext() {
			order = append(order, i.Defs()...)
		}
	}
	require.Equal(t, []VReg{1, 2}, order)

	NaiveAssign(order, intervals, []RealReg{10, 11})
	require.Equal(t, RealReg(10), intervals[1].AssignedReg())
	require.Equal(t, RealReg(11), intervals[2].AssignedReg())
}
