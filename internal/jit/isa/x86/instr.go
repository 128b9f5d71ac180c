package x86

import "github.com/jatogo/lir/internal/jit/regalloc"

// Instruction is a closed tagged variant over Opcode: every instruction
// created by lowering, linked into a basic block, and mutated only by
// allocation (which sets physical registers inside LiveIntervals --
// never Op, or any operand's tag). The operand slots below are a
// superset of what any one opcode uses; Signature fixes which ones are
// valid for a given instruction, exactly as spec.md §3 describes.
type Instruction struct {
	Op Opcode

	// Src, Dest are the two-operand slots, and also back ic_call's
	// (Reg, Imm-handle) pair.
	Src, Dest Operand

	// Operand is the single-operand slot for branches, pushes/pops,
	// unconditional jumps, and FPU loads/stores.
	Operand Operand

	// SSASrcs and SSADest are phi's variadic sources and single
	// destination.
	SSASrcs []Operand
	SSADest Operand
}

// NewNullary constructs a zero-operand instruction (nop, ret, the
// save/restore caller-regs family).
func NewNullary(op Opcode) *Instruction {
	return &Instruction{Op: op}
}

// NewTwoOperand constructs any two-operand instruction: the alu
// imm/membase/memdisp/memlocal/memindex/reg forms in either source-to-
// destination direction.
func NewTwoOperand(op Opcode, src, dest Operand) *Instruction {
	return &Instruction{Op: op, Src: src, Dest: dest}
}

// NewSingleOperand constructs a single-operand instruction: branches,
// push/pop, call_rel, and the FPU load/store family.
func NewSingleOperand(op Opcode, operand Operand) *Instruction {
	return &Instruction{Op: op, Operand: operand}
}

// NewCallReg constructs a call through a register, printed parenthesized.
func NewCallReg(dest regalloc.VirtualRegister) *Instruction {
	return &Instruction{Op: OpCallReg, Operand: NewRegOperand(dest)}
}

// NewICCall constructs an inline-cache call: src carries the receiver
// register, dest carries the immediate method handle resolved through a
// Resolver at print time.
func NewICCall(src regalloc.VirtualRegister, methodHandle uint64) *Instruction {
	return &Instruction{Op: OpIcCall, Src: NewRegOperand(src), Dest: NewImmOperand(methodHandle)}
}

// NewPhi constructs a phi node from its SSA sources and destination.
func NewPhi(srcs []Operand, dest Operand) *Instruction {
	return &Instruction{Op: OpPhi, SSASrcs: srcs, SSADest: dest}
}

// Uses implements regalloc.Instr: the virtual registers this instruction
// reads. It is a read-only view over the operand slots Signature says are
// source-like; it never allocates beyond the returned slice.
func (i *Instruction) Uses() []regalloc.VReg {
	var uses []regalloc.VReg
	add := func(o Operand) {
		switch o.Kind() {
		case OperandReg:
			uses = append(uses, o.Reg().ID())
		case OperandMemBase, OperandTLMemBase:
			uses = append(uses, o.Reg().ID())
		case OperandMemIndex:
			uses = append(uses, o.Reg().ID(), o.Index().ID())
		}
	}
	switch i.Op.Signature() {
	case SigImmMemBase, SigImmMemLocal, SigImmMemDisp, SigImmTLMemBase, SigImmOnly:
		add(i.Src)
		add(i.Dest)
		add(i.Operand)
	case SigImmReg, SigMemBaseReg, SigMemDispReg, SigMemLocalReg, SigMemIndexReg, SigTLMemDispReg:
		add(i.Src)
	case SigRegMemDisp, SigRegMemLocal, SigRegMemIndex, SigRegMemBase, SigRegTLMemBase, SigRegTLMemDisp:
		add(i.Src)
		add(i.Dest)
	case SigRegReg, SigRegRegExt8, SigRegRegExt16:
		add(i.Src)
	case SigRegOnly, SigCallReg, SigBranch, SigRelOnly, SigMemBaseOnly, SigMemLocalOnly, SigMemIndexOnly:
		add(i.Operand)
	case SigICCall:
		add(i.Src)
	case SigPhi:
		for _, s := range i.SSASrcs {
			add(s)
		}
	}
	return uses
}

// Defs implements regalloc.Instr: the virtual registers this instruction
// writes.
func (i *Instruction) Defs() []regalloc.VReg {
	var defs []regalloc.VReg
	add := func(o Operand) {
		if o.Kind() == OperandReg {
			defs = append(defs, o.Reg().ID())
		}
	}
	switch i.Op.Signature() {
	case SigImmReg, SigMemBaseReg, SigMemDispReg, SigMemLocalReg, SigMemIndexReg, SigTLMemDispReg, SigRegReg, SigRegRegExt8, SigRegRegExt16:
		add(i.Dest)
	case SigRegOnly:
		add(i.Operand)
	case SigPhi:
		add(i.SSADest)
	}
	return defs
}
