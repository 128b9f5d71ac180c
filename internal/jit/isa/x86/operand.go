package x86

import (
	"fmt"

	"github.com/jatogo/lir/internal/jit/regalloc"
)

// OperandKind tags the variant an Operand holds. The set is closed and
// mirrors spec.md §3's Operand table exactly: constructors and the
// formatter below are exhaustive over it.
type OperandKind byte

const (
	OperandInvalid OperandKind = iota
	OperandImm
	OperandReg
	OperandMemBase
	OperandMemDisp
	OperandMemLocal
	OperandMemIndex
	OperandRel
	OperandBranch
	OperandTLMemBase
	OperandTLMemDisp
)

// Operand is a tagged variant for every addressing form the x86-32/SSE
// back-end emits. A formatter never mutates an Operand; constructors are
// the only way to populate one, and accessors are constant-time field
// reads.
type Operand struct {
	kind OperandKind

	imm  uint64 // Imm
	rel  int64  // Rel
	disp int64  // MemBase, MemDisp, TlMemBase, TlMemDisp

	reg   regalloc.VirtualRegister // Reg, and MemBase/MemIndex base
	index regalloc.VirtualRegister // MemIndex
	shift uint8                    // MemIndex, in {0,1,2,3}

	slot StackSlot // MemLocal

	branchTarget uint64 // Branch
}

// NewImmOperand constructs an Imm operand. imm is reproduced verbatim as
// unsigned hex regardless of how the caller derived it.
func NewImmOperand(imm uint64) Operand {
	return Operand{kind: OperandImm, imm: imm}
}

// NewRegOperand constructs a Reg operand. reg.Interval must not be nil;
// every register operand the printer sees references a valid live
// interval per spec.md §3's invariant.
func NewRegOperand(reg regalloc.VirtualRegister) Operand {
	if reg.Interval == nil {
		panic("BUG: register operand with nil live interval")
	}
	return Operand{kind: OperandReg, reg: reg}
}

// NewMemBaseOperand constructs a MemBase operand: disp(base).
func NewMemBaseOperand(disp int64, base regalloc.VirtualRegister) Operand {
	if base.Interval == nil {
		panic("BUG: memory operand with nil base live interval")
	}
	return Operand{kind: OperandMemBase, disp: disp, reg: base}
}

// NewMemDispOperand constructs a MemDisp operand: (disp).
func NewMemDispOperand(disp int64) Operand {
	return Operand{kind: OperandMemDisp, disp: disp}
}

// NewMemLocalOperand constructs a MemLocal operand: a frame-relative
// stack slot.
func NewMemLocalOperand(slot StackSlot) Operand {
	return Operand{kind: OperandMemLocal, slot: slot}
}

// NewMemIndexOperand constructs a MemIndex operand: (base, index, shift).
// shift must be in {0,1,2,3}; anything else is a corrupt operand.
func NewMemIndexOperand(base, index regalloc.VirtualRegister, shift uint8) Operand {
	if base.Interval == nil || index.Interval == nil {
		panic("BUG: memory operand with nil base/index live interval")
	}
	if shift > 3 {
		panic("BUG: memory index shift out of range")
	}
	return Operand{kind: OperandMemIndex, reg: base, index: index, shift: shift}
}

// NewRelOperand constructs a pc-relative Rel operand.
func NewRelOperand(rel int64) Operand {
	return Operand{kind: OperandRel, rel: rel}
}

// NewBranchOperand constructs a Branch operand targeting a basic block.
func NewBranchOperand(target uint64) Operand {
	return Operand{kind: OperandBranch, branchTarget: target}
}

// NewTLMemBaseOperand constructs a thread-local, segment-prefixed
// MemBase operand.
func NewTLMemBaseOperand(disp int64, base regalloc.VirtualRegister) Operand {
	if base.Interval == nil {
		panic("BUG: memory operand with nil base live interval")
	}
	return Operand{kind: OperandTLMemBase, disp: disp, reg: base}
}

// NewTLMemDispOperand constructs a thread-local, segment-prefixed
// MemDisp operand.
func NewTLMemDispOperand(disp int64) Operand {
	return Operand{kind: OperandTLMemDisp, disp: disp}
}

// Kind returns the operand's variant tag.
func (o Operand) Kind() OperandKind { return o.kind }

// Imm returns the raw immediate value. Only valid for OperandImm.
func (o Operand) Imm() uint64 { return o.imm }

// Reg returns the register identity. Valid for OperandReg and, as the
// base register, OperandMemBase/OperandMemIndex/OperandTLMemBase.
func (o Operand) Reg() regalloc.VirtualRegister { return o.reg }

// Index returns the index register. Only valid for OperandMemIndex.
func (o Operand) Index() regalloc.VirtualRegister { return o.index }

// Shift returns the scale shift. Only valid for OperandMemIndex.
func (o Operand) Shift() uint8 { return o.shift }

// Disp returns the displacement. Valid for OperandMemBase, OperandMemDisp,
// OperandTLMemBase, and OperandTLMemDisp.
func (o Operand) Disp() int64 { return o.disp }

// Slot returns the frame slot. Only valid for OperandMemLocal.
func (o Operand) Slot() StackSlot { return o.slot }

// Rel returns the pc-relative displacement. Only valid for OperandRel.
func (o Operand) Rel() int64 { return o.rel }

// BranchTarget returns the target basic block id. Only valid for
// OperandBranch.
func (o Operand) BranchTarget() uint64 { return o.branchTarget }

// format renders the operand's exact, compatibility-critical textual
// form (spec.md §4.1). It never mutates o.
func (o Operand) format() string {
	switch o.kind {
	case OperandImm:
		return fmt.Sprintf("$0x%x", o.imm)
	case OperandReg:
		return formatReg(o.reg)
	case OperandMemBase:
		return fmt.Sprintf("$0x%x(%s)", uint64(o.disp), formatVRegID(o.reg))
	case OperandMemDisp:
		return fmt.Sprintf("($0x%x)", uint64(o.disp))
	case OperandMemLocal:
		return fmt.Sprintf("@%d(bp)", int64(o.slot))
	case OperandMemIndex:
		return fmt.Sprintf("(%s, %s, %d)", formatVRegID(o.reg), formatVRegID(o.index), o.shift)
	case OperandRel:
		return fmt.Sprintf("$0x%x", uint64(o.rel))
	case OperandBranch:
		return fmt.Sprintf("bb 0x%x", o.branchTarget)
	case OperandTLMemBase:
		return fmt.Sprintf("gs:($0x%x(%s))", uint64(o.disp), formatVRegID(o.reg))
	case OperandTLMemDisp:
		return fmt.Sprintf("gs:($0x%x)", uint64(o.disp))
	default:
		panic("BUG: invalid operand kind")
	}
}

// formatReg renders a VirtualRegister as "rN" or, once allocation has
// pinned it, "rN=PHYS". This is the Reg operand's own textual form.
func formatReg(reg regalloc.VirtualRegister) string {
	if !reg.HasFixedReg() {
		return fmt.Sprintf("r%d", uint32(reg.ID()))
	}
	return fmt.Sprintf("r%d=%s", uint32(reg.ID()), physRegName(reg.AssignedReg()))
}

// formatVRegID renders only the bare vreg id ("rN"), with no physical-
// register suffix even once allocation has pinned it. Memory-operand base
// and index registers use this form: the original printer reads
// interval->var_info->vreg directly rather than going through the Reg
// operand's own (allocation-aware) formatter.
func formatVRegID(reg regalloc.VirtualRegister) string {
	return fmt.Sprintf("r%d", uint32(reg.ID()))
}
