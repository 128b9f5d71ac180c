package regalloc

// VarInfo is the vreg-id-and-debug-name record a LiveInterval wraps,
// mirroring jato's var_info struct hanging off live_interval->var_info.
// The printer only ever reads VReg through it; Name exists for
// diagnostics and is never part of the printed grammar.
type VarInfo struct {
	VReg VReg
	Name string
}

// LiveInterval is the range of program points where a VReg holds a live
// value, plus its current physical-register assignment (if any).
// Instances are created and mutated by allocation; the printer reads them
// but must never write HasFixedReg or Reg.
type LiveInterval struct {
	varInfo     VarInfo
	reg         RealReg
	hasFixedReg bool
}

// NewLiveInterval returns an interval for vr that has not yet been
// assigned a physical register.
func NewLiveInterval(vr VReg) *LiveInterval {
	return &LiveInterval{varInfo: VarInfo{VReg: vr}}
}

// VReg returns the virtual register this interval tracks.
func (li *LiveInterval) VReg() VReg {
	return li.varInfo.VReg
}

// VarInfo returns the debug record behind this interval.
func (li *LiveInterval) VarInfo() VarInfo {
	return li.varInfo
}

// HasFixedReg reports whether allocation has pinned this interval to a
// physical register.
func (li *LiveInterval) HasFixedReg() bool {
	return li.hasFixedReg
}

// AssignedReg returns the physical register pinned to this interval.
// Only valid when HasFixedReg returns true.
func (li *LiveInterval) AssignedReg() RealReg {
	return li.reg
}

// SetName attaches a debug name, for fixtures and CLI output; it does not
// affect printed output.
func (li *LiveInterval) SetName(name string) {
	li.varInfo.Name = name
}

// Assign pins this interval to a physical register. This is the only
// mutator on LiveInterval and is meant to be called by allocation code
// (including the NaiveAssign fixture helper), never by the printer.
func (li *LiveInterval) Assign(r RealReg) {
	li.reg = r
	li.hasFixedReg = true
}

// Unassign clears a prior physical-register pin, e.g. when a fixture is
// reused across test cases.
func (li *LiveInterval) Unassign() {
	li.reg = RealRegInvalid
	li.hasFixedReg = false
}
