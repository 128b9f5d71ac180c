package regalloc

// NaiveAssign round-robins the given physical registers across the
// intervals in vregOrder, in order. It exists solely to produce
// realistic, fully-pinned LiveInterval fixtures for printer tests and the
// cmd/lirdump CLI — it is not a register allocator: it does no liveness
// analysis, never spills, and will happily assign the same physical
// register to two simultaneously-live vregs.
//
// intervals maps each VReg to the LiveInterval the printer will read
// through its operands; callers build that map themselves when
// constructing an instruction stream.
func NaiveAssign(vregOrder []VReg, intervals map[VReg]*LiveInterval, pool []RealReg) {
	if len(pool) == 0 {
		return
	}
	for i, vr := range vregOrder {
		li, ok := intervals[vr]
		if !ok {
			continue
		}
		li.Assign(pool[i%len(pool)])
	}
}
