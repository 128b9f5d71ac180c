package regalloc

// VirtualRegister is the identity an operand's Reg variant carries: a
// monotone numeric id paired with the LiveInterval that tracks its
// eventual physical-register binding. Created once by front-end
// lowering, a VirtualRegister's Interval must never be nil — every
// register operand in the printer's input is expected to uphold that
// invariant; constructing one without an interval is a caller bug.
type VirtualRegister struct {
	id       VReg
	Interval *LiveInterval
}

// NewVirtualRegister pairs an id with a freshly created, unassigned
// LiveInterval.
func NewVirtualRegister(id VReg) VirtualRegister {
	return VirtualRegister{id: id, Interval: NewLiveInterval(id)}
}

// ID returns the virtual register's numeric identity.
func (v VirtualRegister) ID() VReg {
	return v.id
}

// HasFixedReg reports whether allocation has pinned this virtual
// register's interval to a physical register.
func (v VirtualRegister) HasFixedReg() bool {
	return v.Interval != nil && v.Interval.HasFixedReg()
}

// AssignedReg returns the physical register pinned to this virtual
// register. Only valid when HasFixedReg returns true.
func (v VirtualRegister) AssignedReg() RealReg {
	return v.Interval.AssignedReg()
}
