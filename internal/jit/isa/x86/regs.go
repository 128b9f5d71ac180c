package x86

import "github.com/jatogo/lir/internal/jit/regalloc"

// Physical register identities for the x86-32/SSE target. The numbering
// is arbitrary (it is never encoded into machine code by this package —
// that is the emitter's job, out of scope here); it only needs to be
// stable enough to index regNames.
const (
	EAX regalloc.RealReg = iota + 1
	ECX
	EDX
	EBX
	ESP
	EBP
	ESI
	EDI

	XMM0
	XMM1
	XMM2
	XMM3
	XMM4
	XMM5
	XMM6
	XMM7
)

var regNames = [...]string{
	EAX:  "eax",
	ECX:  "ecx",
	EDX:  "edx",
	EBX:  "ebx",
	ESP:  "esp",
	EBP:  "ebp",
	ESI:  "esi",
	EDI:  "edi",
	XMM0: "xmm0",
	XMM1: "xmm1",
	XMM2: "xmm2",
	XMM3: "xmm3",
	XMM4: "xmm4",
	XMM5: "xmm5",
	XMM6: "xmm6",
	XMM7: "xmm7",
}

// GPRPool and XMMPool are the physical-register pools NaiveAssign and
// cmd/lirdump's fixtures draw from.
var (
	GPRPool = []regalloc.RealReg{EAX, ECX, EDX, EBX, ESI, EDI}
	XMMPool = []regalloc.RealReg{XMM0, XMM1, XMM2, XMM3, XMM4, XMM5, XMM6, XMM7}
)

// physRegName returns the architectural name of r, implementing
// phys_reg_name(code) -> &'static str from the spec's external-interface
// contract. It panics on an out-of-range code: an unresolvable physical
// register is a corrupt LiveInterval, not a printable condition.
func physRegName(r regalloc.RealReg) string {
	if int(r) >= len(regNames) || regNames[r] == "" {
		panic("BUG: unknown physical register code")
	}
	return regNames[r]
}
