package cmd

import (
	"fmt"

	"github.com/jatogo/lir/internal/jit/classload"
	"github.com/jatogo/lir/internal/jit/isa/x86"
	"github.com/jatogo/lir/internal/jit/regalloc"
)

// fixtureBuilder returns a hand-written instruction stream plus whatever
// method-name resolver its ic_call instructions need.
type fixtureBuilder func() ([]*x86.Instruction, *classload.StaticResolver)

var fixtures = map[string]fixtureBuilder{
	"basic": buildBasicFixture,
}

// buildBasicFixture assembles a prologue, a couple of ALU ops, an
// inline-cache call, a phi, and an epilogue -- the same shape spec.md §4.7
// describes as the "living example" for the printer's wiring. It is not
// the output of any lowering pass; every operand below is constructed by
// hand.
func buildBasicFixture() ([]*x86.Instruction, *classload.StaticResolver) {
	var nextID regalloc.VReg = 1
	newVReg := func() regalloc.VirtualRegister {
		vr := regalloc.NewVirtualRegister(nextID)
		nextID++
		return vr
	}

	r1 := newVReg()
	r2 := newVReg()
	r3 := newVReg()

	resolver := classload.NewStaticResolver(nil)
	resolver.Bind(0x1, classload.QualifiedMethodName("Account", "deposit"))

	instrs := []*x86.Instruction{
		x86.NewNullary(x86.OpSaveCallerRegs),
		x86.NewTwoOperand(x86.OpAddImmReg, x86.NewImmOperand(0x10), x86.NewRegOperand(r1)),
		x86.NewTwoOperand(x86.OpMovRegReg, x86.NewRegOperand(r1), x86.NewRegOperand(r2)),
		x86.NewICCall(r2, 0x1),
		x86.NewPhi([]x86.Operand{x86.NewRegOperand(r1), x86.NewRegOperand(r2)}, x86.NewRegOperand(r3)),
		x86.NewSingleOperand(x86.OpJmpBranch, x86.NewBranchOperand(0xabcd)),
		x86.NewNullary(x86.OpRestoreCallerRegs),
		x86.NewNullary(x86.OpRet),
	}

	intervals := map[regalloc.VReg]*regalloc.LiveInterval{
		r1.ID(): r1.Interval,
		r2.ID(): r2.Interval,
		r3.ID(): r3.Interval,
	}
	order := []regalloc.VReg{r1.ID(), r2.ID(), r3.ID()}
	regalloc.NaiveAssign(order, intervals, x86.GPRPool)

	return instrs, resolver
}

// renderFixture runs the named fixture through the printer and returns its
// dump, one instruction per line.
func renderFixture(name string) (string, error) {
	build, ok := fixtures[name]
	if !ok {
		return "", fmt.Errorf("unknown fixture %q", name)
	}
	instrs, resolver := build()

	printer := x86.NewPrinter(resolver)
	var out []byte
	for _, instr := range instrs {
		var line lineSink
		if err := printer.Print(instr, &line); err != nil {
			return "", fmt.Errorf("printing fixture %q: %w", name, err)
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return string(out), nil
}

// lineSink is the smallest possible x86.Sink: a growable byte slice.
type lineSink []byte

func (s *lineSink) WriteString(str string) (int, error) {
	*s = append(*s, str...)
	return len(str), nil
}
