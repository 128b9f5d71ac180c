package x86

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jatogo/lir/internal/jit/classload"
	"github.com/jatogo/lir/internal/jit/regalloc"
)

func printOne(t *testing.T, p *Printer, i *Instruction) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, p.Print(i, &sb))
	return sb.String()
}

func TestPrinter_addImmReg(t *testing.T) {
	dest := regalloc.NewVirtualRegister(3)
	i := NewTwoOperand(OpAddImmReg, NewImmOperand(0x10), NewRegOperand(dest))
	p := NewPrinter(nil)
	require.Equal(t, "add_imm_reg          $0x10, r3", printOne(t, p, i))
}

func TestPrinter_movRegReg_assigned(t *testing.T) {
	src := regalloc.NewVirtualRegister(7)
	src.Interval.Assign(EAX)
	dest := regalloc.NewVirtualRegister(8)
	i := NewTwoOperand(OpMovRegReg, NewRegOperand(src), NewRegOperand(dest))
	p := NewPrinter(nil)
	require.Equal(t, "mov_reg_reg          r7=eax, r8", printOne(t, p, i))
}

func TestPrinter_jmpBranch(t *testing.T) {
	i := NewSingleOperand(OpJmpBranch, NewBranchOperand(0xabcd))
	p := NewPrinter(nil)
	require.Equal(t, "jmp_branch           bb 0xabcd", printOne(t, p, i))
}

func TestPrinter_movMemBaseReg(t *testing.T) {
	base := regalloc.NewVirtualRegister(4)
	dest := regalloc.NewVirtualRegister(5)
	i := NewTwoOperand(OpMovMemBaseReg, NewMemBaseOperand(0x8, base), NewRegOperand(dest))
	p := NewPrinter(nil)
	require.Equal(t, "mov_membase_reg      $0x8(r4), r5", printOne(t, p, i))
}

func TestPrinter_movsx8RegReg_appendsWidthSuffix(t *testing.T) {
	src := regalloc.NewVirtualRegister(1)
	dest := regalloc.NewVirtualRegister(2)
	i := NewTwoOperand(OpMovsx8RegReg, NewRegOperand(src), NewRegOperand(dest))
	p := NewPrinter(nil)
	require.Equal(t, "movsx_8_reg_reg      r1, r2(8bit->32bit)", printOne(t, p, i))
}

func TestPrinter_phi(t *testing.T) {
	s1 := regalloc.NewVirtualRegister(1)
	s2 := regalloc.NewVirtualRegister(2)
	dest := regalloc.NewVirtualRegister(3)
	i := NewPhi([]Operand{NewRegOperand(s1), NewRegOperand(s2)}, NewRegOperand(dest))
	p := NewPrinter(nil)
	require.Equal(t, "phi                  r1, r2, r3", printOne(t, p, i))
}

func TestPrinter_icCall_appendsResolvedName(t *testing.T) {
	recv := regalloc.NewVirtualRegister(2)
	i := NewICCall(recv, 0x1)
	resolver := classload.NewStaticResolver(map[classload.MethodHandle]string{
		0x1: "Account.deposit",
	})
	p := NewPrinter(resolver)
	require.Equal(t, "ic_call              r2, $0x1<Account.deposit>", printOne(t, p, i))
}

func TestPrinter_icCall_unresolvedHandleIsMalformedOperand(t *testing.T) {
	recv := regalloc.NewVirtualRegister(2)
	i := NewICCall(recv, 0x99)
	resolver := classload.NewStaticResolver(nil)
	p := NewPrinter(resolver)

	var sb strings.Builder
	err := p.Print(i, &sb)
	require.Error(t, err)
	var malformed *MalformedOperand
	require.ErrorAs(t, err, &malformed)
}

func TestPrinter_nullary(t *testing.T) {
	i := NewNullary(OpRet)
	p := NewPrinter(nil)
	require.Equal(t, "ret                  ", printOne(t, p, i))
}

func TestPrinter_unknownOpcode(t *testing.T) {
	i := NewNullary(Opcode(255))
	p := NewPrinter(nil)

	var sb strings.Builder
	err := p.Print(i, &sb)
	require.Error(t, err)
	var unknown *UnknownOpcode
	require.ErrorAs(t, err, &unknown)
	require.Empty(t, sb.String())
}

func TestPrinter_callReg(t *testing.T) {
	dest := regalloc.NewVirtualRegister(5)
	i := NewCallReg(dest)
	p := NewPrinter(nil)
	require.Equal(t, "call_reg             (r5)", printOne(t, p, i))
}

func TestPrinter_noTrailingNewline(t *testing.T) {
	i := NewNullary(OpRet)
	p := NewPrinter(nil)
	out := printOne(t, p, i)
	require.False(t, strings.HasSuffix(out, "\n"))
}

func TestPrinter_isPureOverInstruction(t *testing.T) {
	dest := regalloc.NewVirtualRegister(3)
	i := NewTwoOperand(OpAddImmReg, NewImmOperand(0x10), NewRegOperand(dest))
	p := NewPrinter(nil)

	first := printOne(t, p, i)
	second := printOne(t, p, i)
	require.Equal(t, first, second)
}
