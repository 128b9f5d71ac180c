package x86

import (
	"fmt"
	"log"

	"github.com/jatogo/lir/internal/jit/classload"
)

// Sink is the append-only text destination the printer writes into. The
// caller owns it exclusively for the duration of a Print call; the
// printer never reads it back.
type Sink interface {
	WriteString(s string) (int, error)
}

// UnknownOpcode is returned when an instruction carries a tag the
// dispatch table has no entry for. It is the single recoverable failure
// spec.md §7 describes; no partial operand text is written once this is
// returned (the mnemonic column may already have been emitted).
type UnknownOpcode struct {
	Op Opcode
}

func (e *UnknownOpcode) Error() string {
	return fmt.Sprintf("unknown insn %d", e.Op)
}

// MalformedOperand reports a producing-pass bug the printer noticed but
// did not panic on: an opcode whose signature has no rendering, or, for
// ic_call, a missing Resolver or a method handle the Resolver cannot
// resolve. A corrupt operand tag is not reported here; formatting one
// panics. Callers should treat this the same
// as a failure of whatever pass built the instruction, not of the
// printer itself.
type MalformedOperand struct {
	Detail string
}

func (e *MalformedOperand) Error() string {
	return fmt.Sprintf("malformed operand: %s", e.Detail)
}

// mnemonicColumnWidth is the fixed column spec.md §4.3 mandates; every
// emitted line starts with the mnemonic left-padded to this width plus
// one separator space, even for nullary instructions.
const mnemonicColumnWidth = 20

// sep is the exact separator string between two operands in a line; it
// is compatibility-critical (spec.md §4.1) and appears nowhere else.
const sep = ", "

// Printer turns a stream of Instructions into their textual LIR dump. It
// holds the one stateful collaborator the protocol needs: the method-name
// Resolver behind ic_call.
type Printer struct {
	Resolver classload.Resolver
}

// NewPrinter returns a Printer that resolves ic_call method handles
// through r. r may be nil if the stream being printed never uses
// OpIcCall.
func NewPrinter(r classload.Resolver) *Printer {
	return &Printer{Resolver: r}
}

// Print implements the lir_print protocol from spec.md §4.3: it emits the
// mnemonic column, then the opcode's operand block, appending text to
// sink. It returns UnknownOpcode if i.Op has no dispatch entry, and
// MalformedOperand for a producing-pass precondition violation this
// package chooses to report rather than panic on (an unresolvable
// ic_call method handle). Print is pure over i: it never mutates an
// operand or a LiveInterval, so calling it twice on the same input
// appends identical text.
func (p *Printer) Print(i *Instruction, sink Sink) error {
	if !i.Op.Valid() {
		log.Printf("unknown insn %d\n", i.Op)
		return &UnknownOpcode{Op: i.Op}
	}

	if _, err := sink.WriteString(fmt.Sprintf("%-*s ", mnemonicColumnWidth, i.Op.Mnemonic())); err != nil {
		return err
	}

	body, err := p.render(i)
	if err != nil {
		return err
	}
	if body == "" {
		return nil
	}
	_, err = sink.WriteString(body)
	return err
}

// render builds the operand block for i, dispatching on its opcode's
// Signature. This switch is the one place the 30 operand-form shapes
// are enumerated; it is total over Signature, not over the 127 opcodes.
func (p *Printer) render(i *Instruction) (string, error) {
	switch i.Op.Signature() {
	case SigNullary:
		return "", nil

	case SigImmReg, SigImmMemBase, SigImmMemLocal, SigImmMemDisp, SigImmTLMemBase,
		SigMemBaseReg, SigMemDispReg, SigRegMemDisp, SigMemLocalReg, SigRegMemLocal,
		SigMemIndexReg, SigRegMemIndex, SigRegMemBase, SigRegReg,
		SigRegTLMemBase, SigRegTLMemDisp, SigTLMemDispReg:
		return i.Src.format() + sep + i.Dest.format(), nil

	case SigRegRegExt8:
		return i.Src.format() + sep + i.Dest.format() + "(8bit->32bit)", nil

	case SigRegRegExt16:
		return i.Src.format() + sep + i.Dest.format() + "(16bit->32bit)", nil

	case SigMemBaseOnly, SigMemLocalOnly, SigMemIndexOnly, SigRegOnly, SigBranch, SigImmOnly, SigRelOnly:
		return i.Operand.format(), nil

	case SigCallReg:
		return "(" + i.Operand.format() + ")", nil

	case SigICCall:
		return p.renderICCall(i)

	case SigPhi:
		return renderPhi(i), nil

	default:
		return "", &MalformedOperand{Detail: "opcode has no signature rendering"}
	}
}

// renderICCall appends the resolved method name after the reg/imm block,
// per spec.md §4.3's special case for inline-cache calls.
func (p *Printer) renderICCall(i *Instruction) (string, error) {
	if p.Resolver == nil {
		return "", &MalformedOperand{Detail: "ic_call requires a method-name resolver"}
	}
	name, ok := p.Resolver.ResolveMethodName(classload.MethodHandle(i.Dest.Imm()))
	if !ok {
		return "", &MalformedOperand{Detail: "ic_call method handle did not resolve"}
	}
	return i.Src.format() + sep + i.Dest.format() + "<" + name + ">", nil
}

// renderPhi emits every SSA source followed by ", ", then the
// destination -- no leading count, per spec.md §4.3.
func renderPhi(i *Instruction) string {
	var b []byte
	for _, s := range i.SSASrcs {
		b = append(b, s.format()...)
		b = append(b, sep...)
	}
	b = append(b, i.SSADest.format()...)
	return string(b)
}
