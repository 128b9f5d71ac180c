package x86

// Opcode is the closed tagged-variant enumeration of every back-end
// instruction kind. The set below is fixed to the dispatch table recovered
// from the original printer's insn_printers[] array: 127 members, each
// bound to exactly one Signature (signature.go). opcodeTable is a keyed
// array literal, so a member added here without a matching opcodeInfo
// entry still compiles: an entry missing in the middle reads as an empty
// mnemonic with SigInvalid (Print reports MalformedOperand), and one
// missing past the table's end fails Valid (Print reports UnknownOpcode).
type Opcode uint8

const (
	OpInvalid Opcode = iota
	OpAdcImmReg
	OpAdcMemBaseReg
	OpAdcRegReg
	OpAddsdXmmXmm
	OpAddssXmmXmm
	OpAddImmReg
	OpAddMemBaseReg
	OpAddRegReg
	OpAndMemBaseReg
	OpAndRegReg
	OpCallReg
	OpCallRel
	OpCltdRegReg
	OpCmpImmReg
	OpCmpMemBaseReg
	OpCmpRegReg
	OpConvFpu64ToGpr
	OpConvFpuToGpr
	OpConvGprToFpu64
	OpConvGprToFpu
	OpConvXmm64ToXmm
	OpConvXmmToXmm64
	OpDivsdXmmXmm
	OpDivssXmmXmm
	OpDivMemBaseReg
	OpDivRegReg
	OpFild64MemBase
	OpFistp64MemBase
	OpFldcwMemBase
	OpFld64MemBase
	OpFld64MemLocal
	OpFldMemBase
	OpFldMemLocal
	OpFnstcwMemBase
	OpFstp64MemBase
	OpFstp64MemLocal
	OpFstpMemBase
	OpFstpMemLocal
	OpIcCall
	OpJeBranch
	OpJgeBranch
	OpJgBranch
	OpJleBranch
	OpJlBranch
	OpJmpBranch
	OpJmpMemBase
	OpJmpMemIndex
	OpJneBranch
	OpMovsdMemBaseXmm
	OpMovsdMemDispXmm
	OpMovsdMemIndexXmm
	OpMovsdMemLocalXmm
	OpMovsdXmmMemBase
	OpMovsdXmmMemDisp
	OpMovsdXmmMemIndex
	OpMovsdXmmMemLocal
	OpMovsdXmmXmm
	OpMovssMemBaseXmm
	OpMovssMemDispXmm
	OpMovssMemIndexXmm
	OpMovssMemLocalXmm
	OpMovssXmmMemBase
	OpMovssXmmMemDisp
	OpMovssXmmMemIndex
	OpMovssXmmMemLocal
	OpMovssXmmXmm
	OpMovsx16RegReg
	OpMovsx8RegReg
	OpMovzx16RegReg
	OpMovImmMemBase
	OpMovImmMemLocal
	OpMovImmReg
	OpMovImmTLMemBase
	OpMovMemBaseReg
	OpMovMemDispReg
	OpMovMemIndexReg
	OpMovMemLocalReg
	OpMovRegMemBase
	OpMovRegMemDisp
	OpMovRegMemIndex
	OpMovRegMemLocal
	OpMovRegReg
	OpMovRegTLMemBase
	OpMovRegTLMemDisp
	OpMovTLMemDispReg
	OpMulsdMemDispXmm
	OpMulsdXmmXmm
	OpMulssXmmXmm
	OpMulMemBaseEax
	OpMulRegEax
	OpMulRegReg
	OpNegReg
	OpNop
	OpOrImmMemBase
	OpOrMemBaseReg
	OpOrRegReg
	OpPhi
	OpPopMemLocal
	OpPopReg
	OpPushImm
	OpPushMemLocal
	OpPushReg
	OpRet
	OpSarImmReg
	OpSarRegReg
	OpSbbImmReg
	OpSbbMemBaseReg
	OpSbbRegReg
	OpShlRegReg
	OpShrRegReg
	OpSubsdXmmXmm
	OpSubssXmmXmm
	OpSubImmReg
	OpSubMemBaseReg
	OpSubRegReg
	OpTestImmMemDisp
	OpTestMemBaseReg
	OpXorpdXmmXmm
	OpXorpsXmmXmm
	OpXorMemBaseReg
	OpXorRegReg
	OpSaveCallerRegs
	OpRestoreCallerRegs
	OpRestoreCallerRegsI32
	OpRestoreCallerRegsI64
	OpRestoreCallerRegsF32
	OpRestoreCallerRegsF64
)

type opcodeInfo struct {
	mnemonic  string
	signature Signature
}

// opcodeTable is indexed by Opcode, giving O(1) dispatch: Print looks up
// the signature once, then renders through the signature's case in
// printer.go's render switch -- not a 127-armed switch over Opcode.
var opcodeTable = [...]opcodeInfo{
	OpInvalid: {"", SigInvalid},
	OpAdcImmReg: {"adc_imm_reg", SigImmReg},
	OpAdcMemBaseReg: {"adc_membase_reg", SigMemBaseReg},
	OpAdcRegReg: {"adc_reg_reg", SigRegReg},
	OpAddsdXmmXmm: {"addsd_xmm_xmm", SigRegReg},
	OpAddssXmmXmm: {"addss_xmm_xmm", SigRegReg},
	OpAddImmReg: {"add_imm_reg", SigImmReg},
	OpAddMemBaseReg: {"add_membase_reg", SigMemBaseReg},
	OpAddRegReg: {"add_reg_reg", SigRegReg},
	OpAndMemBaseReg: {"and_membase_reg", SigMemBaseReg},
	OpAndRegReg: {"and_reg_reg", SigRegReg},
	OpCallReg: {"call_reg", SigCallReg},
	OpCallRel: {"call_rel", SigRelOnly},
	OpCltdRegReg: {"cltd_reg_reg", SigRegReg},
	OpCmpImmReg: {"cmp_imm_reg", SigImmReg},
	OpCmpMemBaseReg: {"cmp_membase_reg", SigMemBaseReg},
	OpCmpRegReg: {"cmp_reg_reg", SigRegReg},
	OpConvFpu64ToGpr: {"conv_fpu64_to_gpr", SigRegReg},
	OpConvFpuToGpr: {"conv_fpu_to_gpr", SigRegReg},
	OpConvGprToFpu64: {"conv_gpr_to_fpu64", SigRegReg},
	OpConvGprToFpu: {"conv_gpr_to_fpu", SigRegReg},
	OpConvXmm64ToXmm: {"conv_xmm64_to_xmm", SigRegReg},
	OpConvXmmToXmm64: {"conv_xmm_to_xmm64", SigRegReg},
	OpDivsdXmmXmm: {"divsd_xmm_xmm", SigRegReg},
	OpDivssXmmXmm: {"divss_xmm_xmm", SigRegReg},
	OpDivMemBaseReg: {"div_membase_reg", SigMemBaseReg},
	OpDivRegReg: {"div_reg_reg", SigRegReg},
	OpFild64MemBase: {"fild_64_membase", SigMemBaseOnly},
	OpFistp64MemBase: {"fistp_64_membase", SigMemBaseOnly},
	OpFldcwMemBase: {"fldcw_membase", SigMemBaseOnly},
	OpFld64MemBase: {"fld_64_membase", SigMemBaseOnly},
	OpFld64MemLocal: {"fld_64_memlocal", SigMemLocalOnly},
	OpFldMemBase: {"fld_membase", SigMemBaseOnly},
	OpFldMemLocal: {"fld_memlocal", SigMemLocalOnly},
	OpFnstcwMemBase: {"fnstcw_membase", SigMemBaseOnly},
	OpFstp64MemBase: {"fstp_64_membase", SigMemBaseOnly},
	OpFstp64MemLocal: {"fstp_64_memlocal", SigMemLocalOnly},
	OpFstpMemBase: {"fstp_membase", SigMemBaseOnly},
	OpFstpMemLocal: {"fstp_memlocal", SigMemLocalOnly},
	OpIcCall: {"ic_call", SigICCall},
	OpJeBranch: {"je_branch", SigBranch},
	OpJgeBranch: {"jge_branch", SigBranch},
	OpJgBranch: {"jg_branch", SigBranch},
	OpJleBranch: {"jle_branch", SigBranch},
	OpJlBranch: {"jl_branch", SigBranch},
	OpJmpBranch: {"jmp_branch", SigBranch},
	OpJmpMemBase: {"jmp_membase", SigMemBaseOnly},
	OpJmpMemIndex: {"jmp_memindex", SigMemIndexOnly},
	OpJneBranch: {"jne_branch", SigBranch},
	OpMovsdMemBaseXmm: {"movsd_membase_xmm", SigMemBaseReg},
	OpMovsdMemDispXmm: {"movsd_memdisp_xmm", SigMemDispReg},
	OpMovsdMemIndexXmm: {"movsd_memindex_xmm", SigMemIndexReg},
	OpMovsdMemLocalXmm: {"movsd_memlocal_xmm", SigMemLocalReg},
	OpMovsdXmmMemBase: {"movsd_xmm_membase", SigRegMemBase},
	OpMovsdXmmMemDisp: {"movsd_xmm_memdisp", SigRegMemDisp},
	OpMovsdXmmMemIndex: {"movsd_xmm_memindex", SigRegMemIndex},
	OpMovsdXmmMemLocal: {"movsd_xmm_memlocal", SigRegMemLocal},
	OpMovsdXmmXmm: {"movsd_xmm_xmm", SigRegReg},
	OpMovssMemBaseXmm: {"movss_membase_xmm", SigMemBaseReg},
	OpMovssMemDispXmm: {"movss_memdisp_xmm", SigMemDispReg},
	OpMovssMemIndexXmm: {"movss_memindex_xmm", SigMemIndexReg},
	OpMovssMemLocalXmm: {"movss_memlocal_xmm", SigMemLocalReg},
	OpMovssXmmMemBase: {"movss_xmm_membase", SigRegMemBase},
	OpMovssXmmMemDisp: {"movss_xmm_memdisp", SigRegMemDisp},
	OpMovssXmmMemIndex: {"movss_xmm_memindex", SigRegMemIndex},
	OpMovssXmmMemLocal: {"movss_xmm_memlocal", SigRegMemLocal},
	OpMovssXmmXmm: {"movss_xmm_xmm", SigRegReg},
	OpMovsx16RegReg: {"movsx_16_reg_reg", SigRegRegExt16},
	OpMovsx8RegReg: {"movsx_8_reg_reg", SigRegRegExt8},
	OpMovzx16RegReg: {"movzx_16_reg_reg", SigRegRegExt16},
	OpMovImmMemBase: {"mov_imm_membase", SigImmMemBase},
	OpMovImmMemLocal: {"mov_imm_memlocal", SigImmMemLocal},
	OpMovImmReg: {"mov_imm_reg", SigImmReg},
	OpMovImmTLMemBase: {"mov_imm_tlmembase", SigImmTLMemBase},
	OpMovMemBaseReg: {"mov_membase_reg", SigMemBaseReg},
	OpMovMemDispReg: {"mov_memdisp_reg", SigMemDispReg},
	OpMovMemIndexReg: {"mov_memindex_reg", SigMemIndexReg},
	OpMovMemLocalReg: {"mov_memlocal_reg", SigMemLocalReg},
	OpMovRegMemBase: {"mov_reg_membase", SigRegMemBase},
	OpMovRegMemDisp: {"mov_reg_memdisp", SigRegMemDisp},
	OpMovRegMemIndex: {"mov_reg_memindex", SigRegMemIndex},
	OpMovRegMemLocal: {"mov_reg_memlocal", SigRegMemLocal},
	OpMovRegReg: {"mov_reg_reg", SigRegReg},
	OpMovRegTLMemBase: {"mov_reg_tlmembase", SigRegTLMemBase},
	OpMovRegTLMemDisp: {"mov_reg_tlmemdisp", SigRegTLMemDisp},
	OpMovTLMemDispReg: {"mov_tlmemdisp_reg", SigTLMemDispReg},
	OpMulsdMemDispXmm: {"fmul_64_memdisp_xmm", SigMemDispReg},
	OpMulsdXmmXmm: {"mulsd_xmm_xmm", SigRegReg},
	OpMulssXmmXmm: {"mulss_xmm_xmm", SigRegReg},
	OpMulMemBaseEax: {"mul_membase_eax", SigMemBaseReg},
	OpMulRegEax: {"mul_reg_eax", SigRegReg},
	OpMulRegReg: {"mul_reg_reg", SigRegReg},
	OpNegReg: {"neg_reg", SigRegOnly},
	OpNop: {"nop", SigNullary},
	OpOrImmMemBase: {"or_imm_membase", SigImmMemBase},
	OpOrMemBaseReg: {"or_membase_reg", SigMemBaseReg},
	OpOrRegReg: {"or_reg_reg", SigRegReg},
	OpPhi: {"phi", SigPhi},
	OpPopMemLocal: {"pop_memlocal", SigMemLocalOnly},
	OpPopReg: {"pop_reg", SigRegOnly},
	OpPushImm: {"push_imm", SigImmOnly},
	OpPushMemLocal: {"push_memlocal", SigMemLocalOnly},
	OpPushReg: {"push_reg", SigRegOnly},
	OpRet: {"ret", SigNullary},
	OpSarImmReg: {"sar_imm_reg", SigImmReg},
	OpSarRegReg: {"sar_reg_reg", SigRegReg},
	OpSbbImmReg: {"sbb_imm_reg", SigImmReg},
	OpSbbMemBaseReg: {"sbb_membase_reg", SigMemBaseReg},
	OpSbbRegReg: {"sbb_reg_reg", SigRegReg},
	OpShlRegReg: {"shl_reg_reg", SigRegReg},
	OpShrRegReg: {"shr_reg_reg", SigRegReg},
	OpSubsdXmmXmm: {"subsd_xmm_xmm", SigRegReg},
	OpSubssXmmXmm: {"subss_xmm_xmm", SigRegReg},
	OpSubImmReg: {"sub_imm_reg", SigImmReg},
	OpSubMemBaseReg: {"sub_membase_reg", SigMemBaseReg},
	OpSubRegReg: {"sub_reg_reg", SigRegReg},
	OpTestImmMemDisp: {"test_imm_memdisp", SigImmMemDisp},
	OpTestMemBaseReg: {"test_membase_reg", SigMemBaseReg},
	OpXorpdXmmXmm: {"xor_64_xmm_reg_reg", SigRegReg},
	OpXorpsXmmXmm: {"xor_xmm_reg_reg", SigRegReg},
	OpXorMemBaseReg: {"xor_membase_reg", SigMemBaseReg},
	OpXorRegReg: {"xor_reg_reg", SigRegReg},
	OpSaveCallerRegs: {"save_caller_regs", SigNullary},
	OpRestoreCallerRegs: {"restore_caller_regs", SigNullary},
	OpRestoreCallerRegsI32: {"restore_caller_regs_i32", SigNullary},
	OpRestoreCallerRegsI64: {"restore_caller_regs_i64", SigNullary},
	OpRestoreCallerRegsF32: {"restore_caller_regs_f32", SigNullary},
	OpRestoreCallerRegsF64: {"restore_caller_regs_f64", SigNullary},
}

// Mnemonic returns the opcode's canonical lowercase name.
func (o Opcode) Mnemonic() string {
	return opcodeTable[o].mnemonic
}

// Signature returns the operand-form signature bound to this opcode.
func (o Opcode) Signature() Signature {
	return opcodeTable[o].signature
}

// Valid reports whether o is a known, non-zero opcode.
func (o Opcode) Valid() bool {
	return o != OpInvalid && int(o) < len(opcodeTable)
}
