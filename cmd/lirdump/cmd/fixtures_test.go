package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderFixture_basic_containsExpectedMnemonics(t *testing.T) {
	out, err := renderFixture("basic")
	require.NoError(t, err)

	for _, want := range []string{
		"save_caller_regs",
		"add_imm_reg",
		"mov_reg_reg",
		"ic_call",
		"Account.deposit",
		"phi",
		"jmp_branch",
		"restore_caller_regs",
		"ret",
	} {
		require.Contains(t, out, want)
	}
}

func TestRenderFixture_unknownName(t *testing.T) {
	_, err := renderFixture("does-not-exist")
	require.Error(t, err)
}
