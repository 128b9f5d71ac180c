package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgramCmd_basicFixture_writesToStdout(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"program", "--fixture", "basic"})

	require.NoError(t, rootCmd.Execute())
	require.Contains(t, buf.String(), "add_imm_reg")
}

func TestProgramCmd_unknownFixture_errors(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"program", "--fixture", "nope"})

	require.Error(t, rootCmd.Execute())
}
