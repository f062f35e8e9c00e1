package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCmdRequiresExpression(t *testing.T) {
	rootCmd.SetArgs([]string{})
	var errOut bytes.Buffer
	rootCmd.SetErr(&errOut)
	err := rootCmd.Execute()
	require.Error(t, err)
}

func TestRootCmdRejectsTwoPositionalArgs(t *testing.T) {
	rootCmd.SetArgs([]string{"$id == a", "$id == b"})
	var errOut bytes.Buffer
	rootCmd.SetErr(&errOut)
	err := rootCmd.Execute()
	require.Error(t, err)
}
