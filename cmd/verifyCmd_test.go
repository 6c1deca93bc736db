package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyCmd_RequiresFleetPath(t *testing.T) {
	resetConfig()
	rootCmd.SetArgs([]string{"verify"})
	err := rootCmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "--fleet is required")
}

func TestVerifyCmd_ValidFleet(t *testing.T) {
	resetConfig()
	p := writeTemp(t, t.TempDir(), "fleet.yaml", "name: f\nhosts:\n  - h1\n")
	rootCmd.SetArgs([]string{"verify", "--fleet", p})
	require.NoError(t, rootCmd.Execute())
}

func TestVerifyCmd_InvalidFleet(t *testing.T) {
	resetConfig()
	p := writeTemp(t, t.TempDir(), "fleet.yaml", "hosts:\n  - h1\n")
	rootCmd.SetArgs([]string{"verify", "--fleet", p})
	err := rootCmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid fleet file")
}
