package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJoinCommandParts(t *testing.T) {
	require.Equal(t, "", joinCommandParts(nil))
	require.Equal(t, "uptime", joinCommandParts([]string{"uptime"}))
	require.Equal(t, "cd /srv; ls -la", joinCommandParts([]string{"cd /srv", "ls -la"}))
	require.Equal(t, "a; b", joinCommandParts([]string{"a", "  ", "b", ""}))
}
