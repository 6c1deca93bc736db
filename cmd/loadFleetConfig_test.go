package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFleetConfig_Valid(t *testing.T) {
	p := writeTemp(t, t.TempDir(), "fleet.yaml", `
name: web tier
hosts:
  - 10.0.0.1:22
  - 10.0.0.2
user: ec2-user
pem_file: /keys/fleet.pem
`)
	fc, err := loadFleetConfig(p)
	require.NoError(t, err)
	require.Equal(t, "web tier", fc.Name)
	require.Equal(t, []string{"10.0.0.1:22", "10.0.0.2"}, fc.Hosts)
	require.Equal(t, "ec2-user", fc.User)
	require.Equal(t, "/keys/fleet.pem", fc.PemFile)
}

func TestLoadFleetConfig_MissingName(t *testing.T) {
	p := writeTemp(t, t.TempDir(), "fleet.yaml", "hosts:\n  - h1\n")
	_, err := loadFleetConfig(p)
	require.Error(t, err)
	require.Contains(t, err.Error(), "fleet.name is required")
}

func TestLoadFleetConfig_NoHosts(t *testing.T) {
	p := writeTemp(t, t.TempDir(), "fleet.yaml", "name: empty\n")
	_, err := loadFleetConfig(p)
	require.Error(t, err)
	require.Contains(t, err.Error(), "at least one host")
}

func TestLoadFleetConfig_BlankHostEntry(t *testing.T) {
	p := writeTemp(t, t.TempDir(), "fleet.yaml", "name: f\nhosts:\n  - h1\n  - \"  \"\n")
	_, err := loadFleetConfig(p)
	require.Error(t, err)
	require.Contains(t, err.Error(), "hosts[1] is empty")
}

func TestLoadFleetConfig_MissingFile(t *testing.T) {
	_, err := loadFleetConfig("/no/such/fleet.yaml")
	require.Error(t, err)
}

func TestLoadFleetConfig_BadYAML(t *testing.T) {
	p := writeTemp(t, t.TempDir(), "fleet.yaml", "name: [unclosed\n")
	_, err := loadFleetConfig(p)
	require.Error(t, err)
}
