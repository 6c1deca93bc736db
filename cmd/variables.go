package cmd

import "time"

// Version is the CLI version string injected at build time via -ldflags.
var Version = "0.1.0"

var (
	// Global configuration populated by flags and/or environment variables.
	// These are declared here so they are visible across subcommands.
	cfgHosts       string
	cfgFleetPath   string
	cfgUser        string
	cfgPemFile     string
	cfgPassphrase  string
	cfgPassword    string
	cfgKnownHosts  string
	cfgStrictHost  bool
	cfgConnTimeout time.Duration
	cfgCheck       bool
	cfgParallel    bool
	cfgOutPath     string

	// Subcommand-specific configuration.
	cfgCommandParts      []string
	cfgUploadFiles       []string
	cfgDestDir           string
	cfgInstallPubKeyPath string
)

// Allow tests to stub dialing, command execution, and file upload
var (
	dialSSHFunc          = dialSSH
	runRemoteCommandFunc = runRemoteCommand
	uploadFileFunc       = uploadFile
)
