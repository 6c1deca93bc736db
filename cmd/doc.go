// Package cmd implements the ec2-manager command-line interface.
//
// The package organizes all CLI subcommands (run, upload, verify, install)
// and the underlying helpers for SSH connectivity, the fleet agent that fans
// operations out across every configured host, SCP file upload, and
// structured YAML report emission.
//
// New contributors should start by reading rootCmd.go and init.go to see how
// cobra and viper are wired, connectFleet.go for how the host list and
// credentials are resolved, newFleetAgent.go for the all-or-nothing session
// setup, and fleetAgent.RunCommand.go / fleetAgent.UploadFiles.go for the
// sequential and parallel fan-out semantics.
package cmd
