package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "ec2-manager",
	Short: "Run commands and upload files across a fleet of hosts over SSH",
	Long: "Opens one SSH session per configured host, then runs shell commands or " +
		"uploads files across the whole fleet, host by host or in parallel.",
	Version: Version,
}
