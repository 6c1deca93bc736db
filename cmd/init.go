package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// init configures the root command's persistent flags, binds them to
// environment variables via Viper, and registers all subcommands. The env
// prefix is EC2, so --hosts and --pem-file map to the EC2_HOSTS and
// EC2_PEM_FILE variables the tool has always honored.
func init() {
	// Persistent flags (inherited by subcommands like `run` and `upload`)
	rootCmd.PersistentFlags().StringVar(&cfgHosts, "hosts", "", "Comma-separated host list, host or host:port (or set EC2_HOSTS)")
	rootCmd.PersistentFlags().StringVar(&cfgFleetPath, "fleet", "", "Path to YAML fleet file")
	rootCmd.PersistentFlags().StringVarP(&cfgUser, "user", "u", "", "SSH username (default \"ec2-user\")")
	rootCmd.PersistentFlags().StringVar(&cfgPemFile, "pem-file", "", "Path to SSH private key (or set EC2_PEM_FILE)")
	rootCmd.PersistentFlags().StringVar(&cfgPassphrase, "passphrase", "", "Private key passphrase (or set EC2_PASSPHRASE)")
	rootCmd.PersistentFlags().StringVar(&cfgPassword, "password", "", "SSH password (or set EC2_PASSWORD)")
	rootCmd.PersistentFlags().StringVar(&cfgKnownHosts, "known-hosts", filepath.Join(os.Getenv("HOME"), ".ssh", "known_hosts"), "Path to known_hosts file")
	rootCmd.PersistentFlags().BoolVar(&cfgStrictHost, "strict-host-key", true, "Require host key verification (disable to accept any host key)")
	rootCmd.PersistentFlags().DurationVar(&cfgConnTimeout, "conn-timeout", 15*time.Second, "Connection timeout")
	rootCmd.PersistentFlags().BoolVar(&cfgCheck, "check", true, "Probe each host with 'uname -a' after connecting")
	rootCmd.PersistentFlags().BoolVarP(&cfgParallel, "parallel", "p", false, "Fan out to all hosts concurrently instead of host by host")
	rootCmd.PersistentFlags().StringVarP(&cfgOutPath, "out", "o", "", "Path to YAML report file")

	// Subcommand flags
	runCmd.Flags().StringArrayVarP(&cfgCommandParts, "command", "c", nil, "Command fragment; repeat to chain with '; '")
	uploadCmd.Flags().StringArrayVarP(&cfgUploadFiles, "file", "f", nil, "Local file to upload; repeat for multiple files")
	uploadCmd.Flags().StringVarP(&cfgDestDir, "dest", "d", "", "Remote destination directory")
	installCmd.Flags().StringVar(&cfgInstallPubKeyPath, "pubkey", "", "Path to SSH public key to install")

	// Bind env with Viper
	_ = viper.BindPFlag("hosts", rootCmd.PersistentFlags().Lookup("hosts"))
	_ = viper.BindPFlag("fleet", rootCmd.PersistentFlags().Lookup("fleet"))
	_ = viper.BindPFlag("user", rootCmd.PersistentFlags().Lookup("user"))
	_ = viper.BindPFlag("pem-file", rootCmd.PersistentFlags().Lookup("pem-file"))
	_ = viper.BindPFlag("passphrase", rootCmd.PersistentFlags().Lookup("passphrase"))
	_ = viper.BindPFlag("password", rootCmd.PersistentFlags().Lookup("password"))
	_ = viper.BindPFlag("known-hosts", rootCmd.PersistentFlags().Lookup("known-hosts"))
	_ = viper.BindPFlag("strict-host-key", rootCmd.PersistentFlags().Lookup("strict-host-key"))
	_ = viper.BindPFlag("conn-timeout", rootCmd.PersistentFlags().Lookup("conn-timeout"))
	_ = viper.BindPFlag("check", rootCmd.PersistentFlags().Lookup("check"))
	_ = viper.BindPFlag("parallel", rootCmd.PersistentFlags().Lookup("parallel"))
	_ = viper.BindPFlag("out", rootCmd.PersistentFlags().Lookup("out"))

	viper.SetEnvPrefix("EC2")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Pull in environment overrides on init
	cobra.OnInitialize(func() {
		if v := viper.GetString("hosts"); v != "" {
			cfgHosts = v
		}
		if v := viper.GetString("fleet"); v != "" {
			cfgFleetPath = v
		}
		if v := viper.GetString("user"); v != "" {
			cfgUser = v
		}
		if v := viper.GetString("pem-file"); v != "" {
			cfgPemFile = v
		}
		if v := viper.GetString("passphrase"); v != "" {
			cfgPassphrase = v
		}
		if v := viper.GetString("password"); v != "" {
			cfgPassword = v
		}
		if v := viper.GetString("known-hosts"); v != "" {
			cfgKnownHosts = v
		}
		if v := viper.GetString("conn-timeout"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				cfgConnTimeout = d
			}
		}
		// Booleans
		if viper.IsSet("strict-host-key") {
			cfgStrictHost = viper.GetBool("strict-host-key")
		}
		if viper.IsSet("check") {
			cfgCheck = viper.GetBool("check")
		}
		if viper.IsSet("parallel") {
			cfgParallel = viper.GetBool("parallel")
		}
		if v := viper.GetString("out"); v != "" {
			cfgOutPath = v
		}
	})

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(installCmd)
}
