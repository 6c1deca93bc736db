package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// installCmd appends a local SSH public key to ~/.ssh/authorized_keys on
// every host in the fleet so that later runs can authenticate with the
// matching private key. The append is idempotent: hosts that already carry
// the exact key line are left untouched.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install an SSH public key on every host in the fleet",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgInstallPubKeyPath == "" {
			return errors.New("--pubkey is required (path to SSH public key)")
		}
		b, err := os.ReadFile(cfgInstallPubKeyPath)
		if err != nil {
			return fmt.Errorf("read public key: %w", err)
		}
		pub := strings.TrimSpace(string(b))
		if pub == "" || !(strings.HasPrefix(pub, "ssh-") || strings.HasPrefix(pub, "ecdsa-")) {
			return fmt.Errorf("%s does not look like an SSH public key", cfgInstallPubKeyPath)
		}

		agent, _, err := connectFleet()
		if err != nil {
			return err
		}
		defer agent.close()

		install := fmt.Sprintf(
			"mkdir -p ~/.ssh && chmod 700 ~/.ssh && { grep -qxF %s ~/.ssh/authorized_keys 2>/dev/null || echo %s >> ~/.ssh/authorized_keys; } && chmod 600 ~/.ssh/authorized_keys",
			shellQuote(pub), shellQuote(pub))

		log.Infof("installing public key on %d host(s)", len(agent.sessions))
		if _, runErr := agent.runCommand(install, cfgParallel); runErr != nil {
			return runErr
		}
		_, _ = fmt.Fprintln(os.Stdout, "Public key installed")
		return nil
	},
}
