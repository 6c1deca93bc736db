package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Validate a fleet YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgFleetPath == "" {
			return errors.New("--fleet is required (path to YAML)")
		}
		fc, err := loadFleetConfig(cfgFleetPath)
		if err != nil {
			return fmt.Errorf("invalid fleet file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Fleet OK: %s (%d hosts)\n", fc.Name, len(fc.Hosts))
		return nil
	},
}
