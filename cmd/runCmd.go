package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// runCmd executes a shell command across the whole fleet. Repeated -c
// fragments are joined into one remote invocation; --parallel fans the
// command out to every host at once instead of host by host.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a shell command on every host in the fleet",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(cfgCommandParts) == 0 {
			return errors.New("--command is required (repeat to chain fragments)")
		}
		command := joinCommandParts(cfgCommandParts)
		if command == "" {
			return errors.New("command is empty")
		}

		agent, fc, err := connectFleet()
		if err != nil {
			return err
		}
		defer agent.close()

		log.Infof("running %q on %d host(s) (parallel=%v)", command, len(agent.sessions), cfgParallel)
		results, runErr := agent.runCommand(command, cfgParallel)

		for _, r := range results {
			printHostResult(os.Stdout, r)
		}

		if cfgOutPath != "" {
			rep := newYAMLReport(reportName(fc), "run", command)
			rep.addResults(results)
			if err := writeReportFile(cfgOutPath, rep); err != nil {
				return fmt.Errorf("failed writing report: %w", err)
			}
		}
		return runErr
	},
}
