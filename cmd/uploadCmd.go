package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// uploadCmd copies one or more local files into a destination directory on
// every host in the fleet.
var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload files to every host in the fleet",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(cfgUploadFiles) == 0 {
			return errors.New("--file is required (repeat for multiple files)")
		}
		if cfgDestDir == "" {
			return errors.New("--dest is required (remote destination directory)")
		}
		for _, f := range cfgUploadFiles {
			if _, err := os.Stat(f); err != nil {
				return fmt.Errorf("cannot read %s: %w", f, err)
			}
		}

		agent, fc, err := connectFleet()
		if err != nil {
			return err
		}
		defer agent.close()

		log.Infof("uploading %d file(s) to %s on %d host(s) (parallel=%v)",
			len(cfgUploadFiles), cfgDestDir, len(agent.sessions), cfgParallel)
		results, upErr := agent.uploadFiles(cfgUploadFiles, cfgDestDir, cfgParallel)

		if cfgOutPath != "" {
			rep := newYAMLReport(reportName(fc), "upload", "")
			rep.addResults(results)
			if err := writeReportFile(cfgOutPath, rep); err != nil {
				return fmt.Errorf("failed writing report: %w", err)
			}
		}
		return upErr
	},
}
