package cmd

import (
	"errors"

	"golang.org/x/crypto/ssh"
)

// runRemoteCommand executes a single command over a fresh session and returns
// the combined output plus the remote exit code (-1 when it cannot be
// derived). There is no timeout here: a hung remote command blocks its unit
// of work, and the caller decides whether to re-invoke the whole operation.
func runRemoteCommand(client sessionClient, cmd string) ([]byte, int, error) {
	sess, err := client.NewSession()
	if err != nil {
		return nil, -1, err
	}
	defer func() { _ = sess.Close() }()

	b, err := sess.CombinedOutput(cmd)
	if err == nil {
		return b, 0, nil
	}
	// Try to derive exit status
	exit := -1
	var ee *ssh.ExitError
	if errors.As(err, &ee) {
		exit = ee.ExitStatus()
	}
	return b, exit, err
}
