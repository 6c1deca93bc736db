package cmd

import "io"

// session is a minimal interface for running a command, feeding stdin, and
// closing. It exists so the fan-out and upload paths can be exercised with
// fakes instead of live SSH sessions.
type session interface {
	CombinedOutput(cmd string) ([]byte, error)
	StdinPipe() (io.WriteCloser, error)
	Close() error
}
