package cmd

import "io"

// StdinPipe exposes the remote process's standard input. The SCP upload path
// streams file contents through it while the scp sink command runs.
func (w sshSessionWrapper) StdinPipe() (io.WriteCloser, error) {
	return w.s.StdinPipe()
}
