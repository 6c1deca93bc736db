package cmd

// Close tears down the underlying SSH connection. A nil client (possible when
// tests stub dialing) is treated as already closed.
func (w sshClientWrapper) Close() error {
	if w.c == nil {
		return nil
	}
	return w.c.Close()
}
