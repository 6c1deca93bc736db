package cmd

// sessionClient is a minimal interface to obtain a command session and to
// shut down the underlying connection when the fleet agent closes.
type sessionClient interface {
	NewSession() (session, error)
	Close() error
}
