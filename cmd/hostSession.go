package cmd

// hostSession is one live authenticated connection to a single host. It is
// owned exclusively by the fleet agent; a call's task set never issues two
// concurrent operations against the same hostSession.
type hostSession struct {
	addr   string
	client sessionClient
}
