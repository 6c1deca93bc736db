package cmd

// fleetAgent owns one open SSH session per configured host, in host list
// order, and applies run/upload operations across all of them. Lifecycle is
// Open (after newFleetAgent) then Closed (after close, terminal); operations
// on a closed agent fail with errAgentClosed.
type fleetAgent struct {
	sessions []*hostSession
	closed   bool
}
