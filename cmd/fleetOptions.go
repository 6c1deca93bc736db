package cmd

import "time"

// fleetOptions carries the connection settings used when constructing a
// fleet agent.
type fleetOptions struct {
	user        string
	pemFile     string
	passphrase  string
	password    string
	knownHosts  string
	strictHost  bool
	connTimeout time.Duration
	check       bool
}
