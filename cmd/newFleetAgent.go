package cmd

import "fmt"

// connectivityProbe is the harmless diagnostic issued on every fresh session
// when the check option is on, to fail fast on misconfigured hosts.
const connectivityProbe = "uname -a"

// newFleetAgent opens one SSH session per host address, in list order.
// Construction is all-or-nothing: an empty host list fails with the
// host-config error, bad key material fails with the credential error before
// any connection attempt, and any unreachable host (or failed connectivity
// probe) closes every session already opened and fails with the connection
// error.
func newFleetAgent(addrs []string, opt fleetOptions) (*fleetAgent, error) {
	if len(addrs) == 0 {
		return nil, fmt.Errorf("%w: no hosts configured", errHostConfig)
	}

	auths, err := buildAuthMethods(opt.pemFile, opt.passphrase, opt.password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errCredential, err)
	}

	a := &fleetAgent{}
	for _, addr := range addrs {
		client, err := dialSSHFunc(addr, opt.user, auths, opt.knownHosts, opt.strictHost, opt.connTimeout)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("%w: dial %s: %v", errConnection, addr, err)
		}
		a.sessions = append(a.sessions, &hostSession{addr: addr, client: sshClientWrapper{client}})
	}

	if opt.check {
		for _, s := range a.sessions {
			if _, _, err := runRemoteCommandFunc(s.client, connectivityProbe); err != nil {
				a.close()
				return nil, fmt.Errorf("%w: connectivity check failed on %s: %v", errConnection, s.addr, err)
			}
		}
	}
	return a, nil
}
